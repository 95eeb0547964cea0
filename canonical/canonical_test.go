// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canonical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/canonical"
)

// a struct whose json tags are deliberately not in declaration order
type scrambled struct {
	Owner string `json:"Owner"`
	ID    string `json:"ID"`
}

// an equal record declared field-first
type ordered struct {
	ID    string `json:"ID"`
	Owner string `json:"Owner"`
}

func TestMarshalFieldOrderIndependent(t *testing.T) {
	a, err := canonical.Marshal(scrambled{Owner: "Brad", ID: "asset2"})
	assert.Nil(t, err, "marshal scrambled")

	b, err := canonical.Marshal(ordered{ID: "asset2", Owner: "Brad"})
	assert.Nil(t, err, "marshal ordered")

	assert.Equal(t, a, b, "equal records must encode identically")
	assert.Equal(t, `{"ID":"asset2","Owner":"Brad"}`, string(a), "canonical form")
}

func TestMarshalMapEqualsStruct(t *testing.T) {
	record := map[string]interface{}{
		"Size":  5,
		"ID":    "asset1",
		"Owner": "Tomoko",
	}
	a, err := canonical.Marshal(record)
	assert.Nil(t, err, "marshal map")

	b, err := canonical.Marshal(struct {
		Owner string `json:"Owner"`
		Size  int    `json:"Size"`
		ID    string `json:"ID"`
	}{Owner: "Tomoko", Size: 5, ID: "asset1"})
	assert.Nil(t, err, "marshal struct")

	assert.Equal(t, a, b, "map and struct forms must agree")
}

// keys must be sorted at every nesting level, not just the top
func TestMarshalNestedKeysSorted(t *testing.T) {
	record := map[string]interface{}{
		"z": map[string]interface{}{"b": 2, "a": 1},
		"a": []interface{}{map[string]interface{}{"y": true, "x": false}},
	}
	data, err := canonical.Marshal(record)
	assert.Nil(t, err, "marshal nested")
	assert.Equal(t, `{"a":[{"x":false,"y":true}],"z":{"a":1,"b":2}}`, string(data), "nested canonical form")
}

// no insignificant whitespace and stable numeric text
func TestMarshalCompactAndStableNumbers(t *testing.T) {
	data, err := canonical.Marshal(map[string]interface{}{
		"AppraisedValue": 300,
		"ID":             "asset1",
	})
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"AppraisedValue":300,"ID":"asset1"}`, string(data), "compact form")

	again, err := canonical.Marshal(map[string]interface{}{
		"ID":             "asset1",
		"AppraisedValue": 300,
	})
	assert.Nil(t, err, "marshal again")
	assert.Equal(t, data, again, "re-encoding is stable")
}
