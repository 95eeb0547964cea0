// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package canonical - deterministic record encoding
//
// independent validators re-execute the same operations and must end
// up with byte-identical world state without communicating, so every
// stored record has exactly one valid byte encoding: compact JSON
// with object keys, at every nesting level, in ascending byte order
package canonical

import (
	"bytes"
	"encoding/json"
)

// Marshal - encode a record into its canonical byte sequence
//
// two values that are equal as field-name-to-value mappings encode
// identically regardless of construction order or prior mutation
// history; cyclic values are outside the contract
func Marshal(record interface{}) ([]byte, error) {
	data, err := json.Marshal(record)
	if nil != err {
		return nil, err
	}
	tree, err := normalise(data)
	if nil != err {
		return nil, err
	}
	// encoding/json emits map keys in sorted byte order and the
	// json.Number leaves kept by normalise re-emit their original
	// numeric text unchanged
	return json.Marshal(tree)
}

// reduce an encoded record to a tree of maps, slices, json.Number,
// string, bool and nil so that re-encoding is order independent
func normalise(data []byte) (interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var tree interface{}
	if err := decoder.Decode(&tree); nil != err {
		return nil, err
	}
	return tree, nil
}
