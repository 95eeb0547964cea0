// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/storage"
)

// ascending lexicographic order of the scan keys
var expectedOrder = []stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
}

// insert deliberately out of order
func loadScanData(t *testing.T, p *storage.PoolHandle) {
	for _, e := range []stringElement{
		{"key-one", "data-one"},
		{"key-two", "data-two"},
		{"key-three", "data-three"},
		{"key-four", "data-four"},
		{"key-five", "data-five"},
		{"key-six", "data-six"},
		{"key-seven", "data-seven"},
	} {
		err := p.Put([]byte(e.key), []byte(e.value))
		assert.Nil(t, err, fmt.Sprintf("put %q", e.key))
	}
}

func TestMapFullRangeInOrder(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	loadScanData(t, p)

	collected := make([]storage.Element, 0, len(expectedOrder))
	err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		collected = append(collected, storage.Element{Key: key, Value: value})
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, makeElements(expectedOrder), collected, "ascending key order")
}

// a fresh cursor over the same bounds yields the full range again
func TestCursorRestartable(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	loadScanData(t, p)

	count := func() int {
		n := 0
		err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
			n += 1
			return nil
		})
		assert.Nil(t, err, "map")
		return n
	}

	assert.Equal(t, len(expectedOrder), count(), "first traversal")
	assert.Equal(t, len(expectedOrder), count(), "second traversal")
}

// an error from the callback stops the traversal and propagates
func TestMapEarlyStop(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	loadScanData(t, p)

	stop := fault.ProcessError("stop here")
	n := 0
	err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		if 3 == n {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err, "callback error propagates")
	assert.Equal(t, 3, n, "traversal stopped at the error")
}

func TestRangeCursorBounds(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	loadScanData(t, p)

	// [key-one, key-six) excludes the end key
	collected := make([]string, 0, 4)
	err := p.NewRangeCursor([]byte("key-one"), []byte("key-six")).Map(func(key []byte, value []byte) error {
		collected = append(collected, string(key))
		return nil
	})
	assert.Nil(t, err, "range map")
	assert.Equal(t, []string{"key-one", "key-seven"}, collected, "half open range")

	// empty bounds cover the full key space
	n := 0
	err = p.NewRangeCursor(nil, nil).Map(func(key []byte, value []byte) error {
		n += 1
		return nil
	})
	assert.Nil(t, err, "full range map")
	assert.Equal(t, len(expectedOrder), n, "empty bounds mean everything")
}

func TestFetchPaging(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	loadScanData(t, p)

	cursor := p.NewFetchCursor()

	first, err := cursor.Fetch(3)
	assert.Nil(t, err, "first fetch")
	assert.Equal(t, makeElements(expectedOrder[:3]), first, "first page")

	second, err := cursor.Fetch(10)
	assert.Nil(t, err, "second fetch")
	assert.Equal(t, makeElements(expectedOrder[3:]), second, "remaining page")

	third, err := cursor.Fetch(10)
	assert.Nil(t, err, "third fetch")
	assert.Equal(t, 0, len(third), "exhausted cursor")
}

func TestFetchInvalidArguments(t *testing.T) {
	setup(t)
	defer teardown(t)

	cursor := storage.Pool.TestData.NewFetchCursor()
	_, err := cursor.Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")

	var nilCursor *storage.FetchCursor
	_, err = nilCursor.Fetch(1)
	assert.Equal(t, fault.InvalidCursor, err, "nil cursor")
}
