// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/ledgerd/fault"
)

// FetchCursor - ascending traversal over a key range of one pool
//
// a cursor is finite and restartable: a fresh cursor over the same
// bounds yields the full range again; the underlying iterator is
// acquired per call and released on every exit path
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor over the full pool key space
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// NewRangeCursor - initialise a cursor over [start, end)
//
// an empty start or end bound denotes the corresponding end of the
// full pool key space
func (p *PoolHandle) NewRangeCursor(start []byte, end []byte) *FetchCursor {
	cursor := p.NewFetchCursor()
	if 0 != len(start) {
		cursor.maxRange.Start = p.prefixKey(start)
	}
	if 0 != len(end) {
		cursor.maxRange.Limit = p.prefixKey(end)
	}
	return cursor
}

// Seek - move cursor to a specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - return up to count elements and advance the cursor
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == cursor.pool.database {
		return nil, fault.NotInitialised
	}

	iter := cursor.pool.database.NewIterator(&cursor.maxRange, nil)
	defer iter.Release()

	results := make([]Element, 0, count)
	n := 0
	for iter.Next() {

		// contents of the returned slices must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		results = append(results, Element{
			Key:   dataKey,
			Value: dataValue,
		})
		n += 1
		if n >= count {
			break
		}
	}
	if err := iter.Error(); nil != err {
		return nil, err
	}

	if n > 0 {
		// restart position: the immediate successor of the last key
		last := results[n-1].Key
		next := make([]byte, 0, len(last)+2)
		next = append(next, cursor.pool.prefix)
		next = append(next, last...)
		next = append(next, 0x00)
		cursor.maxRange.Start = next
	}
	return results, nil
}

// Map - run a function over all elements in the range
//
// stops at the first error from the function; the iterator is
// released whether the traversal completes, errors or panics
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == cursor.pool.database {
		return fault.NotInitialised
	}

	iter := cursor.pool.database.NewIterator(&cursor.maxRange, nil)
	defer iter.Release()

	for iter.Next() {

		// contents of the returned slices must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		if err := f(dataKey, dataValue); nil != err {
			return err
		}
	}
	return iter.Error()
}
