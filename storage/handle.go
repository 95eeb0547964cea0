// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/ledgerd/fault"
)

// Handle - the ordered store contract consumed by the ledger core
//
// Get returns a nil slice and nil error for a missing key; Put
// overwrites; Delete of an absent key is not an error (the core
// checks existence first, this is only a defensive path); cursors
// traverse keys in ascending lexicographic order
type Handle interface {
	Get(key []byte) ([]byte, error)
	Put(key []byte, value []byte) error
	Delete(key []byte) error
	Has(key []byte) (bool, error)
	NewFetchCursor() *FetchCursor
	NewRangeCursor(start []byte, end []byte) *FetchCursor
}

// PoolHandle - one prefixed key space inside the database
type PoolHandle struct {
	prefix   byte
	limit    []byte
	database *leveldb.DB
	cache    Cache
}

// Element - a binary key/value pair from a cursor
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the pool prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value pair, overwriting any previous value
//
// the write is atomic at single key granularity; the cache records
// it so an immediately following read observes the new value
func (p *PoolHandle) Put(key []byte, value []byte) error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		return fault.NotInitialised
	}
	err := p.database.Put(p.prefixKey(key), value, nil)
	if nil == err {
		p.cache.Set(dbPut, string(key), value)
	}
	return err
}

// Delete - remove a key and its value
func (p *PoolHandle) Delete(key []byte) error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		return fault.NotInitialised
	}
	err := p.database.Delete(p.prefixKey(key), nil)
	if nil == err {
		p.cache.Set(dbDelete, string(key), []byte{})
	}
	return err
}

// Get - read the value stored for a key
//
// a missing key yields a nil slice and a nil error
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		return nil, fault.NotInitialised
	}
	if value, found := p.cache.Get(string(key)); found {
		return value, nil
	}
	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// Has - check if a key holds a non-empty value
func (p *PoolHandle) Has(key []byte) (bool, error) {
	value, err := p.Get(key)
	return 0 != len(value), err
}

// flush cached writes, used when the database is closed
func (p *PoolHandle) flushCache() {
	p.cache.Clear()
}
