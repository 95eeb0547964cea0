// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the world state in a LevelDB database
//
// the database is split into pools, one prefix byte per pool, so
// that every pool is an independent ordered key space; keys inside a
// pool are sorted lexicographically by the underlying store
//
// the ledger core only depends on the Handle interface; the LevelDB
// backing and the prefix scheme stay private to this package
package storage
