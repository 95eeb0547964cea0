// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Assets   *PoolHandle `prefix:"A"`
	TestData *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	database *leveldb.DB
	handles  []*PoolHandle
}

// Initialise - open the database and bind all pools
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.database {
		return fault.AlreadyInitialised
	}

	log := logger.New("storage")
	log.Infof("database: %q", database)

	db, err := leveldb.OpenFile(database, &ldb_opt.Options{
		ErrorIfExist: false,
		ReadOnly:     readOnly,
	})
	if nil != err {
		return err
	}

	if err := checkVersion(db, readOnly); nil != err {
		_ = db.Close()
		return err
	}

	poolData.database = db
	poolData.handles = nil

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field to locate its prefix tag
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			logger.Panicf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:   prefix,
			limit:    limit,
			database: db,
			cache:    newCache(),
		}
		poolData.handles = append(poolData.handles, p)
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	return nil
}

// ensure no database downgrade or upgrade is attempted silently
func checkVersion(db *leveldb.DB, readOnly bool) error {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		if readOnly {
			return nil
		}
		newVersion := make([]byte, 8)
		binary.BigEndian.PutUint64(newVersion, currentDBVersion)
		return db.Put(versionKey, newVersion, nil)
	}
	if nil != err {
		return err
	}
	if 8 != len(versionValue) {
		return fault.DatabaseVersionTooOld
	}
	version := binary.BigEndian.Uint64(versionValue)
	switch {
	case version > currentDBVersion:
		return fault.DatabaseVersionTooNew
	case version < currentDBVersion:
		return fault.DatabaseVersionTooOld
	}
	return nil
}

// Finalise - close the database
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.database {
		return
	}

	// detach all pools before closing so that any late caller gets
	// a clean not-initialised error instead of using a closed handle
	for _, p := range poolData.handles {
		p.database = nil
		p.flushCache()
	}
	poolData.handles = nil

	_ = poolData.database.Close()
	poolData.database = nil
}
