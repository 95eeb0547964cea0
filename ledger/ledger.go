// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the asset CRUD layer over the world state
//
// every operation takes the store handle it works on as an explicit
// parameter; the package holds no ambient store state, so a host can
// bind each invocation to its own transaction-scoped handle
//
// isolation across concurrent operations on the same key is the
// host's concern, each operation only guarantees that its own
// read-check-then-write sequence observes a consistent view
package ledger

import (
	"encoding/json"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/canonical"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/storage"
)

// Ledger - the asset service
type Ledger struct {
	log *logger.L
}

// New - create the service with its own log channel
func New(log *logger.L) *Ledger {
	return &Ledger{log: log}
}

// InitialiseLedger - seed the fixed set of sample assets
//
// each record is tagged docType:"asset", canonically encoded and
// written individually; rerunning overwrites the same keys with the
// same bytes
func (l *Ledger) InitialiseLedger(pool storage.Handle) error {
	for _, asset := range sampleAssets {
		data, err := canonical.Marshal(asset)
		if nil != err {
			return err
		}
		if err := pool.Put([]byte(asset.ID), data); nil != err {
			return err
		}
		l.log.Infof("seeded asset: %s", asset.ID)
	}
	return nil
}

// CreateAsset - store a new asset record
//
// size and appraisedValue arrive in text form from the host surface
// and are coerced to integers here; the record is stored without a
// docType tag; returns the canonically encoded record text
func (l *Ledger) CreateAsset(pool storage.Handle, assetId string, color string, size string, owner string, appraisedValue string) (string, error) {
	if "" == assetId {
		return "", fault.MissingAssetId
	}

	here, err := l.AssetExists(pool, assetId)
	if nil != err {
		return "", err
	}
	if here {
		return "", fault.AssetAlreadyExists(assetId)
	}

	sizeN, err := strconv.Atoi(size)
	if nil != err {
		return "", fault.InvalidSize
	}
	valueN, err := strconv.Atoi(appraisedValue)
	if nil != err {
		return "", fault.InvalidAppraisedValue
	}

	asset := Asset{
		ID:             assetId,
		Color:          color,
		Size:           sizeN,
		Owner:          owner,
		AppraisedValue: valueN,
	}
	data, err := canonical.Marshal(asset)
	if nil != err {
		return "", err
	}

	if err := pool.Put([]byte(assetId), data); nil != err {
		return "", err
	}
	l.log.Infof("created asset: %s", assetId)
	return string(data), nil
}

// ReadAsset - return the stored record text exactly as stored
//
// no re-canonicalisation: the caller sees the bytes the write path
// produced, docType included or omitted as written
func (l *Ledger) ReadAsset(pool storage.Handle, assetId string) (string, error) {
	data, err := pool.Get([]byte(assetId))
	if nil != err {
		return "", err
	}
	if 0 == len(data) {
		return "", fault.AssetNotFound(assetId)
	}
	return string(data), nil
}

// UpdateAsset - fully replace an existing record
//
// no merge with the prior value; unlike CreateAsset this accepts
// pre-typed integers, the host surface is responsible for any text
// coercion on this path
func (l *Ledger) UpdateAsset(pool storage.Handle, assetId string, color string, size int, owner string, appraisedValue int) error {
	here, err := l.AssetExists(pool, assetId)
	if nil != err {
		return err
	}
	if !here {
		return fault.AssetNotFound(assetId)
	}

	asset := Asset{
		ID:             assetId,
		Color:          color,
		Size:           size,
		Owner:          owner,
		AppraisedValue: appraisedValue,
	}
	data, err := canonical.Marshal(asset)
	if nil != err {
		return err
	}

	if err := pool.Put([]byte(assetId), data); nil != err {
		return err
	}
	l.log.Infof("updated asset: %s", assetId)
	return nil
}

// DeleteAsset - remove an existing record from the store
func (l *Ledger) DeleteAsset(pool storage.Handle, assetId string) error {
	here, err := l.AssetExists(pool, assetId)
	if nil != err {
		return err
	}
	if !here {
		return fault.AssetNotFound(assetId)
	}

	if err := pool.Delete([]byte(assetId)); nil != err {
		return err
	}
	l.log.Infof("deleted asset: %s", assetId)
	return nil
}

// AssetExists - true iff the store holds a non-empty value for the id
//
// the sole presence test used by every other operation
func (l *Ledger) AssetExists(pool storage.Handle, assetId string) (bool, error) {
	data, err := pool.Get([]byte(assetId))
	if nil != err {
		return false, err
	}
	return 0 != len(data), nil
}

// TransferAsset - change only the owner of an existing record
//
// the record is re-canonicalised on write, so a later read reflects
// canonical field order even if the stored form predated it; returns
// the previous owner
func (l *Ledger) TransferAsset(pool storage.Handle, assetId string, newOwner string) (string, error) {
	stored, err := l.ReadAsset(pool, assetId)
	if nil != err {
		return "", err
	}

	var asset Asset
	if err := json.Unmarshal([]byte(stored), &asset); nil != err {
		return "", fault.ProcessError("asset " + assetId + ": undecodable record: " + err.Error())
	}

	previousOwner := asset.Owner
	asset.Owner = newOwner

	data, err := canonical.Marshal(asset)
	if nil != err {
		return "", err
	}
	if err := pool.Put([]byte(assetId), data); nil != err {
		return "", err
	}
	l.log.Infof("transferred asset: %s: %q to %q", assetId, previousOwner, newOwner)
	return previousOwner, nil
}

// GetAllAssets - list the whole key space in ascending key order
//
// an entry that does not decode as an asset record is included as
// its raw stored text instead of aborting the listing; the scan
// iterator is released on every exit path
func (l *Ledger) GetAllAssets(pool storage.Handle) ([]interface{}, error) {
	records := make([]interface{}, 0, len(sampleAssets))
	err := pool.NewRangeCursor(nil, nil).Map(func(key []byte, value []byte) error {
		var asset Asset
		if err := json.Unmarshal(value, &asset); nil != err {
			l.log.Warnf("asset %q: undecodable record: %s", key, err)
			records = append(records, string(value))
			return nil
		}
		records = append(records, asset)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return records, nil
}
