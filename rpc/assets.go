// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/storage"
)

// Assets - the ledger operations exposed to RPC clients
type Assets struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Pool    storage.Handle
	Ledger  *ledger.Ledger
}

// rate limits per service
const (
	rateLimitAssets = 200 // requests per second
	rateBurstAssets = 100
)

// NewAssets - create the RPC service around a ledger and its store
func NewAssets(log *logger.L, pool storage.Handle, l *ledger.Ledger) *Assets {
	return &Assets{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAssets, rateBurstAssets),
		Pool:    pool,
		Ledger:  l,
	}
}

// InitArguments - arguments for seeding the sample assets
type InitArguments struct{}

// InitReply - result from seeding
type InitReply struct {
	Seeded bool `json:"seeded"`
}

// Init - seed the fixed sample assets into the world state
func (assets *Assets) Init(arguments *InitArguments, reply *InitReply) error {
	if err := rateLimit(assets.Limiter); nil != err {
		return err
	}
	assets.Log.Info("Assets.Init")

	if err := assets.Ledger.InitialiseLedger(assets.Pool); nil != err {
		return err
	}
	reply.Seeded = true
	return nil
}

// CreateArguments - arguments for creating one asset
//
// size and appraised value are text on the wire, the create path
// coerces them to integers
type CreateArguments struct {
	Id             string `json:"id"`
	Color          string `json:"color"`
	Size           string `json:"size"`
	Owner          string `json:"owner"`
	AppraisedValue string `json:"appraisedValue"`
}

// CreateReply - the canonically encoded record text
type CreateReply struct {
	Record string `json:"record"`
}

// Create - store a new asset
func (assets *Assets) Create(arguments *CreateArguments, reply *CreateReply) error {
	if err := rateLimit(assets.Limiter); nil != err {
		return err
	}
	assets.Log.Infof("Assets.Create: %+v", arguments)

	record, err := assets.Ledger.CreateAsset(assets.Pool, arguments.Id, arguments.Color, arguments.Size, arguments.Owner, arguments.AppraisedValue)
	if nil != err {
		return err
	}
	reply.Record = record
	return nil
}

// ReadArguments - arguments for reading one asset
type ReadArguments struct {
	Id string `json:"id"`
}

// ReadReply - the stored record text, exactly as stored
type ReadReply struct {
	Record string `json:"record"`
}

// Read - fetch the stored record for an id
func (assets *Assets) Read(arguments *ReadArguments, reply *ReadReply) error {
	if err := rateLimit(assets.Limiter); nil != err {
		return err
	}
	assets.Log.Infof("Assets.Read: %+v", arguments)

	record, err := assets.Ledger.ReadAsset(assets.Pool, arguments.Id)
	if nil != err {
		return err
	}
	reply.Record = record
	return nil
}

// UpdateArguments - arguments for a full record replace
//
// unlike Create these are pre-typed, no text coercion on this path
type UpdateArguments struct {
	Id             string `json:"id"`
	Color          string `json:"color"`
	Size           int    `json:"size"`
	Owner          string `json:"owner"`
	AppraisedValue int    `json:"appraisedValue"`
}

// UpdateReply - empty, success is the reply
type UpdateReply struct{}

// Update - fully replace an existing asset
func (assets *Assets) Update(arguments *UpdateArguments, reply *UpdateReply) error {
	if err := rateLimit(assets.Limiter); nil != err {
		return err
	}
	assets.Log.Infof("Assets.Update: %+v", arguments)

	return assets.Ledger.UpdateAsset(assets.Pool, arguments.Id, arguments.Color, arguments.Size, arguments.Owner, arguments.AppraisedValue)
}

// DeleteArguments - arguments for removing one asset
type DeleteArguments struct {
	Id string `json:"id"`
}

// DeleteReply - empty, success is the reply
type DeleteReply struct{}

// Delete - remove an existing asset
func (assets *Assets) Delete(arguments *DeleteArguments, reply *DeleteReply) error {
	if err := rateLimit(assets.Limiter); nil != err {
		return err
	}
	assets.Log.Infof("Assets.Delete: %+v", arguments)

	return assets.Ledger.DeleteAsset(assets.Pool, arguments.Id)
}

// ExistsArguments - arguments for a presence check
type ExistsArguments struct {
	Id string `json:"id"`
}

// ExistsReply - result of the presence check
type ExistsReply struct {
	Exists bool `json:"exists"`
}

// Exists - check whether an id holds a record
func (assets *Assets) Exists(arguments *ExistsArguments, reply *ExistsReply) error {
	if err := rateLimit(assets.Limiter); nil != err {
		return err
	}
	assets.Log.Infof("Assets.Exists: %+v", arguments)

	here, err := assets.Ledger.AssetExists(assets.Pool, arguments.Id)
	if nil != err {
		return err
	}
	reply.Exists = here
	return nil
}

// TransferArguments - arguments for an owner change
type TransferArguments struct {
	Id       string `json:"id"`
	NewOwner string `json:"newOwner"`
}

// TransferReply - the owner before the change
type TransferReply struct {
	PreviousOwner string `json:"previousOwner"`
}

// Transfer - change the owner of an existing asset
func (assets *Assets) Transfer(arguments *TransferArguments, reply *TransferReply) error {
	if err := rateLimit(assets.Limiter); nil != err {
		return err
	}
	assets.Log.Infof("Assets.Transfer: %+v", arguments)

	previous, err := assets.Ledger.TransferAsset(assets.Pool, arguments.Id, arguments.NewOwner)
	if nil != err {
		return err
	}
	reply.PreviousOwner = previous
	return nil
}

// ListArguments - arguments for the full listing
type ListArguments struct{}

// ListReply - every stored record in ascending key order
//
// entries that decode are structured records, entries that do not
// are their raw stored text
type ListReply struct {
	Assets []interface{} `json:"assets"`
}

// List - enumerate the whole key space
func (assets *Assets) List(arguments *ListArguments, reply *ListReply) error {
	if err := rateLimit(assets.Limiter); nil != err {
		return err
	}
	assets.Log.Info("Assets.List")

	records, err := assets.Ledger.GetAllAssets(assets.Pool)
	if nil != err {
		return err
	}
	reply.Assets = records
	return nil
}
