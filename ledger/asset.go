// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// Asset - the sole record type held in the world state
//
// ID is the store key and is immutable after creation; DocType is
// only present on records written by the bulk seeding path, records
// created individually omit it; unifying the two would change stored
// bytes, so any cleanup needs an explicit migration
type Asset struct {
	AppraisedValue int    `json:"AppraisedValue"`
	Color          string `json:"Color"`
	DocType        string `json:"docType,omitempty"`
	ID             string `json:"ID"`
	Owner          string `json:"Owner"`
	Size           int    `json:"Size"`
}

// the document type tag applied by the bulk seeding path
const assetDocType = "asset"

// sampleAssets - the fixed bootstrap records
//
// literal constants, so re-seeding overwrites the same keys with the
// same values and stays idempotent
var sampleAssets = []Asset{
	{ID: "asset1", Color: "blue", Size: 5, Owner: "Tomoko", AppraisedValue: 300, DocType: assetDocType},
	{ID: "asset2", Color: "red", Size: 5, Owner: "Brad", AppraisedValue: 400, DocType: assetDocType},
	{ID: "asset3", Color: "green", Size: 10, Owner: "Jin Soo", AppraisedValue: 500, DocType: assetDocType},
	{ID: "asset4", Color: "yellow", Size: 10, Owner: "Max", AppraisedValue: 600, DocType: assetDocType},
	{ID: "asset5", Color: "black", Size: 15, Owner: "Adriana", AppraisedValue: 700, DocType: assetDocType},
	{ID: "asset6", Color: "white", Size: 15, Owner: "Michel", AppraisedValue: 800, DocType: assetDocType},
}
