// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - the JSON-RPC host surface of the ledger
//
// the ledger service is a plain struct registered with net/rpc and
// served over TLS with the jsonrpc codec; each method binds one
// invocation to the injected store handle
package rpc
