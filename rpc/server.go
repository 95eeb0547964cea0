// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/counter"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/storage"
)

// Create - build the RPC server and register all services
//
// the store handle is injected here once and bound into the asset
// service; registration is explicit, no framework base type
func Create(log *logger.L, pool storage.Handle, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(NewAssets(log, pool, ledger.New(log)))
	_ = server.Register(&Node{
		log:     log,
		start:   start,
		version: version,
		count:   rpcCount,
	})

	return server
}
