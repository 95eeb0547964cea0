// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/counter"
)

// Node - process level enquiries
type Node struct {
	log     *logger.L
	start   time.Time
	version string
	count   *counter.Counter
}

// InfoArguments - empty argument block
type InfoArguments struct{}

// InfoReply - some information about this node
type InfoReply struct {
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
	RPCs    uint64 `json:"rpcs"`
}

// Info - return some information about this node
func (node *Node) Info(arguments *InfoArguments, reply *InfoReply) error {
	reply.Version = node.version
	reply.Uptime = time.Since(node.start).String()
	reply.RPCs = node.count.Uint64()
	return nil
}
