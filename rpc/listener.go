// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/counter"
)

const (
	logName = "client_rpc"
)

// Configuration - configuration file data for RPC setup
type Configuration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// Listener - the accept loops feeding one RPC server
type Listener struct {
	log            *logger.L
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	listen         []string
	count          *counter.Counter
	listeners      []net.Listener
}

// NewListener - prepare the TLS accept loops for a configuration
func NewListener(configuration *Configuration, server *rpc.Server, rpcCount *counter.Counter) (*Listener, error) {

	keyPair, err := tls.LoadX509KeyPair(configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}

	return &Listener{
		log:            logger.New(logName),
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig: &tls.Config{
			Certificates: []tls.Certificate{keyPair},
		},
		listen: configuration.Listen,
		count:  rpcCount,
	}, nil
}

// Serve - start one accept loop per listen address
func (r *Listener) Serve() error {
	for _, address := range r.listen {
		r.log.Infof("starting RPC server: %s", address)
		listen, err := tls.Listen("tcp", address, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, listen)

		go doServeRPC(listen, r.server, r.maxConnections, r.log, r.count)
	}
	return nil
}

// Stop - close all listeners, terminating the accept loops
func (r *Listener) Stop() {
	for _, listen := range r.listeners {
		_ = listen.Close()
	}
	r.listeners = nil
}

func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L, count *counter.Counter) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			log.Errorf("rpc.server terminated: accept error: %s", err)
			break
		}
		if count.Increment() <= maximumConnections {
			go func() {
				server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				count.Decrement()
			}()
		} else {
			count.Decrement()
			_ = conn.Close()
		}
	}
	_ = listen.Close()
	log.Error("RPC accept terminated")
}
