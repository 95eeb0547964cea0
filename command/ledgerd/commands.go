// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/storage"
)

// setup command handler
//
// commands that cannot access any internal database or states or
// the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h":
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [command]\n", program)
		fmt.Printf("       %s --config-file=FILE gen-rpc-cert [host...]  - generate RPC certificate and key\n", program)
		fmt.Printf("       %s --config-file=FILE rpc-fingerprint        - show the RPC certificate fingerprint\n", program)
		fmt.Printf("       %s --config-file=FILE seed                   - store the sample assets\n", program)
		fmt.Printf("       %s --config-file=FILE list                   - list all stored assets\n", program)

	default:
		return false
	}
	return true
}

// config command handler
//
// commands that need the configuration file but not the database;
// run before logging is started
func processConfigCommand(arguments []string, options *Configuration) bool {

	switch arguments[0] {
	case "gen-rpc-cert":
		err := makeSelfSignedCertificate("rpc", options.ClientRPC.Certificate, options.ClientRPC.PrivateKey, 0 != len(arguments[1:]), arguments[1:])
		if nil != err {
			fmt.Printf("generate RPC key/certificate error: %s\n", err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated certificate: %q\n", options.ClientRPC.Certificate)
		fmt.Printf("generated private key: %q\n", options.ClientRPC.PrivateKey)

	case "rpc-fingerprint":
		keyPair, err := tls.LoadX509KeyPair(options.ClientRPC.Certificate, options.ClientRPC.PrivateKey)
		if nil != err {
			fmt.Printf("certificate: %q  error: %s\n", options.ClientRPC.Certificate, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("SHA3-256 fingerprint: %x\n", certificateFingerprint(keyPair.Certificate[0]))

	default:
		return false
	}
	return true
}

// data command handler
//
// commands that need the database open; logging is already started
func processDataCommand(log *logger.L, arguments []string, options *Configuration) bool {

	l := ledger.New(log)

	switch arguments[0] {
	case "seed":
		if err := l.InitialiseLedger(storage.Pool.Assets); nil != err {
			fmt.Printf("seed error: %s\n", err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("sample assets stored\n")

	case "list":
		records, err := l.GetAllAssets(storage.Pool.Assets)
		if nil != err {
			fmt.Printf("list error: %s\n", err)
			exitwithstatus.Exit(1)
		}
		for _, record := range records {
			data, err := json.Marshal(record)
			if nil != err {
				fmt.Printf("%v\n", record)
				continue
			}
			fmt.Printf("%s\n", data)
		}

	default:
		return false
	}
	return true
}
