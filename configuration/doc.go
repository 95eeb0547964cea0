// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read the configuration file
//
// the configuration is a Lua script whose final expression is a
// table; the table is mapped onto a Go structure using gluamapper
// field tags
package configuration
