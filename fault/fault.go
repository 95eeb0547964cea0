// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import "fmt"

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ProcessError("already initialised")
	CertificateFileAlreadyExists = InvalidError("certificate file already exists")
	DatabaseVersionTooNew        = ProcessError("database version is newer than this program")
	DatabaseVersionTooOld        = ProcessError("database version is too old, remove and reseed")
	InvalidAppraisedValue        = InvalidError("appraised value is not a number")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidLoggerChannel         = InvalidError("invalid logger channel")
	InvalidSize                  = InvalidError("size is not a number")
	KeyFileAlreadyExists         = InvalidError("key file already exists")
	MissingAssetId               = InvalidError("asset id is required")
	NotInitialised               = ProcessError("not initialised")
	RateLimiting                 = ProcessError("rate limiting")
)

// AssetAlreadyExists - create refused because the id already holds a record
func AssetAlreadyExists(assetId string) error {
	return ExistsError(fmt.Sprintf("asset %s already exists", assetId))
}

// AssetNotFound - the id holds no stored record
func AssetNotFound(assetId string) error {
	return NotFoundError(fmt.Sprintf("asset %s does not exist", assetId))
}

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
