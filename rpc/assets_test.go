// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc"
	"github.com/bitmark-inc/ledgerd/rpc/fixtures"
	"github.com/bitmark-inc/ledgerd/rpc/mocks"
)

func newTestAssets(t *testing.T) (*rpc.Assets, *mocks.MockHandle, *gomock.Controller) {
	ctl := gomock.NewController(t)
	pool := mocks.NewMockHandle(ctl)
	log := logger.New(fixtures.LogCategory)
	return rpc.NewAssets(log, pool, ledger.New(log)), pool, ctl
}

func TestAssetsCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	assets, pool, ctl := newTestAssets(t)
	defer ctl.Finish()

	pool.EXPECT().Get([]byte("a1")).Return(nil, nil).Times(1)
	pool.EXPECT().Put(
		[]byte("a1"),
		[]byte(`{"AppraisedValue":300,"Color":"blue","ID":"a1","Owner":"Tomoko","Size":5}`),
	).Return(nil).Times(1)

	arguments := rpc.CreateArguments{
		Id:             "a1",
		Color:          "blue",
		Size:           "5",
		Owner:          "Tomoko",
		AppraisedValue: "300",
	}
	var reply rpc.CreateReply
	err := assets.Create(&arguments, &reply)
	assert.Nil(t, err, "create")
	assert.Equal(t, `{"AppraisedValue":300,"Color":"blue","ID":"a1","Owner":"Tomoko","Size":5}`, reply.Record, "canonical record")
}

func TestAssetsCreateDuplicate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	assets, pool, ctl := newTestAssets(t)
	defer ctl.Finish()

	pool.EXPECT().Get([]byte("a1")).Return([]byte(`{"ID":"a1"}`), nil).Times(1)

	arguments := rpc.CreateArguments{Id: "a1", Color: "blue", Size: "5", Owner: "Tomoko", AppraisedValue: "300"}
	var reply rpc.CreateReply
	err := assets.Create(&arguments, &reply)
	assert.True(t, fault.IsErrExists(err), "duplicate create must fail with exists")
}

// a store failure aborts the operation unmodified
func TestAssetsCreateStoreFailure(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	assets, pool, ctl := newTestAssets(t)
	defer ctl.Finish()

	broken := fault.ProcessError("leveldb: closed")
	pool.EXPECT().Get([]byte("a1")).Return(nil, broken).Times(1)

	arguments := rpc.CreateArguments{Id: "a1", Color: "blue", Size: "5", Owner: "Tomoko", AppraisedValue: "300"}
	var reply rpc.CreateReply
	err := assets.Create(&arguments, &reply)
	assert.Equal(t, broken, err, "store failure propagates unmodified")
}

func TestAssetsReadAbsent(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	assets, pool, ctl := newTestAssets(t)
	defer ctl.Finish()

	pool.EXPECT().Get([]byte("nope")).Return(nil, nil).Times(1)

	var reply rpc.ReadReply
	err := assets.Read(&rpc.ReadArguments{Id: "nope"}, &reply)
	assert.True(t, fault.IsErrNotFound(err), "read absent must fail with not found")
}

// transfer re-canonicalises whatever form was stored
func TestAssetsTransfer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	assets, pool, ctl := newTestAssets(t)
	defer ctl.Finish()

	stored := `{"Size": 5, "ID": "a2", "Owner": "Brad", "Color": "red", "AppraisedValue": 400}`
	pool.EXPECT().Get([]byte("a2")).Return([]byte(stored), nil).Times(1)
	pool.EXPECT().Put(
		[]byte("a2"),
		[]byte(`{"AppraisedValue":400,"Color":"red","ID":"a2","Owner":"Carol","Size":5}`),
	).Return(nil).Times(1)

	var reply rpc.TransferReply
	err := assets.Transfer(&rpc.TransferArguments{Id: "a2", NewOwner: "Carol"}, &reply)
	assert.Nil(t, err, "transfer")
	assert.Equal(t, "Brad", reply.PreviousOwner, "previous owner")
}

func TestAssetsExists(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	assets, pool, ctl := newTestAssets(t)
	defer ctl.Finish()

	pool.EXPECT().Get([]byte("a1")).Return([]byte(`{"ID":"a1"}`), nil).Times(1)
	pool.EXPECT().Get([]byte("a9")).Return(nil, nil).Times(1)

	var reply rpc.ExistsReply
	err := assets.Exists(&rpc.ExistsArguments{Id: "a1"}, &reply)
	assert.Nil(t, err, "exists present")
	assert.True(t, reply.Exists, "present")

	err = assets.Exists(&rpc.ExistsArguments{Id: "a9"}, &reply)
	assert.Nil(t, err, "exists absent")
	assert.False(t, reply.Exists, "absent")
}

func TestAssetsDeleteAbsent(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	assets, pool, ctl := newTestAssets(t)
	defer ctl.Finish()

	pool.EXPECT().Get([]byte("nope")).Return(nil, nil).Times(1)

	var reply rpc.DeleteReply
	err := assets.Delete(&rpc.DeleteArguments{Id: "nope"}, &reply)
	assert.True(t, fault.IsErrNotFound(err), "delete absent must fail with not found")
}
