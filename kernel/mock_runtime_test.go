// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/luxfi/amulet/amuletids"
	"github.com/luxfi/amulet/cryptoboundary"
	"github.com/luxfi/amulet/cryptoboundary/cryptotest"
	"github.com/luxfi/amulet/kconfig"
	"github.com/luxfi/amulet/kernel"
	"github.com/luxfi/amulet/kernelerrors"
	"github.com/luxfi/amulet/kruntime/kruntimemock"
	"github.com/luxfi/amulet/kruntime/ledger"
	"github.com/luxfi/amulet/model"
)

// TestApply_CallsRuntimeExecuteExactlyOnceWithValidatedCommand asserts the
// kernel calls through to the Runtime exactly once per Apply, passing the
// pre-commit Σ and the command unmodified.
func TestApply_CallsRuntimeExecuteExactlyOnceWithValidatedCommand(t *testing.T) {
	ctrl := gomock.NewController(t)

	capID, target := cidOf(1), cidOf(2)
	cmd := mintCmd(capID, target, 0, 7)

	rt := kruntimemock.New(ctrl)
	rt.EXPECT().Execute(gomock.Any(), cmd).Times(1).Return(model.StateDelta{
		NewEntities: []model.Entity{{
			Header: model.EntityHeader{ID: target, Version: 1},
			Body:   []byte{1},
		}},
	}, nil)

	disp := cryptoboundary.NewDispatcher(cryptotest.New(amuletids.AlgClassic))
	k, err := kernel.New[ledger.Payload](
		kconfig.Default(replicaOf(1)),
		rt,
		disp,
		kernel.WithInitialState[ledger.Payload](seedCapability(capID, cidOf(0xAA), amuletids.RightWrite, nil)),
	)
	require.NoError(t, err)

	_, err = k.Apply(cmd)
	require.NoError(t, err)
}

// TestApply_RuntimeErrorRejectedWithoutMutatingState confirms a Runtime
// error surfaces as a RuntimeError and never reaches AppendDelta.
func TestApply_RuntimeErrorRejectedWithoutMutatingState(t *testing.T) {
	ctrl := gomock.NewController(t)

	capID, target := cidOf(1), cidOf(2)
	cmd := mintCmd(capID, target, 0, 7)

	rt := kruntimemock.New(ctrl)
	rt.EXPECT().Execute(gomock.Any(), cmd).Times(1).Return(model.StateDelta{}, ledger.ErrAlreadyExists)

	disp := cryptoboundary.NewDispatcher(cryptotest.New(amuletids.AlgClassic))
	k, err := kernel.New[ledger.Payload](
		kconfig.Default(replicaOf(1)),
		rt,
		disp,
		kernel.WithInitialState[ledger.Payload](seedCapability(capID, cidOf(0xAA), amuletids.RightWrite, nil)),
	)
	require.NoError(t, err)

	before := k.Snapshot()
	_, err = k.Apply(cmd)
	require.Error(t, err)
	var rtErr *kernelerrors.RuntimeError
	require.ErrorAs(t, err, &rtErr)

	after := k.Snapshot()
	require.Equal(t, before, after)
}
