// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kernel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/amulet/amuletids"
	"github.com/luxfi/amulet/clock"
	"github.com/luxfi/amulet/kconfig"
	"github.com/luxfi/amulet/kernelerrors"
	"github.com/luxfi/amulet/kruntime/identity"
	"github.com/luxfi/amulet/model"
)

func testReplica(b byte) amuletids.ReplicaID {
	var r amuletids.ReplicaID
	for i := range r {
		r[i] = b
	}
	return r
}

// TestApplyLamportOverflowHardWall reaches into the unexported localLc field
// directly (this file lives in package kernel) since driving the clock to
// MaxLamport through Apply calls alone is not practical in a unit test.
func TestApplyLamportOverflowHardWall(t *testing.T) {
	k, err := NewWithClassicCrypto[model.VecPayload](kconfig.Default(testReplica(1)), identity.New[model.VecPayload]())
	require.NoError(t, err)

	k.localLc = clock.MaxLamport

	var capID amuletids.CID
	capID[0] = 0xAA
	k.state.Capabilities[capID] = model.Capability{
		ID:       capID,
		AlgSuite: amuletids.AlgClassic,
		Rights:   amuletids.RightRead,
	}

	cmd := model.Command[model.VecPayload]{
		AlgSuite:   amuletids.AlgClassic,
		Capability: capID,
		Lclock:     clock.MaxLamport,
		Payload:    model.VecPayload("x"),
	}
	_, err = k.Apply(cmd)
	require.ErrorIs(t, err, kernelerrors.ErrLamportOverflow)
	require.Equal(t, clock.MaxLamport, k.localLc, "overflow must not advance the wedged clock further")
}
