// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package model

import (
	"github.com/luxfi/amulet/amuletids"
	"github.com/luxfi/amulet/clock"
)

// Event is the committed, content-addressed outcome of a Command. Its ID is
// derived deterministically from its fields by the kernel's event-hashing
// byte layout. VClock is always present, unlike Command's
// optional one. Reserved is the bit-exact forward-compatibility region:
// relayers must copy it verbatim even when they assign it no meaning.
type Event struct {
	ID              amuletids.CID
	AlgSuite        amuletids.AlgSuite
	Replica         amuletids.ReplicaID
	CausedBy        amuletids.CID
	Lclock          uint64
	VClock          clock.VClock
	NewEntities     []amuletids.CID
	UpdatedEntities []amuletids.CID
	Reserved        []byte
}

// StateDelta is the pair of entity sequences a Runtime produces for a
// Command. The kernel overwrites every entity's Header.Lclock to the
// committing event's lclock before appending the delta to Σ; a Runtime
// must never set it itself.
type StateDelta struct {
	NewEntities     []Entity
	UpdatedEntities []Entity
}
