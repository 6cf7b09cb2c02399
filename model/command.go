// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package model

import (
	"github.com/luxfi/amulet/amuletids"
	"github.com/luxfi/amulet/clock"
)

// Command is a signed envelope requesting a state change, referencing a
// Capability by CID. P is opaque to the kernel beyond the Payload protocol.
// The command's VClock is optional (nil means "no causal context carried");
// Events, unlike Commands, always carry one.
type Command[P Payload] struct {
	ID         amuletids.CID
	AlgSuite   amuletids.AlgSuite
	Replica    amuletids.ReplicaID
	Capability amuletids.CID
	Lclock     uint64
	VClock     clock.VClock
	Payload    P
	Signature  amuletids.Signature
}
