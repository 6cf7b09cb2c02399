// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package model

import "github.com/luxfi/amulet/amuletids"

// Capability grants Holder the rights in Rights over TargetEntity. Its
// lifecycle (issuance, revocation) is an overlay concern outside this core;
// the kernel only ever reads a Capability already present in Σ.Capabilities.
type Capability struct {
	ID           amuletids.CID
	AlgSuite     amuletids.AlgSuite
	Holder       amuletids.PublicKey
	TargetEntity amuletids.CID
	Rights       amuletids.RightsMask
	Nonce        uint64
	ExpiryLc     *uint64
	Kind         uint16
	Signature    amuletids.Signature
}

// Expired reports whether the capability is expired at the given local
// Lamport clock, using a ≥ comparison against ExpiryLc.
func (c Capability) Expired(localLc uint64) bool {
	return c.ExpiryLc != nil && localLc >= *c.ExpiryLc
}
