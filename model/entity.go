// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package model defines the kernel's data model: entities, capabilities,
// commands, events, state deltas, and the system state Σ.
package model

import "github.com/luxfi/amulet/amuletids"

// EntityHeader carries an entity's identity and versioning metadata. ID is
// stable across versions; Version increases by exactly one per update;
// Lclock is overwritten by the kernel to the committing event's lclock and
// must never be set by a runtime.
type EntityHeader struct {
	ID amuletids.CID
	Version uint64
	Lclock uint64
	Parent *amuletids.CID
}

// Entity is a versioned piece of domain state with an opaque body.
type Entity struct {
	Header EntityHeader
	Body []byte
}

// Clone returns a deep copy of e.
func (e Entity) Clone() Entity {
	out := e
	out.Body = append([]byte(nil), e.Body...)
	if e.Header.Parent != nil {
		p := *e.Header.Parent
		out.Header.Parent = &p
	}
	return out
}
