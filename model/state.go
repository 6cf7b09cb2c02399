// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package model

import "github.com/luxfi/amulet/amuletids"

// SystemState is Σ: the authoritative tuple a kernel instance owns
// exclusively (capabilities, entities, the append-only event log).
type SystemState struct {
	Capabilities map[amuletids.CID]Capability
	Entities     map[amuletids.CID]Entity
	EventLog     []Event
}

// NewSystemState returns an empty, ready-to-use Σ.
func NewSystemState() SystemState {
	return SystemState{
		Capabilities: make(map[amuletids.CID]Capability),
		Entities:     make(map[amuletids.CID]Entity),
	}
}

// Clone returns a copy of s whose maps and event log can be changed without
// affecting s, used by the kernel to stage mutations and by tests asserting
// that a failed apply leaves Σ unchanged. Entities are deep-copied;
// capabilities and events are copied by value, so the byte slices, pointers
// and VClock maps inside them are shared with s.
func (s SystemState) Clone() SystemState {
	out := SystemState{
		Capabilities: make(map[amuletids.CID]Capability, len(s.Capabilities)),
		Entities:     make(map[amuletids.CID]Entity, len(s.Entities)),
		EventLog:     make([]Event, len(s.EventLog)),
	}
	for k, v := range s.Capabilities {
		out.Capabilities[k] = v
	}
	for k, v := range s.Entities {
		out.Entities[k] = v.Clone()
	}
	copy(out.EventLog, s.EventLog)
	return out
}
