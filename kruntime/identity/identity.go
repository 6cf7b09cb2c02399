// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package identity provides the trivial runtime this core keeps in scope:
// one that always returns an empty StateDelta.
package identity

import "github.com/luxfi/amulet/model"

// Runtime always returns an empty StateDelta, creating or updating nothing.
// It is the default runtime for kernels whose commands only need clock
// advancement and event logging (e.g. heartbeats, attestations).
type Runtime[P model.Payload] struct{}

// New returns an identity Runtime for payload type P.
func New[P model.Payload]() Runtime[P] { return Runtime[P]{} }

func (Runtime[P]) Execute(_ model.SystemState, _ model.Command[P]) (model.StateDelta, error) {
	return model.StateDelta{}, nil
}
