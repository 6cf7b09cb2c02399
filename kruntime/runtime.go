// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package kruntime defines the pluggable domain-runtime contract the kernel
// calls through to turn a validated Command into a StateDelta.
package kruntime

import (
	"github.com/luxfi/amulet/kernelerrors"
	"github.com/luxfi/amulet/model"
)

// Runtime executes commands against a read-only view of Σ to produce a
// StateDelta. Execute MUST be deterministic and free of side effects other
// than its return value, and MUST NOT set any entity's Header.Lclock — the
// kernel overwrites that field with the committing event's lclock.
type Runtime[P model.Payload] interface {
	Execute(state model.SystemState, cmd model.Command[P]) (model.StateDelta, error)
}

// WrapError marks err as originating from a Runtime, the shape the kernel
// surfaces as kernelerrors.RuntimeError.
func WrapError(err error) error {
	if err == nil {
		return nil
	}
	return &kernelerrors.RuntimeError{Cause: err}
}
