// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package kconfig holds the kernel's construction-time parameters. There is
// no CLI or environment-variable parsing at this layer — the
// embedding process builds a Config and passes it to kernel.New.
package kconfig

import (
	"github.com/cockroachdb/errors"

	"github.com/luxfi/amulet/amuletids"
)

// Config parameterizes a kernel.Kernel instance.
type Config struct {
	// ReplicaID identifies this kernel instance among its peers.
	ReplicaID amuletids.ReplicaID

	// EnableVectorClocks only decides whether the local VClock starts as an
	// empty map (true) or nil (false). The kernel tracks the vector clock
	// and events always carry a VClock regardless of this setting.
	EnableVectorClocks bool
}

// Validate reports whether c is well-formed.
func (c Config) Validate() error {
	var zero amuletids.ReplicaID
	if c.ReplicaID == zero {
		return errors.New("kconfig: ReplicaID must be non-zero")
	}
	return nil
}

// Default returns a Config with vector clocks enabled for the given replica.
func Default(replica amuletids.ReplicaID) Config {
	return Config{ReplicaID: replica, EnableVectorClocks: true}
}
