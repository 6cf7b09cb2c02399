// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package clock implements the logical clocks the kernel stamps events with:
// a per-replica Lamport scalar and a vector clock aggregating per-replica
// Lamport scalars across replicas.
package clock

import "math"

// Lamport is an unsigned 64-bit monotonic counter.
type Lamport = uint64

// MaxLamport is the saturation point past which a replica is wedged and can
// no longer accept commands.
const MaxLamport Lamport = math.MaxUint64

// Advance computes the next local Lamport value given a proposed (command
// carried) value: new = max(proposed, local+1). Callers must first check
// local < MaxLamport; Advance does not itself guard overflow
// so that it stays a pure arithmetic helper.
func Advance(local, proposed Lamport) Lamport {
	next := local + 1
	if proposed > next {
		return proposed
	}
	return next
}

// MergeIncoming computes the Lamport value after observing a foreign
// timestamp: new = max(local, incoming).
func MergeIncoming(local, incoming Lamport) Lamport {
	if incoming > local {
		return incoming
	}
	return local
}
