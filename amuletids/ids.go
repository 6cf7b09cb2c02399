// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package amuletids defines the identifier and primitive types shared across
// the kernel: content identifiers, replica identifiers, algorithm-suite tags
// and rights masks.
package amuletids

import (
	"fmt"

	"github.com/luxfi/ids"
)

// CID is a 32-byte content identifier: the output of the hash function
// selected by an AlgSuite. Reusing ids.ID keeps this kernel on the same
// content-addressing type the rest of the Lux stack uses.
type CID = ids.ID

// ReplicaID is a 16-byte opaque replica identifier. This is distinct from
// ids.NodeID (20 bytes, used for network node identity elsewhere in the
// stack): a replica in this kernel is a logical single-writer owner of Σ,
// not a network participant.
type ReplicaID [16]byte

// String renders the replica id as hex.
func (r ReplicaID) String() string {
	return fmt.Sprintf("%x", [16]byte(r))
}

// PublicKey and Signature are opaque, suite-length-determined byte strings.
type (
	PublicKey []byte
	Signature []byte
)

// AlgSuite tags the cryptographic suite a command or capability was created
// under. Conversion from the wire byte is total only on the defined set.
type AlgSuite uint8

const (
	AlgClassic AlgSuite = 0
	AlgFIPS    AlgSuite = 1
	AlgPQC     AlgSuite = 2
	AlgHybrid  AlgSuite = 3
)

func (a AlgSuite) String() string {
	switch a {
	case AlgClassic:
		return "CLASSIC"
	case AlgFIPS:
		return "FIPS"
	case AlgPQC:
		return "PQC"
	case AlgHybrid:
		return "HYBRID"
	default:
		return fmt.Sprintf("AlgSuite(%d)", uint8(a))
	}
}

// ParseAlgSuite converts a wire byte into an AlgSuite. It is total only on
// the four defined tags; any other byte is a hard error.
func ParseAlgSuite(tag byte) (AlgSuite, error) {
	switch AlgSuite(tag) {
	case AlgClassic, AlgFIPS, AlgPQC, AlgHybrid:
		return AlgSuite(tag), nil
	default:
		return 0, fmt.Errorf("amuletids: unknown alg_suite tag %d", tag)
	}
}

// RightsMask is a 32-bit bitset. Bits 0-4 are frozen core rights, bits 5-15
// are reserved (preserved, not interpreted), bits 16-31 are domain overlays.
type RightsMask uint32

const (
	RightRead     RightsMask = 1 << 0
	RightWrite    RightsMask = 1 << 1
	RightDelegate RightsMask = 1 << 2
	RightIssue    RightsMask = 1 << 3
	RightRevoke   RightsMask = 1 << 4
)
