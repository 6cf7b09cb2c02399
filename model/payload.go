// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package model

import "github.com/luxfi/amulet/amuletids"

// Payload is the opaque command payload protocol. The kernel
// is generic over Payload implementations via Command[P]; it never inspects
// a payload's contents beyond these three methods.
//
// Decode is intentionally not part of this interface: Go has no notion of a
// "decode into the implementing type" instance method, so each concrete
// payload type exposes its own package-level Decode/New function instead
// (see DESIGN.md's resolution of this Open Question).
type Payload interface {
	// Encode serializes the payload for storage or transmission.
	Encode() []byte

	// RequiredRights returns the rights mask a capability must satisfy to
	// authorize this payload.
	RequiredRights() amuletids.RightsMask

	// ToSignedBytes returns the deterministic byte serialization a
	// signature binds to: the command envelope fields, exactly once, in a
	// fixed order, followed by the encoded payload.
	ToSignedBytes(commandID amuletids.CID, suite amuletids.AlgSuite, replica amuletids.ReplicaID, capability amuletids.CID, lclock uint64) ([]byte, error)
}

// VecPayload is the simplest possible Payload: raw bytes with no required
// rights, useful wherever a test needs a Command without a bespoke payload
// type.
type VecPayload []byte

func (p VecPayload) Encode() []byte { return append([]byte(nil), p...) }

func (p VecPayload) RequiredRights() amuletids.RightsMask { return 0 }

func (p VecPayload) ToSignedBytes(commandID amuletids.CID, suite amuletids.AlgSuite, replica amuletids.ReplicaID, capability amuletids.CID, lclock uint64) ([]byte, error) {
	buf := make([]byte, 0, 32+1+16+32+8+len(p))
	buf = append(buf, commandID[:]...)
	buf = append(buf, byte(suite))
	buf = append(buf, replica[:]...)
	buf = append(buf, capability[:]...)
	buf = appendUint64LE(buf, lclock)
	buf = append(buf, p...)
	return buf, nil
}

// DecodeVecPayload is VecPayload's decode counterpart.
func DecodeVecPayload(data []byte) (VecPayload, error) {
	return append(VecPayload(nil), data...), nil
}

func appendUint64LE(buf []byte, v uint64) []byte {
	return append(buf,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}

// RightsPayload pairs opaque bytes with an explicit required-rights mask,
// for exercising the kernel's capability-sufficiency checks without writing
// a bespoke Payload type per test.
type RightsPayload struct {
	Data []byte
	Required amuletids.RightsMask
}

func (p RightsPayload) Encode() []byte { return append([]byte(nil), p.Data...) }

func (p RightsPayload) RequiredRights() amuletids.RightsMask { return p.Required }

func (p RightsPayload) ToSignedBytes(commandID amuletids.CID, suite amuletids.AlgSuite, replica amuletids.ReplicaID, capability amuletids.CID, lclock uint64) ([]byte, error) {
	return VecPayload(p.Data).ToSignedBytes(commandID, suite, replica, capability, lclock)
}
