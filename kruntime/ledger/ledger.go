// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ledger implements one illustrative non-trivial Runtime: an
// append-only balance ledger keyed by entity CID. It exists to exercise the
// kernel against a runtime that actually creates and updates entities,
// the kind a synthetic identity runtime can't exercise on its own.
package ledger

import (
	"encoding/binary"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/luxfi/amulet/amuletids"
	"github.com/luxfi/amulet/model"
)

// Op identifies a ledger operation.
type Op uint8

const (
	// OpMint creates a new balance entity at Target with the given Amount.
	// Target must not already exist.
	OpMint Op = iota
	// OpAdjust applies a signed delta to an existing balance entity at
	// Target. The resulting balance must not go negative.
	OpAdjust
)

// ErrAlreadyExists is returned when OpMint targets an existing entity.
var ErrAlreadyExists = errors.New("ledger: target entity already exists")

// ErrNotFound is returned when OpAdjust targets a missing entity.
var ErrNotFound = errors.New("ledger: target entity not found")

// ErrNegativeBalance is returned when OpAdjust would drive the balance below zero.
var ErrNegativeBalance = errors.New("ledger: adjustment would drive balance negative")

// Payload is the ledger runtime's Payload implementation.
type Payload struct {
	Op     Op
	Target amuletids.CID
	Amount int64
}

func (p Payload) Encode() []byte {
	buf := make([]byte, 1+32+8)
	buf[0] = byte(p.Op)
	copy(buf[1:33], p.Target[:])
	binary.LittleEndian.PutUint64(buf[33:41], uint64(p.Amount))
	return buf
}

// RequiredRights is WRITE for both mint and adjust: this core's rights
// algebra doesn't distinguish "create" from "mutate" beyond READ/WRITE; a
// richer domain overlay could add an ISSUE requirement for OpMint.
func (p Payload) RequiredRights() amuletids.RightsMask {
	return amuletids.RightWrite
}

func (p Payload) ToSignedBytes(commandID amuletids.CID, suite amuletids.AlgSuite, replica amuletids.ReplicaID, capability amuletids.CID, lclock uint64) ([]byte, error) {
	buf := make([]byte, 0, 32+1+16+32+8+len(p.Encode()))
	buf = append(buf, commandID[:]...)
	buf = append(buf, byte(suite))
	buf = append(buf, replica[:]...)
	buf = append(buf, capability[:]...)
	lb := make([]byte, 8)
	binary.LittleEndian.PutUint64(lb, lclock)
	buf = append(buf, lb...)
	buf = append(buf, p.Encode()...)
	return buf, nil
}

// DecodePayload reverses Payload.Encode.
func DecodePayload(data []byte) (Payload, error) {
	if len(data) != 41 {
		return Payload{}, fmt.Errorf("ledger: payload must be 41 bytes, got %d", len(data))
	}
	var target amuletids.CID
	copy(target[:], data[1:33])
	return Payload{
		Op:     Op(data[0]),
		Target: target,
		Amount: int64(binary.LittleEndian.Uint64(data[33:41])),
	}, nil
}

func balanceOf(body []byte) int64 {
	if len(body) != 8 {
		return 0
	}
	return int64(binary.LittleEndian.Uint64(body))
}

func encodeBalance(balance int64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(balance))
	return buf
}

// Runtime executes Payload against Σ. It never sets Header.Lclock (the
// kernel overwrites it) and never mutates the SystemState it is given.
type Runtime struct{}

// New returns a ledger Runtime.
func New() Runtime { return Runtime{} }

func (Runtime) Execute(state model.SystemState, cmd model.Command[Payload]) (model.StateDelta, error) {
	p := cmd.Payload
	existing, found := state.Entities[p.Target]

	switch p.Op {
	case OpMint:
		if found {
			return model.StateDelta{}, ErrAlreadyExists
		}
		return model.StateDelta{
			NewEntities: []model.Entity{{
				Header: model.EntityHeader{ID: p.Target, Version: 1},
				Body: encodeBalance(p.Amount),
			}},
		}, nil

	case OpAdjust:
		if !found {
			return model.StateDelta{}, ErrNotFound
		}
		next := balanceOf(existing.Body) + p.Amount
		if next < 0 {
			return model.StateDelta{}, ErrNegativeBalance
		}
		return model.StateDelta{
			UpdatedEntities: []model.Entity{{
				Header: model.EntityHeader{
					ID: p.Target,
					Version: existing.Header.Version + 1,
					Parent: &existing.Header.ID,
				},
				Body: encodeBalance(next),
			}},
		}, nil

	default:
		return model.StateDelta{}, fmt.Errorf("ledger: unknown op %d", p.Op)
	}
}

// Balance decodes the current balance stored in an entity's body. Returns 0
// for an empty or malformed body.
func Balance(e model.Entity) int64 { return balanceOf(e.Body) }
