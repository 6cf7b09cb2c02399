// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kernel

import (
	"encoding/binary"
	"sort"

	"github.com/luxfi/amulet/amuletids"
	"github.com/luxfi/amulet/clock"
)

// eventHashInput carries every field that feeds the deterministic event CID
// byte layout. It exists separately from model.Event so the hash function
// takes exactly the fields it is defined over, nothing more.
type eventHashInput struct {
	commandID       amuletids.CID
	lclockNew       uint64
	replica         amuletids.ReplicaID
	suite           amuletids.AlgSuite
	newEntities     []amuletids.CID
	updatedEntities []amuletids.CID
	vclock          clock.VClock
	reserved        []byte
}

// eventPreimage assembles the exact byte layout a CLASSIC hash binds an
// event's identity to:
//
//	command.id            (32 bytes)
//	lclock_new            (8 bytes, little-endian)
//	replica_id            (16 bytes)
//	alg_suite             (1 byte)
//	new entity CIDs       (sorted, concatenated, 32 bytes each)
//	updated entity CIDs   (sorted, concatenated, 32 bytes each)
//	vclock section        (presence byte + sorted replica/lamport pairs)
//	reserved section      (4-byte little-endian length + raw bytes)
//
// Every producer of an event CID — the kernel committing a new event, or a
// relayer re-deriving one to check it — must assemble these bytes in
// exactly this order for the hash to be reproducible across replicas.
func eventPreimage(in eventHashInput) []byte {
	buf := make([]byte, 0, 32+8+16+1+32*len(in.newEntities)+32*len(in.updatedEntities)+64)
	buf = appendEventIdentity(buf, in.commandID, in.lclockNew, in.replica, in.suite)
	buf = appendCIDs(buf, in.newEntities)
	buf = appendCIDs(buf, in.updatedEntities)
	buf = appendVClock(buf, in.vclock)
	buf = appendReserved(buf, in.reserved)
	return buf
}

func appendEventIdentity(buf []byte, commandID amuletids.CID, lclockNew uint64, replica amuletids.ReplicaID, suite amuletids.AlgSuite) []byte {
	buf = append(buf, commandID[:]...)
	var lb [8]byte
	binary.LittleEndian.PutUint64(lb[:], lclockNew)
	buf = append(buf, lb[:]...)
	buf = append(buf, replica[:]...)
	buf = append(buf, byte(suite))
	return buf
}

// appendCIDs sorts cids lexicographically by raw bytes before concatenating
// them, so the byte layout is independent of the order a Runtime happened
// to list entities in.
func appendCIDs(buf []byte, cids []amuletids.CID) []byte {
	sorted := append([]amuletids.CID(nil), cids...)
	sort.Slice(sorted, func(i, j int) bool {
		return string(sorted[i][:]) < string(sorted[j][:])
	})
	for _, c := range sorted {
		buf = append(buf, c[:]...)
	}
	return buf
}

// appendVClock writes a presence marker followed by the vector clock's
// entries sorted by replica id, each as 16 bytes of ReplicaID followed by 8
// bytes of little-endian Lamport value. A nil or empty VClock still writes
// the marker, with zero entries following.
func appendVClock(buf []byte, vc clock.VClock) []byte {
	buf = append(buf, 0x01)
	for _, e := range clock.SortedEntries(vc) {
		buf = append(buf, e.Replica[:]...)
		var lb [8]byte
		binary.LittleEndian.PutUint64(lb[:], e.Lamport)
		buf = append(buf, lb[:]...)
	}
	return buf
}

// appendReserved writes a 4-byte little-endian length prefix followed by
// the raw reserved bytes. A newly minted event carries no reserved payload
// (length 0); a relayer forwarding one it didn't originate must copy this
// region's bytes verbatim to keep the hash reproducible.
func appendReserved(buf []byte, reserved []byte) []byte {
	var lb [4]byte
	binary.LittleEndian.PutUint32(lb[:], uint32(len(reserved)))
	buf = append(buf, lb[:]...)
	buf = append(buf, reserved...)
	return buf
}
