// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package clock

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/luxfi/amulet/amuletids"
)

// VClock maps a ReplicaID to the highest Lamport value the local replica has
// observed for it. A missing key is implicitly 0.
type VClock map[amuletids.ReplicaID]Lamport

// Order is the result of comparing two VClocks under the pointwise ≤
// partial order.
type Order int

const (
	Equal Order = iota
	Less
	Greater
	Concurrent
)

func (o Order) String() string {
	switch o {
	case Equal:
		return "Equal"
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	default:
		return "Concurrent"
	}
}

// Clone returns a deep copy of vc. A nil receiver clones to an empty,
// non-nil map so callers can always mutate the result.
func (vc VClock) Clone() VClock {
	if vc == nil {
		return VClock{}
	}
	return maps.Clone(vc)
}

// Get returns the logical time vc records for r, or 0 if absent.
func (vc VClock) Get(r amuletids.ReplicaID) Lamport {
	return vc[r]
}

// MergeInto merges other into vc in place: for each (r, t) in other,
// vc[r] = max(vc.Get(r), t). Keys present in vc but absent from other are
// retained unchanged.
func (vc VClock) MergeInto(other VClock) {
	for r, t := range other {
		if cur := vc[r]; t > cur {
			vc[r] = t
		}
	}
}

// Merge returns a new VClock equal to a merged with b, without mutating
// either argument. Used by property tests asserting commutativity and
// idempotence.
func Merge(a, b VClock) VClock {
	out := a.Clone()
	out.MergeInto(b)
	return out
}

// Compare returns the pointwise ordering of a and b across the union of
// their keys, treating a missing key as 0.
func Compare(a, b VClock) Order {
	aLessEqB, bLessEqA := true, true
	for _, r := range unionKeys(a, b) {
		av, bv := a.Get(r), b.Get(r)
		if av > bv {
			aLessEqB = false
		}
		if bv > av {
			bLessEqA = false
		}
	}
	switch {
	case aLessEqB && bLessEqA:
		return Equal
	case aLessEqB:
		return Less
	case bLessEqA:
		return Greater
	default:
		return Concurrent
	}
}

func unionKeys(a, b VClock) []amuletids.ReplicaID {
	seen := make(map[amuletids.ReplicaID]struct{}, len(a)+len(b))
	for r := range a {
		seen[r] = struct{}{}
	}
	for r := range b {
		seen[r] = struct{}{}
	}
	out := make([]amuletids.ReplicaID, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return string(out[i][:]) < string(out[j][:])
	})
	return out
}

// SortedEntries returns vc's (ReplicaID, Lamport) pairs ordered by
// ascending ReplicaID bytes, the order the kernel's event-hashing byte
// layout requires.
func SortedEntries(vc VClock) []Entry {
	out := make([]Entry, 0, len(vc))
	for r, t := range vc {
		out = append(out, Entry{Replica: r, Lamport: t})
	}
	sort.Slice(out, func(i, j int) bool {
		return string(out[i].Replica[:]) < string(out[j].Replica[:])
	})
	return out
}

// Entry is a single (replica, logical time) pair of a VClock.
type Entry struct {
	Replica amuletids.ReplicaID
	Lamport Lamport
}
