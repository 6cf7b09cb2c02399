// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rights_test

import (
	"testing"

	"github.com/luxfi/amulet/amuletids"
	"github.com/luxfi/amulet/rights"
)

// FuzzSufficientMatchesCanonicalize checks Sufficient's formula against its
// definition directly for arbitrary mask pairs, catching any future
// implementation drift between the two.
func FuzzSufficientMatchesCanonicalize(f *testing.F) {
	f.Add(uint32(0), uint32(0))
	f.Add(uint32(amuletids.RightWrite), uint32(amuletids.RightRead))
	f.Add(uint32(1<<16), uint32(1<<16))

	f.Fuzz(func(t *testing.T, have, need uint32) {
		h, n := amuletids.RightsMask(have), amuletids.RightsMask(need)
		got := rights.Sufficient(h, n)
		want := rights.Canonicalize(h)&n == n
		if got != want {
			t.Fatalf("Sufficient(%#x, %#x) = %v, want %v", have, need, got, want)
		}
	})
}

// FuzzCanonicalizeIdempotent checks that canonicalizing twice never differs
// from canonicalizing once, for arbitrary masks.
func FuzzCanonicalizeIdempotent(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(amuletids.RightWrite))

	f.Fuzz(func(t *testing.T, mask uint32) {
		m := amuletids.RightsMask(mask)
		once := rights.Canonicalize(m)
		twice := rights.Canonicalize(once)
		if once != twice {
			t.Fatalf("Canonicalize not idempotent: once=%#x twice=%#x", once, twice)
		}
		if once&m != m {
			t.Fatalf("Canonicalize cleared bits: input=%#x output=%#x", m, once)
		}
	})
}
