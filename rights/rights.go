// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rights implements the rights algebra: canonicalization of implied
// rights and the sufficiency check a capability's mask must pass against a
// command payload's required mask.
package rights

import "github.com/luxfi/amulet/amuletids"

// implications is the fixed table of core-bit implications. WRITE implies
// READ; extend this table, not canonicalize's body, when new core rights
// gain implied sub-rights.
var implications = []struct {
	bit     amuletids.RightsMask
	implies amuletids.RightsMask
}{
	{amuletids.RightWrite, amuletids.RightRead},
}

// Canonicalize adds every implied right to mask. It is idempotent and
// monotone: applying it twice yields the same result as applying it once,
// and it never clears a bit.
func Canonicalize(mask amuletids.RightsMask) amuletids.RightsMask {
	m := mask
	for _, rule := range implications {
		if m&rule.bit == rule.bit {
			m |= rule.implies
		}
	}
	return m
}

// Sufficient reports whether have, once canonicalized, grants every bit set
// in need. Extension bits (16-31) participate literally and are never
// implied by core bits.
func Sufficient(have, need amuletids.RightsMask) bool {
	return Canonicalize(have)&need == need
}
