// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package suite provides dispatch-only stand-ins for the algorithm suites
// whose concrete implementation is out of scope for this core: FIPS
// (SHA3/P-256), PQC (SHAKE-256/Dilithium), and HYBRID. Each stub
// declares the suite it stands in for so a Dispatcher can route to it, but
// every call returns UnsupportedSuite — wiring a real suite here is an
// overlay-layer concern.
package suite

import (
	"github.com/luxfi/amulet/amuletids"
	"github.com/luxfi/amulet/cryptoboundary"
)

// Stub is a cryptoboundary.Provider that declares support for one suite but
// refuses every operation.
type Stub struct {
	suite amuletids.AlgSuite
}

// NewFIPSStub returns a stub standing in for the FIPS profile.
func NewFIPSStub() *Stub { return &Stub{suite: amuletids.AlgFIPS} }

// NewPQCStub returns a stub standing in for the PQC profile.
func NewPQCStub() *Stub { return &Stub{suite: amuletids.AlgPQC} }

// NewHybridStub returns a stub standing in for the HYBRID profile.
func NewHybridStub() *Stub { return &Stub{suite: amuletids.AlgHybrid} }

func (s *Stub) Supports(suite amuletids.AlgSuite) bool { return suite == s.suite }

func (s *Stub) Hash(_ []byte, suite amuletids.AlgSuite) (amuletids.CID, error) {
	return amuletids.CID{}, &cryptoboundary.Error{Kind: cryptoboundary.KindUnsupportedSuite, Suite: suite, Msg: s.suite.String() + " provider not implemented in this core"}
}

func (s *Stub) Verify(_ []byte, _ amuletids.Signature, _ amuletids.PublicKey, suite amuletids.AlgSuite) error {
	return &cryptoboundary.Error{Kind: cryptoboundary.KindUnsupportedSuite, Suite: suite, Msg: s.suite.String() + " provider not implemented in this core"}
}
