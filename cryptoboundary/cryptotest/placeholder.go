// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cryptotest provides a crypto provider for kernel tests and
// fixtures that need deterministic hashing without managing genuine
// keypairs for every signed command: real hashing for CID-determinism
// assertions, but an always-accepting Verify.
package cryptotest

import (
	"github.com/zeebo/blake3"

	"github.com/luxfi/amulet/amuletids"
)

// AcceptAllProvider hashes for real (so CID derivation tests are
// meaningful) but accepts every signature, letting tests construct
// Commands without managing real Ed25519 keypairs. It must never be wired
// into a production Dispatcher.
type AcceptAllProvider struct {
	suite amuletids.AlgSuite
}

// New returns an AcceptAllProvider that answers for the given suite.
func New(suite amuletids.AlgSuite) *AcceptAllProvider {
	return &AcceptAllProvider{suite: suite}
}

func (p *AcceptAllProvider) Supports(suite amuletids.AlgSuite) bool { return suite == p.suite }

func (p *AcceptAllProvider) Hash(data []byte, _ amuletids.AlgSuite) (amuletids.CID, error) {
	return blake3.Sum256(data), nil
}

func (p *AcceptAllProvider) Verify(_ []byte, _ amuletids.Signature, _ amuletids.PublicKey, _ amuletids.AlgSuite) error {
	return nil
}
