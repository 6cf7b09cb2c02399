// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package classic implements the CLASSIC algorithm-suite profile: BLAKE3-256
// hashing and Ed25519 signature verification, the one concrete "best-effort
// security" profile this core ships with.
package classic

import (
	"crypto/ed25519"

	"filippo.io/edwards25519"
	"github.com/zeebo/blake3"

	"github.com/luxfi/amulet/amuletids"
	"github.com/luxfi/amulet/cryptoboundary"
)

// Provider implements cryptoboundary.Provider for AlgClassic only.
type Provider struct{}

// New returns a CLASSIC provider.
func New() *Provider { return &Provider{} }

// Supports reports true only for AlgClassic.
func (Provider) Supports(suite amuletids.AlgSuite) bool {
	return suite == amuletids.AlgClassic
}

// Hash returns the BLAKE3-256 digest of data.
func (Provider) Hash(data []byte, suite amuletids.AlgSuite) (amuletids.CID, error) {
	if suite != amuletids.AlgClassic {
		return amuletids.CID{}, &cryptoboundary.Error{Kind: cryptoboundary.KindUnsupportedSuite, Suite: suite}
	}
	return blake3.Sum256(data), nil
}

// Verify checks an Ed25519 signature. Before delegating to ed25519.Verify it
// decodes the public key as an edwards25519 curve point so that a key that
// does not decode to a point on the curve is reported as MalformedKey,
// distinctly from a signature that simply fails to verify.
func (Provider) Verify(data []byte, sig amuletids.Signature, pub amuletids.PublicKey, suite amuletids.AlgSuite) error {
	if suite != amuletids.AlgClassic {
		return &cryptoboundary.Error{Kind: cryptoboundary.KindUnsupportedSuite, Suite: suite}
	}
	if len(pub) != ed25519.PublicKeySize {
		return &cryptoboundary.Error{Kind: cryptoboundary.KindMalformedKey, Suite: suite, Msg: "wrong public key length"}
	}
	if _, err := new(edwards25519.Point).SetBytes(pub); err != nil {
		return &cryptoboundary.Error{Kind: cryptoboundary.KindMalformedKey, Suite: suite, Msg: err.Error()}
	}
	if len(sig) != ed25519.SignatureSize {
		return &cryptoboundary.Error{Kind: cryptoboundary.KindMalformedSignature, Suite: suite, Msg: "wrong signature length"}
	}
	if !ed25519.Verify(ed25519.PublicKey(pub), data, sig) {
		return &cryptoboundary.Error{Kind: cryptoboundary.KindInvalidSignature, Suite: suite}
	}
	return nil
}
