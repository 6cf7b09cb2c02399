// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cryptoboundary_test

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/amulet/amuletids"
	"github.com/luxfi/amulet/cryptoboundary"
	"github.com/luxfi/amulet/cryptoboundary/classic"
	"github.com/luxfi/amulet/cryptoboundary/suite"
)

func TestClassicHashDeterministic(t *testing.T) {
	p := classic.New()
	h1, err := p.Hash([]byte("hello"), amuletids.AlgClassic)
	require.NoError(t, err)
	h2, err := p.Hash([]byte("hello"), amuletids.AlgClassic)
	require.NoError(t, err)
	require.Equal(t, h1, h2)

	h3, err := p.Hash([]byte("world"), amuletids.AlgClassic)
	require.NoError(t, err)
	require.NotEqual(t, h1, h3)
}

func TestClassicVerifyRoundTrip(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	p := classic.New()

	msg := []byte("bind this message")
	sig := ed25519.Sign(priv, msg)

	require.NoError(t, p.Verify(msg, sig, amuletids.PublicKey(pub), amuletids.AlgClassic))

	tampered := append([]byte{}, msg...)
	tampered[0] ^= 0xFF
	err = p.Verify(tampered, sig, amuletids.PublicKey(pub), amuletids.AlgClassic)
	require.Error(t, err)
	var cerr *cryptoboundary.Error
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, cryptoboundary.KindInvalidSignature, cerr.Kind)
}

func TestClassicVerifyMalformedKey(t *testing.T) {
	p := classic.New()
	err := p.Verify([]byte("msg"), make([]byte, ed25519.SignatureSize), []byte{0x01, 0x02}, amuletids.AlgClassic)
	require.Error(t, err)
	var cerr *cryptoboundary.Error
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, cryptoboundary.KindMalformedKey, cerr.Kind)
}

func TestDispatcherRoutesBySuite(t *testing.T) {
	d := cryptoboundary.NewDispatcher(classic.New(), suite.NewFIPSStub(), suite.NewPQCStub(), suite.NewHybridStub())

	_, err := d.Hash([]byte("x"), amuletids.AlgClassic)
	require.NoError(t, err)

	_, err = d.Hash([]byte("x"), amuletids.AlgFIPS)
	require.Error(t, err)
	var cerr *cryptoboundary.Error
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, cryptoboundary.KindUnsupportedSuite, cerr.Kind)
}

func TestDispatcherUnknownSuite(t *testing.T) {
	d := cryptoboundary.NewDispatcher(classic.New())
	_, err := d.Hash([]byte("x"), amuletids.AlgSuite(9))
	require.Error(t, err)
}
