// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cryptoboundary defines the hash/verify contract the kernel calls
// through, and dispatches by algorithm suite to a concrete Provider. Concrete
// suite implementations beyond CLASSIC (FIPS, PQC, HYBRID) are out of scope
// for this core and exist here only as dispatch targets.
package cryptoboundary

import (
	"github.com/luxfi/amulet/amuletids"
)

// ErrorKind classifies a crypto-boundary failure.
type ErrorKind uint8

const (
	KindInvalidSignature ErrorKind = iota
	KindUnsupportedSuite
	KindMalformedKey
	KindMalformedSignature
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidSignature:
		return "InvalidSignature"
	case KindUnsupportedSuite:
		return "UnsupportedSuite"
	case KindMalformedKey:
		return "MalformedKey"
	case KindMalformedSignature:
		return "MalformedSignature"
	default:
		return "Other"
	}
}

// Error is the error type returned by Hash and Verify.
type Error struct {
	Kind  ErrorKind
	Suite amuletids.AlgSuite
	Msg   string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Kind.String() + ": " + e.Msg
	}
	return e.Kind.String()
}

// Provider implements hashing and signature verification for exactly the
// suites it declares support for (Supports).
type Provider interface {
	Supports(suite amuletids.AlgSuite) bool
	Hash(data []byte, suite amuletids.AlgSuite) (amuletids.CID, error)
	Verify(data []byte, sig amuletids.Signature, pub amuletids.PublicKey, suite amuletids.AlgSuite) error
}

// Dispatcher routes a call to the Provider registered for its suite tag.
type Dispatcher struct {
	providers map[amuletids.AlgSuite]Provider
}

// NewDispatcher builds a Dispatcher from a set of providers. If more than
// one provider declares support for the same suite, the last one registered
// wins — callers should register at most one provider per suite.
func NewDispatcher(providers ...Provider) *Dispatcher {
	d := &Dispatcher{providers: make(map[amuletids.AlgSuite]Provider)}
	for _, p := range providers {
		for _, s := range []amuletids.AlgSuite{amuletids.AlgClassic, amuletids.AlgFIPS, amuletids.AlgPQC, amuletids.AlgHybrid} {
			if p.Supports(s) {
				d.providers[s] = p
			}
		}
	}
	return d
}

func (d *Dispatcher) resolve(suite amuletids.AlgSuite) (Provider, error) {
	p, ok := d.providers[suite]
	if !ok {
		return nil, &Error{Kind: KindUnsupportedSuite, Suite: suite, Msg: "no provider registered for suite"}
	}
	return p, nil
}

// Hash dispatches to the provider registered for suite.
func (d *Dispatcher) Hash(data []byte, suite amuletids.AlgSuite) (amuletids.CID, error) {
	p, err := d.resolve(suite)
	if err != nil {
		return amuletids.CID{}, err
	}
	return p.Hash(data, suite)
}

// Verify dispatches to the provider registered for suite.
func (d *Dispatcher) Verify(data []byte, sig amuletids.Signature, pub amuletids.PublicKey, suite amuletids.AlgSuite) error {
	p, err := d.resolve(suite)
	if err != nil {
		return err
	}
	return p.Verify(data, sig, pub, suite)
}
