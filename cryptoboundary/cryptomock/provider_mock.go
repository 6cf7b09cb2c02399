// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cryptomock provides a gomock-based mock of cryptoboundary.Provider,
// for Dispatcher tests that need to assert routing behavior (which provider
// got called, how many times) without a real hash or signature scheme.
package cryptomock

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/luxfi/amulet/amuletids"
)

// Provider is a mock of cryptoboundary.Provider.
type Provider struct {
	ctrl     *gomock.Controller
	recorder *ProviderMockRecorder
}

// ProviderMockRecorder records expected calls on a Provider mock.
type ProviderMockRecorder struct {
	mock *Provider
}

// New returns a Provider mock controlled by ctrl.
func New(ctrl *gomock.Controller) *Provider {
	m := &Provider{ctrl: ctrl}
	m.recorder = &ProviderMockRecorder{mock: m}
	return m
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *Provider) EXPECT() *ProviderMockRecorder {
	return m.recorder
}

// Supports implements cryptoboundary.Provider.
func (m *Provider) Supports(suite amuletids.AlgSuite) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Supports", suite)
	ok, _ := ret[0].(bool)
	return ok
}

// Supports indicates an expected call of Supports.
func (mr *ProviderMockRecorder) Supports(suite interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Supports", reflect.TypeOf((*Provider)(nil).Supports), suite)
}

// Hash implements cryptoboundary.Provider.
func (m *Provider) Hash(data []byte, suite amuletids.AlgSuite) (amuletids.CID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Hash", data, suite)
	cid, _ := ret[0].(amuletids.CID)
	err, _ := ret[1].(error)
	return cid, err
}

// Hash indicates an expected call of Hash.
func (mr *ProviderMockRecorder) Hash(data, suite interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Hash", reflect.TypeOf((*Provider)(nil).Hash), data, suite)
}

// Verify implements cryptoboundary.Provider.
func (m *Provider) Verify(data []byte, sig amuletids.Signature, pub amuletids.PublicKey, suite amuletids.AlgSuite) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Verify", data, sig, pub, suite)
	err, _ := ret[0].(error)
	return err
}

// Verify indicates an expected call of Verify.
func (mr *ProviderMockRecorder) Verify(data, sig, pub, suite interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*Provider)(nil).Verify), data, sig, pub, suite)
}
