// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package kruntimemock provides a gomock-based mock of kruntime.Runtime for
// the ledger payload, for tests that need to assert exactly how and how
// often the kernel calls through to a Runtime rather than exercising a real
// one end to end.
package kruntimemock

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/luxfi/amulet/kruntime/ledger"
	"github.com/luxfi/amulet/model"
)

// Runtime is a mock of kruntime.Runtime[ledger.Payload].
type Runtime struct {
	ctrl     *gomock.Controller
	recorder *RuntimeMockRecorder
}

// RuntimeMockRecorder records expected calls on a Runtime mock.
type RuntimeMockRecorder struct {
	mock *Runtime
}

// New returns a Runtime mock controlled by ctrl.
func New(ctrl *gomock.Controller) *Runtime {
	m := &Runtime{ctrl: ctrl}
	m.recorder = &RuntimeMockRecorder{mock: m}
	return m
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *Runtime) EXPECT() *RuntimeMockRecorder {
	return m.recorder
}

// Execute implements kruntime.Runtime[ledger.Payload].
func (m *Runtime) Execute(state model.SystemState, cmd model.Command[ledger.Payload]) (model.StateDelta, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Execute", state, cmd)
	delta, _ := ret[0].(model.StateDelta)
	err, _ := ret[1].(error)
	return delta, err
}

// Execute indicates an expected call of Execute.
func (mr *RuntimeMockRecorder) Execute(state, cmd interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Execute", reflect.TypeOf((*Runtime)(nil).Execute), state, cmd)
}
