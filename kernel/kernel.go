// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package kernel implements the deterministic replicated state-machine
// core: a single-writer Kernel that validates signed Commands against
// capability-based access control, runs them through a pluggable Runtime,
// and commits the resulting StateDelta as a content-addressed Event.
package kernel

import (
	"sync"
	"time"

	"github.com/luxfi/amulet/amuletids"
	"github.com/luxfi/amulet/clock"
	"github.com/luxfi/amulet/cryptoboundary"
	"github.com/luxfi/amulet/cryptoboundary/classic"
	"github.com/luxfi/amulet/kconfig"
	"github.com/luxfi/amulet/kernelerrors"
	"github.com/luxfi/amulet/klog"
	"github.com/luxfi/amulet/kmetrics"
	"github.com/luxfi/amulet/kruntime"
	"github.com/luxfi/amulet/model"
	"github.com/luxfi/amulet/rights"
)

// Kernel is the single-writer owner of Σ for one replica. Every exported
// method is safe for concurrent use; Apply and ProcessIncomingEvent
// serialize on an internal mutex, while Snapshot takes a point-in-time deep
// copy so readers never observe a partially-applied mutation.
type Kernel[P model.Payload] struct {
	mu sync.Mutex

	replicaID amuletids.ReplicaID
	state     model.SystemState
	localLc   clock.Lamport
	localVc   clock.VClock

	runtime kruntime.Runtime[P]
	crypto  *cryptoboundary.Dispatcher
	logger  klog.Logger
	metrics *kmetrics.Metrics
}

// Option configures optional Kernel dependencies at construction time.
type Option[P model.Payload] func(*Kernel[P])

// WithLogger overrides the default no-op logger.
func WithLogger[P model.Payload](l klog.Logger) Option[P] {
	return func(k *Kernel[P]) { k.logger = l }
}

// WithMetrics attaches a Prometheus-backed metrics sink. Without this
// option the kernel's metric calls are no-ops.
func WithMetrics[P model.Payload](m *kmetrics.Metrics) Option[P] {
	return func(k *Kernel[P]) { k.metrics = m }
}

// WithInitialState seeds Σ, e.g. when resuming a kernel from a persisted
// snapshot rather than starting empty. The caller's SystemState is cloned,
// not aliased.
func WithInitialState[P model.Payload](s model.SystemState) Option[P] {
	return func(k *Kernel[P]) { k.state = s.Clone() }
}

// New constructs a Kernel for replica cfg.ReplicaID, running rt against
// commands validated through crypto.
func New[P model.Payload](cfg kconfig.Config, rt kruntime.Runtime[P], crypto *cryptoboundary.Dispatcher, opts ...Option[P]) (*Kernel[P], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	k := &Kernel[P]{
		replicaID: cfg.ReplicaID,
		state:     model.NewSystemState(),
		runtime:   rt,
		crypto:    crypto,
		logger:    klog.NoOp(),
	}
	if cfg.EnableVectorClocks {
		k.localVc = clock.VClock{}
	}
	for _, opt := range opts {
		opt(k)
	}
	return k, nil
}

// NewWithClassicCrypto is a convenience constructor wiring a Dispatcher
// that supports only the CLASSIC suite (BLAKE3-256 + Ed25519), the
// configuration most tests and simple deployments need.
func NewWithClassicCrypto[P model.Payload](cfg kconfig.Config, rt kruntime.Runtime[P], opts ...Option[P]) (*Kernel[P], error) {
	return New(cfg, rt, cryptoboundary.NewDispatcher(classic.New()), opts...)
}

// validateCommandLocked checks cmd against Σ and the local clock, in the fixed
// order a caller can rely on for diagnosing the first failure:
//
//  1. the local Lamport clock has not saturated
//  2. the referenced capability exists
//  3. the command's alg_suite tag is one of the defined suites
//  4. the command's alg_suite matches the capability's
//  5. the capability has not expired at the local clock
//  6. the command's signature verifies against the capability's holder key
//  7. the capability grants sufficient rights for the payload
//  8. the command's lclock is not stale
//
// It takes no lock; the caller must hold k.mu. ValidateCommand and Apply
// both call it under that lock.
func (k *Kernel[P]) validateCommandLocked(cmd model.Command[P]) (model.Capability, error) {
	if k.localLc >= clock.MaxLamport {
		k.metrics.ObserveLamportOverflow()
		return model.Capability{}, kernelerrors.ErrLamportOverflow
	}

	capability, ok := k.state.Capabilities[cmd.Capability]
	if !ok {
		return model.Capability{}, kernelerrors.ErrCapabilityNotFound
	}

	suite, err := amuletids.ParseAlgSuite(byte(cmd.AlgSuite))
	if err != nil {
		return model.Capability{}, kernelerrors.Wrap(kernelerrors.ErrUnsupportedSuite, err.Error())
	}

	if suite != capability.AlgSuite {
		return model.Capability{}, kernelerrors.ErrAlgorithmSuiteMismatch
	}

	if capability.Expired(k.localLc) {
		return model.Capability{}, kernelerrors.ErrCapabilityExpired
	}

	signedBytes, err := cmd.Payload.ToSignedBytes(cmd.ID, cmd.AlgSuite, cmd.Replica, cmd.Capability, cmd.Lclock)
	if err != nil {
		return model.Capability{}, &kernelerrors.CryptoError{Cause: err}
	}
	if err := k.crypto.Verify(signedBytes, cmd.Signature, capability.Holder, suite); err != nil {
		return model.Capability{}, &kernelerrors.CryptoError{Cause: err}
	}

	if !rights.Sufficient(capability.Rights, cmd.Payload.RequiredRights()) {
		return model.Capability{}, kernelerrors.ErrInsufficientRights
	}

	if cmd.Lclock < k.localLc {
		return model.Capability{}, kernelerrors.ErrInvalidCommandLClock
	}

	return capability, nil
}

// ValidateCommand runs the same checks Apply performs before committing,
// without mutating Σ or the clocks. It exists for callers (e.g. a mempool
// admission check) that want to reject an invalid command early.
func (k *Kernel[P]) ValidateCommand(cmd model.Command[P]) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	_, err := k.validateCommandLocked(cmd)
	return err
}

// Apply validates cmd, executes it through the configured Runtime, and
// commits the resulting StateDelta as a new Event. On any error Σ and both
// clocks are left byte-identical to their pre-call state: Apply stages
// every mutation against a clone and only installs it after every
// invariant check has passed.
func (k *Kernel[P]) Apply(cmd model.Command[P]) (model.Event, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	start := time.Now()
	observeErr := func() { k.metrics.ObserveApplyError(time.Since(start).Seconds()) }
	warnRejected := func(err error) {
		k.logger.Warn("rejected command", klog.Args(klog.Fields(k.replicaID.String(), cmd.Lclock, err)...)...)
	}

	if _, err := k.validateCommandLocked(cmd); err != nil {
		observeErr()
		warnRejected(err)
		return model.Event{}, err
	}

	lclockNew := clock.Advance(k.localLc, cmd.Lclock)

	delta, err := k.runtime.Execute(k.state, cmd)
	if err != nil {
		observeErr()
		err = kruntime.WrapError(err)
		warnRejected(err)
		return model.Event{}, err
	}

	stampLclock(delta.NewEntities, lclockNew)
	stampLclock(delta.UpdatedEntities, lclockNew)

	staged := k.state.Clone()
	if err := AppendDelta(&staged, delta, lclockNew); err != nil {
		observeErr()
		if iv, ok := err.(*kernelerrors.InvariantViolation); ok {
			k.metrics.ObserveInvariantViolation(iv.Tag)
		}
		warnRejected(err)
		return model.Event{}, err
	}

	newVc := k.localVc.Clone()
	if cmd.VClock != nil {
		newVc = clock.Merge(newVc, cmd.VClock)
	}
	newVc[k.replicaID] = lclockNew

	suite, _ := amuletids.ParseAlgSuite(byte(cmd.AlgSuite))
	eventID, err := k.crypto.Hash(eventPreimage(eventHashInput{
		commandID:       cmd.ID,
		lclockNew:       lclockNew,
		replica:         k.replicaID,
		suite:           suite,
		newEntities:     entityIDs(delta.NewEntities),
		updatedEntities: entityIDs(delta.UpdatedEntities),
		vclock:          newVc,
	}), suite)
	if err != nil {
		observeErr()
		err = &kernelerrors.CryptoError{Cause: err}
		warnRejected(err)
		return model.Event{}, err
	}

	event := model.Event{
		ID:              eventID,
		AlgSuite:        suite,
		Replica:         k.replicaID,
		CausedBy:        cmd.ID,
		Lclock:          lclockNew,
		VClock:          newVc,
		NewEntities:     entityIDs(delta.NewEntities),
		UpdatedEntities: entityIDs(delta.UpdatedEntities),
	}
	staged.EventLog = append(staged.EventLog, event)

	k.state = staged
	k.localLc = lclockNew
	k.localVc = newVc

	k.logger.Verbo("applied command", klog.Fields(k.replicaID.String(), lclockNew, nil)...)
	k.metrics.ObserveApplyOK(time.Since(start).Seconds())
	return event, nil
}

// ProcessIncomingEvent absorbs a foreign Event's clock information without
// touching Σ or re-validating signatures: local_lc advances to max(local_lc,
// e.Lclock) and local_vc merges e.VClock pointwise. This is the ingest path
// for a replica that is not the event's originator.
func (k *Kernel[P]) ProcessIncomingEvent(e model.Event) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.localLc = clock.MergeIncoming(k.localLc, e.Lclock)
	if k.localVc == nil {
		k.localVc = clock.VClock{}
	}
	k.localVc = clock.Merge(k.localVc, e.VClock)

	k.logger.Debug("processed incoming event", klog.Args(klog.Fields(e.Replica.String(), e.Lclock, nil)...)...)
}

// Snapshot returns a copy of Σ (see model.SystemState.Clone) that further
// Apply calls do not modify, safe for a reader to inspect concurrently.
func (k *Kernel[P]) Snapshot() model.SystemState {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.state.Clone()
}

// LocalLamport returns the replica's current local Lamport value.
func (k *Kernel[P]) LocalLamport() clock.Lamport {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.localLc
}

// LocalVClock returns a copy of the replica's current local vector clock.
func (k *Kernel[P]) LocalVClock() clock.VClock {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.localVc.Clone()
}

func stampLclock(entities []model.Entity, lclockNew uint64) {
	for i := range entities {
		entities[i].Header.Lclock = lclockNew
	}
}

func entityIDs(entities []model.Entity) []amuletids.CID {
	ids := make([]amuletids.CID, len(entities))
	for i, e := range entities {
		ids[i] = e.Header.ID
	}
	return ids
}
