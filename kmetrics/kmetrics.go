// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package kmetrics exposes the kernel's Prometheus collectors, registered
// through a caller-supplied prometheus.Registerer so the kernel composes
// into any existing metrics registry.
package kmetrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the kernel's counters and histograms. A nil *Metrics is
// valid and every method on it is a no-op, so wiring metrics into a
// kernel.Kernel stays optional.
type Metrics struct {
	ApplyTotal              *prometheus.CounterVec
	ApplyDurationSeconds    prometheus.Histogram
	InvariantViolationTotal *prometheus.CounterVec
	LamportOverflowTotal    prometheus.Counter
}

// New builds and registers the kernel's collectors against reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ApplyTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "amulet_kernel_apply_total",
			Help: "Total number of Apply calls by outcome.",
		}, []string{"outcome"}),
		ApplyDurationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "amulet_kernel_apply_duration_seconds",
			Help:    "Apply call latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		InvariantViolationTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "amulet_kernel_invariant_violations_total",
			Help: "Total number of invariant violations raised by append_delta, by tag.",
		}, []string{"tag"}),
		LamportOverflowTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "amulet_kernel_lamport_overflow_total",
			Help: "Total number of Apply calls rejected due to Lamport clock overflow.",
		}),
	}
	for _, c := range []prometheus.Collector{m.ApplyTotal, m.ApplyDurationSeconds, m.InvariantViolationTotal, m.LamportOverflowTotal} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeApply(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.ApplyTotal.WithLabelValues(outcome).Inc()
	m.ApplyDurationSeconds.Observe(seconds)
}

// ObserveApplyOK records a successful Apply call.
func (m *Metrics) ObserveApplyOK(seconds float64) { m.observeApply("ok", seconds) }

// ObserveApplyError records a failed Apply call.
func (m *Metrics) ObserveApplyError(seconds float64) { m.observeApply("error", seconds) }

// ObserveInvariantViolation increments the per-tag invariant violation counter.
func (m *Metrics) ObserveInvariantViolation(tag string) {
	if m == nil {
		return
	}
	m.InvariantViolationTotal.WithLabelValues(tag).Inc()
}

// ObserveLamportOverflow increments the overflow counter.
func (m *Metrics) ObserveLamportOverflow() {
	if m == nil {
		return
	}
	m.LamportOverflowTotal.Inc()
}
