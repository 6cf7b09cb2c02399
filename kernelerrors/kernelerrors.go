// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package kernelerrors defines the kernel's error taxonomy.
// Sentinels are matched with errors.Is; the structured variants carry extra
// context and are matched with errors.As. The sentinels are created with
// github.com/cockroachdb/errors; the kernel package returns sentinels and
// structured variants directly, and uses Wrap (which keeps errors.Is/As
// working) only where it adds a message, as for an unknown alg_suite tag.
package kernelerrors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinels for the validation-error kinds that carry no extra context.
var (
	ErrCapabilityNotFound     = errors.New("kernel: capability not found")
	ErrAlgorithmSuiteMismatch = errors.New("kernel: command alg_suite does not match capability alg_suite")
	ErrUnsupportedSuite       = errors.New("kernel: unsupported or unknown alg_suite tag")
	ErrInsufficientRights     = errors.New("kernel: capability does not grant sufficient rights")
	ErrInvalidCommandLClock   = errors.New("kernel: command lclock is less than local lclock")
	ErrCapabilityExpired      = errors.New("kernel: capability has expired")
	ErrLamportOverflow        = errors.New("kernel: local lamport clock has saturated at max value")
)

// InvariantViolation reports which state invariant a runtime-produced delta
// broke, with a short human-readable Tag identifying it (e.g.
// "new-entity-uniqueness", "version-monotonicity").
type InvariantViolation struct {
	Tag     string
	Detail  string
	wrapped error
}

func NewInvariantViolation(tag, detail string) *InvariantViolation {
	return &InvariantViolation{Tag: tag, Detail: detail}
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("kernel: invariant violation [%s]: %s", e.Tag, e.Detail)
}

func (e *InvariantViolation) Unwrap() error { return e.wrapped }

// RuntimeError wraps an error surfaced by a Runtime.Execute call.
type RuntimeError struct {
	Cause error
}

func (e *RuntimeError) Error() string { return "kernel: runtime error: " + e.Cause.Error() }
func (e *RuntimeError) Unwrap() error { return e.Cause }

// CryptoError wraps an error surfaced while Apply builds a command's signed
// bytes, verifies its signature, or hashes the event it commits.
type CryptoError struct {
	Cause error
}

func (e *CryptoError) Error() string { return "kernel: crypto error: " + e.Cause.Error() }
func (e *CryptoError) Unwrap() error { return e.Cause }

// Wrap attaches msg and a stack trace to err via cockroachdb/errors, keeping
// errors.Is/As working against any sentinel or typed error wrapped inside.
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}
