// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package klog wires the kernel's logging calls through github.com/luxfi/log
// so the kernel never reaches for fmt.Println or the stdlib log package
// directly.
package klog

import (
	"github.com/luxfi/log"
	"go.uber.org/zap"
)

// Logger is the logging surface the kernel depends on. It is satisfied by
// github.com/luxfi/log.Logger.
type Logger = log.Logger

// NoOp returns a logger that discards everything, the default when a
// kernel.Kernel is constructed without an explicit logger.
func NoOp() Logger {
	return log.NewNoOpLogger()
}

// Fields builds zap fields for the common kernel log lines (replica id,
// lclock, error). Kept as a helper so call sites stay one-liners. Pass the
// result to a ...zap.Field method such as Verbo.
func Fields(replica string, lclock uint64, err error) []zap.Field {
	fs := []zap.Field{
		zap.String("replica", replica),
		zap.Uint64("lclock", lclock),
	}
	if err != nil {
		fs = append(fs, zap.Error(err))
	}
	return fs
}

// Args converts fields to a []interface{} slice. Logger's Debug/Info/Warn/
// Error methods take ctx ...interface{}, not ...zap.Field, so a []zap.Field
// cannot be spread into them directly — Args bridges the two so the same
// Fields call can feed either family of method.
func Args(fields ...zap.Field) []interface{} {
	args := make([]interface{}, len(fields))
	for i, f := range fields {
		args[i] = f
	}
	return args
}
