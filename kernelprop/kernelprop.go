// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package kernelprop collects the kernel's core invariants as standalone,
// reusable predicates, so tests and fuzz targets can share the same checks
// instead of re-deriving them. The kernel's fuzz targets use them.
package kernelprop

import (
	"fmt"

	"github.com/luxfi/amulet/amuletids"
	"github.com/luxfi/amulet/model"
)

// CheckApplyInvariants asserts the properties that must hold of every
// successful Apply call, given the kernel's local Lamport value before the
// call, the command's lclock, Σ immediately after the call (post), and the
// committed Event. It returns the first violated invariant as an error, or
// nil if all hold.
func CheckApplyInvariants(priorLocalLc uint64, cmdLclock uint64, post model.SystemState, event model.Event) error {
	wantLclock := cmdLclock
	if priorLocalLc+1 > wantLclock {
		wantLclock = priorLocalLc + 1
	}
	if event.Lclock != wantLclock {
		return fmt.Errorf("event.lclock = %d, want max(cmd.lclock, local_lc+1) = %d", event.Lclock, wantLclock)
	}

	if got := event.VClock.Get(event.Replica); got != event.Lclock {
		return fmt.Errorf("event.vclock[self] = %d, want event.lclock = %d", got, event.Lclock)
	}

	for _, id := range append(append([]amuletids.CID{}, event.NewEntities...), event.UpdatedEntities...) {
		e, ok := post.Entities[id]
		if !ok {
			return fmt.Errorf("entity %s named in event is absent from post-apply Σ", id)
		}
		if e.Header.Lclock != event.Lclock {
			return fmt.Errorf("entity %s lclock = %d, want event.lclock = %d", id, e.Header.Lclock, event.Lclock)
		}
	}

	if len(post.EventLog) == 0 || post.EventLog[len(post.EventLog)-1].ID != event.ID {
		return fmt.Errorf("event %s was not appended as the last entry of the event log", event.ID)
	}

	return nil
}

// CheckFailureLeavesStateUntouched compares prior and post SystemStates
// field by field (map lengths and event log length) for the common case of
// a rejected Apply: a failed call must not grow any collection.
func CheckFailureLeavesStateUntouched(prior, post model.SystemState) error {
	if len(prior.Entities) != len(post.Entities) {
		return fmt.Errorf("entity count changed on a failed apply: %d -> %d", len(prior.Entities), len(post.Entities))
	}
	if len(prior.Capabilities) != len(post.Capabilities) {
		return fmt.Errorf("capability count changed on a failed apply: %d -> %d", len(prior.Capabilities), len(post.Capabilities))
	}
	if len(prior.EventLog) != len(post.EventLog) {
		return fmt.Errorf("event log length changed on a failed apply: %d -> %d", len(prior.EventLog), len(post.EventLog))
	}
	return nil
}

// CheckVersionMonotonicity asserts that updated's Version is exactly one
// more than prior's, the invariant AppendDelta enforces for every
// UpdatedEntities entry.
func CheckVersionMonotonicity(prior, updated model.Entity) error {
	if updated.Header.Version != prior.Header.Version+1 {
		return fmt.Errorf("version jumped from %d to %d, want exactly +1", prior.Header.Version, updated.Header.Version)
	}
	return nil
}
