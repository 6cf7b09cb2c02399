// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kernel

import (
	"github.com/luxfi/amulet/kernelerrors"
	"github.com/luxfi/amulet/model"
)

// AppendDelta installs delta into state in place, after checking every
// entity in it against the invariants a Runtime must never violate:
//
//   - new-entity-uniqueness: a NewEntities CID must not already be present
//     in state, nor repeated within delta itself.
//   - version-monotonicity: an UpdatedEntities entry's Version must be
//     exactly one more than the entity it replaces.
//   - entity-lclock-coherence: every entity in delta must carry
//     Header.Lclock == lclockNew, the event committing this delta.
//
// All entities are checked before any are written, so a violation leaves
// state untouched.
func AppendDelta(state *model.SystemState, delta model.StateDelta, lclockNew uint64) error {
	seenNew := make(map[[32]byte]bool, len(delta.NewEntities))

	for _, e := range delta.NewEntities {
		if e.Header.Lclock != lclockNew {
			return kernelerrors.NewInvariantViolation("entity-lclock-coherence",
				"new entity lclock does not match the committing event's lclock")
		}
		if _, exists := state.Entities[e.Header.ID]; exists {
			return kernelerrors.NewInvariantViolation("new-entity-uniqueness",
				"new entity CID already present in Σ")
		}
		if seenNew[e.Header.ID] {
			return kernelerrors.NewInvariantViolation("new-entity-uniqueness",
				"duplicate new entity CID within the same delta")
		}
		seenNew[e.Header.ID] = true
	}

	for _, e := range delta.UpdatedEntities {
		if e.Header.Lclock != lclockNew {
			return kernelerrors.NewInvariantViolation("entity-lclock-coherence",
				"updated entity lclock does not match the committing event's lclock")
		}
		prior, exists := state.Entities[e.Header.ID]
		if !exists {
			return kernelerrors.NewInvariantViolation("version-monotonicity",
				"updated entity has no prior version in Σ")
		}
		if e.Header.Version != prior.Header.Version+1 {
			return kernelerrors.NewInvariantViolation("version-monotonicity",
				"updated entity version is not exactly one more than its prior version")
		}
	}

	for _, e := range delta.NewEntities {
		state.Entities[e.Header.ID] = e
	}
	for _, e := range delta.UpdatedEntities {
		state.Entities[e.Header.ID] = e
	}
	return nil
}
