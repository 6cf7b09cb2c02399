// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kernel

import (
	"math/rand"
	"testing"

	"github.com/luxfi/amulet/amuletids"
	"github.com/luxfi/amulet/clock"
	"github.com/luxfi/amulet/cryptoboundary"
	"github.com/luxfi/amulet/cryptoboundary/cryptotest"
	"github.com/luxfi/amulet/kconfig"
	"github.com/luxfi/amulet/kernelprop"
	"github.com/luxfi/amulet/kruntime/ledger"
	"github.com/luxfi/amulet/model"
)

func fuzzReplica(b byte) amuletids.ReplicaID {
	var r amuletids.ReplicaID
	r[0] = b
	return r
}

func fuzzCID(b byte) amuletids.CID {
	var c amuletids.CID
	c[0] = b
	return c
}

// FuzzApply applies one arbitrary mint or adjust command to a fresh kernel
// holding a single capability and checks that a successful commit satisfies
// kernelprop.CheckApplyInvariants, and a rejected one leaves Σ untouched.
func FuzzApply(f *testing.F) {
	f.Add(uint8(0), int64(10), uint64(0))
	f.Add(uint8(1), int64(-5), uint64(3))
	f.Add(uint8(0), int64(0), uint64(1000))

	f.Fuzz(func(t *testing.T, op uint8, amount int64, lclock uint64) {
		capID, target := fuzzCID(1), fuzzCID(2)
		disp := cryptoboundary.NewDispatcher(cryptotest.New(amuletids.AlgClassic))
		k, err := New[ledger.Payload](
			kconfig.Default(fuzzReplica(1)),
			ledger.New(),
			disp,
			WithInitialState[ledger.Payload](seedFuzzCapability(capID)),
		)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		ledgerOp := ledger.OpMint
		if op%2 == 1 {
			ledgerOp = ledger.OpAdjust
		}

		cmd := model.Command[ledger.Payload]{
			ID:         fuzzCID(200),
			AlgSuite:   amuletids.AlgClassic,
			Capability: capID,
			Lclock:     lclock % 1000,
			Payload:    ledger.Payload{Op: ledgerOp, Target: target, Amount: amount},
		}

		priorLc := uint64(k.localLc)
		before := k.Snapshot()

		event, err := k.Apply(cmd)
		if err != nil {
			after := k.Snapshot()
			if pErr := kernelprop.CheckFailureLeavesStateUntouched(before, after); pErr != nil {
				t.Fatalf("rejected apply mutated Σ: %v (apply error was: %v)", pErr, err)
			}
			return
		}

		post := k.Snapshot()
		if pErr := kernelprop.CheckApplyInvariants(priorLc, cmd.Lclock, post, event); pErr != nil {
			t.Fatalf("CheckApplyInvariants: %v", pErr)
		}
	})
}

func seedFuzzCapability(id amuletids.CID) model.SystemState {
	s := model.NewSystemState()
	s.Capabilities[id] = model.Capability{
		ID:       id,
		AlgSuite: amuletids.AlgClassic,
		Holder:   amuletids.PublicKey(fuzzCID(0xAA)[:]),
		Rights:   amuletids.RightWrite,
	}
	return s
}

// FuzzProcessIncomingEvent checks that ingesting an arbitrary foreign event
// only ever advances the local clocks, and never touches Σ.
func FuzzProcessIncomingEvent(f *testing.F) {
	f.Add(uint64(0), byte(5))
	f.Add(uint64(1<<20), byte(0xFF))

	f.Fuzz(func(t *testing.T, foreignLclock uint64, foreignReplicaByte byte) {
		disp := cryptoboundary.NewDispatcher(cryptotest.New(amuletids.AlgClassic))
		k, err := New[ledger.Payload](kconfig.Default(fuzzReplica(1)), ledger.New(), disp)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		before := k.Snapshot()
		prevLc := k.LocalLamport()

		foreign := fuzzReplica(foreignReplicaByte)
		k.ProcessIncomingEvent(model.Event{
			Lclock: foreignLclock,
			VClock: clock.VClock{foreign: foreignLclock},
		})

		after := k.Snapshot()
		if pErr := kernelprop.CheckFailureLeavesStateUntouched(before, after); pErr != nil {
			t.Fatalf("ProcessIncomingEvent touched Σ: %v", pErr)
		}

		got := k.LocalLamport()
		want := prevLc
		if foreignLclock > want {
			want = foreignLclock
		}
		if got != want {
			t.Fatalf("local_lc = %d, want max(%d, %d) = %d", got, prevLc, foreignLclock, want)
		}
		if vc := k.LocalVClock().Get(foreign); vc != foreignLclock {
			t.Fatalf("local_vc[foreign] = %d, want %d", vc, foreignLclock)
		}
	})
}

// FuzzEventHashPermutationInvariance checks that eventPreimage is invariant
// to the order entity CIDs are listed in, since appendCIDs sorts them before
// hashing: two inputs differing only in slice order must hash identically.
func FuzzEventHashPermutationInvariance(f *testing.F) {
	f.Add(int64(1))
	f.Add(int64(42))

	f.Fuzz(func(t *testing.T, seed int64) {
		rng := rand.New(rand.NewSource(seed))

		n := 1 + rng.Intn(8)
		newEntities := make([]amuletids.CID, n)
		for i := range newEntities {
			var c amuletids.CID
			rng.Read(c[:])
			newEntities[i] = c
		}

		shuffled := append([]amuletids.CID(nil), newEntities...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		in := eventHashInput{
			commandID:   fuzzCID(1),
			lclockNew:   7,
			replica:     fuzzReplica(1),
			suite:       amuletids.AlgClassic,
			newEntities: newEntities,
			vclock:      clock.VClock{fuzzReplica(1): 7},
		}
		inShuffled := in
		inShuffled.newEntities = shuffled

		a := eventPreimage(in)
		b := eventPreimage(inShuffled)
		if string(a) != string(b) {
			t.Fatalf("eventPreimage not invariant to new-entity ordering for seed %d", seed)
		}
	})
}
