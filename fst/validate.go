package fst

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvfst/algebra"
)

// Validate checks the structural invariants of f:
//
//   - every transition targets a state of f (ErrDanglingTransition),
//   - labels are strictly ascending within each state (ErrNondeterministic),
//   - the transition graph is acyclic (ErrCycleDetected),
//   - no two states share a signature (ErrNotMinimal).
//
// Checks run in that order and the first failure is returned.
// Complexity: O(S + E) expected.
func Validate[T any](f *FST[T]) error {
	// 1. Validate automaton pointer
	if f == nil {
		return ErrNilAutomaton
	}
	n := len(f.states)
	if n > 0 && int(f.initial) >= n {
		return fmt.Errorf("%w: initial state %d of %d", ErrDanglingTransition, f.initial, n)
	}

	// 2. Per-state checks: bounds and determinism
	for i := range f.states {
		trans := f.states[i].trans
		for j := range trans {
			if int(trans[j].Next) >= n {
				return fmt.Errorf("%w: state %d label %q -> %d", ErrDanglingTransition, i, trans[j].Label, trans[j].Next)
			}
			if j > 0 && trans[j-1].Label >= trans[j].Label {
				return fmt.Errorf("%w: state %d label %q", ErrNondeterministic, i, trans[j].Label)
			}
		}
	}

	// 3. Acyclicity
	if _, err := TopologicalOrder(f); err != nil {
		return err
	}

	// 4. Minimality: bucket by fingerprint, confirm with full equality
	buckets := make(map[uint64][]StateID, n)
	var sig []byte
	for i := range f.states {
		s := &f.states[i]
		sig = appendSignature(f.id, sig[:0], s.final, s.output, s.trans)
		h := xxhash.Sum64(sig)
		for _, other := range buckets[h] {
			if equalFrozen(f.id, &f.states[other], s) {
				return fmt.Errorf("%w: states %d and %d", ErrNotMinimal, other, i)
			}
		}
		buckets[h] = append(buckets[h], StateID(i))
	}

	return nil
}

// equalFrozen compares two frozen states by signature.
func equalFrozen[T any](id algebra.Identity[T], a, b *State[T]) bool {
	if a.final != b.final || len(a.trans) != len(b.trans) {
		return false
	}
	if !algebra.EqualOutputs(id, a.output, b.output) {
		return false
	}
	for i := range a.trans {
		x, y := &a.trans[i], &b.trans[i]
		if x.Label != y.Label || x.Next != y.Next || !algebra.EqualOutputs(id, x.Output, y.Output) {
			return false
		}
	}

	return true
}
