// File: fst.go
// Role: Immutable automaton and its read-only query contract.
// Policy:
//   - No computation beyond lookups; rendering and key lookup live elsewhere.
//   - Safe for concurrent readers: nothing mutates after construction.

package fst

import (
	"iter"

	"github.com/katalvlaran/lvfst/algebra"
)

// FST is a minimal, deterministic, acyclic transducer. It owns the arena of
// canonical states and the handle of the initial state.
type FST[T any] struct {
	id      algebra.Identity[T]
	states  []State[T] // canonical states in registry insertion order
	initial StateID
}

// Initial returns the handle of the initial state.
func (f *FST[T]) Initial() StateID {
	return f.initial
}

// Len returns the number of canonical states.
func (f *FST[T]) Len() int {
	return len(f.states)
}

// State returns the state behind id. An unknown id yields the zero State
// (non-final, no transitions, no output).
func (f *FST[T]) State(id StateID) State[T] {
	if int(id) >= len(f.states) {
		return State[T]{}
	}

	return f.states[id]
}

// States yields every canonical state with its handle, in insertion order.
// Children are always yielded before their parents.
func (f *FST[T]) States() iter.Seq2[StateID, State[T]] {
	return func(yield func(StateID, State[T]) bool) {
		for i := range f.states {
			if !yield(StateID(i), f.states[i]) {
				return
			}
		}
	}
}

// IsFinal reports whether id is an accepting state.
func (f *FST[T]) IsFinal(id StateID) bool {
	return f.State(id).IsFinal()
}

// StateOutput returns the state output of id.
func (f *FST[T]) StateOutput(id StateID) algebra.Output[T] {
	return f.State(id).Output()
}

// Transit follows the transition labeled label out of id.
func (f *FST[T]) Transit(id StateID, label byte) (StateID, bool) {
	return f.State(id).Transit(label)
}

// TransitionOutput returns the output of the transition labeled label out
// of id, or absent.
func (f *FST[T]) TransitionOutput(id StateID, label byte) algebra.Output[T] {
	return f.State(id).TransitionOutput(label)
}

// NumTransitions returns the total number of transitions in the automaton.
func (f *FST[T]) NumTransitions() int {
	n := 0
	for i := range f.states {
		n += len(f.states[i].trans)
	}

	return n
}
