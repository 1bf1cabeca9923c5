// File: types.go
// Role: StateID, Transition and sentinel errors shared by the fst package.
//
// This file declares StateID, Transition and the sentinel errors of the
// structural checks.
//
// Errors:
//
//	ErrNilAutomaton        - a nil *FST was passed to a check.
//	ErrCycleDetected       - a transition closes a cycle.
//	ErrNondeterministic    - a state has unsorted or repeated labels.
//	ErrDanglingTransition  - a transition targets a state outside the arena.
//	ErrNotMinimal          - two states share one structural signature.

package fst

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvfst/algebra"
)

// Sentinel errors for structural checks over an automaton.
var (
	// ErrNilAutomaton indicates that a nil *FST was supplied.
	ErrNilAutomaton = errors.New("fst: automaton is nil")

	// ErrCycleDetected indicates that the transition graph is not acyclic.
	ErrCycleDetected = errors.New("fst: cycle detected")

	// ErrNondeterministic indicates a state with more than one transition per
	// label, or transitions not kept in ascending label order.
	ErrNondeterministic = errors.New("fst: nondeterministic state")

	// ErrDanglingTransition indicates a transition whose target is not a
	// state of the automaton.
	ErrDanglingTransition = errors.New("fst: dangling transition")

	// ErrNotMinimal indicates two distinct states with identical signatures.
	ErrNotMinimal = errors.New("fst: automaton is not minimal")
)

// StateID is a stable handle into the state arena of an FST.
// IDs are dense and assigned in registry insertion order.
type StateID uint32

// NoState marks a transition whose target is still a working state.
// It never appears in a finished automaton.
const NoState StateID = math.MaxUint32

// Transition is an outgoing edge: a label byte, an optional output fragment,
// and the handle of the target state. Transitions do not own their target;
// any number of transitions may point at the same state.
type Transition[T any] struct {
	Label  byte             // alphabet symbol
	Output algebra.Output[T] // output fragment emitted on this edge
	Next   StateID          // target state, NoState while pending
}
