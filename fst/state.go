package fst

import (
	"iter"
	"sort"

	"github.com/katalvlaran/lvfst/algebra"
)

// State is an immutable canonical state. It holds a private copy of its
// transitions, sorted by label, taken when the state was frozen.
//
// The zero State is a non-final state without transitions or output.
type State[T any] struct {
	final  bool              // accepting flag
	output algebra.Output[T] // state output, emitted when a key ends here
	trans  []Transition[T]   // ascending by Label, targets are frozen
}

// IsFinal reports whether a key may end in this state.
func (s State[T]) IsFinal() bool {
	return s.final
}

// Output returns the state output (meaningful on final states).
func (s State[T]) Output() algebra.Output[T] {
	return s.output
}

// NumTransitions returns the out-degree of the state.
func (s State[T]) NumTransitions() int {
	return len(s.trans)
}

// Transit returns the target of the transition labeled label.
// Complexity: O(log d) for out-degree d.
func (s State[T]) Transit(label byte) (StateID, bool) {
	i, ok := s.find(label)
	if !ok {
		return NoState, false
	}

	return s.trans[i].Next, true
}

// TransitionOutput returns the output of the transition labeled label, or
// absent when no such transition exists.
func (s State[T]) TransitionOutput(label byte) algebra.Output[T] {
	i, ok := s.find(label)
	if !ok {
		return algebra.None[T]()
	}

	return s.trans[i].Output
}

// Transitions yields the outgoing transitions in ascending label order.
func (s State[T]) Transitions() iter.Seq[Transition[T]] {
	return func(yield func(Transition[T]) bool) {
		for _, t := range s.trans {
			if !yield(t) {
				return
			}
		}
	}
}

// find locates label by binary search over the sorted transitions.
func (s State[T]) find(label byte) (int, bool) {
	i := sort.Search(len(s.trans), func(i int) bool { return s.trans[i].Label >= label })
	if i < len(s.trans) && s.trans[i].Label == label {
		return i, true
	}

	return i, false
}

// equalState compares the signature of a frozen state with a working state.
// Targets are compared by handle: the subtrees below were canonicalized
// first, so identical handles mean identical suffixes.
func equalState[T any](id algebra.Identity[T], s *State[T], ws *WorkingState[T]) bool {
	view := State[T]{final: ws.final, output: ws.output, trans: ws.trans}

	return equalFrozen(id, s, &view)
}
