package fst

import (
	"sort"

	"github.com/katalvlaran/lvfst/algebra"
)

// WorkingState is the mutable per-depth scratch state used while building.
// It is owned by a single builder, mutated in place, and reset between keys;
// it never becomes part of an automaton. Registry.FindOrInsert copies it.
type WorkingState[T any] struct {
	final  bool
	output algebra.Output[T]
	trans  []Transition[T] // ascending by Label; the last one may be pending
}

// NewWorkingState returns an empty, non-final working state.
func NewWorkingState[T any]() *WorkingState[T] {
	return &WorkingState[T]{}
}

// Reset clears the state for reuse. The transition buffer keeps its
// capacity; frozen copies never share it.
func (w *WorkingState[T]) Reset() {
	w.final = false
	w.output = algebra.None[T]()
	clear(w.trans) // drop references held by old outputs
	w.trans = w.trans[:0]
}

// IsFinal reports the accepting flag.
func (w *WorkingState[T]) IsFinal() bool {
	return w.final
}

// SetFinal sets the accepting flag.
func (w *WorkingState[T]) SetFinal(final bool) {
	w.final = final
}

// Output returns the tentative state output.
func (w *WorkingState[T]) Output() algebra.Output[T] {
	return w.output
}

// SetOutput replaces the state output.
func (w *WorkingState[T]) SetOutput(o algebra.Output[T]) {
	w.output = o
}

// NumTransitions returns the current out-degree.
func (w *WorkingState[T]) NumTransitions() int {
	return len(w.trans)
}

// SetTransition points the transition labeled label at next. An existing
// transition keeps its output; a new one is inserted in label order with an
// absent output.
func (w *WorkingState[T]) SetTransition(label byte, next StateID) {
	// 1. Fast path: keys arrive sorted, so label is usually the last one.
	if n := len(w.trans); n > 0 && w.trans[n-1].Label == label {
		w.trans[n-1].Next = next
		return
	}
	if n := len(w.trans); n == 0 || w.trans[n-1].Label < label {
		w.trans = append(w.trans, Transition[T]{Label: label, Next: next})
		return
	}

	// 2. General case: binary search, replace or insert.
	i, ok := w.find(label)
	if ok {
		w.trans[i].Next = next
		return
	}
	w.trans = append(w.trans, Transition[T]{})
	copy(w.trans[i+1:], w.trans[i:])
	w.trans[i] = Transition[T]{Label: label, Next: next}
}

// TransitionOutput returns the output on label, or absent.
func (w *WorkingState[T]) TransitionOutput(label byte) algebra.Output[T] {
	if i, ok := w.find(label); ok {
		return w.trans[i].Output
	}

	return algebra.None[T]()
}

// SetTransitionOutput replaces the output on label. It is a no-op when the
// label has no transition.
func (w *WorkingState[T]) SetTransitionOutput(label byte, o algebra.Output[T]) {
	if i, ok := w.find(label); ok {
		w.trans[i].Output = o
	}
}

// UpdateOutputs replaces every transition output o with fn(o).
func (w *WorkingState[T]) UpdateOutputs(fn func(algebra.Output[T]) algebra.Output[T]) {
	for i := range w.trans {
		w.trans[i].Output = fn(w.trans[i].Output)
	}
}

// find locates label by binary search.
func (w *WorkingState[T]) find(label byte) (int, bool) {
	i := sort.Search(len(w.trans), func(i int) bool { return w.trans[i].Label >= label })
	if i < len(w.trans) && w.trans[i].Label == label {
		return i, true
	}

	return i, false
}

// freeze copies the state into an immutable State.
func (w *WorkingState[T]) freeze() State[T] {
	var trans []Transition[T]
	if len(w.trans) > 0 {
		trans = make([]Transition[T], len(w.trans))
		copy(trans, w.trans)
	}

	return State[T]{final: w.final, output: w.output, trans: trans}
}
