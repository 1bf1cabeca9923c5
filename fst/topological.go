// Package fst: topological ordering of the state graph.
//
// TopologicalOrder lists every state so that for each transition u→v, u
// appears before v. The initial state of a built automaton therefore comes
// first among the states it reaches. ErrCycleDetected is returned when a back
// edge is found, which a correctly built automaton never contains.
//
// Complexity:
//
//   - Time:   O(S + E)
//   - Memory: O(S)
package fst

import "fmt"

// Visitation colors used by the ordering.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[T any] struct {
	f     *FST[T]
	state []uint8   // visitation color per state
	order []StateID // post-order sequence
}

// TopologicalOrder computes a topological ordering of all states of f,
// including states not reachable from the initial state.
func TopologicalOrder[T any](f *FST[T]) ([]StateID, error) {
	// 1. Validate automaton pointer
	if f == nil {
		return nil, ErrNilAutomaton
	}

	// 2. Initialize sorter state
	n := len(f.states)
	sorter := &topoSorter[T]{
		f:     f,
		state: make([]uint8, n),
		order: make([]StateID, 0, n),
	}

	// 3. Start from the initial state so it leads the order, then cover the rest
	if n > 0 && int(f.initial) < n {
		if err := sorter.visit(f.initial); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n; i++ {
		if sorter.state[i] == white {
			if err := sorter.visit(StateID(i)); err != nil {
				return nil, err
			}
		}
	}

	// 4. Reverse post-order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking colors and detecting back edges.
func (t *topoSorter[T]) visit(id StateID) error {
	// 1. Bounds check on the handle
	if int(id) >= len(t.state) {
		return fmt.Errorf("%w: state %d", ErrDanglingTransition, id)
	}
	// 2. Gray means id is on the stack: back edge
	if t.state[id] == gray {
		return fmt.Errorf("%w: at state %d", ErrCycleDetected, id)
	}
	// 3. Already fully processed
	if t.state[id] == black {
		return nil
	}
	t.state[id] = gray

	// 4. Recurse into each target
	for _, tr := range t.f.states[id].trans {
		if err := t.visit(tr.Next); err != nil {
			return err
		}
	}

	// 5. Mark explored and record
	t.state[id] = black
	t.order = append(t.order, id)

	return nil
}
