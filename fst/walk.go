// Package fst: depth-first traversal over the states reachable from the
// initial state, following transitions in ascending label order.
//
// Key features:
//   - Walk(f, opts...): pre-order and post-order listing of reachable states
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(S + E) for S reachable states and E transitions.
//   - Memory: O(S) for the visited set, plus recursion bounded by the
//     longest key.
package fst

import (
	"context"
	"fmt"
)

// WalkOption configures optional behavior of Walk.
type WalkOption func(*WalkOptions)

// WalkOptions holds configurable parameters for Walk.
type WalkOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a state is first reached.
	// Returning an error aborts the walk with that error.
	OnVisit func(id StateID, depth int) error

	// OnExit, if non-nil, is invoked after every child of a state has been
	// explored, before the state is appended to Postorder.
	OnExit func(id StateID) error

	// MaxDepth, if non-negative, limits the walk to states at most MaxDepth
	// transitions away from the initial state. Default is -1 (no limit).
	MaxDepth int
}

// DefaultWalkOptions returns options with a background context, no hooks and
// no depth limit.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) WalkOption {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id StateID, depth int) error) WalkOption {
	return func(o *WalkOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id StateID) error) WalkOption {
	return func(o *WalkOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth; 0 visits only the initial state.
func WithMaxDepth(limit int) WalkOption {
	return func(o *WalkOptions) {
		o.MaxDepth = limit
	}
}

// WalkResult captures the outcome of Walk.
type WalkResult struct {
	// Preorder lists states in discovery order.
	Preorder []StateID

	// Postorder lists states in the order their exploration finished.
	Postorder []StateID

	// Depth maps each reached state to the length of the first path found
	// to it. Shared states reached by several paths keep the first depth.
	Depth map[StateID]int
}

// walker encapsulates state during Walk.
type walker[T any] struct {
	f       *FST[T]
	opts    WalkOptions
	res     *WalkResult
	visited []bool
}

// Walk performs a depth-first traversal from the initial state. Each
// reachable state is visited once even when it is shared by many parents.
// Returns the partial result and the error when aborted by context or hook.
func Walk[T any](f *FST[T], opts ...WalkOption) (*WalkResult, error) {
	// 1. Validate input
	if f == nil {
		return nil, ErrNilAutomaton
	}

	// 2. Apply options
	wopts := DefaultWalkOptions()
	for _, fn := range opts {
		fn(&wopts)
	}

	// 3. Initialize result with capacity hint
	n := len(f.states)
	res := &WalkResult{
		Preorder:  make([]StateID, 0, n),
		Postorder: make([]StateID, 0, n),
		Depth:     make(map[StateID]int, n),
	}
	if n == 0 {
		return res, nil
	}
	w := &walker[T]{f: f, opts: wopts, res: res, visited: make([]bool, n)}

	// 4. Traverse
	if err := w.traverse(f.initial, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits id at depth, recursing into unvisited targets.
func (w *walker[T]) traverse(id StateID, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}
	if int(id) >= len(w.visited) {
		return fmt.Errorf("%w: state %d", ErrDanglingTransition, id)
	}

	// 3. Mark visited and record depth
	w.visited[id] = true
	w.res.Depth[id] = depth
	w.res.Preorder = append(w.res.Preorder, id)

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			w.res.Postorder = nil

			return fmt.Errorf("fst: OnVisit hook for state %d: %w", id, err)
		}
	}

	// 5. Explore targets in label order
	for _, t := range w.f.states[id].trans {
		if int(t.Next) < len(w.visited) && w.visited[t.Next] {
			continue
		}
		if err := w.traverse(t.Next, depth+1); err != nil {
			return err
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Postorder = nil

			return fmt.Errorf("fst: OnExit hook for state %d: %w", id, err)
		}
	}

	// 7. Record finish order
	w.res.Postorder = append(w.res.Postorder, id)

	return nil
}
