package fst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfst/algebra"
)

// newWorking builds a working state from (label, output, next) triples.
func newWorking(final bool, out algebra.Output[int], trans ...Transition[int]) *WorkingState[int] {
	ws := NewWorkingState[int]()
	ws.SetFinal(final)
	ws.SetOutput(out)
	for _, t := range trans {
		ws.SetTransition(t.Label, t.Next)
		ws.SetTransitionOutput(t.Label, t.Output)
	}

	return ws
}

func TestWorkingState_SetTransitionKeepsLabelOrder(t *testing.T) {
	ws := NewWorkingState[int]()
	ws.SetTransition('c', 1)
	ws.SetTransition('a', 2)
	ws.SetTransition('b', 3)
	ws.SetTransition('z', 4)

	labels := make([]byte, 0, 4)
	for _, tr := range ws.trans {
		labels = append(labels, tr.Label)
	}
	assert.Equal(t, []byte("abcz"), labels)
}

func TestWorkingState_SetTransitionReplacesTargetKeepsOutput(t *testing.T) {
	ws := NewWorkingState[int]()
	ws.SetTransition('a', NoState)
	ws.SetTransitionOutput('a', algebra.Some(9))
	ws.SetTransition('a', 5)

	require.Equal(t, 1, ws.NumTransitions())
	assert.Equal(t, StateID(5), ws.trans[0].Next)
	assert.Equal(t, algebra.Some(9), ws.TransitionOutput('a'))
	assert.False(t, ws.TransitionOutput('q').IsPresent())

	ws.SetTransitionOutput('q', algebra.Some(1)) // no such label: no-op
	assert.Equal(t, 1, ws.NumTransitions())
}

func TestWorkingState_UpdateOutputsAndReset(t *testing.T) {
	ws := newWorking(true, algebra.Some(3),
		Transition[int]{Label: 'a', Next: 0},
		Transition[int]{Label: 'b', Next: 0, Output: algebra.Some(2)},
	)
	ws.UpdateOutputs(func(o algebra.Output[int]) algebra.Output[int] {
		return algebra.Scalar[int]{}.Concat(algebra.Some(7), o)
	})
	assert.Equal(t, algebra.Some(7), ws.TransitionOutput('a'))
	assert.Equal(t, algebra.Some(7), ws.TransitionOutput('b'))

	ws.Reset()
	assert.False(t, ws.IsFinal())
	assert.False(t, ws.Output().IsPresent())
	assert.Zero(t, ws.NumTransitions())
}

func TestRegistry_DedupesEqualSignatures(t *testing.T) {
	r := NewRegistry[int](algebra.Scalar[int]{}, 4)

	leaf := r.FindOrInsert(newWorking(true, algebra.None[int]()))
	again := r.FindOrInsert(newWorking(true, algebra.None[int]()))
	assert.Equal(t, leaf, again)
	assert.Equal(t, 1, r.Len())

	// each signature component makes a difference
	nonFinal := r.FindOrInsert(newWorking(false, algebra.None[int]()))
	withOut := r.FindOrInsert(newWorking(true, algebra.Some(0)))
	assert.NotEqual(t, leaf, nonFinal)
	assert.NotEqual(t, leaf, withOut, "absent output differs from present zero")

	p1 := r.FindOrInsert(newWorking(false, algebra.None[int](), Transition[int]{Label: 'x', Next: leaf}))
	p2 := r.FindOrInsert(newWorking(false, algebra.None[int](), Transition[int]{Label: 'y', Next: leaf}))
	p3 := r.FindOrInsert(newWorking(false, algebra.None[int](), Transition[int]{Label: 'x', Next: withOut}))
	p4 := r.FindOrInsert(newWorking(false, algebra.None[int](), Transition[int]{Label: 'x', Next: leaf, Output: algebra.Some(1)}))
	p5 := r.FindOrInsert(newWorking(false, algebra.None[int](), Transition[int]{Label: 'x', Next: leaf}))
	assert.Len(t, map[StateID]bool{p1: true, p2: true, p3: true, p4: true}, 4)
	assert.Equal(t, p1, p5)

	st := r.Stats()
	assert.Equal(t, 9, st.Lookups)
	assert.Equal(t, 2, st.Hits)
	assert.Equal(t, 7, st.States)
}

func TestRegistry_FrozenCopyIsIndependent(t *testing.T) {
	r := NewRegistry[int](algebra.Scalar[int]{}, 0)
	leaf := r.FindOrInsert(newWorking(true, algebra.None[int]()))

	ws := newWorking(false, algebra.None[int](), Transition[int]{Label: 'a', Next: leaf, Output: algebra.Some(1)})
	id := r.FindOrInsert(ws)

	// mutate and reuse the working state
	ws.SetTransitionOutput('a', algebra.Some(2))
	ws.SetTransition('b', leaf)
	ws.SetFinal(true)

	frozen := r.states[id]
	assert.False(t, frozen.IsFinal())
	assert.Equal(t, 1, frozen.NumTransitions())
	assert.Equal(t, algebra.Some(1), frozen.TransitionOutput('a'))

	ws.Reset()
	assert.Equal(t, 1, r.states[id].NumTransitions())
}

func TestRegistry_Member(t *testing.T) {
	r := NewRegistry[int](algebra.Scalar[int]{}, 0)
	_, ok := r.Member(newWorking(true, algebra.None[int]()))
	assert.False(t, ok)
	assert.Zero(t, r.Len(), "Member never inserts")

	leaf := r.FindOrInsert(newWorking(true, algebra.None[int]()))
	got, ok := r.Member(newWorking(true, algebra.None[int]()))
	assert.True(t, ok)
	assert.Equal(t, leaf, got)
}

func TestRegistry_AutomatonTakesArena(t *testing.T) {
	r := NewRegistry[int](algebra.Scalar[int]{}, 0)
	leaf := r.FindOrInsert(newWorking(true, algebra.None[int]()))
	root := r.FindOrInsert(newWorking(false, algebra.None[int](), Transition[int]{Label: 'a', Next: leaf}))

	f := r.Automaton(root)
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, root, f.Initial())
	assert.Zero(t, r.Len())
	assert.NoError(t, Validate(f))
}

func TestRegistry_BytesOutputsCompareByValue(t *testing.T) {
	r := NewRegistry[[]byte](algebra.Bytes{}, 0)
	a := NewWorkingState[[]byte]()
	a.SetFinal(true)
	a.SetOutput(algebra.Some([]byte("xy")))
	b := NewWorkingState[[]byte]()
	b.SetFinal(true)
	b.SetOutput(algebra.Some(append([]byte{}, "xy"...)))

	assert.Equal(t, r.FindOrInsert(a), r.FindOrInsert(b))
}

// hand-made arenas for structural checks

func leafState() State[int] {
	return State[int]{final: true}
}

func TestValidate_DetectsBrokenArenas(t *testing.T) {
	id := algebra.Scalar[int]{}
	cases := []struct {
		name string
		f    *FST[int]
		want error
	}{
		{
			name: "dangling target",
			f: &FST[int]{id: id, initial: 0, states: []State[int]{
				{trans: []Transition[int]{{Label: 'a', Next: 5}}},
			}},
			want: ErrDanglingTransition,
		},
		{
			name: "dangling initial",
			f:    &FST[int]{id: id, initial: 3, states: []State[int]{leafState()}},
			want: ErrDanglingTransition,
		},
		{
			name: "repeated label",
			f: &FST[int]{id: id, initial: 1, states: []State[int]{
				leafState(),
				{trans: []Transition[int]{{Label: 'a', Next: 0}, {Label: 'a', Next: 0}}},
			}},
			want: ErrNondeterministic,
		},
		{
			name: "unsorted labels",
			f: &FST[int]{id: id, initial: 1, states: []State[int]{
				leafState(),
				{trans: []Transition[int]{{Label: 'b', Next: 0}, {Label: 'a', Next: 0}}},
			}},
			want: ErrNondeterministic,
		},
		{
			name: "cycle",
			f: &FST[int]{id: id, initial: 0, states: []State[int]{
				{trans: []Transition[int]{{Label: 'a', Next: 1}}},
				{final: true, trans: []Transition[int]{{Label: 'b', Next: 0}}},
			}},
			want: ErrCycleDetected,
		},
		{
			name: "duplicate signature",
			f: &FST[int]{id: id, initial: 2, states: []State[int]{
				leafState(),
				leafState(),
				{trans: []Transition[int]{{Label: 'a', Next: 0}, {Label: 'b', Next: 1}}},
			}},
			want: ErrNotMinimal,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, Validate(tc.f), tc.want)
		})
	}
}

func TestValidate_NilAndEmpty(t *testing.T) {
	assert.ErrorIs(t, Validate[int](nil), ErrNilAutomaton)
	assert.NoError(t, Validate(&FST[int]{id: algebra.Scalar[int]{}}))
}

func TestTopologicalOrder_Cycle(t *testing.T) {
	f := &FST[int]{id: algebra.Scalar[int]{}, initial: 0, states: []State[int]{
		{trans: []Transition[int]{{Label: 'a', Next: 0}}},
	}}
	order, err := TopologicalOrder(f)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrCycleDetected)

	_, err = TopologicalOrder[int](nil)
	assert.ErrorIs(t, err, ErrNilAutomaton)
}
