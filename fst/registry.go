// File: registry.go
// Role: Hash-consing table that maps state signatures to canonical states.
// Determinism:
//   - StateIDs are assigned in insertion order; enumeration follows that order.
// Concurrency:
//   - Not safe for concurrent use; owned by a single builder.

package fst

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvfst/algebra"
)

// RegistryStats reports registry activity.
type RegistryStats struct {
	Lookups int // FindOrInsert and Member calls
	Hits    int // lookups answered by an existing canonical state
	States  int // canonical states created
}

// Registry canonicalizes working states into shared, immutable states.
// At most one state per structural signature is ever stored, which is what
// makes the resulting automaton minimal.
type Registry[T any] struct {
	id      algebra.Identity[T]
	states  []State[T]           // arena, indexed by StateID
	buckets map[uint64][]StateID // fingerprint -> candidates
	scratch []byte               // reusable signature buffer
	lookups int
	hits    int
}

// NewRegistry returns an empty registry using id for output equality and
// fingerprinting. capacityHint pre-sizes the arena; zero is fine.
func NewRegistry[T any](id algebra.Identity[T], capacityHint int) *Registry[T] {
	if capacityHint < 0 {
		capacityHint = 0
	}

	return &Registry[T]{
		id:      id,
		states:  make([]State[T], 0, capacityHint),
		buckets: make(map[uint64][]StateID, capacityHint),
	}
}

// Len returns the number of canonical states registered so far.
func (r *Registry[T]) Len() int {
	return len(r.states)
}

// Stats returns lookup counters.
func (r *Registry[T]) Stats() RegistryStats {
	return RegistryStats{Lookups: r.lookups, Hits: r.hits, States: len(r.states)}
}

// Member returns the canonical state whose signature equals ws, if any.
func (r *Registry[T]) Member(ws *WorkingState[T]) (StateID, bool) {
	r.lookups++
	_, id, ok := r.lookup(ws)
	if ok {
		r.hits++
	}

	return id, ok
}

// FindOrInsert returns the canonical state equal to ws, freezing and
// registering a copy of ws when none exists. Later mutation of ws does not
// affect the returned state.
//
// Every transition of ws must already target a frozen state.
// Complexity: O(d) expected for out-degree d.
func (r *Registry[T]) FindOrInsert(ws *WorkingState[T]) StateID {
	r.lookups++
	h, id, ok := r.lookup(ws)
	if ok {
		r.hits++
		return id
	}
	id = StateID(len(r.states))
	r.states = append(r.states, ws.freeze())
	r.buckets[h] = append(r.buckets[h], id)

	return id
}

// Automaton hands the arena over to a new FST rooted at initial.
// The registry is emptied and must not be used afterwards.
func (r *Registry[T]) Automaton(initial StateID) *FST[T] {
	f := &FST[T]{id: r.id, states: r.states, initial: initial}
	r.states, r.buckets, r.scratch = nil, nil, nil

	return f
}

// lookup fingerprints ws and scans the matching bucket.
func (r *Registry[T]) lookup(ws *WorkingState[T]) (uint64, StateID, bool) {
	r.scratch = appendSignature(r.id, r.scratch[:0], ws.final, ws.output, ws.trans)
	h := xxhash.Sum64(r.scratch)
	for _, id := range r.buckets[h] {
		if equalState(r.id, &r.states[id], ws) {
			return h, id, true
		}
	}

	return h, NoState, false
}

// appendSignature encodes finality, state output and every
// (label, output, next) triple in label order.
func appendSignature[T any](
	id algebra.Identity[T],
	dst []byte,
	final bool,
	output algebra.Output[T],
	trans []Transition[T],
) []byte {
	if final {
		dst = append(dst, 1)
	} else {
		dst = append(dst, 0)
	}
	dst = algebra.AppendOutput(id, dst, output)
	dst = binary.AppendUvarint(dst, uint64(len(trans)))
	for i := range trans {
		dst = append(dst, trans[i].Label)
		dst = algebra.AppendOutput(id, dst, trans[i].Output)
		dst = binary.LittleEndian.AppendUint32(dst, uint32(trans[i].Next))
	}

	return dst
}
