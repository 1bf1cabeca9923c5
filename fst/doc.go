// Package fst holds the data model of a minimal acyclic finite-state
// transducer: working states, canonical frozen states, the hash-consing
// registry that keeps them unique, and the immutable automaton that owns
// them.
//
// What:
//
//   - WorkingState[T]: per-depth scratch state mutated by the builder.
//   - State[T]: immutable canonical state with sorted transitions.
//   - Registry[T]: maps structural signatures (finality, state output,
//     (label, output, next) triples) to canonical states. Targets are
//     compared by StateID, never deeply, because subtrees are canonical
//     before their parents are looked up.
//   - FST[T]: arena of canonical states plus the initial StateID, exposing
//     IsFinal, StateOutput, Transit and TransitionOutput per state.
//   - Walk, TopologicalOrder, Validate: read-only structural checks.
//
// States live in an arena addressed by StateID. A state is inserted only
// after all of its targets exist, so handles of children are always smaller
// than the handle of their parent, and the graph is a DAG by construction.
//
// Complexity:
//
//   - FindOrInsert: O(d) expected for out-degree d (one xxhash pass plus a
//     bucket scan).
//   - Transit / TransitionOutput: O(log d).
//   - Walk, TopologicalOrder, Validate: O(S + E).
//
// Errors:
//
//   - ErrNilAutomaton        nil *FST passed to a check
//   - ErrDanglingTransition  target outside the arena
//   - ErrNondeterministic    unsorted or repeated labels
//   - ErrCycleDetected       back edge found
//   - ErrNotMinimal          duplicate signature
//   - context.Canceled       Walk canceled via context
//   - hook errors            propagated from OnVisit or OnExit
package fst
