// Package lvfst builds minimal, deterministic, acyclic finite-state
// transducers from sorted key/output pairs.
//
// 🚀 What is lvfst?
//
//	A small, single-pass construction library that brings together:
//		• Output algebras: byte strings and atomic integer values
//		• Incremental building: keys stream in, states freeze as soon as they can
//		• Hash-consing: equal suffix states are stored exactly once
//		• Query contract: initial state, finality, transit, outputs
//		• Traversals: depth-first walk, topological order, structural checks
//
// ✨ Why choose lvfst?
//
//   - Minimal by construction – no post-pass, no second copy of the dictionary
//   - Deterministic – same input, same state numbering
//   - Generic – plug in any output algebra that satisfies the prefix laws
//   - Observable – builder statistics and structured logging via logrus
//
// Everything is organized under three subpackages:
//
//	algebra/ - Output, Algebra, and the Bytes and Scalar output algebras
//	builder/ - the streaming Builder, Build and BuildEntries
//	fst/     - states, the registry, the immutable FST, Walk and Validate
//
// Quick ASCII example (mop→0, pop→2, top→5):
//
//	      m/0
//	(0)──p/2──▶(1)──o──▶(2)──p──▶((3))
//	      t/5
//
// The three keys share one "op" suffix, so the automaton has four states.
//
//	go get github.com/katalvlaran/lvfst
package lvfst
