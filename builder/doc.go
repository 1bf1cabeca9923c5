// Package builder constructs minimal, deterministic, acyclic finite-state
// transducers from sorted (key, output) streams in a single pass.
//
// What:
//
//   - New(alg, opts...) / Add(key, output) / Finish(): streaming build.
//   - Build(alg, seq) and BuildEntries(alg, entries): one-call helpers.
//   - Options: WithLogger, WithCapacityHint, WithMaxKeyLength.
//
// How:
//
// Keys arrive in strictly ascending byte order. The builder keeps one
// working state per depth of the current key. When a new key diverges from
// the previous one, the states of the previous key below the divergence
// point can no longer change, so they are handed to the hash-consing
// registry bottom-up and replaced by canonical handles. Outputs are factored
// through the chosen algebra so that each transition carries only what all
// keys passing through it share.
//
// Memory is O(longest key) working states plus O(distinct states), not
// O(keys).
//
// Errors:
//
//   - ErrInvalidInputOrder  key below the previous key
//   - ErrDuplicateKey       key equal to the previous key
//   - ErrKeyTooLong         key longer than WithMaxKeyLength
//   - ErrBuilderFinished    use after Finish
//   - ErrNilAlgebra         New called with a nil algebra
//
// Example:
//
//	b := builder.New[int](algebra.Scalar[int]{})
//	_ = b.Add([]byte("mop"), 0)
//	_ = b.Add([]byte("moth"), 1)
//	f, err := b.Finish()
package builder
