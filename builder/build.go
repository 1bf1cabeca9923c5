package builder

import (
	"iter"

	"github.com/katalvlaran/lvfst/algebra"
	"github.com/katalvlaran/lvfst/fst"
)

// Entry is one (key, output) pair of the input stream.
type Entry[T any] struct {
	Key    []byte
	Output T
}

// Build folds a sorted key stream into an FST. It stops at the first
// invalid key and returns no automaton in that case.
func Build[T any](alg algebra.Algebra[T], entries iter.Seq2[[]byte, T], opts ...Option) (*fst.FST[T], error) {
	b := New(alg, opts...)
	for key, output := range entries {
		if err := b.Add(key, output); err != nil {
			return nil, err
		}
	}

	return b.Finish()
}

// BuildEntries is Build over a slice of entries.
func BuildEntries[T any](alg algebra.Algebra[T], entries []Entry[T], opts ...Option) (*fst.FST[T], error) {
	return Build(alg, func(yield func([]byte, T) bool) {
		for _, e := range entries {
			if !yield(e.Key, e.Output) {
				return
			}
		}
	}, opts...)
}
