// SPDX-License-Identifier: MIT
// Package: lvfst/builder
//
// builder.go: incremental construction of a minimal acyclic FST.
//
// Design:
//   • stack[i] is the working state reached after i bytes of the key being
//     processed; stack[0] is the future initial state.
//   • When the next key diverges from the previous one at depth p, the
//     previous key's states below depth p are final: they are canonicalized
//     bottom-up through the registry and detached from the stack.
//   • Outputs are pushed toward the root: each shared-prefix transition keeps
//     only the part common to every key passing through it, and the residual
//     is re-attached one level down.

package builder

import (
	"bytes"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvfst/algebra"
	"github.com/katalvlaran/lvfst/fst"
)

// Stats reports the work done by a Builder.
type Stats struct {
	Keys     int // entries accepted by Add
	States   int // canonical states created
	Lookups  int // registry lookups
	Hits     int // lookups resolved to an existing state
	MaxDepth int // deepest working state used (longest key)
}

// Builder builds one FST from one strictly ascending key stream.
// It is not safe for concurrent use and cannot be reused after Finish.
type Builder[T any] struct {
	alg      algebra.Algebra[T]
	cfg      config
	registry *fst.Registry[T]

	stack   []*fst.WorkingState[T] // per-depth scratch, grown lazily, reused
	prevKey []byte                 // last accepted key (owned copy)
	prevOut T                      // last accepted output, seeded with alg.Default()
	keys    int                    // accepted entries

	err      error // sticky failure
	finished bool
	final    Stats // snapshot taken by Finish
}

// New returns a Builder for outputs governed by alg.
// A nil alg is reported as ErrNilAlgebra by the first Add or Finish.
func New[T any](alg algebra.Algebra[T], opts ...Option) *Builder[T] {
	cfg := newConfig(opts...)
	b := &Builder[T]{
		alg:   alg,
		cfg:   cfg,
		stack: []*fst.WorkingState[T]{fst.NewWorkingState[T]()},
	}
	if alg != nil {
		b.registry = fst.NewRegistry[T](alg, cfg.capacityHint)
		b.prevOut = alg.Default()
	}

	return b
}

// Add appends one entry. Keys must be strictly increasing in unsigned
// byte-lexicographic order. The key is copied; the output is retained and
// must not be mutated afterwards.
//
// Validation happens before any state is touched. On failure the build is
// aborted: the error is returned now and by every later call.
// Complexity: O(len(key) + len(previous key)) amortized, plus algebra costs.
func (b *Builder[T]) Add(key []byte, output T) error {
	// 1. Refuse unusable builders
	if err := b.usable(methodAdd); err != nil {
		return err
	}

	// 2. Validate the key against limits and the previous key
	if b.cfg.maxKeyLength > 0 && len(key) > b.cfg.maxKeyLength {
		return b.fail(wrapf(methodAdd, ErrKeyTooLong, "%d bytes > limit %d", len(key), b.cfg.maxKeyLength))
	}
	if b.keys > 0 {
		switch c := bytes.Compare(key, b.prevKey); {
		case c == 0:
			return b.fail(wrapf(methodAdd, ErrDuplicateKey, "%q", key))
		case c < 0:
			return b.fail(wrapf(methodAdd, ErrInvalidInputOrder, "%q after %q", key, b.prevKey))
		}
	}

	// 3. Grow the working buffer to the key length
	for len(b.stack) <= len(key) {
		b.stack = append(b.stack, fst.NewWorkingState[T]())
	}

	// Absent and empty outputs are one value for algebras that say so.
	out := b.alg.Subtract(algebra.Some(output), algebra.None[T]())

	// 4. The empty key can only come first; it makes the initial state final.
	if len(key) == 0 {
		b.stack[0].SetFinal(true)
		b.stack[0].SetOutput(out)
		b.accept(key, output)

		return nil
	}

	boundary := commonPrefixLen(b.prevKey, key) + 1

	// 5. Canonicalize the finished suffix of the previous key
	b.freezeSuffix(b.prevKey, boundary)

	// 6. Re-initialize the suffix of the new key and chain it
	for i := boundary; i <= len(key); i++ {
		b.stack[i].Reset()
		b.stack[i-1].SetTransition(key[i-1], fst.NoState)
	}

	// 7. Mark the end of the new key; its own output is settled below or
	//    by a later key that extends it
	b.stack[len(key)].SetFinal(true)
	b.stack[len(key)].SetOutput(algebra.None[T]())

	// 8. Push outputs over the shared prefix
	remaining := out
	for i := 1; i < boundary; i++ {
		parent, child := b.stack[i-1], b.stack[i]
		label := key[i-1]

		prevOut := parent.TransitionOutput(label)
		common := b.alg.Prefix(prevOut, remaining)
		residual := b.alg.Subtract(prevOut, common)
		parent.SetTransitionOutput(label, common)

		if residual.IsPresent() {
			// every key below child previously owed residual on this edge
			child.UpdateOutputs(func(o algebra.Output[T]) algebra.Output[T] {
				return b.alg.Concat(residual, o)
			})
			if child.IsFinal() {
				child.SetOutput(b.alg.Concat(residual, child.Output()))
			}
		}
		remaining = b.alg.Subtract(remaining, common)
	}

	// 9. What is left belongs to the first diverging transition
	b.stack[boundary-1].SetTransitionOutput(key[boundary-1], remaining)
	b.accept(key, output)

	return nil
}

// Finish canonicalizes the remaining working states and returns the
// automaton. With no entries added, the automaton has a single non-final
// initial state without transitions.
func (b *Builder[T]) Finish() (*fst.FST[T], error) {
	// 1. Refuse unusable builders
	if err := b.usable(methodFinish); err != nil {
		return nil, err
	}

	// 2. Freeze the last key down to depth 1, then the initial state
	b.freezeSuffix(b.prevKey, 1)
	initial := b.registry.FindOrInsert(b.stack[0])

	// 3. Snapshot stats before the registry hands its arena over
	b.final = b.Stats()
	f := b.registry.Automaton(initial)
	b.finished = true
	b.stack, b.registry = nil, nil

	b.cfg.logger.WithFields(logrus.Fields{
		"keys":      b.final.Keys,
		"states":    b.final.States,
		"lookups":   b.final.Lookups,
		"hits":      b.final.Hits,
		"max_depth": b.final.MaxDepth,
	}).Debug("fst built")

	return f, nil
}

// Stats reports progress so far, or the final figures after Finish.
func (b *Builder[T]) Stats() Stats {
	if b.finished {
		return b.final
	}
	s := Stats{Keys: b.keys, MaxDepth: len(b.stack) - 1}
	if b.registry != nil {
		rs := b.registry.Stats()
		s.States, s.Lookups, s.Hits = rs.States, rs.Lookups, rs.Hits
	}

	return s
}

// Last returns the most recently accepted entry. ok is false before the
// first successful Add; output is then alg.Default().
// Callers splitting a large input across builds use it to resume.
func (b *Builder[T]) Last() (key []byte, output T, ok bool) {
	return bytes.Clone(b.prevKey), b.prevOut, b.keys > 0
}

// freezeSuffix canonicalizes stack[len(word)] down to stack[down] and
// points each parent's transition on word[i-1] at the canonical state.
func (b *Builder[T]) freezeSuffix(word []byte, down int) {
	for i := len(word); i >= down; i-- {
		id := b.registry.FindOrInsert(b.stack[i])
		b.stack[i-1].SetTransition(word[i-1], id)
	}
}

// accept records key/output as the previous entry.
func (b *Builder[T]) accept(key []byte, output T) {
	b.prevKey = append(b.prevKey[:0], key...)
	b.prevOut = output
	b.keys++
}

// usable returns the error that prevents further use, if any.
func (b *Builder[T]) usable(method string) error {
	switch {
	case b.err != nil:
		return b.err
	case b.finished:
		return wrapf(method, ErrBuilderFinished, "builder processes a single key stream")
	case b.alg == nil:
		return wrapf(method, ErrNilAlgebra, "use New with a non-nil algebra")
	}

	return nil
}

// fail makes err sticky and logs the abort.
func (b *Builder[T]) fail(err error) error {
	b.err = err
	b.cfg.logger.WithError(err).WithField("keys", b.keys).Warn("fst build aborted")

	return err
}

// commonPrefixLen returns the length of the longest common prefix of a and b.
func commonPrefixLen(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}

	return n
}
