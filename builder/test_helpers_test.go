package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfst/algebra"
	"github.com/katalvlaran/lvfst/builder"
	"github.com/katalvlaran/lvfst/fst"
)

// accept follows key from the initial state and concatenates the outputs
// on its path, ending with the final state's output.
func accept[T any](f *fst.FST[T], alg algebra.Algebra[T], key string) (algebra.Output[T], bool) {
	id := f.Initial()
	out := algebra.None[T]()
	for i := 0; i < len(key); i++ {
		next, ok := f.Transit(id, key[i])
		if !ok {
			return algebra.None[T](), false
		}
		out = alg.Concat(out, f.TransitionOutput(id, key[i]))
		id = next
	}
	if !f.IsFinal(id) {
		return algebra.None[T](), false
	}

	return alg.Concat(out, f.StateOutput(id)), true
}

// intEntries converts a string-keyed lexicon to builder entries.
func intEntries(pairs ...any) []builder.Entry[int] {
	out := make([]builder.Entry[int], 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, builder.Entry[int]{Key: []byte(pairs[i].(string)), Output: pairs[i+1].(int)})
	}

	return out
}

// byteEntries converts key/output string pairs to byte entries.
func byteEntries(pairs ...string) []builder.Entry[[]byte] {
	out := make([]builder.Entry[[]byte], 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, builder.Entry[[]byte]{Key: []byte(pairs[i]), Output: []byte(pairs[i+1])})
	}

	return out
}

// buildInts builds with the scalar algebra and requires success.
func buildInts(t *testing.T, entries []builder.Entry[int]) *fst.FST[int] {
	t.Helper()
	f, err := builder.BuildEntries[int](algebra.Scalar[int]{}, entries)
	require.NoError(t, err)
	require.NotNil(t, f)
	require.NoError(t, fst.Validate(f))

	return f
}

// buildBytes builds with the byte algebra and requires success.
func buildBytes(t *testing.T, entries []builder.Entry[[]byte]) *fst.FST[[]byte] {
	t.Helper()
	f, err := builder.BuildEntries[[]byte](algebra.Bytes{}, entries)
	require.NoError(t, err)
	require.NotNil(t, f)
	require.NoError(t, fst.Validate(f))

	return f
}

// mustTransit follows one label and fails the test when it is missing.
func mustTransit[T any](t *testing.T, f *fst.FST[T], id fst.StateID, label byte) fst.StateID {
	t.Helper()
	next, ok := f.Transit(id, label)
	require.True(t, ok, "missing transition %q from state %d", label, id)

	return next
}

// outString renders a byte output; absent renders as "".
func outString(o algebra.Output[[]byte]) string {
	v, _ := o.Get()
	return string(v)
}
