package algebra

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// Scalar is the atomic algebra for integer outputs. Values cannot be split,
// so Prefix degenerates to an equality test and conflicting values sharing
// one transition keep the earliest value.
type Scalar[T constraints.Integer] struct{}

var _ Algebra[int] = Scalar[int]{}

// Default returns 0.
func (Scalar[T]) Default() T {
	return 0
}

// Equal reports a == b.
func (Scalar[T]) Equal(a, b T) bool {
	return a == b
}

// AppendKey appends the 8-byte little-endian bit pattern of v.
func (Scalar[T]) AppendKey(dst []byte, v T) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(v))
}

// Prefix returns a when a == b, otherwise absent.
func (Scalar[T]) Prefix(a, b Output[T]) Output[T] {
	if !a.ok || !b.ok || a.value != b.value {
		return None[T]()
	}

	return a
}

// Concat returns whichever operand is present, preferring a.
func (Scalar[T]) Concat(a, b Output[T]) Output[T] {
	if a.ok {
		return a
	}

	return b
}

// Subtract returns a unless a == b, in which case nothing remains.
func (Scalar[T]) Subtract(a, b Output[T]) Output[T] {
	if !a.ok {
		return None[T]()
	}
	if b.ok && a.value == b.value {
		return None[T]()
	}

	return a
}
