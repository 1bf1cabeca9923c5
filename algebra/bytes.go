package algebra

import (
	"bytes"
	"encoding/binary"
)

// Bytes is the byte-sequence algebra. Empty slices are treated as absent by
// Prefix, Concat and Subtract, so "" and "no output" yield the same states.
//
// Results never alias a caller buffer that is later written: Concat always
// allocates, and Prefix/Subtract return subslices of values that the builder
// treats as read-only.
type Bytes struct{}

var _ Algebra[[]byte] = Bytes{}

// Default returns an empty byte slice.
func (Bytes) Default() []byte {
	return []byte{}
}

// Equal reports byte-wise equality.
func (Bytes) Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// AppendKey appends the length-prefixed bytes of v.
func (Bytes) AppendKey(dst []byte, v []byte) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(v)))

	return append(dst, v...)
}

// Prefix returns the longest common byte prefix of a and b.
// Complexity: O(min(len(a), len(b))).
func (Bytes) Prefix(a, b Output[[]byte]) Output[[]byte] {
	if !a.ok || !b.ok || len(a.value) == 0 || len(b.value) == 0 {
		return None[[]byte]()
	}
	n := commonPrefixLen(a.value, b.value)
	if n == 0 {
		return None[[]byte]()
	}

	return Some(a.value[:n:n])
}

// Concat returns a followed by b. An absent or empty side yields the other
// side unchanged; two empty sides yield absent.
func (Bytes) Concat(a, b Output[[]byte]) Output[[]byte] {
	switch {
	case !a.ok || len(a.value) == 0:
		if !b.ok || len(b.value) == 0 {
			return None[[]byte]()
		}
		return b
	case !b.ok || len(b.value) == 0:
		return a
	}
	c := make([]byte, 0, len(a.value)+len(b.value))
	c = append(c, a.value...)
	c = append(c, b.value...)

	return Some(c)
}

// Subtract drops len(b) leading bytes from a. b is expected to be a prefix
// of a (as produced by Prefix); nothing remaining yields absent.
func (Bytes) Subtract(a, b Output[[]byte]) Output[[]byte] {
	if !a.ok || len(a.value) == 0 {
		return None[[]byte]()
	}
	if !b.ok {
		return a
	}
	if len(b.value) >= len(a.value) {
		return None[[]byte]()
	}

	return Some(a.value[len(b.value):])
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
