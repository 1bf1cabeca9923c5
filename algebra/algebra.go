package algebra

// Identity compares and encodes output values for structural state equality.
type Identity[T any] interface {
	// Equal reports whether a and b are the same output value.
	Equal(a, b T) bool

	// AppendKey appends a deterministic binary encoding of v to dst.
	// Equal values MUST encode identically; the encoding feeds state
	// fingerprints only and is never decoded.
	AppendKey(dst []byte, v T) []byte
}

// Algebra is the output-factoring contract consumed by the builder.
//
// Prefix, Concat and Subtract operate on optional values: an absent operand
// means "no output" and the result may itself be absent.
type Algebra[T any] interface {
	Identity[T]

	// Default returns the seed value of the algebra (its zero output).
	Default() T

	// Prefix returns the greatest shared prefix of a and b, or absent when
	// either operand is absent or nothing is shared.
	Prefix(a, b Output[T]) Output[T]

	// Concat re-attaches the previously extracted remainder a in front of
	// the downstream value b.
	Concat(a, b Output[T]) Output[T]

	// Subtract removes the common prefix b from a.
	Subtract(a, b Output[T]) Output[T]
}
