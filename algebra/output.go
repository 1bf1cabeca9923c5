package algebra

// Output is an optional transducer output. The zero value is absent.
type Output[T any] struct {
	value T    // meaningful only when ok is true
	ok    bool // presence flag
}

// Some returns a present output holding v.
func Some[T any](v T) Output[T] {
	return Output[T]{value: v, ok: true}
}

// None returns the absent output.
func None[T any]() Output[T] {
	return Output[T]{}
}

// IsPresent reports whether o carries a value.
func (o Output[T]) IsPresent() bool {
	return o.ok
}

// Get returns the value and its presence flag.
func (o Output[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OrElse returns the value if present, otherwise def.
func (o Output[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}

	return def
}

// EqualOutputs compares two optional outputs with id.Equal.
// Two absent outputs are equal; absent never equals present.
func EqualOutputs[T any](id Identity[T], a, b Output[T]) bool {
	if a.ok != b.ok {
		return false
	}
	if !a.ok {
		return true
	}

	return id.Equal(a.value, b.value)
}

// Output tags written by AppendOutput.
const (
	tagAbsent  byte = 0
	tagPresent byte = 1
)

// AppendOutput appends a tagged binary form of o to dst, so that absent and
// present outputs never encode to the same bytes.
func AppendOutput[T any](id Identity[T], dst []byte, o Output[T]) []byte {
	if !o.ok {
		return append(dst, tagAbsent)
	}
	dst = append(dst, tagPresent)

	return id.AppendKey(dst, o.value)
}
