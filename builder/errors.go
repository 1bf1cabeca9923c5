// SPDX-License-Identifier: MIT
// Package: lvfst/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context (method, offending key) is attached with %w at the call site.
//   • The builder never panics on input; panics are confined to option
//     constructors (WithX) receiving meaningless values.
//   • Input-order failures are fatal and sticky: once Add fails, every later
//     Add and Finish returns the same error and no automaton is produced.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidInputOrder indicates a key that sorts below the previous key in
// unsigned byte-lexicographic order.
// Usage: if errors.Is(err, ErrInvalidInputOrder) { /* sort the input */ }.
var ErrInvalidInputOrder = errors.New("builder: keys out of order")

// ErrDuplicateKey indicates a key equal to the previous key.
// Usage: if errors.Is(err, ErrDuplicateKey) { /* dedupe the input */ }.
var ErrDuplicateKey = errors.New("builder: duplicate key")

// ErrKeyTooLong indicates a key longer than the WithMaxKeyLength limit.
var ErrKeyTooLong = errors.New("builder: key too long")

// ErrBuilderFinished indicates Add or Finish after a successful Finish.
// A Builder processes exactly one key stream.
var ErrBuilderFinished = errors.New("builder: already finished")

// ErrNilAlgebra indicates a Builder created without an output algebra.
var ErrNilAlgebra = errors.New("builder: algebra is nil")

// Method names used as error context prefixes.
const (
	methodAdd    = "Add"
	methodFinish = "Finish"
)

// wrapf attaches method context and a formatted detail to a sentinel.
// The result satisfies errors.Is(result, sentinel).
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", method, sentinel, fmt.Sprintf(format, args...))
}
