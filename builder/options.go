// SPDX-License-Identifier: MIT
// Package: lvfst/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs;
//     Add and Finish never panic.
//   • No hidden globals; everything flows through config.

package builder

import (
	"github.com/sirupsen/logrus"
)

// Option customizes a Builder before the first key is added.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithLogger routes build diagnostics to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithCapacityHint pre-sizes the state registry for roughly n canonical
// states. Panics if n < 0.
func WithCapacityHint(n int) Option {
	if n < 0 {
		panic("builder: WithCapacityHint(n<0)")
	}
	return func(c *config) {
		c.capacityHint = n
	}
}

// WithMaxKeyLength rejects keys longer than n bytes with ErrKeyTooLong,
// bounding the working-state buffer. Zero means unlimited. Panics if n < 0.
func WithMaxKeyLength(n int) Option {
	if n < 0 {
		panic("builder: WithMaxKeyLength(n<0)")
	}
	return func(c *config) {
		c.maxKeyLength = n
	}
}
