// SPDX-License-Identifier: MIT
// Package: lvfst/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • logger       = logrus logger writing to io.Discard
//   • capacityHint = 0   (registry grows on demand)
//   • maxKeyLength = 0   (unlimited)

package builder

import (
	"io"

	"github.com/sirupsen/logrus"
)

// config aggregates all builder knobs. Later options override earlier ones.
type config struct {
	logger       logrus.FieldLogger // build diagnostics
	capacityHint int                // expected canonical states
	maxKeyLength int                // 0 = unlimited
}

// newConfig returns defaults with opts applied in order.
func newConfig(opts ...Option) config {
	cfg := config{
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// discardLogger returns a logger that drops every entry.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
