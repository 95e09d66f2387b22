package fernet

import (
	"crypto/rand"
	"io"
	"log/slog"
	"time"
)

// config holds the collaborators used by a single operation.
type config struct {
	now    func() time.Time
	rand   io.Reader
	logger *slog.Logger
}

// Option configures an operation.
type Option func(*config)

func newConfig(opts []Option) *config {
	cfg := &config{
		now:    time.Now,
		rand:   rand.Reader,
		logger: discardLogger,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

var discardLogger = slog.New(slog.DiscardHandler)

// WithClock sets the clock used to stamp new tokens. A nil clock is ignored.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// WithRandReader sets the entropy source for IVs and generated keys. It
// must be cryptographically secure outside of tests. A nil reader is ignored.
func WithRandReader(r io.Reader) Option {
	return func(c *config) {
		if r != nil {
			c.rand = r
		}
	}
}

// WithLogger sets the logger for failure diagnostics. Records carry the
// error kind only, never key material or plaintext. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
