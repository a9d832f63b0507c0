// SPDX-License-Identifier: MIT

package mvn

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/mvnormal/linalg"
	"github.com/katalvlaran/mvnormal/normal"
)

// Option configures a Distribution at construction time. Distributions
// derived through SetMean/SetCov inherit the options of their parent.
type Option func(*settings)

// settings stores the effective configuration after applying Option setters.
type settings struct {
	sampler  normal.Sampler
	provider linalg.Provider
	logger   *slog.Logger
}

// discardLogger is the zero-cost default; the library stays silent unless
// the caller hands it a logger.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func gatherOptions(opts []Option) *settings {
	s := &settings{
		sampler:  normal.Default(),
		provider: linalg.Gonum{},
		logger:   discardLogger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// WithSampler sets the standard-normal source used by Sample. A nil sampler
// keeps the default (normal.Default()). Concurrent Sample calls are safe only
// when the sampler is.
func WithSampler(s normal.Sampler) Option {
	return func(o *settings) {
		if s != nil {
			o.sampler = s
		}
	}
}

// WithSeed makes sampling reproducible with a dedicated seeded generator.
// The generator is shared with every Distribution derived from this one.
func WithSeed(seed uint64) Option {
	return func(o *settings) { o.sampler = normal.NewSeeded(seed) }
}

// WithProvider sets the linear-algebra provider used for eigenvalues and SVD.
// A nil provider keeps the default (linalg.Gonum).
func WithProvider(p linalg.Provider) Option {
	return func(o *settings) {
		if p != nil {
			o.provider = p
		}
	}
}

// WithLogger routes debug-level construction events to l.
// A nil logger keeps the library silent.
func WithLogger(l *slog.Logger) Option {
	return func(o *settings) {
		if l != nil {
			o.logger = l
		}
	}
}
