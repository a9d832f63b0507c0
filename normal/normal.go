// Package normal draws standard normal variates, N(0, 1), by the inverse-CDF
// transform of uniform(0, 1) draws.
//
// The randomness source is owned by the caller: Default shares the
// goroutine-safe global generator of math/rand/v2, NewSeeded gives a
// reproducible stream, and New accepts any rand.Source.
package normal

import (
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler yields independent draws from the standard normal distribution.
type Sampler interface {
	StandardNormal() float64
}

// Func adapts a plain function to the Sampler interface.
type Func func() float64

// StandardNormal calls f.
func (f Func) StandardNormal() float64 { return f() }

// InverseCDF maps a uniform draw u ∈ (0, 1) through the standard normal
// quantile function Φ⁻¹. A zero value is not usable; build one with New,
// NewSeeded or Default.
type InverseCDF struct {
	mu      sync.Mutex
	uniform func() float64
	locked  bool
}

var _ Sampler = (*InverseCDF)(nil)

// New returns a sampler drawing uniforms from src. Access to src is
// serialised, so the sampler is safe for concurrent use even though most
// rand.Source implementations are not.
func New(src rand.Source) *InverseCDF {
	return &InverseCDF{uniform: rand.New(src).Float64, locked: true}
}

// NewSeeded returns a reproducible sampler backed by a PCG source.
func NewSeeded(seed uint64) *InverseCDF {
	return New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

var defaultSampler = &InverseCDF{uniform: rand.Float64}

// Default returns the process-wide sampler using the global math/rand/v2
// generator, which is already safe for concurrent use.
func Default() *InverseCDF { return defaultSampler }

// StandardNormal returns Φ⁻¹(u) for a fresh u. Zero is redrawn because
// rand's Float64 range is [0, 1) and Φ⁻¹(0) = -Inf.
func (s *InverseCDF) StandardNormal() float64 {
	return distuv.UnitNormal.Quantile(s.open01())
}

func (s *InverseCDF) open01() float64 {
	if s.locked {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	for {
		if u := s.uniform(); u > 0 {
			return u
		}
	}
}

// Vector fills a fresh slice of length n from s.
func Vector(s Sampler, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.StandardNormal()
	}

	return out
}
