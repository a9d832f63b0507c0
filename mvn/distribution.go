// SPDX-License-Identifier: MIT

package mvn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mvnormal/linalg"
	"github.com/katalvlaran/mvnormal/matrix"
	"github.com/katalvlaran/mvnormal/normal"
)

// rankTol is the singular-value cutoff used when reporting rank in logs.
const rankTol = 1e-12

// Distribution is an immutable multivariate normal distribution N(μ, Σ).
//
// A Distribution is obtained only from New or FromValues, which validate the
// parameters first. Its state is private and never mutated: accessors return
// copies, and SetMean/SetCov return new instances. Instances may share
// read-only factors with the instance they were derived from.
//
// All methods are safe for concurrent use provided the configured sampler is.
type Distribution struct {
	n    int
	mean []float64
	cov  *matrix.Dense
	svd  linalg.SVD

	// transform is (V · diag(√S))ᵀ, so a sample is z · transform + μ.
	transform matrix.Matrix

	cfg *settings
}

// newDistribution assembles a Distribution from already-validated parts and
// derives the sampling transform once.
func newDistribution(n int, mean []float64, cov *matrix.Dense, svd linalg.SVD, cfg *settings) (*Distribution, error) {
	sqrtS := make([]float64, len(svd.S))
	for i, s := range svd.S {
		sqrtS[i] = math.Sqrt(math.Max(s, 0))
	}
	scaled, err := matrix.ScaleCols(svd.V, sqrtS)
	if err != nil {
		return nil, fmt.Errorf("mvn: build sampling transform: %w", err)
	}
	transform, err := matrix.Transpose(scaled)
	if err != nil {
		return nil, fmt.Errorf("mvn: build sampling transform: %w", err)
	}

	cfg.logger.Debug("distribution constructed",
		"dim", n,
		"rank", svd.Rank(rankTol),
		"singular_values", svd.S,
	)

	return &Distribution{
		n:         n,
		mean:      mean,
		cov:       cov,
		svd:       svd,
		transform: transform,
		cfg:       cfg,
	}, nil
}

// Dim returns the dimensionality n.
func (d *Distribution) Dim() int { return d.n }

// Sample draws one vector x = z · (V · diag(√S))ᵀ + μ where z holds n
// independent standard normal draws and Σ = U · diag(S) · Vᵀ.
// Using the SVD rather than a Cholesky factor lets singular (rank-deficient)
// covariance matrices be sampled. The returned slice is freshly allocated.
//
// Complexity: O(n²) per draw.
func (d *Distribution) Sample() []float64 {
	z := normal.Vector(d.cfg.sampler, d.n)
	x, err := matrix.VecMat(z, d.transform)
	if err != nil {
		// shapes are fixed at construction
		panic(fmt.Sprintf("mvn: sample: %v", err))
	}
	for i := range x {
		x[i] += d.mean[i]
	}

	return x
}

// Mean returns a copy of μ.
func (d *Distribution) Mean() []float64 {
	return append(make([]float64, 0, d.n), d.mean...)
}

// SetMean returns a new Distribution with mean replaced and the covariance
// (and its decomposition) kept. The receiver is unchanged. Validation errors
// from ValidateMean are returned as is.
func (d *Distribution) SetMean(mean []float64) (*Distribution, error) {
	m, err := ValidateMean(mean, d.n)
	if err != nil {
		d.cfg.logger.Debug("mean rejected", "err", err)
		return nil, err
	}

	return &Distribution{
		n:         d.n,
		mean:      m,
		cov:       d.cov,
		svd:       d.svd,
		transform: d.transform,
		cfg:       d.cfg,
	}, nil
}

// Cov returns a copy of Σ as rows.
func (d *Distribution) Cov() [][]float64 { return d.cov.ToRows() }

// SetCov returns a new Distribution with the covariance replaced, fully
// revalidated and freshly decomposed. The receiver is unchanged. Validation
// errors from ValidateCovAndSVD are returned as is.
func (d *Distribution) SetCov(cov [][]float64) (*Distribution, error) {
	m, f, err := ValidateCovAndSVD(cov, d.n, d.cfg.provider)
	if err != nil {
		d.cfg.logger.Debug("covariance rejected", "err", err)
		return nil, err
	}

	return newDistribution(d.n, d.mean, m, f, d.cfg)
}

// SVD returns a deep copy of the cached decomposition Σ = U · diag(S) · Vᵀ.
func (d *Distribution) SVD() linalg.SVD { return d.svd.Clone() }

// String implements fmt.Stringer.
func (d *Distribution) String() string {
	return fmt.Sprintf("mvn.Distribution(n=%d, mean=%v)", d.n, d.mean)
}
