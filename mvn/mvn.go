// SPDX-License-Identifier: MIT

package mvn

import "fmt"

// New validates mean and cov and returns the distribution N(mean, cov).
// The dimensionality is len(mean). Inputs are copied: later changes to the
// caller's slices do not affect the Distribution.
//
// Errors (first failure wins, in this order): mean ErrType / ErrLength, then
// covariance ErrShape, ErrLength, ErrType, ErrNotPositiveSemidefinite,
// ErrNotSymmetric.
func New(mean []float64, cov [][]float64, opts ...Option) (*Distribution, error) {
	return construct(mean, cov, opts)
}

// FromValues is New for untyped parameters, typically decoded from JSON or
// YAML: mean must be a sequence of numbers and cov a sequence of number
// sequences. Any Go slice or array of integer or float kinds, json.Number,
// and []any wrappers of those are accepted.
//
// A mean that is not a sequence fails with ErrShape before anything else.
func FromValues(mean, cov any, opts ...Option) (*Distribution, error) {
	return construct(mean, cov, opts)
}

func construct(mean, cov any, opts []Option) (*Distribution, error) {
	cfg := gatherOptions(opts)

	seq, ok := sequence(mean)
	if !ok {
		return nil, fmt.Errorf("%w: mean must be an array", ErrShape)
	}
	n := seq.Len()

	m, err := ValidateMean(mean, n)
	if err != nil {
		cfg.logger.Debug("mean rejected", "err", err)
		return nil, err
	}
	c, f, err := ValidateCovAndSVD(cov, n, cfg.provider)
	if err != nil {
		cfg.logger.Debug("covariance rejected", "err", err)
		return nil, err
	}

	return newDistribution(n, m, c, f, cfg)
}
