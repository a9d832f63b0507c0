// Package mvn builds and samples multivariate normal distributions.
//
// 🚀 What is it?
//
//	N(μ, Σ) over n dimensions, parameterised by a mean vector μ and a
//	covariance matrix Σ. Parameters are validated once (finite, n×n, exactly
//	symmetric, positive semidefinite) and Σ is decomposed once by SVD,
//	Σ = U · diag(S) · Vᵀ. Every draw is then
//
//	  x = z · (V · diag(√S))ᵀ + μ,   z ~ N(0, I)
//
//	which also works for singular (rank-deficient) Σ.
//
// ✨ Key properties:
//   - Distributions are immutable values: Mean/Cov return copies and
//     SetMean/SetCov return new Distributions.
//   - Randomness is injected (WithSampler, WithSeed); decompositions come
//     from a pluggable linalg.Provider (gonum by default).
//   - Validation failures match the sentinels ErrShape, ErrLength, ErrType,
//     ErrNotPositiveSemidefinite and ErrNotSymmetric via errors.Is.
//
// ⚙️ Usage:
//
//	d, err := mvn.New(
//	    []float64{1, 2, 3},
//	    [][]float64{
//	        {1.0, 0.0, 0.9},
//	        {0.0, 1.0, 0.0},
//	        {0.9, 0.0, 1.0},
//	    },
//	    mvn.WithSeed(42),
//	)
//	if err != nil {
//	    // handle validation error
//	}
//	x := d.Sample()                           // one correlated draw
//	d2, err := d.SetMean([]float64{0, 0, 0}) // new Distribution; d is unchanged
//
// Performance:
//
//   - Construction and SetCov: O(n³) (eigenvalues + SVD)
//   - Sample: O(n²)
package mvn
