// Package mvnormal samples multivariate normal distributions, including
// singular ones.
//
// 🚀 What is mvnormal?
//
//	A small, immutable-by-construction library for N(μ, Σ):
//		• Validation: shape, finiteness, exact symmetry, positive semidefiniteness
//		• Decomposition: Σ = U · diag(S) · Vᵀ, computed once per covariance
//		• Sampling: x = z · (V · diag(√S))ᵀ + μ, for full-rank and singular Σ
//		• Tooling: a CLI to validate, sample, summarise and plot parameters
//
// ✨ Why SVD and not Cholesky?
//
//   - Rank-deficient covariances ([[1,1],[1,1]]) have no Cholesky factor
//     but sample fine through the SVD
//   - Randomness and linear algebra are injected, so draws are reproducible
//     and the backend is swappable
//
// Under the hood, everything is organized under a few subpackages:
//
//	mvn/       — Distribution, New/FromValues, validators, sentinel errors
//	matrix/    — Dense storage, validators and the small kernels sampling needs
//	linalg/    — Provider interface + gonum-backed eigenvalues and SVD
//	normal/    — standard normal samplers (inverse-CDF over math/rand/v2)
//	cmd/mvn/   — command-line tool (validate, sample, stats, plot)
//
// Quick example:
//
//	d, _ := mvn.New([]float64{0, 0}, [][]float64{{1, 0.9}, {0.9, 1}})
//	x := d.Sample() // two strongly correlated values
//
//	go get github.com/katalvlaran/mvnormal/mvn
package mvnormal
