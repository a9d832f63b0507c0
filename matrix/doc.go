// Package matrix provides the dense linear-algebra primitives used by the
// multivariate normal sampler.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and
//     non-aliasing constructors (NewDenseFromRows, ToRows).
//   - Validators (ValidateSquare, ValidateFinite, ValidateVecLen, ...)
//     returning sentinel errors for errors.Is matching.
//   - Kernels: Transpose, Mul, VecMat, ScaleCols and exact Equal.
//   - Column statistics: CenterColumns and the sample Covariance.
//
// Decompositions (eigenvalues, SVD) live in package linalg.
//
// See the examples in this package for usage patterns.
package matrix
