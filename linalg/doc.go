// Package linalg is the decomposition boundary of the module: eigenvalues and
// singular value decomposition of dense square matrices.
//
// Callers depend on the Provider interface; Gonum is the default
// implementation and delegates to gonum.org/v1/gonum/mat.
//
// ⚙️ Usage:
//
//	var p linalg.Provider = linalg.Gonum{}
//	vals, err := p.Eigenvalues(cov) // real parts, general eigenproblem
//	f, err := p.SVD(cov)            // cov = U · diag(S) · Vᵀ, S descending
//
// Both operations cost O(n³) and never mutate their input.
package linalg
