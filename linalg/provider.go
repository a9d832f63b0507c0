// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"

	"github.com/katalvlaran/mvnormal/matrix"
)

var (
	// ErrEigenFailed indicates that the eigenvalue routine did not converge.
	ErrEigenFailed = errors.New("linalg: eigen decomposition failed")

	// ErrSVDFailed indicates that the singular value decomposition did not converge.
	ErrSVDFailed = errors.New("linalg: singular value decomposition failed")
)

// Provider supplies the decompositions the sampler depends on.
// Implementations must not retain or mutate their argument.
type Provider interface {
	// Eigenvalues returns the real parts of the eigenvalues of the square
	// matrix a. a need not be symmetric.
	Eigenvalues(a *matrix.Dense) ([]float64, error)

	// SVD factors the square matrix a as a = U · diag(S) · Vᵀ with S sorted
	// in descending order.
	SVD(a *matrix.Dense) (SVD, error)
}

// SVD holds the factors of a singular value decomposition.
// The zero value describes the empty (0×0) matrix.
type SVD struct {
	U *matrix.Dense // left singular vectors (columns)
	S []float64     // singular values, descending, non-negative
	V *matrix.Dense // right singular vectors (columns)
}

// Clone returns a deep copy whose buffers share nothing with f.
func (f SVD) Clone() SVD {
	out := SVD{S: append([]float64(nil), f.S...)}
	if f.U != nil {
		out.U = f.U.Clone().(*matrix.Dense)
	}
	if f.V != nil {
		out.V = f.V.Clone().(*matrix.Dense)
	}

	return out
}

// Rank counts singular values strictly greater than tol.
func (f SVD) Rank(tol float64) int {
	r := 0
	for _, s := range f.S {
		if s > tol {
			r++
		}
	}

	return r
}
