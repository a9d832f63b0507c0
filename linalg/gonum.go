// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/mvnormal/matrix"
	"gonum.org/v1/gonum/mat"
)

// Operation tags for error wrapping.
const (
	opEigenvalues = "Gonum.Eigenvalues"
	opSVD         = "Gonum.SVD"
)

// Gonum is the default Provider backed by gonum.org/v1/gonum/mat.
// It is stateless and safe for concurrent use.
type Gonum struct{}

var _ Provider = Gonum{}

// toMat copies a square *matrix.Dense into a gonum matrix.
// An empty input returns nil; gonum refuses zero-sized matrices.
func toMat(a *matrix.Dense) (*mat.Dense, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, err
	}
	n := a.Rows()
	if n == 0 {
		return nil, nil
	}

	return mat.NewDense(n, n, a.Flat()), nil
}

// fromMat copies a gonum matrix into a fresh *matrix.Dense.
func fromMat(m mat.Matrix) (*matrix.Dense, error) {
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, m.At(i, j))
		}
	}

	return matrix.NewDenseFromFlat(r, c, data)
}

// Eigenvalues solves the general (non-symmetric) eigenproblem and returns the
// real part of every eigenvalue, in gonum's order.
func (Gonum) Eigenvalues(a *matrix.Dense) ([]float64, error) {
	m, err := toMat(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEigenvalues, err)
	}
	if m == nil {
		return []float64{}, nil
	}

	var eig mat.Eigen
	if ok := eig.Factorize(m, mat.EigenNone); !ok {
		return nil, fmt.Errorf("%s: %w", opEigenvalues, ErrEigenFailed)
	}
	vals := eig.Values(nil)
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = real(v)
	}

	return out, nil
}

// SVD computes the full decomposition a = U · diag(S) · Vᵀ.
func (Gonum) SVD(a *matrix.Dense) (SVD, error) {
	m, err := toMat(a)
	if err != nil {
		return SVD{}, fmt.Errorf("%s: %w", opSVD, err)
	}
	if m == nil {
		u, _ := matrix.NewDenseFromRows(nil)
		v, _ := matrix.NewDenseFromRows(nil)
		return SVD{U: u, S: []float64{}, V: v}, nil
	}

	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDFull); !ok {
		return SVD{}, fmt.Errorf("%s: %w", opSVD, ErrSVDFailed)
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	out := SVD{S: svd.Values(nil)}
	if out.U, err = fromMat(&u); err != nil {
		return SVD{}, fmt.Errorf("%s: %w", opSVD, err)
	}
	if out.V, err = fromMat(&v); err != nil {
		return SVD{}, fmt.Errorf("%s: %w", opSVD, err)
	}

	return out, nil
}
