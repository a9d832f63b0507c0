// SPDX-License-Identifier: MIT

package mvn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mvnormal/linalg"
	"github.com/katalvlaran/mvnormal/matrix"
)

// machineEpsilon is the float64 spacing at 1.0 (2⁻⁵²).
const machineEpsilon = 0x1p-52

// ValidateMean checks that mean is a sequence of n finite numbers and returns
// an independent copy.
//
// Checks run in a fixed order, and the first failure wins:
//   - not a slice/array           → ErrShape
//   - an element is not a finite number → ErrType
//   - length differs from n       → ErrLength
func ValidateMean(mean any, n int) ([]float64, error) {
	out, isSeq, bad := floats(mean)
	if !isSeq {
		return nil, fmt.Errorf("%w: mean must be an array", ErrShape)
	}
	if bad >= 0 {
		return nil, fmt.Errorf("%w: mean must be an array of numbers (index %d)", ErrType, bad)
	}
	if len(out) != n {
		return nil, fmt.Errorf("%w: expected mean to have length %d, but had length %d", ErrLength, n, len(out))
	}

	return out, nil
}

// ValidateCovAndSVD checks that cov is a valid n×n covariance matrix and
// decomposes it with p.
//
// Checks run in a fixed order, and the first failure wins:
//  1. cov is not a slice/array, or has ≠ n rows          → ErrShape
//  2. for each row i: not a slice/array                  → ErrShape
//     length ≠ n                                          → ErrLength
//     an element is not a finite number                   → ErrType
//  3. an eigenvalue is negative                           → ErrNotPositiveSemidefinite
//  4. cov[i][j] != cov[j][i] for some i, j (exact)        → ErrNotSymmetric
//
// Positive semidefiniteness is checked before symmetry, so a non-symmetric
// matrix is reported as not PSD when its eigenvalues' real parts are
// negative. Symmetry uses exact equality: a matrix that is symmetric only up to
// floating-point rounding is rejected. The PSD test tolerates eigenvalues no
// further below zero than n·ε·max|λ|, the rounding error of the eigen solver.
//
// The returned matrix and factors are fresh copies owned by the caller.
func ValidateCovAndSVD(cov any, n int, p linalg.Provider) (*matrix.Dense, linalg.SVD, error) {
	if p == nil {
		p = linalg.Gonum{}
	}

	rows, ok := sequence(cov)
	if !ok {
		return nil, linalg.SVD{}, fmt.Errorf("%w: covariance must be an array", ErrShape)
	}
	if rows.Len() != n {
		return nil, linalg.SVD{}, fmt.Errorf("%w: covariance matrix had %d rows, but it should be a %dx%d square matrix",
			ErrShape, rows.Len(), n, n)
	}

	data := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		row := rows.Index(i).Interface()
		rv, ok := sequence(row)
		if !ok {
			return nil, linalg.SVD{}, fmt.Errorf("%w: row %d of covariance matrix was not an array", ErrShape, i)
		}
		if rv.Len() != n {
			return nil, linalg.SVD{}, fmt.Errorf("%w: row %d of covariance matrix had length %d, but it should have length %d",
				ErrLength, i, rv.Len(), n)
		}
		vals, _, bad := floats(row)
		if bad >= 0 {
			return nil, linalg.SVD{}, fmt.Errorf("%w: row %d of covariance matrix contained a non-numeric value (column %d)",
				ErrType, i, bad)
		}
		data = append(data, vals...)
	}

	m, err := matrix.NewDenseFromFlat(n, n, data)
	if err != nil {
		return nil, linalg.SVD{}, err
	}

	if err = checkPSD(m, p); err != nil {
		return nil, linalg.SVD{}, err
	}

	mt, err := matrix.Transpose(m)
	if err != nil {
		return nil, linalg.SVD{}, err
	}
	symmetric, err := matrix.Equal(m, mt)
	if err != nil {
		return nil, linalg.SVD{}, err
	}
	if !symmetric {
		return nil, linalg.SVD{}, ErrNotSymmetric
	}

	f, err := p.SVD(m)
	if err != nil {
		return nil, linalg.SVD{}, fmt.Errorf("mvn: decompose covariance: %w", err)
	}

	return m, f.Clone(), nil
}

// checkPSD rejects matrices with an eigenvalue below -n·ε·max|λ|.
func checkPSD(m *matrix.Dense, p linalg.Provider) error {
	vals, err := p.Eigenvalues(m)
	if err != nil {
		return fmt.Errorf("mvn: eigenvalues of covariance: %w", err)
	}

	var maxAbs float64
	for _, v := range vals {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	tol := float64(len(vals)) * machineEpsilon * maxAbs
	for _, v := range vals {
		if v < -tol {
			return fmt.Errorf("%w: eigenvalue %g", ErrNotPositiveSemidefinite, v)
		}
	}

	return nil
}
