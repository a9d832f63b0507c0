// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide column statistics (centering, sample covariance) as deterministic
//     compositions over the canonical kernels (Transpose/Mul).
//
// Exposed API:
//   - CenterColumns(X) -> (Xc, means)  // subtract per-column mean
//   - Covariance(X)    -> (Cov, means) // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At and operate on row-major flat buffers.

package matrix

// Operation name constants for unified error wrapping.
const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// CenterColumns subtracts the per-column mean from every element.
//
// Implementation:
//   - Stage 1: Validate X (non-nil); zero-size input returns a 0-size copy.
//   - Stage 2: Compute column means in a deterministic pass.
//   - Stage 3: Write X[i,j] - mean[j] into a fresh Dense.
//
// Returns:
//   - Matrix: centered copy (r×c).
//   - []float64: column means (len=c).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(c) means).
func CenterColumns(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)
	out, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	if r == 0 || c == 0 {
		return out, means, nil
	}

	// copy into out while accumulating column sums
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if d, ok := X.(*Dense); ok {
				v = d.data[i*c+j]
			} else if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opCenterColumns, err)
			}
			out.data[i*c+j] = v
			means[j] += v
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			out.data[base+j] -= means[j]
		}
	}

	return out, means, nil
}

// Covariance computes the sample covariance of the columns of X.
//
// Implementation:
//   - Stage 1: Validate X; c==0 yields a 0×0 covariance; r<2 is rejected.
//   - Stage 2: Center columns via CenterColumns.
//   - Stage 3: Cov = (Xcᵀ Xc)/(r-1) via Transpose and Mul.
//
// Returns:
//   - Matrix: covariance (c×c), symmetric up to rounding.
//   - []float64: column means.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2 with c>0).
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c + c^2).
//
// AI-Hints:
//   - Rows are observations and columns are variables, so a list of samples
//     loaded with NewDenseFromRows can be passed directly.
func Covariance(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	r, c := X.Rows(), X.Cols()
	if c == 0 {
		z, err := newDenseZeroOK(0, 0)
		if err != nil {
			return nil, nil, matrixErrorf(opCovariance, err)
		}
		return z, make([]float64, 0), nil
	}
	// sample covariance requires at least two observations
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	// Mul always returns *Dense
	cov := G.(*Dense)
	inv := 1.0 / float64(r-1)
	for k := range cov.data {
		cov.data[k] *= inv
	}

	return cov, means, nil
}
