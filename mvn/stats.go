// SPDX-License-Identifier: MIT

package mvn

import (
	"fmt"

	"github.com/katalvlaran/mvnormal/matrix"
)

// EmpiricalMoments returns the sample mean and the (r−1)-normalised sample
// covariance of samples, one observation per row. At least two rows are
// required; rows must all have the same length.
func EmpiricalMoments(samples [][]float64) ([]float64, [][]float64, error) {
	x, err := matrix.NewDenseFromRows(samples)
	if err != nil {
		return nil, nil, fmt.Errorf("mvn: empirical moments: %w", err)
	}
	cov, means, err := matrix.Covariance(x)
	if err != nil {
		return nil, nil, fmt.Errorf("mvn: empirical moments: %w", err)
	}

	return means, cov.(*matrix.Dense).ToRows(), nil
}
