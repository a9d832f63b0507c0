// SPDX-License-Identifier: MIT

package mvn

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by validation. Every failure wraps exactly one of
// them with context (row index, expected vs. actual length); match with
// errors.Is. ErrLength wraps ErrShape, so a length mismatch also matches
// ErrShape.
var (
	// ErrShape indicates an input that is not a sequence, or a matrix with the
	// wrong row count.
	ErrShape = errors.New("mvn: invalid shape")

	// ErrLength indicates a sequence with the wrong number of elements.
	ErrLength = fmt.Errorf("%w: wrong length", ErrShape)

	// ErrType indicates an element that is not a finite real number.
	ErrType = errors.New("mvn: not a finite number")

	// ErrNotSymmetric indicates a covariance that differs from its transpose
	// under exact comparison.
	ErrNotSymmetric = errors.New("mvn: covariance isn't symmetric")

	// ErrNotPositiveSemidefinite indicates a covariance with a negative eigenvalue.
	ErrNotPositiveSemidefinite = errors.New("mvn: covariance isn't positive semidefinite")
)
