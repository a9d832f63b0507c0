package mvn_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mvnormal/mvn"
	"github.com/katalvlaran/mvnormal/normal"
)

// ExampleNew builds a 3-dimensional distribution and reads it back.
func ExampleNew() {
	d, err := mvn.New(
		[]float64{1, 2, 0},
		[][]float64{
			{1, 0.9, 0.9},
			{0.9, 1, 0.8},
			{0.9, 0.8, 1},
		},
		mvn.WithSeed(42),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(d.Dim(), len(d.Sample()))
	fmt.Println(d.Mean())

	// Output:
	// 3 3
	// [1 2 0]
}

// ExampleNew_validation shows how validation failures are classified.
func ExampleNew_validation() {
	_, err := mvn.New([]float64{0, 0}, [][]float64{{1, 0.9}, {0.8, 1}})
	fmt.Println(errors.Is(err, mvn.ErrNotSymmetric))

	_, err = mvn.New([]float64{1, 2, 0}, [][]float64{{1, 0}, {0, 1}})
	fmt.Println(err)

	// Output:
	// true
	// mvn: invalid shape: covariance matrix had 2 rows, but it should be a 3x3 square matrix
}

// ExampleDistribution_SetMean derives a shifted distribution; with a
// zero-noise sampler every draw is exactly the mean.
func ExampleDistribution_SetMean() {
	zero := normal.Func(func() float64 { return 0 })
	d, _ := mvn.New([]float64{0, 0}, [][]float64{{2, 1}, {1, 2}}, mvn.WithSampler(zero))

	shifted, _ := d.SetMean([]float64{10, -10})
	fmt.Println(d.Sample(), shifted.Sample())

	_, err := d.SetMean([]float64{0, 1, 1})
	fmt.Println(err)

	// Output:
	// [0 0] [10 -10]
	// mvn: invalid shape: wrong length: expected mean to have length 2, but had length 3
}
