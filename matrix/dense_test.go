// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mvnormal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestDense_AtSet(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 4.5))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	t.Run("copies input", func(t *testing.T) {
		src := [][]float64{{1, 2}, {3, 4}}
		d := mustRows(t, src)
		src[0][0] = 99

		v, err := d.At(0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1.0, v, "Dense must not alias its input")
	})

	t.Run("empty", func(t *testing.T) {
		d := mustRows(t, nil)
		assert.Equal(t, 0, d.Rows())
		assert.Equal(t, 0, d.Cols())
		assert.Empty(t, d.ToRows())
	})

	t.Run("ragged", func(t *testing.T) {
		_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
		assert.ErrorIs(t, err, matrix.ErrRagged)
	})

	t.Run("non-finite", func(t *testing.T) {
		_, err := matrix.NewDenseFromRows([][]float64{{1, math.Inf(1)}})
		assert.ErrorIs(t, err, matrix.ErrNaNInf)
	})
}

func TestDense_CloneAndToRowsIndependent(t *testing.T) {
	t.Parallel()

	d := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	c := d.Clone()
	require.NoError(t, d.Set(0, 0, -1))

	v, err := c.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	rows := d.ToRows()
	rows[1][1] = 100
	v, err = d.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	assert.Nil(t, d.Row(5))
	assert.Equal(t, "[-1, 2]\n[3, 4]\n", d.String())
}
