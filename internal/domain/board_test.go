package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeDimensionCanonicalSizes(t *testing.T) {
	for _, n := range []int{9, 16, 25} {
		dim, err := DecomposeDimension(n)
		require.NoError(t, err)
		assert.Equal(t, n, dim.R*dim.C)
		assert.Equal(t, n, dim.N)
	}
}

func TestDecomposeDimensionPrimeFails(t *testing.T) {
	_, err := DecomposeDimension(13)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestNewBoardValidGrid(t *testing.T) {
	b := Escargot9x9()
	require.NotNil(t, b)
	assert.Equal(t, 9, b.Dim.N)
	assert.True(t, b.IsValid())
}

func TestNewBoardNonSquareFails(t *testing.T) {
	_, err := NewBoard(make([]int, 82), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestNewBoardOutOfRangeFails(t *testing.T) {
	cells := make([]int, 81)
	cells[0] = 10
	_, err := NewBoard(cells, &BoardDimension{N: 9, R: 3, C: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestIsSolvedImpliesValidAndComplete(t *testing.T) {
	b := Escargot9x9()
	assert.False(t, b.IsSolved())
	assert.False(t, b.IsComplete())
}

func TestValidityDetectsRowDuplicate(t *testing.T) {
	b := Contradictory9x9()
	assert.False(t, b.IsValid())
}

func TestSetDoesNotMutateReceiver(t *testing.T) {
	b := Escargot9x9()
	orig := b.Cells[0]
	out, err := b.Set(0, 0, 9)
	require.NoError(t, err)
	assert.Equal(t, orig, b.Cells[0])
	got, _ := out.Get(0, 0)
	assert.Equal(t, 9, got)
}

func TestSetRejectsOutOfRangeValue(t *testing.T) {
	b := Escargot9x9()
	_, err := b.Set(0, 0, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestCountEmptyAndFillRatio(t *testing.T) {
	b := Empty9x9()
	assert.Equal(t, 81, b.CountEmpty())
	assert.Equal(t, 0.0, b.FillRatio())

	b2 := Escargot9x9()
	assert.Equal(t, 81-b2.CountEmpty(), int(b2.FillRatio()*81))
}

func TestGridPreservesRowMajorLayout(t *testing.T) {
	b := Escargot9x9()
	grid := b.Grid()
	require.Len(t, grid, 9)
	for r, row := range grid {
		require.Len(t, row, 9)
		for c, v := range row {
			want, _ := b.Get(r, c)
			assert.Equal(t, want, v)
		}
	}
}
