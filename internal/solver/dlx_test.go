package solver

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelbound/sudokucore/internal/domain"
)

func nineByNine() domain.BoardDimension {
	return domain.BoardDimension{N: 9, R: 3, C: 3}
}

func TestDancingLinksSolvesEscargot(t *testing.T) {
	s := NewDancingLinks(nineByNine())
	res, err := s.Solve(context.Background(), domain.Escargot9x9())
	require.NoError(t, err)
	require.True(t, res.Solved)
	assert.Equal(t, "dlx", res.Algorithm)

	solved, err := domain.NewBoard(res.Solution, nil)
	require.NoError(t, err)
	assert.True(t, solved.IsSolved())
}

func TestDancingLinksContradictionReturnsUnsolved(t *testing.T) {
	s := NewDancingLinks(nineByNine())
	res, err := s.Solve(context.Background(), domain.Contradictory9x9())
	require.NoError(t, err)
	assert.False(t, res.Solved)
	assert.NotEmpty(t, res.ErrorMessage)
}

func TestDancingLinksFindAllSolutionsBoundedOnEmptyBoard(t *testing.T) {
	s := NewDancingLinks(nineByNine())
	boards, err := s.FindAllSolutions(context.Background(), domain.Empty9x9(), 5)
	require.NoError(t, err)
	assert.Len(t, boards, 5)
	for _, b := range boards {
		assert.True(t, b.IsSolved())
	}
}

func TestDancingLinksHasUniqueSolution(t *testing.T) {
	s := NewDancingLinks(nineByNine())
	unique, err := s.HasUniqueSolution(context.Background(), domain.Escargot9x9())
	require.NoError(t, err)
	assert.True(t, unique)

	notUnique, err := s.HasUniqueSolution(context.Background(), domain.Empty9x9())
	require.NoError(t, err)
	assert.False(t, notUnique)
}

func TestDancingLinksMinimal17(t *testing.T) {
	s := NewDancingLinks(nineByNine())
	res, err := s.Solve(context.Background(), domain.Minimal17())
	require.NoError(t, err)
	require.True(t, res.Solved)
	assert.Greater(t, res.Iterations, uint64(0))
}

func TestDancingLinksAndBacktrackingBothSolveHard16x16(t *testing.T) {
	// Hard16x16 has more than one solution, so the two backends may
	// return different grids; each must be a valid completion that keeps
	// every given.
	dim := domain.BoardDimension{N: 16, R: 4, C: 4}
	dlx := NewDancingLinks(dim)
	bt := NewBacktracking(dim)

	board := domain.Hard16x16()
	dlxRes, err := dlx.Solve(context.Background(), board)
	require.NoError(t, err)
	btRes, err := bt.Solve(context.Background(), board)
	require.NoError(t, err)

	require.True(t, dlxRes.Solved)
	require.True(t, btRes.Solved)
	for _, res := range []*domain.SolveResult{btRes, dlxRes} {
		solved, err := domain.NewBoard(res.Solution, &dim)
		require.NoError(t, err)
		assert.True(t, solved.IsSolved(), res.Algorithm)

		givens := make([]int, len(res.Solution))
		for i, v := range board.Cells {
			if v != 0 {
				givens[i] = res.Solution[i]
			}
		}
		if diff := cmp.Diff(board.Cells, givens); diff != "" {
			t.Errorf("%s changed a given on Hard16x16 (-given +solution):\n%s", res.Algorithm, diff)
		}
	}
}

func TestDancingLinksContextCancellationStopsSearch(t *testing.T) {
	s := NewDancingLinks(nineByNine())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := s.Solve(ctx, domain.Empty9x9())
	require.NoError(t, err)
	assert.False(t, res.Solved)
}

func TestRowIndexRoundTripsThroughDecodeRow(t *testing.T) {
	const n = 9
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for v := 1; v <= n; v++ {
				gotR, gotC, gotV := decodeRow(rowIndex(r, c, v, n), n)
				require.Equal(t, r, gotR)
				require.Equal(t, c, gotC)
				require.Equal(t, v, gotV)
			}
		}
	}
}
