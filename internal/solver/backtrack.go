package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/kestrelbound/sudokucore/internal/domain"
)

// Backtracking is a recursive DFS solver with per-row/column/box
// bitset domains and MRV (Minimum Remaining Values) cell selection.
// Domains generalize the fixed-9 int-mask tricks a hand-rolled solver
// would use into github.com/bits-and-blooms/bitset values sized to N,
// so N up to 25 (and beyond) never risks overflowing a machine word.
type Backtracking struct {
	dim domain.BoardDimension
}

// NewBacktracking constructs a Backtracking solver for the given
// dimension. The same instance may be reused across many Solve calls;
// no state survives between calls.
func NewBacktracking(dim domain.BoardDimension) *Backtracking {
	return &Backtracking{dim: dim}
}

func (s *Backtracking) Name() string { return "backtrack" }

type backtrackState struct {
	dim               domain.BoardDimension
	grid              []int
	row, col, box     []*bitset.BitSet
	iterations        uint64
	backtracks        uint64
}

func newBacktrackState(dim domain.BoardDimension, cells []int) (*backtrackState, error) {
	n := dim.N
	st := &backtrackState{
		dim:  dim,
		grid: append([]int(nil), cells...),
		row:  make([]*bitset.BitSet, n),
		col:  make([]*bitset.BitSet, n),
		box:  make([]*bitset.BitSet, n),
	}
	for i := 0; i < n; i++ {
		st.row[i] = bitset.New(uint(n))
		st.col[i] = bitset.New(uint(n))
		st.box[i] = bitset.New(uint(n))
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := st.grid[r*n+c]
			if v == 0 {
				continue
			}
			b := dim.BoxOf(r, c)
			bit := uint(v - 1)
			if st.row[r].Test(bit) || st.col[c].Test(bit) || st.box[b].Test(bit) {
				return nil, fmt.Errorf("%w: duplicate %d at row %d or col %d or box %d", domain.ErrContradictoryInput, v, r, c, b)
			}
			st.row[r].Set(bit)
			st.col[c].Set(bit)
			st.box[b].Set(bit)
		}
	}
	return st, nil
}

// candidates returns the free-digit bitset for cell (r, c): the bits
// not yet claimed by its row, column, or box, restricted to the low N
// bits.
func (st *backtrackState) candidates(r, c int) *bitset.BitSet {
	b := st.dim.BoxOf(r, c)
	union := bitset.New(uint(st.dim.N))
	union.InPlaceUnion(st.row[r])
	union.InPlaceUnion(st.col[c])
	union.InPlaceUnion(st.box[b])
	return union.Complement()
}

// selectCell scans empty cells in row-major order and returns the one
// with the fewest candidates (MRV), breaking ties by scan order. ok is
// false if the board is already complete.
func (st *backtrackState) selectCell() (r, c int, cand *bitset.BitSet, ok bool) {
	n := st.dim.N
	best := -1
	for i := 0; i < n*n; i++ {
		if st.grid[i] != 0 {
			continue
		}
		rr, cc := i/n, i%n
		free := st.candidates(rr, cc)
		count := int(free.Count())
		if best == -1 || count < best {
			best = count
			r, c, cand, ok = rr, cc, free, true
			if best == 0 {
				return
			}
		}
	}
	return
}

func (st *backtrackState) place(r, c, v int) {
	n := st.dim.N
	st.grid[r*n+c] = v
	b := st.dim.BoxOf(r, c)
	bit := uint(v - 1)
	st.row[r].Set(bit)
	st.col[c].Set(bit)
	st.box[b].Set(bit)
}

func (st *backtrackState) unplace(r, c, v int) {
	n := st.dim.N
	st.grid[r*n+c] = 0
	b := st.dim.BoxOf(r, c)
	bit := uint(v - 1)
	st.row[r].Clear(bit)
	st.col[c].Clear(bit)
	st.box[b].Clear(bit)
}

// dfs runs the recursive search. onComplete is invoked with a snapshot
// of the grid whenever a complete assignment is reached; it returns
// true to stop the search entirely (single-solution mode) and false to
// keep searching for more (all-solutions mode, bounded by the caller).
func (st *backtrackState) dfs(ctx context.Context, onComplete func([]int) bool) bool {
	if ctx.Err() != nil {
		return true
	}
	st.iterations++

	r, c, cand, ok := st.selectCell()
	if !ok {
		snap := append([]int(nil), st.grid...)
		return onComplete(snap)
	}
	if cand.Count() == 0 {
		st.backtracks++
		return false
	}

	stop := false
	for i, ok := cand.NextSet(0); ok && !stop; i, ok = cand.NextSet(i + 1) {
		v := int(i) + 1
		st.place(r, c, v)
		if st.dfs(ctx, onComplete) {
			stop = true
		}
		st.unplace(r, c, v)
	}
	if !stop {
		st.backtracks++
	}
	return stop
}

func (s *Backtracking) Solve(ctx context.Context, b *domain.Board) (*domain.SolveResult, error) {
	start := time.Now()
	st, err := newBacktrackState(s.dim, b.Cells)
	if err != nil {
		return &domain.SolveResult{
			Solved:       false,
			Solution:     append([]int(nil), b.Cells...),
			Algorithm:    s.Name(),
			TimeMS:       msSince(start),
			ErrorMessage: err.Error(),
		}, nil
	}

	var solution []int
	st.dfs(ctx, func(snap []int) bool {
		solution = snap
		return true
	})

	if solution == nil {
		return &domain.SolveResult{
			Solved:       false,
			Solution:     append([]int(nil), b.Cells...),
			Algorithm:    s.Name(),
			TimeMS:       msSince(start),
			Iterations:   st.iterations,
			Backtracks:   st.backtracks,
			ErrorMessage: "no solution exists",
		}, nil
	}
	return &domain.SolveResult{
		Solved:     true,
		Solution:   solution,
		Algorithm:  s.Name(),
		TimeMS:     msSince(start),
		Iterations: st.iterations,
		Backtracks: st.backtracks,
	}, nil
}

func (s *Backtracking) FindAllSolutions(ctx context.Context, b *domain.Board, max int) ([]*domain.Board, error) {
	st, err := newBacktrackState(s.dim, b.Cells)
	if err != nil {
		return nil, nil
	}
	var out []*domain.Board
	st.dfs(ctx, func(snap []int) bool {
		board, buildErr := domain.NewBoard(snap, &s.dim)
		if buildErr == nil {
			out = append(out, board)
		}
		return max > 0 && len(out) >= max
	})
	return out, nil
}

func (s *Backtracking) HasUniqueSolution(ctx context.Context, b *domain.Board) (bool, error) {
	solutions, err := s.FindAllSolutions(ctx, b, 2)
	if err != nil {
		return false, err
	}
	return len(solutions) == 1, nil
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Nanoseconds()) / 1e6
}
