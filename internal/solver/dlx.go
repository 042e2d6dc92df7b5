package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/kestrelbound/sudokucore/internal/domain"
)

// DancingLinks implements Algorithm X over the toroidal exact-cover
// matrix for Sudoku: 4*N^2 constraint columns (cell, row-digit,
// column-digit, box-digit) and up to N^3 candidate-placement rows.
// Generalizes the teacher's fixed nSize=9 constants into per-call
// dimension parameters.
type DancingLinks struct {
	dim domain.BoardDimension
}

// NewDancingLinks constructs a DLX solver for the given dimension.
func NewDancingLinks(dim domain.BoardDimension) *DancingLinks {
	return &DancingLinks{dim: dim}
}

func (s *DancingLinks) Name() string { return "dlx" }

// dlxNode is a single 1-entry in the exact-cover matrix, or (for the
// first nCols+1 indices) a column header / vertical sentinel. Nodes
// live in a single arena slice on dlxMatrix; left/right/up/down are
// arena indices, never pointers, so the arena can be dropped as a
// whole when the solve returns.
type dlxNode struct {
	left, right, up, down int
	colID                 int // owning column id (0-based); for headers, colID == own id
	rowID                 int // candidate id (r,c,v), meaningful only on non-header nodes
}

// dlxMatrix owns the arena for exactly one solve invocation.
type dlxMatrix struct {
	dim   domain.BoardDimension
	n     int
	cells []int // the input grid, including givens; search results are overlaid onto a copy of this

	nodes     []dlxNode
	colSize   []int
	colActive []bool

	rowHead []int // rowID -> arena index of one of its 4 nodes, or -1 if the row was never created

	activeCount int
	iterations  uint64
	backtracks  uint64
}

func rowIndex(r, c, v, n int) int {
	return (r*n+c)*n + (v - 1)
}

func decodeRow(row, n int) (r, c, v int) {
	cell := row / n
	v = row%n + 1
	r = cell / n
	c = cell % n
	return
}

func rowColumns(r, c, v int, dim domain.BoardDimension) [4]int {
	n := dim.N
	nCells := n * n
	cell := r*n + c
	rowN := nCells + r*n + (v - 1)
	colN := nCells*2 + c*n + (v - 1)
	box := dim.BoxOf(r, c)
	boxN := nCells*3 + box*n + (v - 1)
	return [4]int{cell, rowN, colN, boxN}
}

// newDLXMatrix builds the full candidate matrix and applies the
// given clues as covers before the search begins. Returns
// ErrContradictoryInput if a given clue's row touches a column that an
// earlier given already covered (the two givens conflict).
func newDLXMatrix(dim domain.BoardDimension, cells []int) (*dlxMatrix, error) {
	n := dim.N
	nCells := n * n
	nCols := 4 * nCells
	nRows := nCells * n

	m := &dlxMatrix{
		dim:       dim,
		n:         n,
		cells:     append([]int(nil), cells...),
		nodes:     make([]dlxNode, 1+nCols, 1+nCols+4*nRows), // headers now, room for every candidate row
		colSize:   make([]int, nCols),
		colActive: make([]bool, nCols),
		rowHead:   make([]int, nRows),
	}
	for i := range m.rowHead {
		m.rowHead[i] = -1
	}
	for id := 0; id < nCols; id++ {
		idx := 1 + id
		m.nodes[idx] = dlxNode{up: idx, down: idx, colID: id}
		m.colActive[id] = true
	}
	m.activeCount = nCols

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			existing := cells[r*n+c]
			for v := 1; v <= n; v++ {
				if existing != 0 && existing != v {
					continue
				}
				rowID := rowIndex(r, c, v, n)
				cols := rowColumns(r, c, v, dim)
				first := -1
				prevIdx := -1
				for _, colID := range cols {
					newIdx := len(m.nodes)
					m.nodes = append(m.nodes, dlxNode{colID: colID, rowID: rowID})
					header := 1 + colID
					up := m.nodes[header].up
					m.nodes[newIdx].up = up
					m.nodes[newIdx].down = header
					m.nodes[up].down = newIdx
					m.nodes[header].up = newIdx
					m.colSize[colID]++

					if first == -1 {
						first = newIdx
						m.nodes[newIdx].left = newIdx
						m.nodes[newIdx].right = newIdx
					} else {
						right := m.nodes[prevIdx].right
						m.nodes[newIdx].left = prevIdx
						m.nodes[newIdx].right = right
						m.nodes[right].left = newIdx
						m.nodes[prevIdx].right = newIdx
					}
					prevIdx = newIdx
				}
				m.rowHead[rowID] = first
			}
		}
	}

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := cells[r*n+c]
			if v == 0 {
				continue
			}
			if err := m.applyGiven(r, c, v); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func (m *dlxMatrix) applyGiven(r, c, v int) error {
	rowID := rowIndex(r, c, v, m.n)
	head := m.rowHead[rowID]
	if head == -1 {
		return fmt.Errorf("%w: given (%d,%d)=%d conflicts with an earlier given", domain.ErrContradictoryInput, r, c, v)
	}
	j := head
	for {
		if !m.colActive[m.nodes[j].colID] {
			return fmt.Errorf("%w: given (%d,%d)=%d conflicts with an earlier given", domain.ErrContradictoryInput, r, c, v)
		}
		j = m.nodes[j].right
		if j == head {
			break
		}
	}
	for {
		m.cover(m.nodes[j].colID)
		j = m.nodes[j].right
		if j == head {
			break
		}
	}
	return nil
}

// cover removes a column and every row that intersects it from the
// active matrix. Column membership is tracked via colActive rather
// than unlinking headers from a shared ring, mirroring the teacher's
// array-of-columns scheme generalized to an index arena.
func (m *dlxMatrix) cover(colID int) {
	if m.colActive[colID] {
		m.colActive[colID] = false
		m.activeCount--
	}
	header := 1 + colID
	for i := m.nodes[header].down; i != header; i = m.nodes[i].down {
		for j := m.nodes[i].right; j != i; j = m.nodes[j].right {
			u, d := m.nodes[j].up, m.nodes[j].down
			m.nodes[u].down = d
			m.nodes[d].up = u
			m.colSize[m.nodes[j].colID]--
		}
	}
}

// uncover is the exact inverse of cover, applied in reverse order.
func (m *dlxMatrix) uncover(colID int) {
	header := 1 + colID
	for i := m.nodes[header].up; i != header; i = m.nodes[i].up {
		for j := m.nodes[i].left; j != i; j = m.nodes[j].left {
			m.colSize[m.nodes[j].colID]++
			u, d := m.nodes[j].up, m.nodes[j].down
			m.nodes[u].down = j
			m.nodes[d].up = j
		}
	}
	if !m.colActive[colID] {
		m.colActive[colID] = true
		m.activeCount++
	}
}

// chooseColumn implements the S-heuristic: the active column with the
// smallest size, ties broken by ascending column id (first-encountered
// order).
func (m *dlxMatrix) chooseColumn() int {
	best := -1
	bestSize := 0
	for id, active := range m.colActive {
		if !active {
			continue
		}
		if best == -1 || m.colSize[id] < bestSize {
			best = id
			bestSize = m.colSize[id]
			if bestSize == 0 {
				break
			}
		}
	}
	return best
}

// search runs Algorithm X. sol accumulates the arena index of the
// chosen row at each depth. onSolution is called with the solution's
// row indices whenever every column is satisfied; it returns true to
// stop the whole search (single-solution / limit-reached modes).
func (m *dlxMatrix) search(ctx context.Context, depth int, sol []int, onSolution func([]int) bool) bool {
	m.iterations++
	if ctx.Err() != nil {
		return true
	}
	if m.activeCount == 0 {
		return onSolution(sol[:depth])
	}

	colID := m.chooseColumn()
	if colID == -1 || m.colSize[colID] == 0 {
		m.backtracks++
		return false
	}

	m.cover(colID)
	header := 1 + colID
	stop := false
	for rowNode := m.nodes[header].down; rowNode != header; rowNode = m.nodes[rowNode].down {
		sol[depth] = rowNode
		for j := m.nodes[rowNode].right; j != rowNode; j = m.nodes[j].right {
			m.cover(m.nodes[j].colID)
		}
		childStop := m.search(ctx, depth+1, sol, onSolution)
		for j := m.nodes[rowNode].left; j != rowNode; j = m.nodes[j].left {
			m.uncover(m.nodes[j].colID)
		}
		if childStop {
			stop = true
			break
		}
		m.backtracks++
	}
	m.uncover(colID)
	return stop
}

// gridFromSolution reconstructs the completed grid from the search's
// chosen rows, seeded from the original givens rather than an all-zero
// grid: given cells never get a rowNode pushed onto sol (their columns
// were already covered by applyGiven before the search started), so
// starting from zero would silently drop every clue.
func (m *dlxMatrix) gridFromSolution(sol []int) []int {
	out := append([]int(nil), m.cells...)
	for _, idx := range sol {
		r, c, v := decodeRow(m.nodes[idx].rowID, m.n)
		out[r*m.n+c] = v
	}
	return out
}

func (s *DancingLinks) Solve(ctx context.Context, b *domain.Board) (*domain.SolveResult, error) {
	start := time.Now()
	m, err := newDLXMatrix(s.dim, b.Cells)
	if err != nil {
		return &domain.SolveResult{
			Solved:       false,
			Solution:     append([]int(nil), b.Cells...),
			Algorithm:    s.Name(),
			TimeMS:       msSince(start),
			ErrorMessage: err.Error(),
		}, nil
	}

	sol := make([]int, m.n*m.n)
	var solution []int
	m.search(ctx, 0, sol, func(rows []int) bool {
		solution = m.gridFromSolution(rows)
		return true
	})

	if solution == nil {
		return &domain.SolveResult{
			Solved:       false,
			Solution:     append([]int(nil), b.Cells...),
			Algorithm:    s.Name(),
			TimeMS:       msSince(start),
			Iterations:   m.iterations,
			Backtracks:   m.backtracks,
			ErrorMessage: "no solution exists",
		}, nil
	}
	return &domain.SolveResult{
		Solved:     true,
		Solution:   solution,
		Algorithm:  s.Name(),
		TimeMS:     msSince(start),
		Iterations: m.iterations,
		Backtracks: m.backtracks,
	}, nil
}

func (s *DancingLinks) FindAllSolutions(ctx context.Context, b *domain.Board, max int) ([]*domain.Board, error) {
	m, err := newDLXMatrix(s.dim, b.Cells)
	if err != nil {
		return nil, nil
	}
	sol := make([]int, m.n*m.n)
	var out []*domain.Board
	m.search(ctx, 0, sol, func(rows []int) bool {
		grid := m.gridFromSolution(rows)
		board, buildErr := domain.NewBoard(grid, &s.dim)
		if buildErr == nil {
			out = append(out, board)
		}
		return max > 0 && len(out) >= max
	})
	return out, nil
}

func (s *DancingLinks) HasUniqueSolution(ctx context.Context, b *domain.Board) (bool, error) {
	solutions, err := s.FindAllSolutions(ctx, b, 2)
	if err != nil {
		return false, err
	}
	return len(solutions) == 1, nil
}
