package domain

// Fixture puzzles used by the benchmark harness's "fixed puzzle,
// repeated runs" mode and by the test suite. Grounded on
// BuiltinPuzzles::get9x9 / get16x16 / get25x25 in the original C++
// driver: the same three built-in sizes, ported to flat row-major
// slices instead of a compile-time 2-D array.

// Escargot9x9 is a classic hard 9x9 puzzle with a unique solution.
func Escargot9x9() *Board {
	rows := [][]int{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
	b, err := NewBoard(flatten(rows), &BoardDimension{N: 9, R: 3, C: 3})
	if err != nil {
		panic(err) // fixture data is known-good at compile time
	}
	return b
}

// Empty9x9 is an all-zero 9x9 board, used to exercise the "many
// solutions" path (S2 in the test matrix).
func Empty9x9() *Board {
	b, err := NewBoard(make([]int, 81), &BoardDimension{N: 9, R: 3, C: 3})
	if err != nil {
		panic(err)
	}
	return b
}

// Contradictory9x9 places two 5s in row 0, an invalid board that
// nonetheless constructs successfully (validity is a query, not a
// construction invariant).
func Contradictory9x9() *Board {
	rows := [][]int{
		{5, 5, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	b, err := NewBoard(flatten(rows), &BoardDimension{N: 9, R: 3, C: 3})
	if err != nil {
		panic(err)
	}
	return b
}

// Minimal17 is a known 17-clue 9x9 puzzle with a unique solution, the
// smallest clue count known to admit uniqueness.
func Minimal17() *Board {
	rows := [][]int{
		{0, 0, 0, 0, 0, 0, 0, 1, 0},
		{4, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 2, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 5, 0, 4, 0, 7},
		{0, 0, 8, 0, 0, 0, 3, 0, 0},
		{0, 0, 1, 0, 9, 0, 0, 0, 0},
		{3, 0, 0, 4, 0, 0, 2, 0, 0},
		{0, 5, 0, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 8, 0, 6, 0, 0, 0},
	}
	b, err := NewBoard(flatten(rows), &BoardDimension{N: 9, R: 3, C: 3})
	if err != nil {
		panic(err)
	}
	return b
}

// Hard16x16 is a hard 16x16 puzzle (4x4 boxes). It has more than one
// solution, so different solvers may return different valid grids.
func Hard16x16() *Board {
	rows := [][]int{
		{0, 0, 0, 4, 5, 6, 7, 0, 0, 10, 0, 0, 0, 0, 15, 0},
		{0, 0, 0, 0, 0, 10, 0, 0, 0, 14, 0, 16, 0, 2, 0, 0},
		{0, 10, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 5, 6, 7, 0},
		{0, 14, 15, 0, 1, 0, 0, 4, 5, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 6, 0, 0, 0, 10, 0, 0, 0, 0, 0, 16, 0},
		{6, 0, 8, 0, 0, 0, 0, 0, 0, 0, 0, 15, 2, 0, 4, 0},
		{0, 9, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 6, 5, 8, 0},
		{0, 13, 16, 0, 2, 0, 0, 0, 0, 5, 0, 7, 0, 0, 0, 11},
		{0, 0, 0, 2, 0, 8, 0, 6, 11, 0, 0, 0, 0, 0, 0, 0},
		{7, 0, 5, 0, 11, 12, 9, 10, 0, 0, 0, 0, 0, 0, 1, 0},
		{11, 0, 0, 0, 15, 0, 0, 0, 3, 4, 0, 0, 7, 0, 0, 0},
		{0, 0, 0, 0, 0, 4, 0, 2, 0, 8, 0, 6, 11, 0, 0, 0},
		{0, 0, 2, 0, 0, 7, 0, 5, 12, 11, 0, 0, 0, 0, 14, 0},
		{8, 0, 0, 0, 12, 0, 0, 0, 16, 0, 14, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 16, 0, 14, 0, 4, 0, 0, 0, 0, 7, 0, 0},
		{0, 0, 0, 0, 0, 3, 0, 0, 0, 0, 6, 0, 12, 0, 0, 0},
	}
	b, err := NewBoard(flatten(rows), &BoardDimension{N: 16, R: 4, C: 4})
	if err != nil {
		panic(err)
	}
	return b
}

// Seed25x25 is a lightly-constrained 25x25 board (5x5 boxes) used to
// exercise the heavy end of the benchmark harness. It is not
// guaranteed to have a unique solution — see the Open Questions entry
// in DESIGN.md.
func Seed25x25() *Board {
	const n = 25
	grid := make([][]int, n)
	for i := range grid {
		grid[i] = make([]int, n)
	}
	set := func(r, c, v int) { grid[r][c] = v }
	set(0, 0, 1)
	set(0, 5, 6)
	set(0, 10, 11)
	set(0, 15, 16)
	set(0, 20, 21)
	set(1, 1, 7)
	set(1, 6, 12)
	set(1, 11, 17)
	set(1, 16, 22)
	set(1, 21, 2)
	set(2, 2, 13)
	set(2, 7, 18)
	set(2, 12, 23)
	set(2, 17, 3)
	set(2, 22, 8)
	set(3, 3, 19)
	set(3, 8, 24)
	set(3, 13, 4)
	set(3, 18, 9)
	set(3, 23, 14)
	set(4, 4, 25)
	set(4, 9, 5)
	set(4, 14, 10)
	set(4, 19, 15)
	set(4, 24, 20)
	set(5, 0, 2)
	set(5, 5, 7)
	set(5, 10, 12)
	set(5, 15, 17)
	set(5, 20, 22)
	set(6, 1, 8)
	set(6, 6, 13)
	set(6, 11, 18)
	set(6, 16, 23)
	set(6, 21, 3)
	set(7, 2, 14)
	set(7, 7, 19)
	set(7, 12, 24)
	set(7, 17, 4)
	set(7, 22, 9)
	set(8, 3, 20)
	set(8, 8, 25)
	set(8, 13, 5)
	set(8, 18, 10)
	set(8, 23, 15)
	set(9, 4, 1)
	set(9, 9, 6)
	set(9, 14, 11)
	set(9, 19, 16)
	set(9, 24, 21)
	set(10, 0, 3)
	set(10, 5, 8)
	set(10, 10, 13)
	set(10, 15, 18)
	set(10, 20, 23)
	set(11, 1, 9)
	set(11, 6, 14)
	set(11, 11, 19)
	set(11, 16, 24)
	set(11, 21, 4)
	set(12, 2, 15)
	set(12, 7, 20)
	set(12, 12, 25)
	set(12, 17, 5)
	set(12, 22, 10)
	set(13, 3, 21)
	set(13, 8, 1)
	set(13, 13, 6)
	set(13, 18, 11)
	set(13, 23, 16)
	set(14, 4, 2)
	set(14, 9, 7)
	set(14, 14, 12)
	set(14, 19, 17)
	set(14, 24, 22)
	set(15, 0, 4)
	set(15, 5, 9)
	set(15, 10, 14)
	set(15, 15, 19)
	set(15, 20, 24)
	set(16, 1, 10)
	set(16, 6, 15)
	set(16, 11, 20)
	set(16, 16, 25)
	set(16, 21, 5)
	set(17, 2, 16)
	set(17, 7, 21)
	set(17, 12, 1)
	set(17, 17, 6)
	set(17, 22, 11)
	set(18, 3, 22)
	set(18, 8, 2)
	set(18, 13, 7)
	set(18, 18, 12)
	set(18, 23, 17)
	set(19, 4, 3)
	set(19, 9, 8)
	set(19, 14, 13)
	set(19, 19, 18)
	set(19, 24, 23)
	set(20, 0, 5)
	set(20, 5, 10)
	set(20, 10, 15)
	set(20, 15, 20)
	set(20, 20, 25)
	set(21, 1, 11)
	set(21, 6, 16)
	set(21, 11, 21)
	set(21, 16, 1)
	set(21, 21, 6)
	set(22, 2, 17)
	set(22, 7, 22)
	set(22, 12, 2)
	set(22, 17, 7)
	set(22, 22, 12)
	set(23, 3, 23)
	set(23, 8, 3)
	set(23, 13, 8)
	set(23, 18, 13)
	set(23, 23, 18)
	set(24, 4, 4)
	set(24, 9, 9)
	set(24, 14, 14)
	set(24, 19, 19)
	set(24, 24, 24)
	b, err := NewBoard(flatten(grid), &BoardDimension{N: n, R: 5, C: 5})
	if err != nil {
		panic(err)
	}
	return b
}

func flatten(rows [][]int) []int {
	if len(rows) == 0 {
		return nil
	}
	n := len(rows)
	out := make([]int, 0, n*n)
	for _, row := range rows {
		out = append(out, row...)
	}
	return out
}
