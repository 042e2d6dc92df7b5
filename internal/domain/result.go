package domain

// SolveResult is produced once per Solve call and never mutated after
// return. Solution is meaningful only when Solved is true; when
// Solved is false, Solution mirrors the input grid.
type SolveResult struct {
	Solved       bool
	Solution     []int
	Algorithm    string
	TimeMS       float64
	Iterations   uint64
	Backtracks   uint64
	ErrorMessage string
}
