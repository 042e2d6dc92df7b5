// Package ports defines the polymorphic contract shared by every
// solver backend. Callers depend only on this interface and never
// branch on the concrete implementation behind it.
package ports

import (
	"context"

	"github.com/kestrelbound/sudokucore/internal/domain"
)

// Solver is the contract every solver backend implements. All
// operations are pure with respect to the caller's Board: no mutation
// is ever visible outside the call.
type Solver interface {
	// Solve searches for one solution. On malformed or contradictory
	// input it returns a non-nil result with Solved=false and a
	// diagnostic ErrorMessage rather than an error.
	Solve(ctx context.Context, b *domain.Board) (*domain.SolveResult, error)

	// FindAllSolutions enumerates solutions in the solver's
	// deterministic search order. max == 0 means unbounded; otherwise
	// the search stops once max solutions have been found. The
	// returned slice is finite and fully realized.
	FindAllSolutions(ctx context.Context, b *domain.Board, max int) ([]*domain.Board, error)

	// HasUniqueSolution reports whether exactly one solution exists.
	HasUniqueSolution(ctx context.Context, b *domain.Board) (bool, error)

	// Name returns a human identifier for the backend (e.g. "dlx",
	// "backtrack").
	Name() string
}
