// Package bench implements the micro-benchmark harness: repeated
// single-worker timing, an errgroup-coordinated multi-worker mode, and
// aggregate statistics over both. Nothing here parses flags or prints;
// that belongs to cmd/sudokubench.
package bench

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kestrelbound/sudokucore/internal/domain"
	"github.com/kestrelbound/sudokucore/internal/ports"
)

// Config controls one benchmark invocation.
type Config struct {
	Runs    int // timed runs per worker
	Warmup  int // untimed runs discarded before timing starts
	Workers int // concurrent solver instances; 0 or 1 means single-worker mode
}

// Result is the outcome of one Run or RunParallel call.
type Result struct {
	RunID     string
	Algorithm string
	Board     string // board.Name, or "" if unset
	Workers   int
	Stats     Stats
}

// Run drives a single solver instance through cfg.Warmup untimed
// solves followed by cfg.Runs timed solves against board, and
// aggregates the timed samples into a Result. Each run allocates its
// own scratch state inside solver.Solve; the board itself is read-only
// and shared across every run. If m is non-nil, every timed sample is
// also recorded against it (m may be nil to skip metrics entirely).
func Run(ctx context.Context, solver ports.Solver, board *domain.Board, cfg Config, m *Metrics) (*Result, error) {
	if cfg.Runs <= 0 {
		return nil, fmt.Errorf("bench: Runs must be positive, got %d", cfg.Runs)
	}

	for i := 0; i < cfg.Warmup; i++ {
		if _, err := solver.Solve(ctx, board); err != nil {
			return nil, fmt.Errorf("bench: warmup run %d: %w", i, err)
		}
	}

	samples := make([]Sample, 0, cfg.Runs)
	for i := 0; i < cfg.Runs; i++ {
		if ctx.Err() != nil {
			break
		}
		res, err := solver.Solve(ctx, board)
		if err != nil {
			return nil, fmt.Errorf("bench: run %d: %w", i, err)
		}
		sample := Sample{
			TimeMS:     res.TimeMS,
			Iterations: res.Iterations,
			Backtracks: res.Backtracks,
			Solved:     res.Solved,
		}
		if m != nil {
			m.Observe(solver.Name(), sample)
		}
		samples = append(samples, sample)
	}

	// wallMS=0 selects the single-worker throughput formula
	// (1000/mean_ms); RunParallel supplies its own measured wall-clock
	// span for the aggregate multi-worker formula.
	return &Result{
		RunID:     uuid.NewString(),
		Algorithm: solver.Name(),
		Board:     board.Name,
		Workers:   1,
		Stats:     summarize(samples, 0),
	}, nil
}
