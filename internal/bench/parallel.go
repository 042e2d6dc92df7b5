package bench

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kestrelbound/sudokucore/internal/domain"
	"github.com/kestrelbound/sudokucore/internal/ports"
)

// SolverFactory builds one solver instance. RunParallel calls it once
// per worker so no two goroutines ever share a solver's scratch state.
type SolverFactory func() (ports.Solver, error)

// RunParallel runs cfg.Workers independent workers, each performing
// cfg.Runs timed solves (after cfg.Warmup untimed ones) against board,
// and aggregates every worker's samples into one Result. Wall-clock
// time is measured from the first worker's start to the last worker's
// finish, so ThroughputHz reflects true concurrent throughput rather
// than the sum of each worker's individual wall time.
//
// Grounded on the errgroup.Group fan-out in
// operator-lifecycle-manager's available-csvs server.Run, generalized
// from a fixed two-goroutine pair to Workers independently erroring
// goroutines. If m is non-nil, every timed sample from every worker is
// recorded against it; Metrics is safe for concurrent use since its
// prometheus collectors already serialize internally.
func RunParallel(ctx context.Context, newSolver SolverFactory, board *domain.Board, cfg Config, m *Metrics) (*Result, error) {
	if cfg.Runs <= 0 {
		return nil, fmt.Errorf("bench: Runs must be positive, got %d", cfg.Runs)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	var (
		mu      sync.Mutex
		samples = make([]Sample, 0, workers*cfg.Runs)
		algo    string
	)

	g, gctx := errgroup.WithContext(ctx)
	wallStart := time.Now()
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			solver, err := newSolver()
			if err != nil {
				return fmt.Errorf("bench: worker solver init: %w", err)
			}
			mu.Lock()
			if algo == "" {
				algo = solver.Name()
			}
			mu.Unlock()

			for i := 0; i < cfg.Warmup; i++ {
				if _, err := solver.Solve(gctx, board); err != nil {
					return fmt.Errorf("bench: warmup run %d: %w", i, err)
				}
			}

			local := make([]Sample, 0, cfg.Runs)
			for i := 0; i < cfg.Runs; i++ {
				if gctx.Err() != nil {
					break
				}
				res, err := solver.Solve(gctx, board)
				if err != nil {
					return fmt.Errorf("bench: run %d: %w", i, err)
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
				local = append(local, sample)
			}

			mu.Lock()
			samples = append(samples, local...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	wallMS := float64(time.Since(wallStart).Nanoseconds()) / 1e6

	return &Result{
		RunID:     uuid.NewString(),
		Algorithm: algo,
		Board:     board.Name,
		Workers:   workers,
		Stats:     summarize(samples, wallMS),
	}, nil
}
