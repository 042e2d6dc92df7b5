package bench

import (
	"context"
	"fmt"

	"github.com/kestrelbound/sudokucore/internal/domain"
	"github.com/kestrelbound/sudokucore/internal/ports"
	"github.com/kestrelbound/sudokucore/internal/solver"
)

// Compare runs the benchmark harness once per solver kind against the
// same board and Config, in the single- or multi-worker mode implied
// by cfg.Workers, and returns one Result per kind in the order given.
// If m is non-nil, every timed sample from every kind is recorded
// against it.
func Compare(ctx context.Context, kinds []solver.Kind, dim domain.BoardDimension, board *domain.Board, cfg Config, m *Metrics) ([]*Result, error) {
	results := make([]*Result, 0, len(kinds))
	for _, kind := range kinds {
		var (
			res *Result
			err error
		)
		if cfg.Workers > 1 {
			res, err = RunParallel(ctx, func() (ports.Solver, error) {
				return solver.New(kind, dim)
			}, board, cfg, m)
		} else {
			s, buildErr := solver.New(kind, dim)
			if buildErr != nil {
				return nil, buildErr
			}
			res, err = Run(ctx, s, board, cfg, m)
		}
		if err != nil {
			return nil, fmt.Errorf("bench: comparing %q: %w", kind, err)
		}
		results = append(results, res)
	}
	return results, nil
}
