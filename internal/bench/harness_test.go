package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelbound/sudokucore/internal/domain"
	"github.com/kestrelbound/sudokucore/internal/ports"
	"github.com/kestrelbound/sudokucore/internal/solver"
)

var nineByNine = domain.BoardDimension{N: 9, R: 3, C: 3}

func TestRunProducesStatsForEveryTimedRun(t *testing.T) {
	s := solver.NewBacktracking(nineByNine)
	res, err := Run(context.Background(), s, domain.Escargot9x9(), Config{Runs: 5, Warmup: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Stats.Runs)
	assert.Equal(t, 5, res.Stats.SolvedCount)
	assert.Equal(t, "backtrack", res.Algorithm)
	assert.NotEmpty(t, res.RunID)
	assert.InDelta(t, 1000.0, res.Stats.ThroughputHz*res.Stats.MeanMS, 1e-6)
	assert.LessOrEqual(t, res.Stats.MinMS, res.Stats.MedianMS)
	assert.LessOrEqual(t, res.Stats.MedianMS, res.Stats.MaxMS)
}

func TestRunRejectsNonPositiveRuns(t *testing.T) {
	s := solver.NewBacktracking(nineByNine)
	_, err := Run(context.Background(), s, domain.Escargot9x9(), Config{Runs: 0}, nil)
	require.Error(t, err)
}

func TestRunRecordsSamplesOnMetrics(t *testing.T) {
	s := solver.NewBacktracking(nineByNine)
	m := NewMetrics()
	res, err := Run(context.Background(), s, domain.Escargot9x9(), Config{Runs: 5, Warmup: 1}, m)
	require.NoError(t, err)

	families, err := m.Snapshot()
	require.NoError(t, err)
	var runsTotal float64
	for _, f := range families {
		if f.GetName() != "sudokucore_bench_runs_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			runsTotal += metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(res.Stats.Runs), runsTotal)
}

func TestRunParallelAggregatesAcrossWorkers(t *testing.T) {
	m := NewMetrics()
	res, err := RunParallel(context.Background(), func() (ports.Solver, error) {
		return solver.NewDancingLinks(nineByNine), nil
	}, domain.Escargot9x9(), Config{Runs: 4, Workers: 3}, m)
	require.NoError(t, err)
	assert.Equal(t, 12, res.Stats.Runs)
	assert.Equal(t, 3, res.Workers)
	assert.Equal(t, 12, res.Stats.SolvedCount)

	families, err := m.Snapshot()
	require.NoError(t, err)
	var runsTotal float64
	for _, f := range families {
		if f.GetName() != "sudokucore_bench_runs_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			runsTotal += metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(res.Stats.Runs), runsTotal)
}

func TestCompareRunsEveryKind(t *testing.T) {
	results, err := Compare(context.Background(), solver.All, nineByNine, domain.Escargot9x9(), Config{Runs: 2}, nil)
	require.NoError(t, err)
	require.Len(t, results, len(solver.All))
	for _, r := range results {
		assert.Equal(t, 2, r.Stats.Runs)
	}
}
