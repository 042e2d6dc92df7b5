package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsObserveAndSnapshot(t *testing.T) {
	m := NewMetrics()
	m.Observe("backtrack", Sample{TimeMS: 1.5, Solved: true})
	m.Observe("backtrack", Sample{TimeMS: 2.5, Solved: false})

	families, err := m.Snapshot()
	require.NoError(t, err)
	assert.NotEmpty(t, families)

	var sawRuns, sawFailures bool
	for _, f := range families {
		switch f.GetName() {
		case "sudokucore_bench_runs_total":
			sawRuns = true
		case "sudokucore_bench_failures_total":
			sawFailures = true
		}
	}
	assert.True(t, sawRuns)
	assert.True(t, sawFailures)
}
