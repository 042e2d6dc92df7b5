package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeEmptySamples(t *testing.T) {
	st := summarize(nil, 0)
	assert.Equal(t, 0, st.Runs)
	assert.Equal(t, 0.0, st.MeanMS)
}

func TestSummarizeComputesMinMaxMeanMedian(t *testing.T) {
	samples := []Sample{
		{TimeMS: 10, Solved: true},
		{TimeMS: 20, Solved: true},
		{TimeMS: 30, Solved: true},
	}
	st := summarize(samples, 60)
	assert.Equal(t, 3, st.Runs)
	assert.Equal(t, 10.0, st.MinMS)
	assert.Equal(t, 30.0, st.MaxMS)
	assert.Equal(t, 20.0, st.MeanMS)
	assert.Equal(t, 20.0, st.MedianMS)
	assert.Equal(t, 3, st.SolvedCount)
	assert.InDelta(t, 50.0, st.ThroughputHz, 0.01) // 3 runs / 0.06s
}

func TestSummarizeMedianEvenCount(t *testing.T) {
	samples := []Sample{{TimeMS: 10}, {TimeMS: 20}, {TimeMS: 30}, {TimeMS: 40}}
	st := summarize(samples, 0)
	assert.Equal(t, 25.0, st.MedianMS)
	// wallMS == 0 selects the single-worker formula: throughput * mean_ms == 1000.
	assert.InDelta(t, 1000.0, st.ThroughputHz*st.MeanMS, 1e-9)
}

func TestSummarizeStdDevSingleSampleIsZero(t *testing.T) {
	st := summarize([]Sample{{TimeMS: 5}}, 5)
	assert.Equal(t, 0.0, st.StdDevMS)
}
