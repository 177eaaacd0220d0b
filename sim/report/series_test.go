package report

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandem-sim/tandem-sim/sim"
)

func TestBuildSeries_ShapesMatchMetrics(t *testing.T) {
	// GIVEN a run with 300 completions sampled every 10
	s := runStable(t, 42, 300)

	// WHEN the series are built with a window of 5
	se := BuildSeries(s, 5)

	// THEN every stage carries its samples, smoothing and cumulative departures
	m := s.Metrics()
	assert.Len(t, se.SampleTimes, 30)
	require.Len(t, se.Stages, 3)
	for i, st := range se.Stages {
		assert.Len(t, st.QueueLengths, 30)
		assert.Len(t, st.SmoothedQueueLengths, 30-5+1)
		require.Len(t, st.Departures, int(m.Throughput[i]))
		last := st.Departures[len(st.Departures)-1]
		assert.Equal(t, int(m.Throughput[i]), last.Count)
	}
	assert.Len(t, se.SojournCounts, DefaultHistogramBins)
	total := 0.0
	for _, c := range se.SojournCounts {
		total += c
	}
	assert.Equal(t, float64(len(m.SojournTimes)), total)
}

func TestBuildSeries_DefaultWindowAndSave(t *testing.T) {
	se := BuildSeries(runStable(t, 7, 100), 0)
	assert.Equal(t, DefaultSmoothingWindow, se.Window)
	assert.NoError(t, se.SaveJSON(filepath.Join(t.TempDir(), "series.json")))
}

func TestPrintTheory_StableAndUnstable(t *testing.T) {
	stable := sim.SimConfig{Stages: sim.NewStageConfigs([]float64{2, 4}), ArrivalRate: 1}
	var buf bytes.Buffer
	PrintTheory(&buf, stable)
	assert.Contains(t, buf.String(), "Queue 2: service rate 4.0000, load 0.250")
	assert.Contains(t, buf.String(), "Jackson M/M/1 Mean Sojourn Time: 1.3333")

	unstable := sim.SimConfig{Stages: sim.NewStageConfigs([]float64{0.5}), ArrivalRate: 1}
	buf.Reset()
	PrintTheory(&buf, unstable)
	assert.Contains(t, buf.String(), "unstable")
}
