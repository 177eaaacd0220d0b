package sim

import (
	"testing"

	"github.com/tandem-sim/tandem-sim/sim/internal/testutil"
	"github.com/tandem-sim/tandem-sim/sim/trace"
)

// mustNewSimulator builds a simulator or fails the test.
func mustNewSimulator(t *testing.T, cfg SimConfig) *Simulator {
	t.Helper()
	s, err := NewSimulator(cfg)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	return s
}

// newScriptedSimulator builds a simulator whose durations come from a FixedSampler.
func newScriptedSimulator(t *testing.T, cfg SimConfig, sampler *testutil.FixedSampler) *Simulator {
	t.Helper()
	s := mustNewSimulator(t, cfg)
	s.Sampler = sampler
	return s
}

// withTrace enables event tracing on s and returns the trace.
func withTrace(s *Simulator) *trace.SimulationTrace {
	s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelEvents})
	return s.Trace
}

// stableConfig is a three-stage network with every ρ_i ≤ 0.5.
func stableConfig(stop StopCondition) SimConfig {
	return SimConfig{
		Stages:      NewStageConfigs([]float64{2, 3, 2.5}),
		ArrivalRate: 1,
		Stop:        stop,
		Seed:        42,
	}
}

func sumInts(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
