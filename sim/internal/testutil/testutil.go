// Package testutil provides shared test infrastructure for the tandem simulator.
// It must not import sim/ so that sim's own tests can use it.
package testutil

import (
	"math"
	"testing"
)

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// FixedSampler replays scripted durations instead of random draws.
// Each sequence is consumed in order and its last value repeats forever.
// It satisfies sim.Sampler.
type FixedSampler struct {
	Gaps     []float64   // inter-arrival gaps; Gaps[0] is the first arrival time
	Services [][]float64 // per stage index: service durations

	gapIdx int
	svcIdx map[int]int
}

// NewConstantSampler returns a sampler with a fixed gap and the same service
// duration at every stage.
func NewConstantSampler(gap, service float64, stages int) *FixedSampler {
	services := make([][]float64, stages)
	for i := range services {
		services[i] = []float64{service}
	}
	return &FixedSampler{Gaps: []float64{gap}, Services: services}
}

func (f *FixedSampler) InterArrival(rate float64) float64 {
	v := replay(f.Gaps, f.gapIdx)
	f.gapIdx++
	return v
}

func (f *FixedSampler) Service(stage int, rate float64) float64 {
	if f.svcIdx == nil {
		f.svcIdx = make(map[int]int)
	}
	v := replay(f.Services[stage], f.svcIdx[stage])
	f.svcIdx[stage]++
	return v
}

func replay(seq []float64, i int) float64 {
	if i < len(seq) {
		return seq[i]
	}
	return seq[len(seq)-1]
}
