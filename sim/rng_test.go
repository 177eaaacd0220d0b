package sim

import (
	"math"
	"math/rand"
	"testing"
)

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// Same key+name produces same sequence
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 3; i++ {
		v1 := rng1.ForSubsystem(SubsystemStage(2)).Float64()
		v2 := rng2.ForSubsystem(SubsystemStage(2)).Float64()
		if v1 != v2 {
			t.Errorf("Value %d: got %v and %v, want identical", i, v1, v2)
		}
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// Drawing service times must not shift the arrival stream
	rngA := NewPartitionedRNG(NewSimulationKey(42))
	rngB := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemStage(0)).Float64()
	}

	a := rngA.ForSubsystem(SubsystemArrivals).Float64()
	b := rngB.ForSubsystem(SubsystemArrivals).Float64()
	if a != b {
		t.Errorf("arrival stream perturbed by stage draws: %v != %v", a, b)
	}
}

func TestPartitionedRNG_ArrivalsUseMasterSeed(t *testing.T) {
	seed := int64(42)
	rng := NewPartitionedRNG(NewSimulationKey(seed))
	arrivals := rng.ForSubsystem(SubsystemArrivals)
	direct := rand.New(rand.NewSource(seed))

	for i := 0; i < 10; i++ {
		if got, want := arrivals.Float64(), direct.Float64(); got != want {
			t.Errorf("Value %d: arrivals RNG = %v, direct RNG = %v", i, got, want)
		}
	}
}

func TestPartitionedRNG_StagesDiffer(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	if rng.ForSubsystem(SubsystemStage(0)).Int63() == rng.ForSubsystem(SubsystemStage(1)).Int63() {
		t.Error("stage 0 and stage 1 streams produced the same first value")
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	if rng.ForSubsystem(SubsystemArrivals) != rng.ForSubsystem(SubsystemArrivals) {
		t.Error("ForSubsystem returned different instances for same name")
	}
}

func TestSubsystemStage_Name(t *testing.T) {
	if got := SubsystemStage(3); got != "stage_3" {
		t.Errorf("SubsystemStage(3) = %q, want stage_3", got)
	}
}

func TestExponentialSampler_MeanMatchesRate(t *testing.T) {
	// GIVEN a sampler and a rate of 4 (mean 0.25)
	s := NewExponentialSampler(NewPartitionedRNG(NewSimulationKey(1)))
	const n = 200000

	// WHEN many durations are drawn
	sumArr, sumSvc := 0.0, 0.0
	for i := 0; i < n; i++ {
		a := s.InterArrival(4)
		v := s.Service(0, 4)
		if a < 0 || v < 0 {
			t.Fatalf("negative duration drawn: %v, %v", a, v)
		}
		sumArr += a
		sumSvc += v
	}

	// THEN sample means are within 2% of 1/rate
	for name, mean := range map[string]float64{"arrival": sumArr / n, "service": sumSvc / n} {
		if math.Abs(mean-0.25)/0.25 > 0.02 {
			t.Errorf("%s mean = %v, want ~0.25", name, mean)
		}
	}
}
