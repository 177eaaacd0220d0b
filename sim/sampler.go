package sim

import "math/rand"

// Sampler draws the random durations that drive the network.
// Implementations must be deterministic for a fixed seed.
type Sampler interface {
	// InterArrival returns the gap until the next arrival, drawn with the given rate.
	InterArrival(rate float64) float64
	// Service returns a service duration for stage index stage, drawn with the given rate.
	Service(stage int, rate float64) float64
}

// ExponentialSampler draws Exponential(rate) durations from partitioned RNG
// streams: one for arrivals and one per stage.
type ExponentialSampler struct {
	rng *PartitionedRNG
}

// NewExponentialSampler creates a sampler over the given partitioned RNG.
func NewExponentialSampler(rng *PartitionedRNG) *ExponentialSampler {
	return &ExponentialSampler{rng: rng}
}

func (s *ExponentialSampler) InterArrival(rate float64) float64 {
	return expDraw(s.rng.ForSubsystem(SubsystemArrivals), rate)
}

func (s *ExponentialSampler) Service(stage int, rate float64) float64 {
	return expDraw(s.rng.ForSubsystem(SubsystemStage(stage)), rate)
}

// expDraw samples Exponential(rate); mean is 1/rate.
func expDraw(rng *rand.Rand, rate float64) float64 {
	return rng.ExpFloat64() / rate
}
