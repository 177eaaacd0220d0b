package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfiguration is wrapped by every SimConfig validation failure.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// DefaultSampleEvery is the snapshot cadence (in completed jobs) used when SampleEvery is 0.
const DefaultSampleEvery = 10

// StopMode selects which stopping condition ends a run.
type StopMode string

const (
	// StopTimeBound halts before the first event whose time is >= Horizon.
	StopTimeBound StopMode = "time"
	// StopCountBound halts right after the TargetCompletions-th job leaves the last stage.
	StopCountBound StopMode = "count"
)

var validStopModes = map[StopMode]bool{
	StopTimeBound:  true,
	StopCountBound: true,
}

// IsValidStopMode returns true if mode names a recognized stopping mode.
func IsValidStopMode(mode string) bool {
	return validStopModes[StopMode(mode)]
}

// StageConfig describes one server station of the tandem network.
type StageConfig struct {
	ID          int     // ordinal stage id; 0 means "assign index+1"
	ServiceRate float64 // exponential service rate (must be > 0)
}

// StopCondition groups the stopping mode with its parameter.
// Only the field matching Mode is consulted.
type StopCondition struct {
	Mode              StopMode
	Horizon           float64 // simulated-time bound for StopTimeBound
	TargetCompletions int64   // completed-job bound for StopCountBound
}

// NewTimeBound returns a StopCondition that halts at simulated time horizon.
func NewTimeBound(horizon float64) StopCondition {
	return StopCondition{Mode: StopTimeBound, Horizon: horizon}
}

// NewCountBound returns a StopCondition that halts after target completed jobs.
func NewCountBound(target int64) StopCondition {
	return StopCondition{Mode: StopCountBound, TargetCompletions: target}
}

// SimConfig is the full input of a tandem-network simulation.
type SimConfig struct {
	Stages      []StageConfig // ordered topology: stage i feeds stage i+1
	ArrivalRate float64       // Poisson arrival rate into stage 0
	Stop        StopCondition
	Seed        int64
	SampleEvery int64 // queue-length snapshot cadence in completed jobs (0 = DefaultSampleEvery)
}

// NewStageConfigs builds stage configs with ids 1..N from a list of service rates.
func NewStageConfigs(serviceRates []float64) []StageConfig {
	stages := make([]StageConfig, len(serviceRates))
	for i, r := range serviceRates {
		stages[i] = StageConfig{ID: i + 1, ServiceRate: r}
	}
	return stages
}

// ServiceRates returns the per-stage service rates in topology order.
func (c SimConfig) ServiceRates() []float64 {
	rates := make([]float64, len(c.Stages))
	for i, st := range c.Stages {
		rates[i] = st.ServiceRate
	}
	return rates
}

// EffectiveSampleEvery resolves the zero value to DefaultSampleEvery.
func (c SimConfig) EffectiveSampleEvery() int64 {
	if c.SampleEvery == 0 {
		return DefaultSampleEvery
	}
	return c.SampleEvery
}

// StageID returns the ordinal id of the stage at index i.
func (c SimConfig) StageID(i int) int {
	if c.Stages[i].ID == 0 {
		return i + 1
	}
	return c.Stages[i].ID
}

// Validate checks the configuration before any event is scheduled.
// Every failure wraps ErrInvalidConfiguration.
func (c SimConfig) Validate() error {
	if len(c.Stages) == 0 {
		return fmt.Errorf("%w: network must have at least one stage", ErrInvalidConfiguration)
	}
	if err := validateFinitePositive("arrival rate", c.ArrivalRate); err != nil {
		return err
	}
	seen := make(map[int]int, len(c.Stages))
	for i := range c.Stages {
		id := c.StageID(i)
		if id < 0 {
			return fmt.Errorf("%w: stage[%d]: id must be non-negative, got %d", ErrInvalidConfiguration, i, id)
		}
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("%w: stage[%d]: duplicate id %d (also stage[%d])", ErrInvalidConfiguration, i, id, prev)
		}
		seen[id] = i
		if err := validateFinitePositive(fmt.Sprintf("stage[%d] service rate", i), c.Stages[i].ServiceRate); err != nil {
			return err
		}
	}
	if c.SampleEvery < 0 {
		return fmt.Errorf("%w: sample cadence must be non-negative, got %d", ErrInvalidConfiguration, c.SampleEvery)
	}
	switch c.Stop.Mode {
	case StopTimeBound:
		return validateFinitePositive("horizon", c.Stop.Horizon)
	case StopCountBound:
		if c.Stop.TargetCompletions <= 0 {
			return fmt.Errorf("%w: target completions must be positive, got %d", ErrInvalidConfiguration, c.Stop.TargetCompletions)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown stop mode %q; valid: time, count", ErrInvalidConfiguration, c.Stop.Mode)
	}
}

func validateFinitePositive(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%w: %s must be a finite number, got %f", ErrInvalidConfiguration, name, val)
	}
	if val <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %f", ErrInvalidConfiguration, name, val)
	}
	return nil
}
