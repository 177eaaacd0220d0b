package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	sim "github.com/tandem-sim/tandem-sim/sim"
	"github.com/tandem-sim/tandem-sim/sim/topology"
)

// networkOptions holds the flags that describe the network and stopping rule.
type networkOptions struct {
	preset       string    // Named preset from the presets file
	networkPath  string    // Path to a network spec YAML
	arrivalRate  float64   // Poisson arrival rate λ
	serviceRates []float64 // Per-stage exponential service rates μ_i
	mode         string    // Stop mode: time or count
	horizon      float64   // Time-bound horizon
	target       int64     // Count-bound completion target
	sampleEvery  int64     // Snapshot cadence K (completions)
	seed         int64     // Master RNG seed
}

// register attaches the network flags to fs.
func (o *networkOptions) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.preset, "preset", "", "Named network from the presets file")
	fs.StringVar(&o.networkPath, "network", "", "Path to a network spec YAML file")
	fs.Float64Var(&o.arrivalRate, "arrival-rate", 1.0, "Poisson arrival rate (jobs per unit time)")
	fs.Float64SliceVar(&o.serviceRates, "service-rates", nil, "Comma-separated service rate of each stage, in order")
	fs.StringVar(&o.mode, "mode", string(sim.StopTimeBound), "Stopping mode (time, count)")
	fs.Float64Var(&o.horizon, "horizon", 10000, "Simulated time at which a time-bound run stops")
	fs.Int64Var(&o.target, "target", 10000, "Completed jobs at which a count-bound run stops")
	fs.Int64Var(&o.sampleEvery, "sample-every", sim.DefaultSampleEvery, "Snapshot queue lengths every K completions")
	fs.Int64Var(&o.seed, "seed", 42, "Seed for the random streams")
}

// resolve builds the simulation configuration. A --network file or --preset
// provides the base values; explicitly set flags override them. Without a base,
// every flag value applies.
func (o *networkOptions) resolve(fs *pflag.FlagSet, presetsPath string) (sim.SimConfig, error) {
	if !sim.IsValidStopMode(o.mode) {
		return sim.SimConfig{}, fmt.Errorf("%w: unknown --mode %q; valid: time, count", sim.ErrInvalidConfiguration, o.mode)
	}
	spec, err := o.baseSpec(presetsPath)
	if err != nil {
		return sim.SimConfig{}, err
	}
	fromBase := spec != nil
	if !fromBase {
		spec = &topology.NetworkSpec{Version: topology.CurrentVersion}
	}
	set := func(name string) bool { return !fromBase || fs.Changed(name) }

	if set("arrival-rate") {
		spec.ArrivalRate = o.arrivalRate
	}
	if set("service-rates") {
		spec.Stages = make([]topology.StageSpec, len(o.serviceRates))
		for i, rate := range o.serviceRates {
			spec.Stages[i] = topology.StageSpec{ID: i + 1, ServiceRate: rate}
		}
	}
	if set("mode") {
		spec.Stop.Mode = o.mode
	}
	if set("horizon") {
		spec.Stop.Horizon = o.horizon
	}
	if set("target") {
		spec.Stop.TargetCompletions = o.target
	}
	if set("sample-every") {
		spec.SampleEvery = o.sampleEvery
	}
	if set("seed") {
		spec.Seed = o.seed
	}

	if err := spec.Validate(); err != nil {
		return sim.SimConfig{}, err
	}
	return spec.ToConfig(), nil
}

func (o *networkOptions) baseSpec(presetsPath string) (*topology.NetworkSpec, error) {
	switch {
	case o.networkPath != "" && o.preset != "":
		return nil, fmt.Errorf("--network and --preset are mutually exclusive")
	case o.networkPath != "":
		return topology.LoadNetworkSpec(o.networkPath)
	case o.preset != "":
		presets, err := topology.LoadPresets(presetsPath)
		if err != nil {
			return nil, err
		}
		return presets.Lookup(o.preset)
	default:
		return nil, nil
	}
}
