// Package topology loads tandem network descriptions from YAML.
package topology

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/tandem-sim/tandem-sim/sim"
)

// CurrentVersion is the spec format version written by this package.
const CurrentVersion = "1"

// NetworkSpec is the top-level network configuration.
// Loaded from YAML via LoadNetworkSpec(path).
type NetworkSpec struct {
	Version     string      `yaml:"version"`
	Description string      `yaml:"description,omitempty"`
	Seed        int64       `yaml:"seed"`
	ArrivalRate float64     `yaml:"arrival_rate"`
	SampleEvery int64       `yaml:"sample_every,omitempty"` // 0 = sim.DefaultSampleEvery
	Stop        StopSpec    `yaml:"stop"`
	Stages      []StageSpec `yaml:"stages"`
}

// StopSpec selects the stopping condition.
type StopSpec struct {
	Mode              string  `yaml:"mode"` // "time" or "count"
	Horizon           float64 `yaml:"horizon,omitempty"`
	TargetCompletions int64   `yaml:"target_completions,omitempty"`
}

// StageSpec describes one station.
type StageSpec struct {
	ID          int     `yaml:"id,omitempty"` // 0 = position in the list, 1-based
	ServiceRate float64 `yaml:"service_rate"`
}

// LoadNetworkSpec reads and parses a YAML network specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadNetworkSpec(path string) (*NetworkSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading network spec: %w", err)
	}
	return ParseNetworkSpec(data)
}

// ParseNetworkSpec parses a YAML network specification.
func ParseNetworkSpec(data []byte) (*NetworkSpec, error) {
	var spec NetworkSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing network spec: %w", err)
	}
	if spec.Version == "" {
		logrus.Warnf("network spec has no version; assuming %q", CurrentVersion)
		spec.Version = CurrentVersion
	}
	return &spec, nil
}

// Validate checks the spec version and the resulting simulation configuration.
func (s *NetworkSpec) Validate() error {
	if s.Version != CurrentVersion {
		return fmt.Errorf("unsupported network spec version %q; valid: %s", s.Version, CurrentVersion)
	}
	return s.ToConfig().Validate()
}

// ToConfig converts the spec into a core simulation configuration.
func (s *NetworkSpec) ToConfig() sim.SimConfig {
	stages := make([]sim.StageConfig, len(s.Stages))
	for i, st := range s.Stages {
		stages[i] = sim.StageConfig{ID: st.ID, ServiceRate: st.ServiceRate}
	}
	return sim.SimConfig{
		Stages:      stages,
		ArrivalRate: s.ArrivalRate,
		Stop: sim.StopCondition{
			Mode:              sim.StopMode(s.Stop.Mode),
			Horizon:           s.Stop.Horizon,
			TargetCompletions: s.Stop.TargetCompletions,
		},
		Seed:        s.Seed,
		SampleEvery: s.SampleEvery,
	}
}

// PresetFile is the structure of presets.yaml.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type PresetFile struct {
	Version string                 `yaml:"version"`
	Presets map[string]NetworkSpec `yaml:"presets"`
}

// LoadPresets parses a presets file.
func LoadPresets(path string) (*PresetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets: %w", err)
	}
	var pf PresetFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&pf); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}
	for name, p := range pf.Presets {
		if p.Version == "" {
			p.Version = pf.Version
			pf.Presets[name] = p
		}
	}
	return &pf, nil
}

// Lookup returns the named preset.
func (pf *PresetFile) Lookup(name string) (*NetworkSpec, error) {
	p, ok := pf.Presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q; valid: %v", name, pf.Names())
	}
	return &p, nil
}

// Names returns the preset names in sorted order.
func (pf *PresetFile) Names() []string {
	names := make([]string, 0, len(pf.Presets))
	for name := range pf.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
