package topology

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandem-sim/tandem-sim/sim"
)

const validSpec = `
version: "1"
seed: 7
arrival_rate: 1.5
sample_every: 5
stop:
  mode: count
  target_completions: 100
stages:
  - id: 1
    service_rate: 3
  - service_rate: 4
`

func TestParseNetworkSpec_ValidSpec_ConvertsToConfig(t *testing.T) {
	// GIVEN a well-formed spec
	spec, err := ParseNetworkSpec([]byte(validSpec))
	require.NoError(t, err)

	// WHEN converted to a simulation config
	require.NoError(t, spec.Validate())
	cfg := spec.ToConfig()

	// THEN every field is carried over
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 1.5, cfg.ArrivalRate)
	assert.Equal(t, int64(5), cfg.SampleEvery)
	assert.Equal(t, sim.NewCountBound(100), cfg.Stop)
	assert.Equal(t, []float64{3, 4}, cfg.ServiceRates())
	assert.Equal(t, 2, cfg.StageID(1), "omitted id defaults to position")
}

func TestParseNetworkSpec_UnknownField_Rejected(t *testing.T) {
	// GIVEN a spec with a typo in a key
	data := []byte("version: \"1\"\narival_rate: 1\n")

	// WHEN parsed
	_, err := ParseNetworkSpec(data)

	// THEN strict parsing rejects it
	assert.Error(t, err)
}

func TestParseNetworkSpec_MissingVersion_Defaults(t *testing.T) {
	spec, err := ParseNetworkSpec([]byte("arrival_rate: 1\nstop: {mode: time, horizon: 5}\nstages: [{service_rate: 2}]\n"))
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, spec.Version)
	assert.NoError(t, spec.Validate())
}

func TestNetworkSpec_Validate_Failures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad version", "version: \"9\"\narrival_rate: 1\nstop: {mode: time, horizon: 5}\nstages: [{service_rate: 2}]\n"},
		{"no stages", "version: \"1\"\narrival_rate: 1\nstop: {mode: time, horizon: 5}\n"},
		{"zero rate", "version: \"1\"\narrival_rate: 1\nstop: {mode: time, horizon: 5}\nstages: [{service_rate: 0}]\n"},
		{"bad mode", "version: \"1\"\narrival_rate: 1\nstop: {mode: forever}\nstages: [{service_rate: 2}]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseNetworkSpec([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Error(t, spec.Validate())
		})
	}
}

func TestLoadNetworkSpec_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validSpec), 0o644))

	spec, err := LoadNetworkSpec(path)
	require.NoError(t, err)
	assert.Len(t, spec.Stages, 2)

	_, err = LoadNetworkSpec(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadPresets_RepoPresets_AllValid(t *testing.T) {
	// GIVEN the presets shipped at the repository root
	pf, err := LoadPresets(filepath.Join("..", "..", "presets.yaml"))
	require.NoError(t, err)

	// THEN every preset validates and the original topologies are present
	for _, name := range pf.Names() {
		p, err := pf.Lookup(name)
		require.NoError(t, err)
		assert.NoError(t, p.Validate(), "preset %s", name)
	}
	five, err := pf.Lookup("five-stage")
	require.NoError(t, err)
	assert.Equal(t, []float64{3.5, 2.7, 5.6, 6.4, 7.1}, five.ToConfig().ServiceRates())

	_, err = pf.Lookup("nope")
	assert.Error(t, err)
}
