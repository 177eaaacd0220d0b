package trace

// TraceLevel controls the verbosity of event tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelEvents captures every processed event.
	TraceLevelEvents TraceLevel = "events"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelEvents: true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled reports whether the level records anything.
func (c TraceConfig) Enabled() bool {
	return c.Level == TraceLevelEvents
}

// SimulationTrace collects event records during a simulation.
type SimulationTrace struct {
	Config TraceConfig   `msgpack:"config"`
	Events []EventRecord `msgpack:"events"`
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config: config,
		Events: make([]EventRecord, 0),
	}
}

// RecordEvent appends an event record.
func (st *SimulationTrace) RecordEvent(record EventRecord) {
	st.Events = append(st.Events, record)
}

// DepartureOrder returns, for stage index stage, the job ids in the order they departed.
func (st *SimulationTrace) DepartureOrder(stage int) []int64 {
	var jobs []int64
	for _, e := range st.Events {
		if e.Type == "Departure" && e.Stage == stage {
			jobs = append(jobs, e.JobID)
		}
	}
	return jobs
}
