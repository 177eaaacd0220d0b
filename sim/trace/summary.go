package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvents       int
	Arrivals          int
	Departures        int
	FirstTime         float64
	LastTime          float64
	MaxJobsInSystem   int
	DeparturesByStage map[int]int // stage index → departures
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DeparturesByStage: make(map[int]int),
	}
	if st == nil || len(st.Events) == 0 {
		return summary
	}

	summary.TotalEvents = len(st.Events)
	summary.FirstTime = st.Events[0].Time
	summary.LastTime = st.Events[len(st.Events)-1].Time
	for _, e := range st.Events {
		switch e.Type {
		case "Arrival":
			summary.Arrivals++
		case "Departure":
			summary.Departures++
			summary.DeparturesByStage[e.Stage]++
		}
		inSystem := 0
		for _, l := range e.QueueLengths {
			inSystem += l
		}
		if inSystem > summary.MaxJobsInSystem {
			summary.MaxJobsInSystem = inSystem
		}
	}
	return summary
}
