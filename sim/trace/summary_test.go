package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalEvents != 0 || summary.Arrivals != 0 || summary.Departures != 0 {
		t.Errorf("expected zero counts, got %+v", summary)
	}
	if len(summary.DeparturesByStage) != 0 {
		t.Error("expected empty per-stage departures")
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with two arrivals and three departures over two stages
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelEvents})
	st.RecordEvent(EventRecord{Type: "Arrival", Time: 1, JobID: 1, Stage: -1, QueueLengths: []int{1, 0}})
	st.RecordEvent(EventRecord{Type: "Arrival", Time: 2, JobID: 2, Stage: -1, QueueLengths: []int{2, 0}})
	st.RecordEvent(EventRecord{Type: "Departure", Time: 3, JobID: 1, Stage: 0, QueueLengths: []int{1, 1}})
	st.RecordEvent(EventRecord{Type: "Departure", Time: 4, JobID: 1, Stage: 1, QueueLengths: []int{1, 0}})
	st.RecordEvent(EventRecord{Type: "Departure", Time: 5, JobID: 2, Stage: 0, QueueLengths: []int{0, 1}})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts and time bounds match
	if summary.TotalEvents != 5 {
		t.Errorf("expected 5 events, got %d", summary.TotalEvents)
	}
	if summary.Arrivals != 2 || summary.Departures != 3 {
		t.Errorf("expected 2 arrivals / 3 departures, got %d / %d", summary.Arrivals, summary.Departures)
	}
	if summary.DeparturesByStage[0] != 2 || summary.DeparturesByStage[1] != 1 {
		t.Errorf("unexpected per-stage departures %v", summary.DeparturesByStage)
	}
	if summary.FirstTime != 1 || summary.LastTime != 5 {
		t.Errorf("expected time span [1, 5], got [%v, %v]", summary.FirstTime, summary.LastTime)
	}
	if summary.MaxJobsInSystem != 2 {
		t.Errorf("expected max 2 jobs in system, got %d", summary.MaxJobsInSystem)
	}
}
