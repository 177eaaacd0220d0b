// Package report turns a finished simulation into the observed-versus-theoretical
// summary shown to users, and saves it as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tandem-sim/tandem-sim/sim"
	"github.com/tandem-sim/tandem-sim/sim/stats"
)

// StageReport summarizes one station.
type StageReport struct {
	ID                     int     `json:"id"`
	ServiceRate            float64 `json:"service_rate"`
	Throughput             int64   `json:"throughput"`
	MeanQueueLength        float64 `json:"mean_queue_length"` // over snapshots
	QueueLengthMargin      float64 `json:"queue_length_margin"`
	TimeAverageQueueLength float64 `json:"time_average_queue_length"`
	Utilization            float64 `json:"utilization"` // fraction of snapshots with a busy server
	OfferedLoad            float64 `json:"offered_load"`
	MeanStageSojourn       float64 `json:"mean_stage_sojourn"`
	StageSojournMargin     float64 `json:"stage_sojourn_margin"`
}

// Report is the end-of-run summary.
type Report struct {
	RunID        string  `json:"run_id"`
	Seed         int64   `json:"seed"`
	ArrivalRate  float64 `json:"arrival_rate"`
	StopMode     string  `json:"stop_mode"`
	StopReason   string  `json:"stop_reason"`
	SimEndedTime float64 `json:"sim_ended_time"`

	ArrivalsProcessed int64 `json:"arrivals_processed"`
	CompletedJobs     int64 `json:"completed_jobs"`
	EventsProcessed   int64 `json:"events_processed"`
	JobsInSystem      int   `json:"jobs_in_system"`

	MeanSojourn      float64 `json:"mean_sojourn"`
	SojournMargin    float64 `json:"sojourn_margin"`
	MeanJobsInSystem float64 `json:"mean_jobs_in_system"` // time-weighted
	LittleRatio      float64 `json:"little_ratio"`        // L / (observed λ · W)

	TheoreticalMeanSojourn     float64  `json:"theoretical_mean_sojourn"`
	TheoreticalMeanQueueLength float64  `json:"theoretical_mean_queue_length"`
	JacksonMeanSojourn         *float64 `json:"jackson_mean_sojourn,omitempty"`

	Stages []StageReport `json:"stages"`
}

// Build computes a Report from a stopped simulator.
func Build(s *sim.Simulator) *Report {
	m := s.Metrics()
	cfg := s.Config
	r := &Report{
		RunID:                      uuid.NewString(),
		Seed:                       cfg.Seed,
		ArrivalRate:                cfg.ArrivalRate,
		StopMode:                   string(cfg.Stop.Mode),
		StopReason:                 string(s.StopReason),
		SimEndedTime:               m.SimEndedTime,
		ArrivalsProcessed:          m.ArrivalsProcessed,
		CompletedJobs:              m.CompletedJobs,
		EventsProcessed:            m.EventsProcessed,
		JobsInSystem:               s.Network.JobsInSystem(),
		MeanJobsInSystem:           m.TimeAverageJobsInSystem(),
		TheoreticalMeanSojourn:     sim.TheoreticalMeanSojourn(cfg),
		TheoreticalMeanQueueLength: sim.TheoreticalMeanQueueLength(cfg),
	}
	r.MeanSojourn, r.SojournMargin = stats.ConfidenceInterval(m.SojournTimes, stats.DefaultConfidenceLevel)
	if w, ok := sim.JacksonMeanSojourn(cfg); ok {
		r.JacksonMeanSojourn = &w
	}
	if m.SimEndedTime > 0 && r.MeanSojourn > 0 {
		observedRate := float64(m.ArrivalsProcessed) / m.SimEndedTime
		r.LittleRatio = r.MeanJobsInSystem / (observedRate * r.MeanSojourn)
	}

	load := sim.Utilizations(cfg)
	r.Stages = make([]StageReport, s.Network.Len())
	for i := range r.Stages {
		st := s.Network.Stage(i)
		sr := StageReport{
			ID:                     st.ID,
			ServiceRate:            st.ServiceRate,
			Throughput:             m.Throughput[i],
			TimeAverageQueueLength: m.TimeAverageQueueLength(i),
			Utilization:            stats.Utilization(m.QueueLengths[i]),
			OfferedLoad:            load[i],
		}
		sr.MeanQueueLength, sr.QueueLengthMargin = stats.ConfidenceInterval(
			stats.ToFloat64(m.QueueLengths[i]), stats.DefaultConfidenceLevel)
		sr.MeanStageSojourn, sr.StageSojournMargin = stats.ConfidenceInterval(
			m.StageSojournTimes[i], stats.DefaultConfidenceLevel)
		r.Stages[i] = sr
	}
	return r
}

// Print writes the human-readable summary.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Run ID               : %s\n", r.RunID)
	fmt.Fprintf(w, "Stopped              : %s at t=%.2f\n", r.StopReason, r.SimEndedTime)
	fmt.Fprintf(w, "Arrivals             : %d\n", r.ArrivalsProcessed)
	fmt.Fprintf(w, "Total jobs completed : %d\n", r.CompletedJobs)
	fmt.Fprintf(w, "Jobs still in system : %d\n", r.JobsInSystem)
	for _, st := range r.Stages {
		fmt.Fprintf(w, "Throughput of Queue %d: %d jobs\n", st.ID, st.Throughput)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Mean Sojourn Time: %.2f ± %.2f (95%% CI)\n", r.MeanSojourn, r.SojournMargin)
	for _, st := range r.Stages {
		fmt.Fprintf(w, "Average Queue Length for Queue %d: %.2f ± %.2f (95%% CI), time-average %.2f, utilization %.2f\n",
			st.ID, st.MeanQueueLength, st.QueueLengthMargin, st.TimeAverageQueueLength, st.Utilization)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Theoretical Mean Sojourn Time (sum of mean service times): %.2f\n", r.TheoreticalMeanSojourn)
	fmt.Fprintf(w, "Theoretical Average Queue Length (Little's Law): %.2f\n", r.TheoreticalMeanQueueLength)
	if r.JacksonMeanSojourn != nil {
		fmt.Fprintf(w, "Jackson M/M/1 Mean Sojourn Time: %.2f\n", *r.JacksonMeanSojourn)
	} else {
		fmt.Fprintln(w, "Jackson M/M/1 Mean Sojourn Time: unstable (some stage has load >= 1)")
	}
	fmt.Fprintf(w, "Observed Mean Sojourn Time: %.2f\n", r.MeanSojourn)
	fmt.Fprintf(w, "Observed Mean Jobs in System: %.2f (Little ratio %.3f)\n", r.MeanJobsInSystem, r.LittleRatio)
}

// SaveJSON writes the report to path.
func (r *Report) SaveJSON(path string) error {
	return writeJSON(path, r)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logrus.Debugf("Successfully wrote '%s'", path)
	return nil
}
