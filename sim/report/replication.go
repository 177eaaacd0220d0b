package report

import (
	"fmt"
	"io"

	"github.com/tandem-sim/tandem-sim/sim/stats"
)

// ReplicationSummary aggregates independent runs of the same network.
// Each run contributes one observation, so the intervals are across-run.
type ReplicationSummary struct {
	Replications           int     `json:"replications"`
	MeanSojourn            float64 `json:"mean_sojourn"`
	SojournMargin          float64 `json:"sojourn_margin"`
	MeanJobsInSystem       float64 `json:"mean_jobs_in_system"`
	JobsInSystemMargin     float64 `json:"jobs_in_system_margin"`
	MeanLittleRatio        float64 `json:"mean_little_ratio"`
	TheoreticalMeanSojourn float64 `json:"theoretical_mean_sojourn"`
}

// SummarizeReplications combines per-run reports. Safe for an empty slice.
func SummarizeReplications(reports []*Report) *ReplicationSummary {
	sum := &ReplicationSummary{Replications: len(reports)}
	if len(reports) == 0 {
		return sum
	}
	sojourns := make([]float64, len(reports))
	jobs := make([]float64, len(reports))
	ratios := make([]float64, len(reports))
	for i, r := range reports {
		sojourns[i] = r.MeanSojourn
		jobs[i] = r.MeanJobsInSystem
		ratios[i] = r.LittleRatio
	}
	sum.MeanSojourn, sum.SojournMargin = stats.ConfidenceInterval(sojourns, stats.DefaultConfidenceLevel)
	sum.MeanJobsInSystem, sum.JobsInSystemMargin = stats.ConfidenceInterval(jobs, stats.DefaultConfidenceLevel)
	sum.MeanLittleRatio = stats.Mean(ratios)
	sum.TheoreticalMeanSojourn = reports[0].TheoreticalMeanSojourn
	return sum
}

// Print writes the across-replication summary.
func (s *ReplicationSummary) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Replication Summary ===")
	fmt.Fprintf(w, "Replications: %d\n", s.Replications)
	fmt.Fprintf(w, "Mean Sojourn Time: %.2f ± %.2f (95%% CI across runs)\n", s.MeanSojourn, s.SojournMargin)
	fmt.Fprintf(w, "Mean Jobs in System: %.2f ± %.2f (95%% CI across runs)\n", s.MeanJobsInSystem, s.JobsInSystemMargin)
	fmt.Fprintf(w, "Mean Little ratio: %.3f\n", s.MeanLittleRatio)
	fmt.Fprintf(w, "Theoretical Mean Sojourn Time (sum of mean service times): %.2f\n", s.TheoreticalMeanSojourn)
}

// SaveJSON writes the summary to path.
func (s *ReplicationSummary) SaveJSON(path string) error {
	return writeJSON(path, s)
}
