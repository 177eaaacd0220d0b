package report

import (
	"fmt"
	"io"

	"github.com/tandem-sim/tandem-sim/sim"
)

// PrintTheory writes the closed-form values for cfg without simulating.
func PrintTheory(w io.Writer, cfg sim.SimConfig) {
	fmt.Fprintln(w, "=== Theoretical Values ===")
	fmt.Fprintf(w, "Arrival rate: %.4f\n", cfg.ArrivalRate)
	for i, rho := range sim.Utilizations(cfg) {
		fmt.Fprintf(w, "Queue %d: service rate %.4f, load %.3f\n", cfg.StageID(i), cfg.Stages[i].ServiceRate, rho)
	}
	fmt.Fprintf(w, "Theoretical Mean Sojourn Time (sum of mean service times): %.4f\n", sim.TheoreticalMeanSojourn(cfg))
	fmt.Fprintf(w, "Theoretical Average Queue Length (Little's Law): %.4f\n", sim.TheoreticalMeanQueueLength(cfg))
	jw, ok := sim.JacksonMeanSojourn(cfg)
	if !ok {
		fmt.Fprintln(w, "Jackson M/M/1: unstable (some stage has load >= 1)")
		return
	}
	l, _ := sim.JacksonMeanJobsInSystem(cfg)
	fmt.Fprintf(w, "Jackson M/M/1 Mean Sojourn Time: %.4f\n", jw)
	fmt.Fprintf(w, "Jackson M/M/1 Mean Jobs in System: %.4f\n", l)
}
