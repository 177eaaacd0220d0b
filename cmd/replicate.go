package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/tandem-sim/tandem-sim/sim"
	"github.com/tandem-sim/tandem-sim/sim/report"
	"github.com/tandem-sim/tandem-sim/sim/trace"
)

var (
	replicateOpts      networkOptions
	replications       int    // Number of independent runs
	replicationResults string // File to write the JSON summary to
)

// replicateCmd runs independent replications of one network with seeds seed, seed+1, ...
var replicateCmd = &cobra.Command{
	Use:   "replicate",
	Short: "Run independent replications and report confidence intervals across runs",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := replicateOpts.resolve(cmd.Flags(), presetsPath)
		if err != nil {
			logrus.Fatalf("Invalid network configuration: %v", err)
		}
		if replications < 1 {
			logrus.Fatalf("--replications must be >= 1, got %d", replications)
		}
		reports, err := replicate(cfg, replications)
		if err != nil {
			logrus.Fatalf("Replication failed: %v", err)
		}
		summary := report.SummarizeReplications(reports)
		summary.Print(os.Stdout)
		if replicationResults != "" {
			if err := summary.SaveJSON(replicationResults); err != nil {
				logrus.Fatalf("%v", err)
			}
		}
	},
}

// replicate runs n simulations of cfg, the r-th with seed cfg.Seed+r.
func replicate(cfg sim.SimConfig, n int) ([]*report.Report, error) {
	reports := make([]*report.Report, 0, n)
	for r := 0; r < n; r++ {
		run := cfg
		run.Seed = cfg.Seed + int64(r)
		s, err := runSimulation(run, trace.TraceLevelNone, 0)
		if err != nil {
			return nil, err
		}
		rep := report.Build(s)
		logrus.Infof("Replication %d/%d: %d completed, mean sojourn %.4f",
			r+1, n, rep.CompletedJobs, rep.MeanSojourn)
		reports = append(reports, rep)
	}
	return reports, nil
}

func init() {
	replicateOpts.register(replicateCmd.Flags())
	replicateCmd.Flags().IntVar(&replications, "replications", 10, "Number of independent replications")
	replicateCmd.Flags().StringVar(&replicationResults, "results-path", "", "Write the JSON summary to this file")
	rootCmd.AddCommand(replicateCmd)
}
