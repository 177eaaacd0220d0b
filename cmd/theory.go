package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tandem-sim/tandem-sim/sim/report"
)

var theoryOpts networkOptions

// theoryCmd prints closed-form values without simulating
var theoryCmd = &cobra.Command{
	Use:   "theory",
	Short: "Print theoretical sojourn time and queue length for a network",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := theoryOpts.resolve(cmd.Flags(), presetsPath)
		if err != nil {
			logrus.Fatalf("Invalid network configuration: %v", err)
		}
		report.PrintTheory(os.Stdout, cfg)
	},
}

func init() {
	theoryOpts.register(theoryCmd.Flags())
	rootCmd.AddCommand(theoryCmd)
}
