package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tandem-sim/tandem-sim/sim/topology"
)

// defaultPresetsPath is resolved relative to the working directory.
const defaultPresetsPath = "presets.yaml"

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the named networks in the presets file",
	Run: func(cmd *cobra.Command, args []string) {
		pf, err := topology.LoadPresets(presetsPath)
		if err != nil {
			logrus.Fatalf("Failed to load presets: %v", err)
		}
		listPresets(os.Stdout, pf)
	},
}

func listPresets(w io.Writer, pf *topology.PresetFile) {
	for _, name := range pf.Names() {
		p := pf.Presets[name]
		fmt.Fprintf(w, "%-12s %d stages, λ=%g, stop=%s  %s\n", name, len(p.Stages), p.ArrivalRate, p.Stop.Mode, p.Description)
	}
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
