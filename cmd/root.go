package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/tandem-sim/tandem-sim/sim"
	"github.com/tandem-sim/tandem-sim/sim/report"
	"github.com/tandem-sim/tandem-sim/sim/trace"
)

var (
	logLevel    string // Log verbosity level
	presetsPath string // Path to presets.yaml

	runOpts     networkOptions
	traceLevel  string        // Trace verbosity (none, events)
	tracePath   string        // File to write the msgpack event trace to
	resultsPath string        // File to write the JSON report to
	seriesPath  string        // File to write the JSON plot series to
	pace        time.Duration // Wall-clock pause after each event
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "tandem-sim",
	Short: "Discrete-event simulator for tandem networks of single-server queues",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the tandem queue simulation",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := runOpts.resolve(cmd.Flags(), presetsPath)
		if err != nil {
			logrus.Fatalf("Invalid network configuration: %v", err)
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level %q; valid: none, events", traceLevel)
		}
		if tracePath != "" && traceLevel != string(trace.TraceLevelEvents) {
			logrus.Warnf("--trace-path has no effect without --trace-level events")
		}

		startTime := time.Now()
		s, err := runSimulation(cfg, trace.TraceLevel(traceLevel), pace)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Infof("Simulation wall time: %s", time.Since(startTime))

		r := report.Build(s)
		r.Print(os.Stdout)
		if s.Trace != nil {
			printTraceSummary(s.Trace)
		}
		if err := saveOutputs(s, r); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// runSimulation builds and runs one simulator. A positive pause sleeps after
// every event so the logged queue states can be followed live.
func runSimulation(cfg sim.SimConfig, level trace.TraceLevel, pause time.Duration) (*sim.Simulator, error) {
	s, err := sim.NewSimulator(cfg)
	if err != nil {
		return nil, err
	}
	if tc := (trace.TraceConfig{Level: level}); tc.Enabled() {
		s.Trace = trace.NewSimulationTrace(tc)
	}
	if pause > 0 {
		s.Observer = func(ev sim.Event, net *sim.Network) {
			logrus.Infof("[t=%.4f] %s\n%s", ev.Timestamp(), ev.Type(), net)
			time.Sleep(pause)
		}
	}
	if err := s.Run(); err != nil {
		return s, err
	}
	return s, nil
}

func printTraceSummary(st *trace.SimulationTrace) {
	sum := trace.Summarize(st)
	fmt.Println("=== Trace Summary ===")
	fmt.Printf("Events: %d (%d arrivals, %d departures) over [%.4f, %.4f]\n",
		sum.TotalEvents, sum.Arrivals, sum.Departures, sum.FirstTime, sum.LastTime)
	fmt.Printf("Peak jobs in system: %d\n", sum.MaxJobsInSystem)
}

func saveOutputs(s *sim.Simulator, r *report.Report) error {
	if resultsPath != "" {
		if err := r.SaveJSON(resultsPath); err != nil {
			return err
		}
	}
	if seriesPath != "" {
		if err := report.BuildSeries(s, report.DefaultSmoothingWindow).SaveJSON(seriesPath); err != nil {
			return err
		}
	}
	if tracePath != "" && s.Trace != nil {
		if err := writeTrace(tracePath, s.Trace); err != nil {
			return err
		}
	}
	return nil
}

func writeTrace(path string, st *trace.SimulationTrace) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	if err := trace.Encode(f, st); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&presetsPath, "presets-file", defaultPresetsPath, "Path to the presets YAML file")

	runOpts.register(runCmd.Flags())
	runCmd.Flags().StringVar(&traceLevel, "trace-level", string(trace.TraceLevelNone), "Event trace level (none, events)")
	runCmd.Flags().StringVar(&tracePath, "trace-path", "", "Write the event trace as msgpack to this file")
	runCmd.Flags().StringVar(&resultsPath, "results-path", "", "Write the JSON report to this file")
	runCmd.Flags().StringVar(&seriesPath, "series-path", "", "Write queue-length, throughput and sojourn series as JSON to this file")
	runCmd.Flags().DurationVar(&pace, "pace", 0, "Pause after each event, e.g. 200ms (0 disables)")

	rootCmd.AddCommand(runCmd)
}
