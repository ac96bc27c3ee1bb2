package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/sarchlab/cachesim/config"
	"github.com/sarchlab/cachesim/datarecording"
	"github.com/sarchlab/cachesim/mem/trace"
	"github.com/sarchlab/cachesim/monitoring"
	"github.com/sarchlab/cachesim/simulation"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay trace files through a hierarchy.",
	Long: `Run builds the hierarchy described by the configuration file and ` +
		`replays every trace in order, printing a report after each one. ` +
		`Replaying the same trace again keeps the caches warm.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		h, err := loadHierarchy(cmd)
		if err != nil {
			return err
		}

		opts, err := runOptionsFromFlags(cmd)
		if err != nil {
			return err
		}

		return runTraces(cmd, h, opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("config", "cachesim.yaml",
		"The hierarchy configuration file.")
	runCmd.Flags().StringArray("trace", nil,
		"A trace file to replay. Can be repeated.")
	runCmd.Flags().Int("repeat", 1, "How many times each trace is replayed.")
	runCmd.Flags().String("db", "",
		"Record the results into <db>.sqlite3. "+
			"Use \"auto\" for a generated name.")
	runCmd.Flags().Bool("trace-accesses", false,
		"Record every access and write-back into the database.")
	runCmd.Flags().Bool("verbose", false, "Log every access.")
	runCmd.Flags().Bool("monitor", false,
		"Serve the state of the simulation over HTTP.")
	runCmd.Flags().Int("monitor-port", 0,
		"The port of the monitoring server. 0 picks a random port.")
	runCmd.Flags().Bool("open-browser", false,
		"Open the monitoring page in a browser.")
	runCmd.Flags().String("statsview", "",
		"Serve runtime charts of the simulator on this address.")

	_ = runCmd.MarkFlagRequired("trace")
}

type runOptions struct {
	traces        []string
	repeat        int
	dbName        string
	traceAccesses bool
	verbose       bool
	monitor       bool
	monitorPort   int
	openBrowser   bool
	statsView     string
}

func runOptionsFromFlags(cmd *cobra.Command) (runOptions, error) {
	flags := cmd.Flags()

	opts := runOptions{}
	opts.traces, _ = flags.GetStringArray("trace")
	opts.repeat, _ = flags.GetInt("repeat")
	opts.dbName, _ = flags.GetString("db")
	opts.traceAccesses, _ = flags.GetBool("trace-accesses")
	opts.verbose, _ = flags.GetBool("verbose")
	opts.monitor, _ = flags.GetBool("monitor")
	opts.monitorPort, _ = flags.GetInt("monitor-port")
	opts.openBrowser, _ = flags.GetBool("open-browser")
	opts.statsView, _ = flags.GetString("statsview")

	if !flags.Changed("db") {
		opts.dbName = config.EnvString(config.EnvDB, opts.dbName)
	}

	if !flags.Changed("monitor-port") {
		opts.monitorPort = config.EnvInt(config.EnvMonitorPort, opts.monitorPort)
	}

	if opts.repeat < 1 {
		return opts, fmt.Errorf("repeat must be at least 1, got %d", opts.repeat)
	}

	if opts.traceAccesses && opts.dbName == "" {
		return opts, fmt.Errorf("--trace-accesses requires --db")
	}

	return opts, nil
}

func runTraces(cmd *cobra.Command, h config.Hierarchy, opts runOptions) error {
	builder := simulation.MakeBuilder().WithHierarchy(h)

	var dataRecorder datarecording.DataRecorder

	if opts.dbName != "" {
		if opts.dbName == "auto" {
			opts.dbName = datarecording.DefaultName()
		}

		dataRecorder = datarecording.New(opts.dbName)
		defer dataRecorder.Close()

		builder = builder.WithRecorder(simulation.NewRecorder(dataRecorder))
		log.Printf("Recording results into %s.sqlite3", opts.dbName)
	}

	s, err := builder.Build()
	if err != nil {
		return err
	}

	if opts.traceAccesses {
		s.AcceptHook(trace.NewDBTracer(dataRecorder))
	}

	var cyclesTracer *trace.TotalAvgCyclesTracer

	if opts.verbose {
		s.AcceptHook(trace.NewLogTracer(log.New(os.Stderr, "", 0)))

		cyclesTracer = trace.NewTotalAvgCyclesTracer(nil)
		s.AcceptHook(cyclesTracer)
	}

	if opts.statsView != "" {
		monitoring.LaunchStatsView(opts.statsView, os.Stderr)
	}

	var monitor *monitoring.Monitor

	if opts.monitor {
		monitor = monitoring.NewMonitor().WithPortNumber(opts.monitorPort)
		monitor.RegisterSimulation(s)
		url := monitor.StartServer()

		if opts.openBrowser {
			if err := monitoring.OpenInBrowser(url); err != nil {
				log.Printf("Cannot open browser: %v", err)
			}
		}
	}

	out := cmd.OutOrStdout()

	for _, path := range opts.traces {
		for i := 0; i < opts.repeat; i++ {
			if err := runOnce(s, monitor, path, out); err != nil {
				return err
			}

			if cyclesTracer != nil {
				printObservedCycles(out, cyclesTracer)
			}
		}
	}

	if monitor != nil {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		log.Printf("Simulation finished. Press Ctrl+C to stop monitoring.")
		<-ctx.Done()
	}

	return nil
}

func runOnce(
	s *simulation.Simulation,
	monitor *monitoring.Monitor,
	path string,
	out io.Writer,
) error {
	if monitor != nil {
		bar := monitor.CreateProgressBar(path, countRecords(path))
		defer monitor.CompleteProgressBar(bar)

		s.SetProgressReporter(bar)
	}

	result, err := s.RunFile(path)
	if err != nil && result.RunID == "" {
		return fmt.Errorf("%s: %w", path, err)
	}

	if reportErr := s.Report(out); reportErr != nil {
		return reportErr
	}

	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func printObservedCycles(w io.Writer, t *trace.TotalAvgCyclesTracer) {
	fmt.Fprintln(w, "Observed cycles per access:")

	for _, name := range t.ModuleNames() {
		fmt.Fprintf(w, "%-20s%10.4f  (%d accesses)\n",
			name+":", t.AverageCycles(name), t.TotalCount(name))
	}

	fmt.Fprintln(w)
}

func countRecords(path string) uint64 {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	reader := trace.NewReader(f)
	for {
		if _, err := reader.Read(); err != nil {
			break
		}
	}

	return uint64(reader.Count())
}
