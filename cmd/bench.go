package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schedbench/internal/bench"
	"schedbench/internal/cli"
	"schedbench/internal/storage"
	"schedbench/internal/sweep"
	"schedbench/internal/tui"
)

var (
	benchSweep        sweepFlags
	benchWorkloadFile string
	benchAlgorithm    string
	benchConcurrency  int
	benchOutputDir    string
	benchTimeout      time.Duration
	benchKeepGoing    bool
	benchUseTUI       bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the load client once per sweep point",
	Long: `
Runs the external load client synchronously for every sweep point,
writing one raw result file per point into the output directory. The
sweep comes from a previously generated workload file (--workload) or
is built inline from the dimension flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := loadBenchSet()
		if err != nil {
			return err
		}

		cfg := bench.Config{
			ClientPath:  viper.GetString("client-path"),
			ServerAddr:  viper.GetString("server-address"),
			Algorithm:   benchAlgorithm,
			OutputDir:   benchOutputDir,
			Concurrency: benchConcurrency,
			Timeout:     benchTimeout,
			KeepGoing:   benchKeepGoing,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cli.Header("BENCH")
		cli.KeyValue("client", cfg.ClientPath)
		cli.KeyValue("server", cfg.ServerAddr)
		cli.KeyValue("algorithm", cfg.Algorithm)
		cli.KeyValue("concurrency", fmt.Sprintf("%d", cfg.Concurrency))
		cli.KeyValue("points", fmt.Sprintf("%d", len(set.Workload)))

		runner := bench.NewRunner(cfg)
		startedAt := time.Now()

		var report *bench.Report
		var runErr error
		if benchUseTUI {
			report, runErr = runWithTUI(ctx, runner, set, cfg.Algorithm)
		} else {
			report, runErr = runner.Run(ctx, set, func(index, total int, point sweep.Point, err error) {
				desc := fmt.Sprintf("n=%d slow=%s fast=%s percent=%d",
					point.TotRequests, point.SlowInterval, point.FastInterval, point.SlowPercent)
				if err != nil {
					desc += " FAILED"
				}
				cli.ProgressLine(index, total, desc)
			})
		}

		if report != nil {
			saveHistory(cfg, report, startedAt)
			printReport(report)
		}

		if runErr != nil {
			return runErr
		}
		if report != nil && len(report.Failures) > 0 {
			return fmt.Errorf("%d of %d sweep points failed", len(report.Failures), report.Total)
		}
		return nil
	},
}

func loadBenchSet() (*sweep.Set, error) {
	if benchWorkloadFile != "" {
		return sweep.Load(benchWorkloadFile)
	}
	space, err := benchSweep.space()
	if err != nil {
		return nil, err
	}
	return space.Generate()
}

func runWithTUI(ctx context.Context, runner *bench.Runner, set *sweep.Set, algorithm string) (*bench.Report, error) {
	p := tea.NewProgram(tui.NewModel(algorithm, len(set.Workload)))

	wait := runner.Start(ctx, set, func(index, total int, point sweep.Point, err error) {
		p.Send(tui.PointMsg{Index: index, Total: total, Point: point, Err: err})
	}, func(err error) {
		p.Send(tui.DoneMsg{Err: err})
	})

	_, teaErr := p.Run()
	// Quitting the view early must not leave the sweep running: stop it
	// and wait for the runner before touching the report.
	report, runErr := wait()
	if teaErr != nil {
		return report, teaErr
	}
	return report, runErr
}

func saveHistory(cfg bench.Config, report *bench.Report, startedAt time.Time) {
	store, err := storage.Open()
	if err != nil {
		cli.Warnf("history not recorded: %v", err)
		return
	}
	defer store.Close()

	err = store.Save(storage.Run{
		ID:         uuid.NewString(),
		StartedAt:  startedAt,
		Algorithm:  cfg.Algorithm,
		ServerAddr: cfg.ServerAddr,
		OutputDir:  cfg.OutputDir,
		Points:     report.Total,
		Completed:  report.Completed,
		Failed:     len(report.Failures),
		Elapsed:    report.Elapsed,
	})
	if err != nil {
		cli.Warnf("history not recorded: %v", err)
	}
}

func printReport(report *bench.Report) {
	cli.Header("RESULT")
	cli.KeyValue("completed", fmt.Sprintf("%d/%d", report.Completed, report.Total))
	cli.KeyValue("elapsed", report.Elapsed.Round(time.Millisecond).String())

	for _, failure := range report.Failures {
		cli.Failf("%v", failure)
	}
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchSweep.register(benchCmd)
	benchCmd.Flags().StringVar(&benchWorkloadFile, "workload", "", "Workload JSON file to run (overrides the dimension flags)")
	benchCmd.Flags().String("client-path", "build/client", "Path of the load client binary")
	benchCmd.Flags().String("server-address", "127.0.0.1:8000", "Address of the server under test")
	benchCmd.Flags().StringVar(&benchAlgorithm, "algorithm", "fcfs", "Label of the scheduling algorithm under test")
	benchCmd.Flags().IntVar(&benchConcurrency, "concurrency", 1, "Concurrency passed to every client invocation")
	benchCmd.Flags().StringVar(&benchOutputDir, "output-directory", "results", "Directory for raw result files")
	benchCmd.Flags().DurationVar(&benchTimeout, "timeout", 0, "Per-invocation timeout (0 disables)")
	benchCmd.Flags().BoolVar(&benchKeepGoing, "keep-going", false, "Record failed invocations and continue instead of aborting")
	benchCmd.Flags().BoolVar(&benchUseTUI, "tui", false, "Show a live progress view")

	viper.BindPFlag("client-path", benchCmd.Flags().Lookup("client-path"))
	viper.BindPFlag("server-address", benchCmd.Flags().Lookup("server-address"))
}
