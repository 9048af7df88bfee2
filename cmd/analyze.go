package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"schedbench/internal/analyze"
	"schedbench/internal/cli"
)

var (
	analyzeInputDir      string
	analyzeOutput        string
	analyzeConcurrency   int
	analyzeCommaDecimals bool
	analyzeDebug         bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Aggregate raw result files into a summary CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		opts := analyze.Options{
			CommaDecimals: analyzeCommaDecimals,
			Debug:         analyzeDebug,
			Warnf:         cli.Warnf,
		}

		rows, failures, err := analyze.Directory(ctx, analyzeInputDir, analyzeConcurrency, opts)
		if err != nil {
			return err
		}

		if analyzeDebug {
			for _, row := range rows {
				cli.Infof("%s: slow p50/p99 rt %s/%s, fast p50/p99 rt %s/%s",
					row.Algorithm,
					time.Duration(row.Slow.P50Response()), time.Duration(row.Slow.P99Response()),
					time.Duration(row.Fast.P50Response()), time.Duration(row.Fast.P99Response()))
			}
		}

		out := os.Stdout
		if analyzeOutput != "" {
			f, err := os.Create(analyzeOutput)
			if err != nil {
				return fmt.Errorf("cannot create output file %q: %w", analyzeOutput, err)
			}
			defer f.Close()
			out = f
		}
		if err := analyze.WriteCSV(out, rows, opts); err != nil {
			return err
		}
		if analyzeOutput != "" {
			cli.Successf("wrote %d summary rows to %s", len(rows), analyzeOutput)
		}

		if len(failures) > 0 {
			for _, failure := range failures {
				cli.Failf("%v", failure)
			}
			return fmt.Errorf("%d of %d result files failed to aggregate", len(failures), len(failures)+len(rows))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeInputDir, "input-directory", "results", "Directory of raw result files")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "output", "results.csv", "File to write the summary CSV (empty for stdout)")
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 1, "Number of files to aggregate concurrently")
	analyzeCmd.Flags().BoolVar(&analyzeCommaDecimals, "comma-decimals", false, "Render means with a comma decimal separator")
	analyzeCmd.Flags().BoolVar(&analyzeDebug, "debug", false, "Print per-file latency percentiles")
}
