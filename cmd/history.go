package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"schedbench/internal/cli"
	"schedbench/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded bench runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open()
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.List()
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			cli.Infof("no recorded runs")
			return nil
		}

		cli.Header("HISTORY")
		fmt.Printf("  %-20s  %-8s  %-22s  %-12s  %s\n", "Started", "Alg", "Server", "Points", "Elapsed")
		for _, run := range runs {
			points := fmt.Sprintf("%d/%d", run.Completed, run.Points)
			if run.Failed > 0 {
				points += fmt.Sprintf(" (%d failed)", run.Failed)
			}
			fmt.Printf("  %-20s  %-8s  %-22s  %-12s  %s\n",
				run.StartedAt.Format(time.DateTime),
				run.Algorithm,
				run.ServerAddr,
				points,
				run.Elapsed.Round(time.Millisecond),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
