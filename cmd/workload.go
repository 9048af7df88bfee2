package cmd

import (
	"github.com/spf13/cobra"

	"schedbench/internal/cli"
)

var (
	workloadSweep      sweepFlags
	workloadOutputFile string
	workloadDebug      bool
)

var workloadCmd = &cobra.Command{
	Use:   "workload",
	Short: "Generate a workload sweep and write it to a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		space, err := workloadSweep.space()
		if err != nil {
			return err
		}

		set, err := space.Generate()
		if err != nil {
			return err
		}

		if workloadDebug {
			for i, p := range set.Workload {
				cli.Infof("%5d: n=%d slow=%s fast=%s percent=%d",
					i, p.TotRequests, p.SlowInterval, p.FastInterval, p.SlowPercent)
			}
		}

		if err := set.WriteFile(workloadOutputFile); err != nil {
			return err
		}
		cli.Successf("wrote %d sweep points to %s", len(set.Workload), workloadOutputFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workloadCmd)

	workloadSweep.register(workloadCmd)
	workloadCmd.Flags().StringVar(&workloadOutputFile, "output-file", "workload.json", "Filepath to save the generated workload")
	workloadCmd.Flags().BoolVar(&workloadDebug, "debug", false, "Print every generated sweep point")
}
