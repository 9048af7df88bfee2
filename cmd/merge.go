package cmd

import (
	"github.com/spf13/cobra"

	"schedbench/internal/analyze"
	"schedbench/internal/cli"
)

var (
	mergeInputFiles []string
	mergeOutputFile string
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge summary CSV files sharing one schema into a single table",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := analyze.Merge(mergeInputFiles, mergeOutputFile); err != nil {
			return err
		}
		cli.Successf("merged %d files into %s", len(mergeInputFiles), mergeOutputFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringSliceVar(&mergeInputFiles, "input-files", nil, "Summary CSV files to merge, in order")
	mergeCmd.Flags().StringVar(&mergeOutputFile, "output-file", "results.csv", "File for the merged table")
}
