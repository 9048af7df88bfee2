package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"schedbench/internal/cli"
	"schedbench/internal/dummy"
)

var dummyCfg dummy.ClientConfig

// dummyCmd mirrors the external client's flag contract so the bench
// command can point --client-path at "schedbench dummy" for local
// end-to-end runs without a server under test.
var dummyCmd = &cobra.Command{
	Use:   "dummy",
	Short: "Run a stand-in load client that writes synthetic results",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := dummy.Run(dummyCfg); err != nil {
			return err
		}
		cli.Successf("wrote %d synthetic records to %s", dummyCfg.NRequest, dummyCfg.OutFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dummyCmd)

	dummyCmd.Flags().StringVar(&dummyCfg.ServerAddr, "server-addr", "127.0.0.1:8000", "Address of the server (ignored, accepted for contract compatibility)")
	dummyCmd.Flags().IntVar(&dummyCfg.NRequest, "n-request", 100, "Number of records to generate")
	dummyCmd.Flags().DurationVar(&dummyCfg.SlowInterval, "slow-request-interval", 10*time.Microsecond, "Latency scale for slow records")
	dummyCmd.Flags().DurationVar(&dummyCfg.FastInterval, "fast-request-interval", time.Microsecond, "Latency scale for fast records")
	dummyCmd.Flags().Float64Var(&dummyCfg.SlowPercent, "slow-request-percent", 50, "Percent of slow records")
	dummyCmd.Flags().IntVar(&dummyCfg.Concurrency, "concurrency", 1, "Accepted for contract compatibility")
	dummyCmd.Flags().StringVar(&dummyCfg.OutFile, "write", "result.txt", "File path to write records")
}
