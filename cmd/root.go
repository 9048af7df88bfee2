package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schedbench/internal/banner"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "schedbench",
	Short: "schedbench - scheduling benchmark driver",
	Long: `
schedbench drives performance evaluation of a request-scheduling
server under synthetic load. It generates multi-dimensional workload
sweeps, runs an external load client once per sweep point, and
aggregates the raw per-request results into summary tables.`,
	SilenceUsage: true,
}

func Execute() {
	// Custom help with banner
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Println(banner.GetString())
		cmd.Usage()
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.schedbench.yaml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".schedbench")
		}
	}
	viper.SetEnvPrefix("SCHEDBENCH")
	viper.AutomaticEnv()
	viper.ReadInConfig()
}
