// Package cmd provides the CLI commands for slcsp.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slcsp/internal/config"
	"slcsp/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "slcsp",
	Short: "Find the second-lowest-cost Silver plan for a list of zip codes",
	Long: `slcsp computes the premium of the second-lowest-cost Silver-tier
health plan (SLCSP) for every zip code in a request file.

It reads slcsp.csv, plans.csv and zips.csv from a data directory and
rewrites slcsp.csv in place with the results, preserving the original
row order. Zip codes spanning more than one rate area, and rate areas
with fewer than two distinct Silver premiums, come back blank.

Examples:
  slcsp find ./data
  slcsp validate ./data
  slcsp find --tier Gold ./data`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.slcsp.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("slcsp version 0.1.0")
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}
