// Package cmd - find command
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slcsp/core/engine"
	"slcsp/internal/config"
	"slcsp/internal/logging"
)

var tier string

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find <data-dir>",
	Short: "Compute SLCSP rates and rewrite the request file",
	Long: `Compute the second-lowest-cost Silver plan premium for every zip
code in <data-dir>/slcsp.csv and overwrite that file with the results.

The data directory must contain slcsp.csv (the request list),
plans.csv and zips.csv.

Examples:
  slcsp find ./data
  slcsp find --tier Gold ./data`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringVarP(&tier, "tier", "t", "", "metal tier to rank (default from config: Silver)")
}

func runFind(cmd *cobra.Command, args []string) error {
	result, err := runPipeline(args[0], false)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d rows (%d blank) to %s\n",
		len(result.Rows), result.BlankRows, args[0])
	return nil
}

func runPipeline(dir string, dryRun bool) (*engine.Result, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("data directory does not exist: %s", dir)
	}

	cfg := config.Get()
	engCfg := engine.Config{
		RequestFile: cfg.Files.Request,
		PlansFile:   cfg.Files.Plans,
		ZipsFile:    cfg.Files.Zips,
		MetalLevel:  cfg.Rating.MetalLevel,
		DryRun:      dryRun,
	}
	if tier != "" {
		engCfg.MetalLevel = tier
	}

	defer logging.Sync()

	eng := engine.New(engCfg)
	return eng.Run(context.Background(), dir)
}
