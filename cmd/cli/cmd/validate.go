// Package cmd - validate command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <data-dir>",
	Short: "Parse the input files and report counts without writing",
	Long: `Run the full pipeline in dry-run mode: all three input files are
parsed and the results computed, but the request file is left
untouched. Useful for checking a data directory before a real run.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	result, err := runPipeline(args[0], true)
	if err != nil {
		return err
	}

	fmt.Printf("Run %s OK\n", result.RunID)
	fmt.Printf("  requested zip codes: %d\n", result.RequestedZips)
	fmt.Printf("  priced rate areas:   %d\n", result.PricedAreas)
	fmt.Printf("  resolved zip codes:  %d\n", result.ResolvedZips)
	fmt.Printf("  blank result rows:   %d\n", result.BlankRows)
	fmt.Printf("  duration:            %s\n", result.Duration)
	return nil
}
