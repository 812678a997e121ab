// Package cli wires the cobra commands: carriers, routes, addresses,
// analyze, and version.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ltlimport",
	Short: "Freight operations spreadsheet importer",
	Long: `ltlimport loads freight-operations spreadsheet exports into the relational
database behind the dispatch application: the carrier roster, the linehaul
route schedule, and terminal address enrichment for loaded routes.

Each run opens a single transaction, streams the sheet through
normalization and validation, and commits once at the end. Per-row
failures are counted and reported; they never abort the run.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or column layout
  11 - Database connection failed
  12 - User denied enrichment-apply approval
  13 - SQL execution failed (one or more rows)
  14 - Spreadsheet missing or unreadable
  15 - End-of-run commit failed (run rolled back)`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	// -h is reserved for --host on the data commands
	rootCmd.PersistentFlags().Bool("help", false, "Help for ltlimport")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
