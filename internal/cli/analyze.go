package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ltlops/ltlimport/internal/source"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.xlsx>",
	Short: "Profile a spreadsheet export before importing it",
	Long: `Analyze is a read-only preflight for an export. It never touches the
database; it reports how populated the columns an import depends on are,
with a few sample values, plus the distinct values of the status and
safety rating columns.

Examples:
  ltlimport analyze roster.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

// analyzeColumns are the columns an import run depends on, roster
// naming first.
var analyzeColumns = []string{
	"Carrier Name",
	"Status",
	"MC Number",
	"DOT Number",
	"Primary Contact",
	"Primary Email",
	"Phone",
	"Safety Rating",
	"City",
	"ST",
}

var analyzeValueColumns = []string{"Status", "Safety Rating"}

const analyzeSampleCount = 3

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	table, err := source.OpenWorkbook(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "File: %s\n", args[0])
	fmt.Fprintf(out, "Rows: %d\n", len(table.Rows))
	fmt.Fprintf(out, "Columns: %d\n\n", len(table.Columns))

	profiles := source.Profile(table, analyzeColumns, analyzeSampleCount)
	if len(profiles) == 0 {
		fmt.Fprintln(os.Stderr, "None of the expected columns were found; header row:")
		fmt.Fprintf(os.Stderr, "  %s\n", strings.Join(table.Columns, " | "))
		return nil
	}

	fmt.Fprintln(out, "Key columns:")
	for _, p := range profiles {
		fmt.Fprintf(out, "  %-18s %d/%d non-null", p.Name, p.NonNull, len(table.Rows))
		if len(p.Samples) > 0 {
			fmt.Fprintf(out, "  e.g. %s", strings.Join(p.Samples, ", "))
		}
		fmt.Fprintln(out)
	}

	for _, name := range analyzeValueColumns {
		counts := source.ValueCounts(table, name)
		if counts == nil {
			continue
		}
		fmt.Fprintf(out, "\n%s values:\n", name)
		for _, vc := range counts {
			fmt.Fprintf(out, "  %-24s %d\n", vc.Value, vc.Count)
		}
	}

	return nil
}
