package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ltlops/ltlimport/pkg/ltlimport"
)

var (
	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	summaryTitleStyle = lipgloss.NewStyle().Bold(true)

	succeededStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	skippedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// renderSummary formats the end-of-run report box.
func renderSummary(report *ltlimport.RunReport) string {
	var b strings.Builder
	b.WriteString(summaryTitleStyle.Render(fmt.Sprintf("%s import", report.Pipeline)))
	b.WriteString(fmt.Sprintf("\nrun %s\n\n", report.RunID))
	b.WriteString(succeededStyle.Render(fmt.Sprintf("%6d succeeded", report.Succeeded)))
	b.WriteString("\n")
	b.WriteString(failedStyle.Render(fmt.Sprintf("%6d failed", report.Failed)))
	b.WriteString("\n")
	b.WriteString(skippedStyle.Render(fmt.Sprintf("%6d skipped", report.Skipped)))

	return summaryBoxStyle.Render(b.String())
}

// printRunOutcome prints the summary box plus per-row failure detail, and
// converts a partially failed run into a nonzero-exit error.
func printRunOutcome(report *ltlimport.RunReport) error {
	fmt.Fprintln(os.Stderr, renderSummary(report))

	if len(report.Failures) > 0 {
		fmt.Fprintln(os.Stderr, "\nFailed rows:")
		for _, f := range report.Failures {
			if f.Line > 0 {
				fmt.Fprintf(os.Stderr, "  row %d (%s): %v\n", f.Line, f.Key, f.Err)
			} else {
				fmt.Fprintf(os.Stderr, "  %s: %v\n", f.Key, f.Err)
			}
		}
	}

	if report.Failed > 0 {
		return fmt.Errorf("%d of %d rows failed: %w", report.Failed, report.Total(), ltlimport.ErrExecutionFailed)
	}
	return nil
}
