package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ltlops/ltlimport/internal/config"
	"github.com/ltlops/ltlimport/internal/db"
	"github.com/ltlops/ltlimport/internal/importer"
	"github.com/ltlops/ltlimport/internal/logging"
	"github.com/ltlops/ltlimport/internal/services"
	"github.com/ltlops/ltlimport/internal/source"
	"github.com/ltlops/ltlimport/internal/ui"
	"github.com/ltlops/ltlimport/pkg/ltlimport"
)

var addressesCmd = &cobra.Command{
	Use:   "addresses <file.xlsx>",
	Short: "Generate (and optionally apply) route address enrichment",
	Long: `Addresses reads a location-address sheet and generates UPDATE statements
that stamp terminal street addresses onto already loaded routes, matched
case-insensitively on origin and destination.

By default the command only writes two review artifacts:

  update_route_addresses.sql   the statements, ready for manual review
  location_mapping.json        the location -> address mapping used

With --apply the statements are also executed inside one transaction,
after an interactive confirmation (type the database name). Use --force
to replace the prompt with a countdown for unattended runs.

Examples:
  # Generate artifacts only
  ltlimport addresses locations.xlsx -d ltl

  # Generate and apply with confirmation
  ltlimport addresses locations.xlsx -d ltl --apply

  # Unattended apply (CI)
  ltlimport addresses locations.xlsx -d ltl --apply --force`,
	Args: cobra.ExactArgs(1),
	RunE: runAddresses,
}

var (
	addressesFlags connFlagValues
	applyFlag      bool
	forceFlag      bool
	artifactDir    string
)

func init() {
	rootCmd.AddCommand(addressesCmd)
	registerConnectionFlags(addressesCmd, &addressesFlags)

	addressesCmd.Flags().BoolVar(&applyFlag, "apply", false,
		"Execute the generated statements against the database")
	addressesCmd.Flags().BoolVar(&forceFlag, "force", false,
		"Skip the interactive confirmation (5 second countdown instead)")
	addressesCmd.Flags().StringVar(&artifactDir, "artifact-dir", "",
		"Directory for the generated SQL script and mapping dump\n"+
			"(default: current directory, or artifact_dir in ltlimport.yaml)")
}

func runAddresses(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	if forceFlag && !applyFlag {
		return fmt.Errorf("--force only makes sense together with --apply: %w", ltlimport.ErrInvalidConfig)
	}

	projectCfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	table, err := source.OpenWorkbook(args[0])
	if err != nil {
		return err
	}

	enricher := importer.NewAddressEnricher(logger, projectCfg.AliasesFor("addresses"))
	book, err := enricher.Build(table)
	if err != nil {
		return err
	}
	if book.Len() == 0 {
		return fmt.Errorf("no locations with a name found in %s: %w", args[0], ltlimport.ErrSourceUnreadable)
	}

	sqlPath, jsonPath, err := book.WriteArtifacts(resolveArtifactDir(projectCfg))
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Generated %d enrichment statements for %d locations\n", 2*book.Len(), book.Len())
	fmt.Fprintf(os.Stderr, "  SQL script: %s\n", sqlPath)
	fmt.Fprintf(os.Stderr, "  Mapping:    %s\n", jsonPath)

	if !applyFlag {
		fmt.Fprintln(os.Stderr, "\nReview the script, then re-run with --apply to execute it.")
		return nil
	}

	connConfig, err := resolveConnection(&addressesFlags, projectCfg, verbose)
	if err != nil {
		return err
	}

	timeout, err := resolveTimeout(cmd, &addressesFlags, projectCfg)
	if err != nil {
		return err
	}

	approver, err := ui.NewApprover(forceFlag)
	if err != nil {
		return err
	}

	svc := services.NewImportService(db.NewConnector, logger)

	ctx, cancel := runContext(timeout)
	defer cancel()

	report, err := svc.RunWithApproval(ctx, connConfig, approver, func(ctx context.Context, uow ltlimport.UnitOfWork) (*ltlimport.RunReport, error) {
		return enricher.Apply(ctx, uow, book)
	})
	if err != nil {
		return err
	}

	return printRunOutcome(report)
}

// resolveArtifactDir picks the artifact directory: flag, then
// ltlimport.yaml, then the working directory.
func resolveArtifactDir(projectCfg *config.ProjectConfig) string {
	if artifactDir != "" {
		return artifactDir
	}
	if projectCfg != nil && projectCfg.ArtifactDir != "" {
		return projectCfg.ArtifactDir
	}
	return "."
}
