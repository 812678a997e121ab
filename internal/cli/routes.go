package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ltlops/ltlimport/internal/db"
	"github.com/ltlops/ltlimport/internal/importer"
	"github.com/ltlops/ltlimport/internal/logging"
	"github.com/ltlops/ltlimport/internal/services"
	"github.com/ltlops/ltlimport/internal/source"
	"github.com/ltlops/ltlimport/pkg/ltlimport"
)

var routesCmd = &cobra.Command{
	Use:   "routes <file.xlsx>",
	Short: "Import the linehaul route schedule",
	Long: `Routes loads a linehaul schedule spreadsheet into the routes table with
full-replace semantics: all existing routes are deleted, then the sheet
is inserted. The spreadsheet is the system of record for the schedule.

The delete and the inserts share one transaction, so a run that dies
before commit leaves the previous schedule in place. Rows without a
miles value are skipped and counted.

Examples:
  # Replace the schedule
  ltlimport routes schedule.xlsx -d ltl`,
	Args: cobra.ExactArgs(1),
	RunE: runRoutes,
}

var routesFlags connFlagValues

func init() {
	rootCmd.AddCommand(routesCmd)
	registerConnectionFlags(routesCmd, &routesFlags)
}

func runRoutes(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	projectCfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	connConfig, err := resolveConnection(&routesFlags, projectCfg, verbose)
	if err != nil {
		return err
	}

	timeout, err := resolveTimeout(cmd, &routesFlags, projectCfg)
	if err != nil {
		return err
	}

	table, err := source.OpenWorkbook(args[0])
	if err != nil {
		return err
	}

	imp := importer.NewRouteImporter(logger, projectCfg.AliasesFor("routes"))
	svc := services.NewImportService(db.NewConnector, logger)

	ctx, cancel := runContext(timeout)
	defer cancel()

	report, err := svc.Run(ctx, connConfig, func(ctx context.Context, uow ltlimport.UnitOfWork) (*ltlimport.RunReport, error) {
		return imp.Run(ctx, uow, table)
	})
	if err != nil {
		return err
	}

	return printRunOutcome(report)
}
