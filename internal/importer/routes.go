package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/ltlops/ltlimport/internal/normalize"
	"github.com/ltlops/ltlimport/internal/source"
	"github.com/ltlops/ltlimport/pkg/ltlimport"
)

var routeFields = []source.Field{
	{Name: "name", Aliases: []string{"Name", "Route Name", "Route"}},
	{Name: "origin", Aliases: []string{"Orig", "Origin"}},
	{Name: "destination", Aliases: []string{"Dest", "Destination"}},
	{Name: "miles", Aliases: []string{"Miles"}},
	{Name: "active", Aliases: []string{"Active"}},
	{Name: "departureTime", Aliases: []string{"Depart Time", "Departure Time"}},
	{Name: "arrivalTime", Aliases: []string{"Arrive Time", "Arrival Time"}},
}

// RouteImporter loads a linehaul route export with full-replace semantics:
// the routes table is cleared before the first row is written. There is no
// compensating rollback of the clear if the run dies mid-load; that
// at-most-once risk is accepted and documented, not worked around.
type RouteImporter struct {
	logger  ltlimport.Logger
	aliases map[string][]string
	now     func() time.Time
}

// NewRouteImporter creates a RouteImporter.
// Panics if logger is nil (programmer error, fail fast at startup).
func NewRouteImporter(logger ltlimport.Logger, aliases map[string][]string) *RouteImporter {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &RouteImporter{
		logger:  logger,
		aliases: aliases,
		now:     time.Now,
	}
}

// Run clears the routes table, then inserts every valid row of the sheet.
// A row with no coercible miles value is skipped. Per-row insert failures
// are counted and logged, never fatal; a failed clear is fatal because
// continuing would break the full-replace contract.
func (imp *RouteImporter) Run(ctx context.Context, uow ltlimport.UnitOfWork, table *source.Table) (*ltlimport.RunReport, error) {
	cm, err := source.Resolve(table.Columns, source.MergeAliases(routeFields, imp.aliases))
	if err != nil {
		return nil, fmt.Errorf("routes pipeline: %w", err)
	}

	report := ltlimport.NewRunReport("routes")
	imp.logger.Verbose("Loaded %d route rows from source", len(table.Rows))

	if _, err := uow.Exec(ctx, clearRoutesSQL); err != nil {
		return nil, fmt.Errorf("failed to clear existing routes: %w: %w", err, ltlimport.ErrExecutionFailed)
	}
	imp.logger.Info("Cleared existing routes")

	for _, row := range table.Rows {
		record, skipReason := buildRouteRecord(row, cm)
		if skipReason != "" {
			report.Skip()
			imp.logger.Verbose("Skipping row %d: %s", row.Line, skipReason)
			continue
		}

		now := imp.now()
		_, err := uow.Exec(ctx, insertRouteSQL,
			record.Name, record.Origin, record.Destination,
			record.Distance, record.Miles, record.Active,
			record.DepartureTime, record.ArrivalTime, now, now,
		)
		if err != nil {
			name := row.Cell(cm, "name")
			report.Fail(row.Line, name, err)
			imp.logger.Error("Error inserting route %s (row %d): %v", name, row.Line, err)
			continue
		}
		report.Success()
	}

	return report, nil
}

// buildRouteRecord normalizes one raw row into a RouteRecord, or returns
// the skip reason when the row fails validation.
func buildRouteRecord(row source.Row, cm source.ColumnMap) (RouteRecord, string) {
	miles := normalize.Miles(row.Cell(cm, "miles"))
	if miles == nil {
		return RouteRecord{}, "no miles value"
	}

	return RouteRecord{
		Name:        normalize.TrimOrNull(row.Cell(cm, "name")),
		Origin:      normalize.TrimOrNull(row.Cell(cm, "origin")),
		Destination: normalize.TrimOrNull(row.Cell(cm, "destination")),
		// Distance mirrors miles; the schema carries both columns.
		Distance:      *miles,
		Miles:         *miles,
		Active:        normalize.Active(row.Cell(cm, "active")),
		DepartureTime: normalize.Clock(row.Cell(cm, "departureTime")),
		ArrivalTime:   normalize.Clock(row.Cell(cm, "arrivalTime")),
	}, ""
}
