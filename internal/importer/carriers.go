package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/ltlops/ltlimport/internal/normalize"
	"github.com/ltlops/ltlimport/internal/source"
	"github.com/ltlops/ltlimport/pkg/ltlimport"
)

// carrierFields declares the canonical carrier columns and their accepted
// header spellings. Resolution happens once, before any row is processed;
// a header missing any of these is a fatal configuration error.
var carrierFields = []source.Field{
	{Name: "name", Aliases: []string{"Carrier Name", "Carrier"}},
	{Name: "contactPerson", Aliases: []string{"Primary Contact", "Contact"}},
	{Name: "phone", Aliases: []string{"Phone", "Phone Number"}},
	{Name: "email", Aliases: []string{"Primary Email", "Email"}},
	{Name: "mcNumber", Aliases: []string{"MC Number", "MC#", "MC"}},
	{Name: "dotNumber", Aliases: []string{"DOT Number", "DOT#", "DOT"}},
	{Name: "status", Aliases: []string{"Status"}},
	{Name: "safetyRating", Aliases: []string{"Safety Rating"}},
	{Name: "taxId", Aliases: []string{"TAX ID", "Tax ID", "EIN"}},
	{Name: "carrierType", Aliases: []string{"Type", "Carrier Type"}},
	{Name: "streetAddress1", Aliases: []string{"Street Address 1", "Address 1"}},
	{Name: "streetAddress2", Aliases: []string{"Street Address 2", "Address 2"}},
	{Name: "city", Aliases: []string{"City"}},
	{Name: "state", Aliases: []string{"ST", "State"}},
	{Name: "zipCode", Aliases: []string{"Zip", "Zip Code", "Zipcode"}},
	{Name: "remittanceContact", Aliases: []string{"Remittance Contact"}},
	{Name: "remittanceEmail", Aliases: []string{"Remittance Email"}},
	{Name: "factoringCompany", Aliases: []string{"Factoring Company"}},
}

// CarrierImporter loads a carrier roster export into the carriers table
// with insert-or-ignore semantics keyed on mcNumber.
//
// Thread-Safety: NOT safe for concurrent Run() calls on the same instance;
// the pipeline is strictly sequential by design.
type CarrierImporter struct {
	logger  ltlimport.Logger
	aliases map[string][]string
	now     func() time.Time
}

// NewCarrierImporter creates a CarrierImporter. aliases optionally overlays
// configured header spellings onto the built-in declarations.
//
// Panics if logger is nil: a nil dependency is a programmer error that
// should fail loudly at startup, not during row processing.
func NewCarrierImporter(logger ltlimport.Logger, aliases map[string][]string) *CarrierImporter {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &CarrierImporter{
		logger:  logger,
		aliases: aliases,
		now:     time.Now,
	}
}

// Run streams every row of the carrier sheet through normalization,
// validation, and the insert-or-ignore upsert. Per-row failures are counted
// and logged with the carrier name, never fatal. The caller owns the unit
// of work and commits after Run returns.
func (imp *CarrierImporter) Run(ctx context.Context, uow ltlimport.UnitOfWork, table *source.Table) (*ltlimport.RunReport, error) {
	cm, err := source.Resolve(table.Columns, source.MergeAliases(carrierFields, imp.aliases))
	if err != nil {
		return nil, fmt.Errorf("carriers pipeline: %w", err)
	}

	report := ltlimport.NewRunReport("carriers")
	imp.logger.Verbose("Loaded %d carrier rows from source", len(table.Rows))

	for _, row := range table.Rows {
		record, skipReason := buildCarrierRecord(row, cm)
		if skipReason != "" {
			report.Skip()
			imp.logger.Verbose("Skipping row %d: %s", row.Line, skipReason)
			continue
		}

		now := imp.now()
		tag, err := uow.Exec(ctx, insertCarrierSQL,
			record.Name, record.ContactPerson, record.Phone, record.Email,
			record.MCNumber, record.DOTNumber, record.Status,
			record.SafetyRating, record.TaxID, record.CarrierType,
			record.StreetAddress1, record.StreetAddress2, record.City,
			record.State, record.ZipCode, record.RemittanceContact,
			record.RemittanceEmail, record.FactoringCompany,
			record.OnboardingComplete, now, now,
		)
		if err != nil {
			report.Fail(row.Line, record.Name, err)
			imp.logger.Error("Error inserting carrier %s (row %d): %v", record.Name, row.Line, err)
			continue
		}

		if tag.RowsAffected() == 0 {
			// Duplicate mcNumber absorbed by the conflict policy: a
			// successful insert attempt whose effect was a no-op.
			imp.logger.Verbose("Duplicate mcNumber absorbed for carrier %s (row %d)", record.Name, row.Line)
		}
		report.Success()

		if report.Succeeded%ltlimport.ProgressInterval == 0 {
			imp.logger.Info("Processed %d carriers...", report.Succeeded)
		}
	}

	return report, nil
}

// buildCarrierRecord normalizes one raw row into a CarrierRecord, or
// returns the skip reason when the row fails validation.
func buildCarrierRecord(row source.Row, cm source.ColumnMap) (CarrierRecord, string) {
	name := normalize.TrimOrNull(row.Cell(cm, "name"))
	if name == nil {
		return CarrierRecord{}, "no carrier name"
	}

	mcNumber := normalize.IntegerID(row.Cell(cm, "mcNumber"))
	dotNumber := normalize.IntegerID(row.Cell(cm, "dotNumber"))
	if mcNumber == nil && dotNumber == nil {
		return CarrierRecord{}, "neither MC number nor DOT number"
	}

	status := normalize.Status(row.Cell(cm, "status"))

	return CarrierRecord{
		Name:               *name,
		ContactPerson:      normalize.TrimOrNull(row.Cell(cm, "contactPerson")),
		Phone:              normalize.Phone(row.Cell(cm, "phone")),
		Email:              normalize.TrimOrNull(row.Cell(cm, "email")),
		MCNumber:           mcNumber,
		DOTNumber:          dotNumber,
		Status:             status,
		SafetyRating:       normalize.TrimOrNull(row.Cell(cm, "safetyRating")),
		TaxID:              normalize.TrimOrNull(row.Cell(cm, "taxId")),
		CarrierType:        normalize.TrimOrNull(row.Cell(cm, "carrierType")),
		StreetAddress1:     normalize.TrimOrNull(row.Cell(cm, "streetAddress1")),
		StreetAddress2:     normalize.TrimOrNull(row.Cell(cm, "streetAddress2")),
		City:               normalize.TrimOrNull(row.Cell(cm, "city")),
		State:              normalize.TrimOrNull(row.Cell(cm, "state")),
		ZipCode:            normalize.TrimOrNull(row.Cell(cm, "zipCode")),
		RemittanceContact:  normalize.TrimOrNull(row.Cell(cm, "remittanceContact")),
		RemittanceEmail:    normalize.TrimOrNull(row.Cell(cm, "remittanceEmail")),
		FactoringCompany:   normalize.TrimOrNull(row.Cell(cm, "factoringCompany")),
		OnboardingComplete: status == normalize.StatusOnboarded,
	}, ""
}
