package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ltlops/ltlimport/internal/normalize"
	"github.com/ltlops/ltlimport/internal/source"
	"github.com/ltlops/ltlimport/pkg/ltlimport"
)

var locationFields = []source.Field{
	{Name: "location", Aliases: []string{"Location", "Location Name", "Name"}},
	{Name: "address", Aliases: []string{"Address", "Street Address", "Street"}},
	{Name: "city", Aliases: []string{"City"}},
	{Name: "state", Aliases: []string{"State", "ST"}},
	{Name: "zipcode", Aliases: []string{"Zip", "Zip Code", "Zipcode", "Postal Code"}},
}

// AddressBook maps an uppercased, trimmed location key to its address
// payload. Later sheet rows with the same key overwrite earlier ones.
type AddressBook struct {
	entries map[string]LocationAddress
}

// Len reports the number of distinct location keys.
func (b *AddressBook) Len() int {
	return len(b.entries)
}

// Lookup returns the address for a location key, matching the key
// normalization used at build time.
func (b *AddressBook) Lookup(location string) (LocationAddress, bool) {
	addr, ok := b.entries[LocationKey(location)]
	return addr, ok
}

// Keys returns the location keys in sorted order. The ordering makes the
// generated script and the apply pass deterministic across runs.
func (b *AddressBook) Keys() []string {
	keys := make([]string, 0, len(b.entries))
	for k := range b.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Statements renders the enrichment UPDATEs, two per location key: one
// matching routes by origin, one by destination. String values are embedded
// as quote-doubled literals because the script is meant to be reviewed and
// run as plain SQL, outside any parameter binding.
func (b *AddressBook) Statements() []string {
	stmts := make([]string, 0, 2*len(b.entries))
	for _, key := range b.Keys() {
		addr := b.entries[key]
		stmts = append(stmts,
			updateStatement("origin", key, addr),
			updateStatement("destination", key, addr),
		)
	}
	return stmts
}

// Script renders the full reviewable SQL file, header comments included.
func (b *AddressBook) Script() string {
	var sb strings.Builder
	sb.WriteString("-- Route address enrichment statements.\n")
	sb.WriteString("-- Review before running against the database.\n\n")
	for _, stmt := range b.Statements() {
		sb.WriteString(stmt)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// MappingJSON renders the key to address mapping as indented JSON, the
// second audit artifact alongside the SQL script.
func (b *AddressBook) MappingJSON() ([]byte, error) {
	return json.MarshalIndent(b.entries, "", "  ")
}

// WriteArtifacts writes the SQL script and the JSON mapping dump into dir,
// creating it if needed. Returns the two paths written.
func (b *AddressBook) WriteArtifacts(dir string) (sqlPath, jsonPath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create artifact directory: %w", err)
	}

	sqlPath = filepath.Join(dir, ltlimport.UpdateScriptFileName)
	if err := os.WriteFile(sqlPath, []byte(b.Script()), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write SQL script: %w", err)
	}

	mapping, err := b.MappingJSON()
	if err != nil {
		return "", "", fmt.Errorf("failed to encode location mapping: %w", err)
	}
	jsonPath = filepath.Join(dir, ltlimport.MappingDumpFileName)
	if err := os.WriteFile(jsonPath, mapping, 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write location mapping: %w", err)
	}

	return sqlPath, jsonPath, nil
}

// LocationKey normalizes a raw location cell into the AddressBook key:
// trimmed and uppercased, so sheet and database spellings match
// case-insensitively.
func LocationKey(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func updateStatement(side, key string, addr LocationAddress) string {
	return fmt.Sprintf(`UPDATE routes SET
    "%[1]sAddress" = '%[2]s',
    "%[1]sCity" = '%[3]s',
    "%[1]sState" = '%[4]s',
    "%[1]sZipCode" = '%[5]s'
WHERE UPPER(%[1]s) = '%[6]s';`,
		side,
		escapeLiteral(addr.Address),
		escapeLiteral(addr.City),
		escapeLiteral(addr.State),
		escapeLiteral(addr.ZipCode),
		escapeLiteral(key),
	)
}

// escapeLiteral doubles single quotes for embedding in a SQL string literal.
func escapeLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// AddressEnricher builds an AddressBook from a location-address sheet and
// optionally applies the generated statements against loaded routes.
type AddressEnricher struct {
	logger  ltlimport.Logger
	aliases map[string][]string
}

// NewAddressEnricher creates an AddressEnricher.
// Panics if logger is nil (programmer error, fail fast at startup).
func NewAddressEnricher(logger ltlimport.Logger, aliases map[string][]string) *AddressEnricher {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &AddressEnricher{
		logger:  logger,
		aliases: aliases,
	}
}

// Build folds the sheet into an AddressBook. Rows without a location value
// are dropped; a repeated key keeps the last row's payload.
func (e *AddressEnricher) Build(table *source.Table) (*AddressBook, error) {
	cm, err := source.Resolve(table.Columns, source.MergeAliases(locationFields, e.aliases))
	if err != nil {
		return nil, fmt.Errorf("addresses pipeline: %w", err)
	}

	book := &AddressBook{entries: make(map[string]LocationAddress)}
	for _, row := range table.Rows {
		key := LocationKey(row.Cell(cm, "location"))
		if key == "" {
			e.logger.Verbose("Skipping row %d: no location name", row.Line)
			continue
		}
		book.entries[key] = LocationAddress{
			Address: trimCell(row.Cell(cm, "address")),
			City:    trimCell(row.Cell(cm, "city")),
			State:   trimCell(row.Cell(cm, "state")),
			ZipCode: trimCell(row.Cell(cm, "zipcode")),
		}
	}

	e.logger.Verbose("Built address book with %d locations from %d rows", book.Len(), len(table.Rows))
	return book, nil
}

// Apply executes every generated statement through the unit of work.
// Statement failures are counted per location and logged, never fatal;
// a statement that matches zero routes still counts as succeeded because
// the enrichment is best-effort by location, not by route.
func (e *AddressEnricher) Apply(ctx context.Context, uow ltlimport.UnitOfWork, book *AddressBook) (*ltlimport.RunReport, error) {
	report := ltlimport.NewRunReport("addresses")

	for _, key := range book.Keys() {
		addr := book.entries[key]
		for _, side := range []string{"origin", "destination"} {
			stmt := updateStatement(side, key, addr)
			tag, err := uow.Exec(ctx, stmt)
			if err != nil {
				report.Fail(0, key, err)
				e.logger.Error("Error updating %s addresses for %s: %v", side, key, err)
				continue
			}
			e.logger.Verbose("Updated %d routes with %s %s", tag.RowsAffected(), side, key)
			report.Success()
		}
	}

	return report, nil
}

func trimCell(cell string) string {
	s := normalize.TrimOrNull(cell)
	if s == nil {
		return ""
	}
	return *s
}
