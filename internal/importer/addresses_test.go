package importer

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltlops/ltlimport/pkg/ltlimport"
)

var locationHeader = []string{"Location", "Address", "City", "State", "Zip"}

func buildBook(t *testing.T, rows ...[]string) *AddressBook {
	t.Helper()
	enricher := NewAddressEnricher(&mockLogger{}, nil)
	book, err := enricher.Build(makeTable(locationHeader, rows...))
	require.NoError(t, err)
	return book
}

func TestAddressEnricher_BuildNormalizesKeys(t *testing.T) {
	book := buildBook(t,
		[]string{"  Memphis  ", "100 Depot Rd", "Memphis", "TN", "38101"},
	)

	require.Equal(t, 1, book.Len())
	addr, ok := book.Lookup("memphis")
	require.True(t, ok)
	assert.Equal(t, "100 Depot Rd", addr.Address)
	assert.Equal(t, []string{"MEMPHIS"}, book.Keys())
}

func TestAddressEnricher_LastWriterWins(t *testing.T) {
	book := buildBook(t,
		[]string{"Memphis", "100 Depot Rd", "Memphis", "TN", "38101"},
		[]string{"MEMPHIS", "200 Yard Ave", "Memphis", "TN", "38103"},
	)

	require.Equal(t, 1, book.Len())
	addr, _ := book.Lookup("Memphis")
	assert.Equal(t, "200 Yard Ave", addr.Address)
	assert.Equal(t, "38103", addr.ZipCode)
}

func TestAddressEnricher_SkipsRowWithoutLocation(t *testing.T) {
	book := buildBook(t,
		[]string{"   ", "100 Depot Rd", "Memphis", "TN", "38101"},
		[]string{"Dallas", "1 Freight Way", "Dallas", "TX", "75201"},
	)
	assert.Equal(t, 1, book.Len())
}

func TestAddressEnricher_MissingLocationColumnIsFatal(t *testing.T) {
	enricher := NewAddressEnricher(&mockLogger{}, nil)
	_, err := enricher.Build(makeTable([]string{"Site", "Address", "City", "State", "Zip"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ltlimport.ErrMissingColumn)
}

func TestAddressBook_StatementsAreDeterministicAndEscaped(t *testing.T) {
	book := buildBook(t,
		[]string{"O'Fallon", "10 St. Clair's Sq", "O'Fallon", "IL", "62269"},
		[]string{"Dallas", "1 Freight Way", "Dallas", "TX", "75201"},
	)

	stmts := book.Statements()
	require.Len(t, stmts, 4)

	// sorted by key, origin before destination per key
	assert.Contains(t, stmts[0], `"originAddress" = '1 Freight Way'`)
	assert.Contains(t, stmts[0], `WHERE UPPER(origin) = 'DALLAS'`)
	assert.Contains(t, stmts[1], `WHERE UPPER(destination) = 'DALLAS'`)
	assert.Contains(t, stmts[2], `WHERE UPPER(origin) = 'O''FALLON'`)
	assert.Contains(t, stmts[2], `'10 St. Clair''s Sq'`)
	assert.Contains(t, stmts[3], `"destinationZipCode" = '62269'`)
}

func TestAddressBook_WriteArtifacts(t *testing.T) {
	book := buildBook(t,
		[]string{"Memphis", "100 Depot Rd", "Memphis", "TN", "38101"},
	)

	dir := filepath.Join(t.TempDir(), "artifacts")
	sqlPath, jsonPath, err := book.WriteArtifacts(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ltlimport.UpdateScriptFileName), sqlPath)
	assert.Equal(t, filepath.Join(dir, ltlimport.MappingDumpFileName), jsonPath)

	script, err := os.ReadFile(sqlPath)
	require.NoError(t, err)
	assert.Contains(t, string(script), "UPDATE routes SET")
	assert.Contains(t, string(script), "-- Review before running")

	raw, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var mapping map[string]LocationAddress
	require.NoError(t, json.Unmarshal(raw, &mapping))
	assert.Equal(t, "38101", mapping["MEMPHIS"].ZipCode)
}

func TestAddressEnricher_ApplyExecutesAllStatements(t *testing.T) {
	book := buildBook(t,
		[]string{"Memphis", "100 Depot Rd", "Memphis", "TN", "38101"},
		[]string{"Dallas", "1 Freight Way", "Dallas", "TX", "75201"},
	)

	uow := &mockUnitOfWork{}
	enricher := NewAddressEnricher(&mockLogger{}, nil)

	report, err := enricher.Apply(context.Background(), uow, book)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Succeeded)
	assert.Len(t, uow.calls, 4)
	for _, call := range uow.calls {
		assert.Empty(t, call.args, "enrichment statements carry no bound parameters")
	}
}

func TestAddressEnricher_ApplyStatementFailureContinues(t *testing.T) {
	book := buildBook(t,
		[]string{"Memphis", "100 Depot Rd", "Memphis", "TN", "38101"},
		[]string{"Dallas", "1 Freight Way", "Dallas", "TX", "75201"},
	)

	boom := errors.New("column originAddress does not exist")
	uow := &mockUnitOfWork{failOn: map[int]error{0: boom}}
	enricher := NewAddressEnricher(&mockLogger{}, nil)

	report, err := enricher.Apply(context.Background(), uow, book)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 3, report.Succeeded)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "DALLAS", report.Failures[0].Key)
	assert.Len(t, uow.calls, 4)
}
