package source

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ltlops/ltlimport/pkg/ltlimport"
)

// writeWorkbook creates an .xlsx file with the given rows on Sheet1.
func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	for i, cells := range rows {
		for j, cell := range cells {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", ref, cell))
		}
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestOpenWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Carrier Name", "MC Number", "Phone"},
		{"Acme Freight", 145632, "5551234567"},
		{"Borden Haulage", 200881},
	})

	table, err := OpenWorkbook(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Carrier Name", "MC Number", "Phone"}, table.Columns)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, 2, table.Rows[0].Line, "line numbers are sheet rows, after the header")
	assert.Equal(t, "Acme Freight", table.Rows[0].Cells[0])
	assert.Equal(t, "145632", table.Rows[0].Cells[1], "numeric cells arrive as display strings")

	assert.Equal(t, 3, table.Rows[1].Line)
	require.Len(t, table.Rows[1].Cells, 3, "short rows are padded to header width")
	assert.Equal(t, "", table.Rows[1].Cells[2])
}

func TestOpenWorkbook_MissingFile(t *testing.T) {
	_, err := OpenWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ltlimport.ErrSourceUnreadable))
}
