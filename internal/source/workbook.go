package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ltlops/ltlimport/pkg/ltlimport"
)

// OpenWorkbook reads the first sheet of an .xlsx export into a Table.
// The first row is the header; every later row becomes a data Row with its
// cells padded to the header width. An unreadable or empty workbook is a
// fatal setup error, reported before any row-level work begins.
func OpenWorkbook(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %q: %w: %w", path, err, ltlimport.ErrSourceUnreadable)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %q has no sheets: %w", path, ltlimport.ErrSourceUnreadable)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w: %w", sheets[0], err, ltlimport.ErrSourceUnreadable)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row: %w", sheets[0], ltlimport.ErrSourceUnreadable)
	}

	table := &Table{Columns: rows[0]}
	for i, cells := range rows[1:] {
		padded := make([]string, len(table.Columns))
		copy(padded, cells)
		table.Rows = append(table.Rows, Row{
			Line:  i + 2, // 1-based, after the header row
			Cells: padded,
		})
	}

	return table, nil
}
