package source

// Table is one parsed sheet: a header and the data rows beneath it.
// Produced once by the reader; immutable afterwards.
type Table struct {
	// Columns is the header row, in sheet order.
	Columns []string

	// Rows holds every data row in source order.
	Rows []Row
}

// Row is one raw data row. Cells is parallel to the table's Columns slice
// and padded to the same length, so an index from a ColumnMap is always in
// range.
type Row struct {
	// Line is the 1-based spreadsheet row number, for failure reporting.
	Line int

	Cells []string
}

// Cell returns the raw cell for a canonical field, or "" when the field is
// not in the map. Callers resolve the map once per run, so a miss here means
// the field was declared optional and absent.
func (r Row) Cell(cm ColumnMap, field string) string {
	idx, ok := cm[field]
	if !ok || idx >= len(r.Cells) {
		return ""
	}
	return r.Cells[idx]
}
