package source

import (
	"sort"
	"strings"
)

// ColumnProfile summarizes one column of a sheet: how populated it is and
// what its values look like. Used by the analyze command to sanity-check an
// export before importing it.
type ColumnProfile struct {
	Name    string
	NonNull int
	Samples []string
}

// Profile computes a ColumnProfile for each named column that exists in the
// table. Columns absent from the header are silently omitted; analyze is a
// read-only preflight, not a validator.
func Profile(table *Table, names []string, sampleN int) []ColumnProfile {
	var profiles []ColumnProfile

	for _, name := range names {
		idx := -1
		for i, col := range table.Columns {
			if strings.EqualFold(strings.TrimSpace(col), name) {
				idx = i
				break
			}
		}
		if idx < 0 {
			continue
		}

		p := ColumnProfile{Name: table.Columns[idx]}
		for _, row := range table.Rows {
			cell := strings.TrimSpace(row.Cells[idx])
			if cell == "" {
				continue
			}
			p.NonNull++
			if len(p.Samples) < sampleN {
				p.Samples = append(p.Samples, cell)
			}
		}
		profiles = append(profiles, p)
	}

	return profiles
}

// ValueCount is one distinct value and its frequency.
type ValueCount struct {
	Value string
	Count int
}

// ValueCounts tallies the distinct non-empty values of a column, most
// frequent first (ties broken alphabetically for stable output).
// Returns nil when the column is not in the header.
func ValueCounts(table *Table, name string) []ValueCount {
	idx := -1
	for i, col := range table.Columns {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, row := range table.Rows {
		cell := strings.TrimSpace(row.Cells[idx])
		if cell == "" {
			continue
		}
		counts[cell]++
	}

	result := make([]ValueCount, 0, len(counts))
	for value, count := range counts {
		result = append(result, ValueCount{Value: value, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Value < result[j].Value
	})

	return result
}
