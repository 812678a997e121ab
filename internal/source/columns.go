package source

import (
	"fmt"
	"strings"

	"github.com/ltlops/ltlimport/pkg/ltlimport"
)

// Field declares one canonical record field and the header spellings that
// may carry it. Aliases are matched against the sheet header exactly once,
// at pipeline startup; there is no per-row or substring matching.
type Field struct {
	// Name is the canonical field name used by the pipelines.
	Name string

	// Aliases are acceptable header spellings, most common first.
	// Matching trims whitespace and ignores case.
	Aliases []string
}

// ColumnMap maps a canonical field name to its column index in a Table.
type ColumnMap map[string]int

// Resolve matches every declared field against the header columns.
// Every field is required: a field with no matching header is a fatal
// configuration error for the pipeline, not a per-row skip.
func Resolve(columns []string, fields []Field) (ColumnMap, error) {
	cm := make(ColumnMap, len(fields))

	for _, field := range fields {
		idx := -1
		for _, alias := range field.Aliases {
			for i, col := range columns {
				if strings.EqualFold(strings.TrimSpace(col), alias) {
					idx = i
					break
				}
			}
			if idx >= 0 {
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf(
				"field %q not found in sheet header (accepted spellings: %s): %w",
				field.Name, strings.Join(field.Aliases, ", "), ltlimport.ErrMissingColumn)
		}
		cm[field.Name] = idx
	}

	return cm, nil
}

// MergeAliases overlays configured alias lists onto the built-in field
// declarations. Configured spellings extend the built-in list, tried
// first so they win a tie; they never remove a built-in spelling.
// Unknown field names are ignored.
func MergeAliases(fields []Field, overrides map[string][]string) []Field {
	if len(overrides) == 0 {
		return fields
	}

	merged := make([]Field, len(fields))
	copy(merged, fields)
	for i, field := range merged {
		if aliases, ok := overrides[field.Name]; ok && len(aliases) > 0 {
			combined := make([]string, 0, len(aliases)+len(field.Aliases))
			combined = append(combined, aliases...)
			combined = append(combined, field.Aliases...)
			merged[i].Aliases = combined
		}
	}
	return merged
}
