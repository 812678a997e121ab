// Package normalize contains the pure field-level cleaning functions applied
// to raw spreadsheet cells before validation and persistence.
//
// Every function is total: malformed input degrades to nil (absent) or to a
// best-effort pass-through value, never to a panic or an error. The caller
// decides whether an absent value is a skip condition for the row.
package normalize
