// Package source reads tabular spreadsheet exports into an in-memory table
// of raw rows and resolves declared column aliases against the sheet header.
//
// Cells are the display strings the spreadsheet library yields; an absent
// cell is the empty string. All typing happens downstream in the normalize
// package.
package source
