// Package importer implements the three freight-data load pipelines:
// carriers (insert-or-ignore keyed on mcNumber), linehaul routes
// (full-replace load), and the route address enrichment pass driven off a
// separately exported location sheet.
//
// Each pipeline streams rows from an in-memory source.Table through the
// normalize package, applies its skip rules, and issues statements through
// a single run-scoped UnitOfWork. Per-row failures are counted and logged,
// never fatal; the caller commits once at run end.
package importer
