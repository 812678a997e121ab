package ltlimport

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RowFailure records one per-row failure with enough context to identify
// the offending row in the source sheet.
type RowFailure struct {
	// Line is the 1-based spreadsheet row number.
	Line int

	// Key identifies the row in domain terms (carrier name, route name,
	// location key). May be empty when the row had no usable key.
	Key string

	// Err is the underlying cause.
	Err error
}

// RunReport accumulates per-row outcomes for one pipeline run and is
// finalized once, at run end. It is never persisted.
//
// The three counters are disjoint: a row is counted exactly once, as it
// clears (or fails to clear) the validator and upserter stages. A duplicate
// absorbed by the insert-or-ignore policy counts as succeeded.
type RunReport struct {
	RunID     uuid.UUID
	Pipeline  string
	StartedAt time.Time

	Succeeded int
	Failed    int
	Skipped   int

	Failures []RowFailure
}

// NewRunReport creates an empty report for the named pipeline.
func NewRunReport(pipeline string) *RunReport {
	return &RunReport{
		RunID:     uuid.New(),
		Pipeline:  pipeline,
		StartedAt: time.Now(),
	}
}

// Success counts one row that was persisted (or absorbed as a duplicate).
func (r *RunReport) Success() {
	r.Succeeded++
}

// Skip counts one row rejected by the validator before persistence.
func (r *RunReport) Skip() {
	r.Skipped++
}

// Fail counts one per-row failure and records its cause.
func (r *RunReport) Fail(line int, key string, err error) {
	r.Failed++
	r.Failures = append(r.Failures, RowFailure{Line: line, Key: key, Err: err})
}

// Total returns the number of rows accounted for.
func (r *RunReport) Total() int {
	return r.Succeeded + r.Failed + r.Skipped
}

// Summary returns the single terminal line summarizing the run.
func (r *RunReport) Summary() string {
	return fmt.Sprintf("%s run %s: %d succeeded, %d failed, %d skipped",
		r.Pipeline, r.RunID, r.Succeeded, r.Failed, r.Skipped)
}
