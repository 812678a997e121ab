package ltlimport

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Import completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration, parameters, or column layout
	ExitConnectionError = 11 // Failed to connect to database
	ExitApprovalDenied  = 12 // User denied enrichment-apply approval
	ExitExecutionFailed = 13 // SQL execution failed
	ExitSourceError     = 14 // Spreadsheet missing or unreadable
	ExitCommitFailed    = 15 // End-of-run commit failed (run rolled back)
)

const (
	// DefaultForceApprovalCountdown is the countdown duration before force approval proceeds.
	DefaultForceApprovalCountdown = 5 * time.Second

	// DefaultRetryInitialDelay is the default initial delay before the first retry attempt.
	DefaultRetryInitialDelay = 100 * time.Millisecond

	// DefaultRetryMaxDelay is the default maximum delay between retry attempts.
	DefaultRetryMaxDelay = 1 * time.Minute

	// DefaultRetryMaxAttempts is the default maximum number of retry attempts.
	DefaultRetryMaxAttempts = 3

	// ProgressInterval is the number of successful rows between progress log lines.
	ProgressInterval = 500

	// UpdateScriptFileName is the generated enrichment script written for
	// human review before it is applied.
	UpdateScriptFileName = "update_route_addresses.sql"

	// MappingDumpFileName is the structured location-key -> address dump
	// written alongside the enrichment script for auditability.
	MappingDumpFileName = "location_mapping.json"
)
