package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ltlops/ltlimport/pkg/ltlimport"
)

// ForcedApprover approves automatically after a visible countdown, used
// when the --force flag is provided. The countdown gives an operator one
// last chance to Ctrl+C.
type ForcedApprover struct {
	output  io.Writer
	sleepFn func(time.Duration)
}

// NewForcedApprover creates a new ForcedApprover writing to stderr.
func NewForcedApprover() *ForcedApprover {
	return &ForcedApprover{
		output:  os.Stderr,
		sleepFn: time.Sleep,
	}
}

// RequestApproval displays a countdown, then approves.
func (a *ForcedApprover) RequestApproval(ctx context.Context, dbName string) (bool, error) {
	fmt.Fprintf(a.output, "\nDANGER: applying generated enrichment updates to database '%s' without confirmation\n", dbName)

	countdownSeconds := int(ltlimport.DefaultForceApprovalCountdown.Seconds())
	for i := countdownSeconds; i > 0; i-- {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
			fmt.Fprintf(a.output, "\rApplying in: %d seconds... (Press Ctrl+C to cancel)", i)
			a.sleepFn(1 * time.Second)
		}
	}

	fmt.Fprintf(a.output, "\rProceeding with enrichment updates...                          \n")
	return true, nil
}

var _ ltlimport.Approver = (*ForcedApprover)(nil)
