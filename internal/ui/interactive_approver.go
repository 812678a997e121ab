// Package ui implements the approval prompts shown before generated
// enrichment SQL is applied to a live database.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ltlops/ltlimport/pkg/ltlimport"
)

// InteractiveApprover prompts the user to type the database name to
// confirm applying generated statements.
type InteractiveApprover struct {
	input  io.Reader
	output io.Writer
}

// NewInteractiveApprover creates an InteractiveApprover reading from stdin
// and writing to stderr.
func NewInteractiveApprover() *InteractiveApprover {
	return &InteractiveApprover{
		input:  os.Stdin,
		output: os.Stderr,
	}
}

// RequestApproval prompts the user to type the database name to confirm.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, dbName string) (bool, error) {
	fmt.Fprintf(a.output, "\nWARNING: You are about to run generated enrichment updates against database '%s'\n", dbName)
	fmt.Fprintln(a.output, "Review the generated SQL script before approving; updates modify loaded route rows.")
	fmt.Fprintf(a.output, "\nTo confirm, type the database name '%s' and press Enter: ", dbName)

	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if input == dbName {
			fmt.Fprintln(a.output, "Confirmed. Applying enrichment updates...")
			return true, nil
		}
		fmt.Fprintf(a.output, "Input '%s' does not match database name '%s'. Operation cancelled.\n", input, dbName)
		return false, nil
	}
}

// NewApprover picks the approver for an apply run. force selects the
// countdown approver; otherwise stdin must be a terminal so the
// interactive prompt can be answered.
func NewApprover(force bool) (ltlimport.Approver, error) {
	if force {
		return NewForcedApprover(), nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("stdin is not a terminal; use --force to apply without an interactive prompt: %w",
			ltlimport.ErrApprovalDenied)
	}
	return NewInteractiveApprover(), nil
}

var _ ltlimport.Approver = (*InteractiveApprover)(nil)
