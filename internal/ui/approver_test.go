package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/ltlops/ltlimport/pkg/ltlimport"
)

func TestForcedApprover_ApprovesAfterCountdown(t *testing.T) {
	var output bytes.Buffer
	sleepCalls := 0
	approver := &ForcedApprover{
		output: &output,
		sleepFn: func(d time.Duration) {
			sleepCalls++
		},
	}

	approved, err := approver.RequestApproval(context.Background(), "ltl")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !approved {
		t.Fatal("Expected approval after countdown")
	}
	if sleepCalls != 5 {
		t.Errorf("Expected 5 sleep calls (one per second), got %d", sleepCalls)
	}
}

func TestForcedApprover_OutputContainsDbName(t *testing.T) {
	var output bytes.Buffer
	approver := &ForcedApprover{
		output:  &output,
		sleepFn: func(time.Duration) {},
	}

	_, _ = approver.RequestApproval(context.Background(), "ltl_production")

	out := output.String()
	if !strings.Contains(out, "ltl_production") {
		t.Errorf("Expected output to contain database name, got:\n%s", out)
	}
	if !strings.Contains(out, "DANGER") {
		t.Errorf("Expected output to contain DANGER warning, got:\n%s", out)
	}
}

func TestForcedApprover_ContextCancellation(t *testing.T) {
	var output bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	sleepCalls := 0
	approver := &ForcedApprover{
		output: &output,
		sleepFn: func(d time.Duration) {
			sleepCalls++
			if sleepCalls >= 2 {
				cancel()
			}
		},
	}

	approved, err := approver.RequestApproval(ctx, "ltl")
	if err == nil {
		t.Fatal("Expected context cancellation error")
	}
	if approved {
		t.Fatal("Expected approval to be false on cancellation")
	}
}

func TestInteractiveApprover_MatchingInput(t *testing.T) {
	var output bytes.Buffer
	approver := &InteractiveApprover{
		input:  strings.NewReader("ltl\n"),
		output: &output,
	}

	approved, err := approver.RequestApproval(context.Background(), "ltl")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !approved {
		t.Fatal("Expected approval for matching input")
	}
	if !strings.Contains(output.String(), "Confirmed") {
		t.Errorf("Expected confirmation message, got:\n%s", output.String())
	}
}

func TestInteractiveApprover_NonMatchingInput(t *testing.T) {
	var output bytes.Buffer
	approver := &InteractiveApprover{
		input:  strings.NewReader("wrong_name\n"),
		output: &output,
	}

	approved, err := approver.RequestApproval(context.Background(), "ltl")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if approved {
		t.Fatal("Expected denial for non-matching input")
	}
	if !strings.Contains(output.String(), "does not match") {
		t.Errorf("Expected mismatch message, got:\n%s", output.String())
	}
}

func TestInteractiveApprover_EmptyInput(t *testing.T) {
	var output bytes.Buffer
	approver := &InteractiveApprover{
		input:  strings.NewReader("\n"),
		output: &output,
	}

	approved, err := approver.RequestApproval(context.Background(), "ltl")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if approved {
		t.Fatal("Expected denial for empty input")
	}
}

func TestInteractiveApprover_InputWithWhitespace(t *testing.T) {
	var output bytes.Buffer
	approver := &InteractiveApprover{
		input:  strings.NewReader("  ltl  \n"),
		output: &output,
	}

	approved, err := approver.RequestApproval(context.Background(), "ltl")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !approved {
		t.Fatal("Expected approval for input with surrounding whitespace")
	}
}

type errorReader struct {
	err error
}

func (r *errorReader) Read(_ []byte) (int, error) {
	return 0, r.err
}

func TestInteractiveApprover_ReadError(t *testing.T) {
	var output bytes.Buffer
	approver := &InteractiveApprover{
		input:  &errorReader{err: io.ErrUnexpectedEOF},
		output: &output,
	}

	approved, err := approver.RequestApproval(context.Background(), "ltl")
	if err == nil {
		t.Fatal("Expected error for read failure")
	}
	if approved {
		t.Fatal("Expected denial on read error")
	}
	if !strings.Contains(err.Error(), "failed to read input") {
		t.Errorf("Expected read error wrapper, got: %v", err)
	}
}

type blockingReader struct {
	closed chan struct{}
}

func newBlockingReader() *blockingReader {
	return &blockingReader{closed: make(chan struct{})}
}

func (r *blockingReader) Read(_ []byte) (int, error) {
	<-r.closed
	return 0, io.EOF
}

func (r *blockingReader) Close() {
	close(r.closed)
}

func TestInteractiveApprover_ContextCancellation(t *testing.T) {
	var output bytes.Buffer
	input := newBlockingReader()
	t.Cleanup(input.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	approver := &InteractiveApprover{
		input:  input,
		output: &output,
	}

	approved, err := approver.RequestApproval(ctx, "ltl")
	if err == nil {
		t.Fatal("Expected context cancellation error")
	}
	if approved {
		t.Fatal("Expected denial on context cancellation")
	}
}

func TestNewApprover_ForceSkipsTTYCheck(t *testing.T) {
	approver, err := NewApprover(true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := approver.(*ForcedApprover); !ok {
		t.Fatalf("Expected *ForcedApprover, got %T", approver)
	}
}

func TestNewApprover_NonTerminalStdin(t *testing.T) {
	// Under go test stdin is a pipe, not a terminal.
	_, err := NewApprover(false)
	if err == nil {
		t.Skip("stdin unexpectedly is a terminal")
	}
	if !errors.Is(err, ltlimport.ErrApprovalDenied) {
		t.Errorf("Expected ErrApprovalDenied, got: %v", err)
	}
	if !strings.Contains(err.Error(), "--force") {
		t.Errorf("Expected guidance toward --force, got: %v", err)
	}
}
