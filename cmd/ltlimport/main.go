package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/ltlops/ltlimport/internal/cli"
	"github.com/ltlops/ltlimport/pkg/ltlimport"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(ltlimport.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(ltlimport.ExitCodeForError(err))
	}
}
