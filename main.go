package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/agentflare-ai/mdgen/internal/output"
)

const (
	programName = "mdgen"
	// exitFatal is the status of runs ending in an unexpected error.
	exitFatal = 500
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := runMain(ctx, os.Args[1:], os.Stdin, os.Stdout)
	stop()
	os.Exit(code)
}

// runMain runs the CLI and turns every error or panic into the fatal error
// banner and exit status.
func runMain(ctx context.Context, argv []string, stdin io.Reader, stdout io.Writer) (code int) {
	p := output.NewPrinter(stdout)
	defer func() {
		if r := recover(); r != nil {
			p.Fatal(fmt.Sprint(r), panicLocation())
			p.HelpHint(programName)
			code = exitFatal
		}
	}()

	err := runContext(ctx, argv, stdin, stdout)
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		fmt.Fprintf(stdout, "%s\n", exitErr.msg)
		return exitErr.code
	}
	p.Fatal(err.Error(), "")
	p.HelpHint(programName)
	return exitFatal
}

// panicLocation returns the file and line that panicked, from inside a
// deferred recover.
func panicLocation() string {
	pcs := make([]uintptr, 64)
	frames := runtime.CallersFrames(pcs[:runtime.Callers(1, pcs)])
	afterPanic := false
	for {
		f, more := frames.Next()
		if afterPanic && !strings.HasPrefix(f.Function, "runtime.") {
			return fmt.Sprintf("in file %s on line %d", f.File, f.Line)
		}
		if f.Function == "runtime.gopanic" {
			afterPanic = true
		}
		if !more {
			return ""
		}
	}
}
