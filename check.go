package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/agentflare-ai/mdgen/internal/assemble"
)

const exitStale = 1

// checkOutput compares the file at name with doc and reports the changed
// lines when they differ.
func (app *cliApp) checkOutput(name string, doc assemble.Document) error {
	old, err := os.ReadFile(name)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if string(old) == string(doc.Content) {
		app.log().Info("markdown is up to date")
		fmt.Fprintf(app.stdout, "'%s' is up to date\n", name)
		return nil
	}

	p := app.printer()
	fmt.Fprintf(app.stdout, "--- %s\n+++ %s (generated)\n", name, name)
	writeLineDiff(app.stdout, string(old), string(doc.Content), func(spec, s string) string {
		return p.Paint(spec, s)
	})
	return &exitError{code: exitStale, msg: fmt.Sprintf("'%s' is out of date", name)}
}

// writeLineDiff prints the lines removed from a and added in b, prefixed
// with "-" and "+".
func writeLineDiff(w io.Writer, a, b string, paint func(spec, s string) string) {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	for _, d := range diffs {
		var prefix, spec string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix, spec = "+", "green"
		case diffmatchpatch.DiffDelete:
			prefix, spec = "-", "red"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			fmt.Fprintln(w, paint(spec, prefix+strings.TrimSuffix(line, "\n")))
		}
	}
}
