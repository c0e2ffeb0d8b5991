package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Printer writes status lines, colored when the destination is a terminal.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a Printer for w. Colors are enabled when w is a
// terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, color: IsTerminal(w)}
}

// NewColorPrinter returns a Printer for w that always emits colors.
func NewColorPrinter(w io.Writer) *Printer {
	return &Printer{w: w, color: true}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Paint wraps text in the escape sequence of spec (see [Color]) when colors
// are enabled.
func (p *Printer) Paint(spec, text string) string {
	if !p.color {
		return text
	}
	return Color(spec) + text + Reset
}

// Printf writes a formatted message.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Success prints the final highlighted message of a run.
func (p *Printer) Success(msg string) {
	fmt.Fprintf(p.w, "\n   %s\n\n", p.Paint("white/green", " "+msg))
}

// Fatal prints an error block. location may be empty.
func (p *Printer) Fatal(msg, location string) {
	fmt.Fprintf(p.w, "\n\n   %s\n", p.Paint("yellow/maroon", " Error: "+msg))
	if location != "" {
		fmt.Fprintf(p.w, "%s\n", p.Paint("yellow/maroon", " ("+location+")"))
	}
	fmt.Fprintln(p.w)
}

// HelpHint tells how to show the help text of command.
func (p *Printer) HelpHint(command string) {
	fmt.Fprintf(p.w, "\nTo show help just run:\n%s --help\n\n", command)
}
