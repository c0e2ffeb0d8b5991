package output_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentflare-ai/mdgen/internal/output"
)

func TestColor(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		spec string
		want string
	}{
		"foreground":      {spec: "white", want: "\x1b[1m\x1b[37m"},
		"with background": {spec: "yellow/maroon", want: "\x1b[1m\x1b[33m\x1b[41m"},
		"plain dark":      {spec: "green", want: "\x1b[0m\x1b[32m"},
		"reset":           {spec: "", want: "\x1b[0m"},
		"unknown":         {spec: "pink", want: "\x1b[0m"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, output.Color(tc.spec))
		})
	}
}

func TestPrinterWithoutTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	p := output.NewPrinter(&buf)
	p.Success("Markdown content generated in 'x/README.md'")
	p.Fatal("boom", "")

	assert.Equal(t, "\n    Markdown content generated in 'x/README.md'\n\n\n\n    Error: boom\n\n", buf.String())
	assert.False(t, output.IsTerminal(&buf))
}

func TestPrinterColors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	p := output.NewColorPrinter(&buf)
	p.Fatal("boom", "in file main.go on line 3")

	out := buf.String()
	assert.Contains(t, out, output.Color("yellow/maroon")+" Error: boom"+output.Reset)
	assert.Contains(t, out, " (in file main.go on line 3)")
}
