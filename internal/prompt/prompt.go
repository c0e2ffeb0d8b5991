// Package prompt asks the user to confirm overwriting a file.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/agentflare-ai/mdgen/internal/output"
)

// Overwrite tells the user that path exists and reads one line from in.
// It reports true only for an answer of "y", in any case and surrounding
// whitespace. End of input counts as a refusal.
func Overwrite(in io.Reader, p *output.Printer, path string) (bool, error) {
	p.Printf("\nThe file '%s' Already exists!\n\n", path)
	p.Printf("%s", p.Paint("white",
		"Do you want to continue and overwrite existing file by a new one generated?\n"+
			"Type 'y' to confirm, or 'n' (or anything else) to exit: "))

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	if strings.ToLower(strings.TrimSpace(line)) != "y" {
		p.Printf("ABORTING!\n\n")
		return false, nil
	}
	p.Printf("\nThank you, continuing...\n\n")
	return true, nil
}
