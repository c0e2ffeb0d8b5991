package assemble

import (
	"fmt"
	"io"
	"strings"

	"github.com/agentflare-ai/mdgen/internal/extract"
	"github.com/agentflare-ai/mdgen/internal/metadata"
)

// Rule is the decorative separator between sections and blocks.
const Rule = "**************************"

type markdownRenderer struct {
	tag string
}

func (r *markdownRenderer) renderHeader(w io.Writer, p metadata.Project) {
	if p.Name != "" {
		fmt.Fprintf(w, "# %s\n\n", p.Name)
	}
	if p.Description != "" {
		fmt.Fprintf(w, "%s\n\n", p.Description)
	}
	fmt.Fprintf(w, "%s\n%s\n\n", Rule, Rule)
}

func (r *markdownRenderer) renderFile(w io.Writer, rec FileRecord) {
	items := make([]string, 0, 2*len(rec.Blocks))
	for _, block := range rec.Blocks {
		items = append(items, "\n"+block+"\n", Rule)
	}
	fmt.Fprintf(w, "### %s\n", rec.Name)
	fmt.Fprintf(w, "%s\n", Rule)
	fmt.Fprintf(w, "%s\n", strings.Join(items, extract.LineBreak))
	fmt.Fprintf(w, "%s\n\n", Rule)
}

func (r *markdownRenderer) renderUndocumented(w io.Writer, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(w, "### Files without .md documentation (no %s docBlock in file)\n", r.tag)
	fmt.Fprintf(w, "%s\n", strings.Join(names, extract.LineBreak))
	fmt.Fprintf(w, "%s\n\n", Rule)
}

func (r *markdownRenderer) renderLicenses(w io.Writer, licenses []string) {
	if len(licenses) == 0 {
		return
	}
	fmt.Fprint(w, "## License"+extract.LineBreak)
	for _, l := range licenses {
		fmt.Fprint(w, l+extract.LineBreak)
	}
	fmt.Fprintln(w)
}

func (r *markdownRenderer) renderAuthors(w io.Writer, authors []string) {
	if len(authors) == 0 {
		return
	}
	fmt.Fprint(w, "## Authors"+extract.LineBreak)
	for _, a := range authors {
		fmt.Fprint(w, a+extract.LineBreak)
	}
}
