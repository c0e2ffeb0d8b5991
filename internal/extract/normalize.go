package extract

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Hints with a known rewrite.
const (
	// HintConf covers configuration files (nginx and the like) that only
	// have "#" line comments.
	HintConf = "conf"
)

var confRewrites = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(\n|^)\s*#\s*(/\*\*)`), "$1$2"},
	{regexp.MustCompile(`(\n)\s*#\s*(\*/)`), "$1$2"},
	{regexp.MustCompile(`(\n)\s*#\s*(\*)`), "$1$2"},
}

// HintFor returns the dialect hint of path: its extension without the dot.
func HintFor(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// Normalize rewrites content written in a line-comment dialect so that its
// "# /**", "# *" and "# */" lines become plain doc comment lines. Content
// with an unknown hint is returned unchanged.
func Normalize(content, hint string) string {
	if hint != HintConf {
		return content
	}
	for _, rw := range confRewrites {
		content = rw.re.ReplaceAllString(content, rw.repl)
	}
	return content
}
