// Package extract finds annotated documentation inside doc comments.
//
// A doc comment is a "/** ... */" block in any kind of file. Only the part
// of it marked by a tag (see [Tag]) is documentation: the text between the
// first and second tag, or everything after the tag when it appears once.
package extract

import (
	"regexp"
	"strings"
)

// Tag marks the documented part of a doc comment.
const Tag = "@md"

// LineBreak joins comment lines. Two trailing spaces force a line break in
// Markdown.
const LineBreak = "  \n"

var leadingStar = regexp.MustCompile(`^\*\s?`)

// Extract returns the annotated content of every doc comment in content,
// in order. Comments without tag, or with nothing between the tags, are
// left out.
//
// When the tag occurs three or more times in one comment, only the text
// between the first two occurrences is used.
func Extract(content, tag string) []string {
	var blocks []string
	for _, raw := range Comments(content) {
		if block, ok := Isolate(Clean(raw), tag); ok {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// Clean strips the comment delimiters and the leading asterisk of every
// line, and joins lines with [LineBreak].
func Clean(raw string) string {
	raw = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(raw)
	raw = strings.TrimPrefix(raw, "/**")
	raw = strings.TrimSuffix(raw, "*/")

	lines := strings.Split(strings.TrimSpace(raw), "\n")
	for i, line := range lines {
		lines[i] = leadingStar.ReplaceAllString(strings.TrimSpace(line), "")
	}
	return strings.Join(lines, LineBreak)
}

// Isolate returns the trimmed tagged part of comment. ok is false when the
// tag is missing or encloses only whitespace.
func Isolate(comment, tag string) (string, bool) {
	if tag == "" {
		return "", false
	}
	_, rest, found := strings.Cut(comment, tag)
	if !found {
		return "", false
	}
	if inner, _, closed := strings.Cut(rest, tag); closed {
		rest = inner
	}
	rest = strings.TrimSpace(rest)
	return rest, rest != ""
}
