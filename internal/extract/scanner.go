package extract

import "strings"

// Comments returns every doc comment in content, delimiters included, in
// order of appearance.
//
// The scanner follows the comment rules of C-family source: "//" and "#"
// start a line comment, "/*" a block comment and "/**" followed by
// whitespace a doc comment. Doc comment markers inside other comments are
// ignored. An unterminated comment yields nothing. Content of any type is
// accepted; the scanner never fails.
func Comments(content string) []string {
	var comments []string
	for i := 0; i < len(content); {
		switch {
		case content[i] == '#':
			i = skipLine(content, i+1)
		case strings.HasPrefix(content[i:], "//"):
			i = skipLine(content, i+2)
		case strings.HasPrefix(content[i:], "/*"):
			end := strings.Index(content[i+2:], "*/")
			if end < 0 {
				return comments
			}
			next := i + 2 + end + 2
			if isDocOpen(content[i:]) {
				comments = append(comments, content[i:next])
			}
			i = next
		default:
			i++
		}
	}
	return comments
}

// isDocOpen reports whether s starts with "/**" and a whitespace byte.
func isDocOpen(s string) bool {
	if len(s) < 4 || !strings.HasPrefix(s, "/**") {
		return false
	}
	switch s[3] {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func skipLine(content string, from int) int {
	if nl := strings.IndexByte(content[from:], '\n'); nl >= 0 {
		return from + nl + 1
	}
	return len(content)
}
