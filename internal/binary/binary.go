// Package binary decides whether file content is readable text.
//
// The check folds the content down to printable ASCII. Binary data
// collapses to nothing under that folding while text in any script leaves
// some residue behind, since transliteration approximates letters of
// non-Latin alphabets phonetically. It is a heuristic: a text file made only
// of symbols that have no ASCII equivalent is reported as binary.
package binary

import (
	"bytes"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// IsBinaryOrEmpty reports whether content is empty after trimming or folds
// to no ASCII text at all.
func IsBinaryOrEmpty(content []byte) bool {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return true
	}
	if !utf8.Valid(trimmed) {
		return true
	}
	return strings.TrimSpace(ToASCII(string(trimmed))) == ""
}

// Placeholders keep the quoting characters that were in the input apart
// from the ones transliteration introduces, which are removed.
const (
	phBacktick = "\x01"
	phQuote    = "\x02"
	phDouble   = "\x03"
	phCaret    = "\x04"
	phTilde    = "\x05"
	phQuestion = "\x06"
)

var (
	protect = strings.NewReplacer(
		"`", phBacktick, "'", phQuote, `"`, phDouble,
		"^", phCaret, "~", phTilde, "?", phQuestion,
		"„", phDouble, "“", phDouble, "”", phDouble,
		"‚", phQuote, "‘", phQuote, "’", phQuote,
		"°", phCaret,
	)
	symbols = strings.NewReplacer(
		"»", ">>", "«", "<<", "…", "...",
		"™", "TM", "©", "(c)", "®", "(R)",
	)
	dropIntroduced = strings.NewReplacer(
		"`", "", "'", "", `"`, "", "^", "", "~", "", "?", "",
	)
	restore = strings.NewReplacer(
		phBacktick, "`", phQuote, "'", phDouble, `"`,
		phCaret, "^", phTilde, "~", phQuestion, "?",
	)
)

type folder struct {
	mu sync.Mutex
	t  transform.Transformer
}

// loadFolder builds the rune filter once; it is reused for the process
// lifetime.
var loadFolder = sync.OnceValue(func() *folder {
	return &folder{
		t: transform.Chain(
			runes.Remove(runes.Predicate(unprintable)),
			norm.NFC,
		),
	}
})

func (f *folder) apply(s string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out, _, err := transform.String(f.t, s)
	if err != nil {
		return ""
	}
	return out
}

// unprintable matches runes outside tab, newline, carriage return, the
// printable ASCII range and the broad Unicode letter ranges.
func unprintable(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return false
	case r >= 0x20 && r <= 0x7E:
		return false
	case r >= 0xA0 && r <= 0x2FF:
		return false
	case r >= 0x370 && r <= unicode.MaxRune:
		return r == utf8.RuneError
	}
	return true
}

// ToASCII transliterates s to plain ASCII. Characters without an ASCII
// approximation are dropped. Invalid UTF-8 yields an empty string.
func ToASCII(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}
	s = loadFolder().apply(s)
	s = protect.Replace(s)
	s = symbols.Replace(s)
	s = unidecode.Unidecode(s)
	s = stripNonASCII(s)
	s = dropIntroduced.Replace(s)
	return restore.Replace(s)
}

func stripNonASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)
}
