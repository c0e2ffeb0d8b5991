package skip

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidPattern is returned when a pattern rule does not compile.
var ErrInvalidPattern = errors.New("invalid skip pattern")

// Filter matches paths below one root against a compiled [List].
type Filter struct {
	root     string
	matchers []*regexp.Regexp
}

// NewFilter compiles list for paths below root.
func NewFilter(root string, list List) (*Filter, error) {
	root = strings.TrimRight(root, "/")
	quotedRoot := regexp.QuoteMeta(root)

	f := &Filter{root: root, matchers: make([]*regexp.Regexp, 0, len(list))}
	for _, rule := range list {
		pattern := rule.Value
		if rule.Kind == Literal {
			pattern = regexp.QuoteMeta(strings.Trim(rule.Value, "/"))
		}
		re, err := regexp.Compile("(?i)^" + quotedRoot + "/" + pattern + "(/|$)")
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, rule.String(), err)
		}
		f.matchers = append(f.matchers, re)
	}
	return f, nil
}

// Root returns the root the filter was built for, without trailing slash.
func (f *Filter) Root() string {
	return f.root
}

// Skipped reports whether any rule matches path.
func (f *Filter) Skipped(path string) bool {
	for _, re := range f.matchers {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// IsSkipped compiles list for root and matches path against it.
func IsSkipped(path, root string, list List) (bool, error) {
	f, err := NewFilter(root, list)
	if err != nil {
		return false, err
	}
	return f.Skipped(path), nil
}
