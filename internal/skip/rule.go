// Package skip decides which paths are left out of a scan.
//
// A [Rule] is either a literal path fragment or a regular expression. Rules
// are anchored to the scanned root and to whole path segments: the literal
// rule "tests" matches "root/tests" and "root/tests/unit" but not
// "root/testsuite". Matching ignores case.
package skip

import (
	"slices"
	"strings"
)

// PatternPrefix marks a textual rule as a regular expression.
const PatternPrefix = ":REGEXP:"

// Kind tells how a [Rule] value is matched.
type Kind int

const (
	// Literal rules match their value verbatim.
	Literal Kind = iota
	// Pattern rules match their value as a regular expression.
	Pattern
)

// Rule is a single skip-list entry.
type Rule struct {
	Kind  Kind
	Value string
}

// LiteralRule returns a rule matching value verbatim.
func LiteralRule(value string) Rule {
	return Rule{Kind: Literal, Value: value}
}

// PatternRule returns a rule matching the regular expression pattern.
func PatternRule(pattern string) Rule {
	return Rule{Kind: Pattern, Value: pattern}
}

// ParseRule reads the textual form of a rule, where [PatternPrefix]
// introduces a regular expression.
func ParseRule(s string) Rule {
	if pattern, ok := strings.CutPrefix(s, PatternPrefix); ok {
		return PatternRule(pattern)
	}
	return LiteralRule(s)
}

// ParseRules applies [ParseRule] to every entry of values.
func ParseRules(values []string) []Rule {
	rules := make([]Rule, 0, len(values))
	for _, v := range values {
		rules = append(rules, ParseRule(v))
	}
	return rules
}

// String returns the textual form accepted by [ParseRule].
func (r Rule) String() string {
	if r.Kind == Pattern {
		return PatternPrefix + r.Value
	}
	return r.Value
}

// List is an ordered set of rules.
type List []Rule

// Defaults returns the built-in skip list.
func Defaults() List {
	return List{
		LiteralRule("vendor"),
		LiteralRule(".git"),
		LiteralRule(".gitignore"),
		LiteralRule("composer.json"),
		LiteralRule("composer.lock"),
		LiteralRule("www/node_modules"),
		LiteralRule("www/package.json"),
		LiteralRule("www/package-lock.json"),
		PatternRule(`([^/]+/)*robots\.txt`),
		PatternRule(`([^/]+/)*\.htaccess`),
		PatternRule(`([^/]+/)*[^/]+\.md`),
		PatternRule(`([^/]+/)*[^/]+\.neon`),
		PatternRule(`([^/]+/)*temp`),
		PatternRule(`([^/]+/)*tests/([^/]+/)*output`),
	}
}

// Compose builds the effective skip list.
//
// The caller's rules come first, or the defaults when the caller gave none.
// The output file name is always appended so a run never reads its own
// previous output. Unless overrideDefaults is set, every default rule not
// already present is appended as well.
func Compose(caller []Rule, outputName string, overrideDefaults bool) List {
	defaults := Defaults()

	list := make(List, 0, len(caller)+len(defaults)+1)
	if len(caller) == 0 {
		list = append(list, defaults...)
	} else {
		list = append(list, caller...)
	}
	list = append(list, LiteralRule(outputName))

	if overrideDefaults {
		return list
	}
	for _, rule := range defaults {
		if !slices.Contains(list, rule) {
			list = append(list, rule)
		}
	}
	return list
}

// Strings returns the textual form of every rule.
func (l List) Strings() []string {
	out := make([]string, 0, len(l))
	for _, r := range l {
		out = append(out, r.String())
	}
	return out
}
