package middleware

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Husnainn01/mizhuo-sub000/internal/auth"
)

// Rule pairs a path pattern with the minimum access tier it demands.
// Patterns are absolute paths whose segments may be a `:name` wildcard;
// a wildcard matches exactly one segment's contents, never more. A
// pattern also matches any deeper sub-path (prefix semantics).
//
// Matching strategy: each pattern compiles once to an anchored regexp,
// wildcard segments becoming `[^/]+`. Rules are evaluated in declared
// order and the first match wins.
type Rule struct {
	Pattern  string
	MinLevel auth.AccessLevel
}

type compiledRule struct {
	re       *regexp.Regexp
	minLevel auth.AccessLevel
}

// RuleTable is an ordered, immutable set of compiled rules.
type RuleTable struct {
	rules []compiledRule
}

// CompileRules builds a RuleTable, failing fast on an invalid pattern
// so misconfiguration is a startup error, not a per-request one.
func CompileRules(rules []Rule) (*RuleTable, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		re, err := compilePattern(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("route rule %q: %w", r.Pattern, err)
		}
		compiled = append(compiled, compiledRule{re: re, minLevel: r.MinLevel})
	}
	return &RuleTable{rules: compiled}, nil
}

// MinLevel returns the minimum tier required for path and whether any
// rule matched. An unmatched path carries no tier requirement beyond
// the caller's baseline (any authenticated session).
func (t *RuleTable) MinLevel(path string) (auth.AccessLevel, bool) {
	for _, r := range t.rules {
		if r.re.MatchString(path) {
			return r.minLevel, true
		}
	}
	return auth.LevelNone, false
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("pattern must start with /")
	}
	segments := strings.Split(strings.Trim(pattern, "/"), "/")
	var b strings.Builder
	b.WriteString("^")
	for _, seg := range segments {
		b.WriteString("/")
		if strings.HasPrefix(seg, ":") {
			b.WriteString("[^/]+")
		} else {
			b.WriteString(regexp.QuoteMeta(seg))
		}
	}
	// prefix semantics: the pattern owns everything below it
	b.WriteString("(?:/.*)?$")
	return regexp.Compile(b.String())
}
