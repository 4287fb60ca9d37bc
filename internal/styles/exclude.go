package styles

import (
	"regexp"
	"strings"
)

// Matcher reports whether a fully resolved selector is excluded. Exclusion
// applies after selector composition, so patterns are written against the
// composed string (parent-space-child, parent+pseudo, or parent-substituted).
type Matcher func(selector string) bool

// CompileExclusions builds a Matcher from literal or wildcard patterns.
// A '*' in a pattern matches any sequence including the empty one; every
// other character matches literally, and the whole pattern is anchored so it
// must span the entire selector. With no patterns the Matcher is constant
// false.
func CompileExclusions(patterns []string) Matcher {
	if len(patterns) == 0 {
		return func(string) bool { return false }
	}
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(wildcardExpr(p))
	}
	return func(selector string) bool {
		for _, re := range res {
			if re.MatchString(selector) {
				return true
			}
		}
		return false
	}
}

// wildcardExpr escapes a pattern for regexp use, translating '*' to ".*" and
// anchoring both ends. Every pattern compiles by construction.
func wildcardExpr(pattern string) string {
	parts := strings.Split(pattern, "*")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return "^" + strings.Join(parts, ".*") + "$"
}
