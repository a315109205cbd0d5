package sift

import (
	"regexp"
	"strings"
)

// Glob is a compiled path pattern. '*' matches within a path segment,
// '**' matches across segments, '?' matches a single character. The
// compiled expression is case-insensitive and anchored at the start of
// the path; a trailing wildcard also bounds the end of the match, so
// "src/trace/*" accepts "src/trace/foo.go" but not
// "src/trace/sub/foo.go", while "src/**" accepts both and a bare
// literal like "src/trace" accepts anything it prefixes.
type Glob struct {
	pattern string
	re      *regexp.Regexp
}

// CompileGlob compiles a pattern. It never fails: every regex
// metacharacter other than the wildcards is escaped before compilation.
// A pattern ending in a wildcard is anchored at both ends, so the final
// wildcard bounds the match instead of degenerating into a prefix test;
// literal tails stay prefix-anchored.
func CompileGlob(pattern string) *Glob {
	var b strings.Builder
	b.WriteString("(?i)^")
	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		switch {
		case runes[i] == '*' && i+1 < len(runes) && runes[i+1] == '*':
			b.WriteString(".*")
			i += 2
		case runes[i] == '*':
			b.WriteString("[^/]*")
			i++
		case runes[i] == '?':
			b.WriteString(".")
			i++
		default:
			b.WriteString(regexp.QuoteMeta(string(runes[i])))
			i++
		}
	}
	if n := len(runes); n > 0 && (runes[n-1] == '*' || runes[n-1] == '?') {
		b.WriteString("$")
	}
	return &Glob{pattern: pattern, re: regexp.MustCompile(b.String())}
}

// Match reports whether path begins with the expanded pattern.
func (g *Glob) Match(path string) bool {
	return g.re.MatchString(path)
}

// String returns the original pattern.
func (g *Glob) String() string { return g.pattern }

// MatchGlob compiles pattern and tests path against it. An empty pattern
// matches every path.
func MatchGlob(path, pattern string) bool {
	return CompileGlob(pattern).Match(path)
}
