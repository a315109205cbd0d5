package sift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlob_SingleStarStopsAtSeparator(t *testing.T) {
	assert.True(t, MatchGlob("src/trace/foo.go", "src/trace/*"))
	assert.False(t, MatchGlob("src/trace/sub/foo.go", "src/trace/*"))
}

func TestGlob_TrailingWildcardBoundsTheMatch(t *testing.T) {
	// A trailing '*' must constrain the rest of the path, not degrade
	// into a bare prefix test.
	assert.False(t, MatchGlob("src/trace/foo.go/extra", "src/trace/*"))
	assert.False(t, MatchGlob("src/trace/sub/deep/foo.go", "src/trace/*"))
	assert.True(t, MatchGlob("src/trace/foo.go", "src/trace/*"))
}

func TestGlob_MidPatternWildcardKeepsPrefixTail(t *testing.T) {
	// Wildcards before a literal tail leave the pattern prefix-anchored.
	assert.True(t, MatchGlob("src/a/foo.go", "src/*/foo"))
	assert.False(t, MatchGlob("src/a/b/foo.go", "src/*/foo"))
	assert.True(t, MatchGlob("src/a/foo_test.go", "src/*/foo"))
}

func TestGlob_DoubleStarCrossesSeparators(t *testing.T) {
	assert.True(t, MatchGlob("src/trace/foo.go", "src/**"))
	assert.True(t, MatchGlob("src/trace/sub/foo.go", "src/**"))
	assert.False(t, MatchGlob("lib/trace/foo.go", "src/**"))
}

func TestGlob_PrefixAnchoredOnly(t *testing.T) {
	// No end anchor: a literal pattern matches any path it prefixes.
	assert.True(t, MatchGlob("src/trace/foo.go", "src/trace"))
	assert.True(t, MatchGlob("src/tracer.go", "src/trace"))
	assert.False(t, MatchGlob("other/src/trace/foo.go", "src/trace"))
}

func TestGlob_QuestionMark(t *testing.T) {
	assert.True(t, MatchGlob("src/a.go", "src/?.go"))
	assert.False(t, MatchGlob("src/ab.go", "src/?.go"))
}

func TestGlob_CaseInsensitive(t *testing.T) {
	assert.True(t, MatchGlob("SRC/Trace/Foo.go", "src/trace/*"))
}

func TestGlob_MetacharactersEscaped(t *testing.T) {
	// Regex metacharacters in the pattern are literals, never operators.
	assert.True(t, MatchGlob("src/file.go", "src/file.go"))
	assert.False(t, MatchGlob("src/filexgo", "src/file.go"))
	assert.True(t, MatchGlob("src/(aux)/f.go", "src/(aux)/*"))
	assert.False(t, MatchGlob("src/aux/f.go", "src/(aux)/*"))
}

func TestGlob_NeverFailsOnMalformedPatterns(t *testing.T) {
	for _, pattern := range []string{"[", "(", "a{2,", "\\", "src/[a-/*"} {
		assert.NotPanics(t, func() { MatchGlob("src/x.go", pattern) }, "pattern %q", pattern)
	}
}

func TestGlob_EmptyPatternMatchesEverything(t *testing.T) {
	assert.True(t, MatchGlob("anything/at/all.go", ""))
	assert.True(t, MatchGlob("", ""))
}

func TestGlob_CompileOnceMatchMany(t *testing.T) {
	g := CompileGlob("internal/**/*_test.go")
	assert.True(t, g.Match("internal/store/store_test.go"))
	assert.Equal(t, "internal/**/*_test.go", g.String())
}
