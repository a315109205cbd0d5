package sift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int    { return &n }
func boolp(b bool) *bool { return &b }

func TestParse_KeyValueTokens(t *testing.T) {
	spec := Parse("kind:function state:dead")
	assert.Equal(t, "function", spec.Kind)
	assert.Equal(t, "dead", spec.State)
	assert.Equal(t, "", spec.Search)
}

func TestParse_InvalidVocabularyDropped(t *testing.T) {
	// A recognized prefix with an out-of-vocabulary value is discarded
	// silently, not merged into the search text.
	spec := Parse("foo kind:bogus")
	assert.Equal(t, "foo", spec.Search)
	assert.Equal(t, KindAll, spec.Kind)

	spec = Parse("state:sideways bar")
	assert.Equal(t, "bar", spec.Search)
	assert.Equal(t, StateAll, spec.State)
}

func TestParse_Refs(t *testing.T) {
	tests := []struct {
		query string
		min   *int
		max   *int
	}{
		{"refs:10", intp(10), intp(10)},
		{"refs:>5", intp(5), nil},
		{"refs:<5", nil, intp(5)},
		{"refs:abc", nil, nil},
		{"refs:>x", nil, nil},
		{"refs:0", intp(0), intp(0)},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			spec := Parse(tt.query)
			assert.Equal(t, tt.min, spec.MinRefs)
			assert.Equal(t, tt.max, spec.MaxRefs)
			assert.Equal(t, "", spec.Search)
		})
	}
}

func TestParse_CallerCalleeTriState(t *testing.T) {
	spec := Parse("has:callers")
	require.NotNil(t, spec.HasCallers)
	assert.True(t, *spec.HasCallers)
	assert.Nil(t, spec.HasCallees)

	spec = Parse("callers:0")
	require.NotNil(t, spec.HasCallers)
	assert.False(t, *spec.HasCallers)

	spec = Parse("callees:>3")
	require.NotNil(t, spec.HasCallees)
	assert.True(t, *spec.HasCallees)

	spec = Parse("callees:7")
	require.NotNil(t, spec.HasCallees)
	assert.True(t, *spec.HasCallees)

	// Unparseable values leave the field untouched.
	spec = Parse("callers:maybe")
	assert.Nil(t, spec.HasCallers)

	spec = Parse("has:wings")
	assert.Nil(t, spec.HasCallers)
	assert.Nil(t, spec.HasCallees)
}

func TestParse_Entry(t *testing.T) {
	spec := Parse("entry:true")
	require.NotNil(t, spec.Entry)
	assert.True(t, *spec.Entry)

	spec = Parse("entry:TRUE")
	require.NotNil(t, spec.Entry)
	assert.True(t, *spec.Entry)

	spec = Parse("entry:nope")
	require.NotNil(t, spec.Entry)
	assert.False(t, *spec.Entry)
}

func TestParse_FileGlob(t *testing.T) {
	// file: accepts any value unconditionally, preserved case and all.
	spec := Parse("file:src/Trace/**")
	assert.Equal(t, "src/Trace/**", spec.File)
}

func TestParse_FreeText(t *testing.T) {
	spec := Parse("  handle   Request  ")
	assert.Equal(t, "handle Request", spec.Search)

	// Free text keeps its original order around recognized tokens.
	spec = Parse("alpha kind:method beta")
	assert.Equal(t, "alpha beta", spec.Search)
	assert.Equal(t, "method", spec.Kind)
}

func TestParse_PrefixCaseInsensitive(t *testing.T) {
	spec := Parse("KIND:Function State:DEAD FILE:src/*")
	assert.Equal(t, "function", spec.Kind)
	assert.Equal(t, "dead", spec.State)
	assert.Equal(t, "src/*", spec.File)
}

func TestParse_EmptyValueIsFreeText(t *testing.T) {
	// A bare "kind:" consumed the whole token; it falls through to the
	// free-text accumulator.
	spec := Parse("kind:")
	assert.Equal(t, "kind:", spec.Search)
	assert.Equal(t, KindAll, spec.Kind)
}

func TestParse_LastWriteWins(t *testing.T) {
	spec := Parse("kind:function kind:struct state:dead state:used")
	assert.Equal(t, "struct", spec.Kind)
	assert.Equal(t, "used", spec.State)
}

func TestParse_EmptyQuery(t *testing.T) {
	spec := Parse("")
	assert.True(t, spec.Equal(DefaultSpec()))
	assert.False(t, spec.HasActiveFilters())
}
