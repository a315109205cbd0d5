package sift

import (
	"strconv"
	"strings"
)

// QueryString reconstructs a query string from a spec, in the canonical
// token order: search, kind, state, file, refs bounds, callers, callees,
// entry. Fields at their default sentinel are omitted. The result is not
// necessarily the string the spec was parsed from, but re-parsing it
// yields an equivalent spec.
func QueryString(spec FilterSpec) string {
	var parts []string
	if spec.Search != "" {
		parts = append(parts, spec.Search)
	}
	if spec.Kind != KindAll {
		parts = append(parts, "kind:"+spec.Kind)
	}
	if spec.State != StateAll {
		parts = append(parts, "state:"+spec.State)
	}
	if spec.File != "" {
		parts = append(parts, "file:"+spec.File)
	}
	parts = append(parts, refsTokens(spec.MinRefs, spec.MaxRefs)...)
	if spec.HasCallers != nil {
		parts = append(parts, triStateToken("callers", *spec.HasCallers))
	}
	if spec.HasCallees != nil {
		parts = append(parts, triStateToken("callees", *spec.HasCallees))
	}
	if spec.Entry != nil && *spec.Entry {
		parts = append(parts, "entry:true")
	}
	return strings.Join(parts, " ")
}

// refsTokens renders the reference bounds: an exact value when both
// bounds coincide, otherwise one token per set bound. Exact values use
// "refs:N" so min and max survive a single token on re-parse.
func refsTokens(min, max *int) []string {
	if min != nil && max != nil && *min == *max {
		return []string{"refs:" + strconv.Itoa(*min)}
	}
	var parts []string
	if min != nil {
		parts = append(parts, "refs:>"+strconv.Itoa(*min))
	}
	if max != nil {
		parts = append(parts, "refs:<"+strconv.Itoa(*max))
	}
	return parts
}

func triStateToken(noun string, v bool) string {
	if v {
		return "has:" + noun
	}
	return noun + ":0"
}
