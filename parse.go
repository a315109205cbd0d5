package sift

import (
	"strconv"
	"strings"
)

// Parse tokenizes a raw query string into a FilterSpec, starting from
// DefaultSpec. Tokens are processed left to right; later tokens overwrite
// earlier ones for the same field. Recognized key:value tokens carrying a
// value outside the field's vocabulary are dropped silently rather than
// merged into the free-text search. Parse never fails: any input yields a
// valid spec.
func Parse(query string) FilterSpec {
	spec := DefaultSpec()
	var text []string

	for _, token := range strings.Fields(query) {
		key, value, ok := splitToken(token)
		if !ok {
			text = append(text, token)
			continue
		}
		switch key {
		case "kind":
			if v := strings.ToLower(value); ValidKind(v) {
				spec.Kind = v
			}
		case "state":
			if v := strings.ToLower(value); ValidState(v) {
				spec.State = v
			}
		case "file":
			spec.File = value
		case "refs":
			parseRefs(&spec, value)
		case "callers":
			spec.HasCallers = parseCountFilter(value, spec.HasCallers)
		case "callees":
			spec.HasCallees = parseCountFilter(value, spec.HasCallees)
		case "entry":
			v := strings.EqualFold(value, "true")
			spec.Entry = &v
		case "has":
			t := true
			switch strings.ToLower(value) {
			case "callers":
				spec.HasCallers = &t
			case "callees":
				spec.HasCallees = &t
			}
		}
	}

	spec.Search = strings.Join(text, " ")
	return spec
}

// queryKeys lists the recognized token prefixes in priority order.
var queryKeys = []string{"kind", "state", "file", "refs", "callers", "callees", "entry", "has"}

// splitToken matches a token against the recognized prefixes. The prefix
// comparison is case-insensitive; the value keeps its original case. A
// token whose prefix matched but carries an empty value is treated as free
// text, not as a cleared field.
func splitToken(token string) (key, value string, ok bool) {
	lower := strings.ToLower(token)
	for _, k := range queryKeys {
		prefix := k + ":"
		if strings.HasPrefix(lower, prefix) && len(token) > len(prefix) {
			return k, token[len(prefix):], true
		}
	}
	return "", "", false
}

// parseRefs handles refs:<N>, refs:>N, and refs:<N. An exact value pins
// both bounds; unparseable values leave the bounds untouched.
func parseRefs(spec *FilterSpec, value string) {
	switch {
	case strings.HasPrefix(value, ">"):
		if n, err := strconv.Atoi(value[1:]); err == nil {
			spec.MinRefs = &n
		}
	case strings.HasPrefix(value, "<"):
		if n, err := strconv.Atoi(value[1:]); err == nil {
			spec.MaxRefs = &n
		}
	default:
		if n, err := strconv.Atoi(value); err == nil {
			spec.MinRefs = &n
			m := n
			spec.MaxRefs = &m
		}
	}
}

// parseCountFilter maps callers:/callees: values onto the tri-state
// boolean: "0" means none, ">N" or any positive exact value means some.
// Unparseable values leave the previous state in place.
func parseCountFilter(value string, prev *bool) *bool {
	if strings.HasPrefix(value, ">") {
		t := true
		return &t
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return prev
	}
	v := n > 0
	return &v
}
