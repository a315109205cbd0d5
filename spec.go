package sift

import "strconv"

// FilterSpec is the canonical filter state. Every field has a "no
// constraint" sentinel: "all" for the enums, "" for strings, nil for the
// numeric bounds and tri-state booleans. The predicate engine treats each
// field independently and combines active constraints with logical AND.
type FilterSpec struct {
	// Search is a free-text fragment matched case-insensitively against a
	// record's name or path.
	Search string

	// Kind restricts the symbol kind. "all" means no constraint.
	Kind string

	// State restricts usage state: used, dead, cycle, or entry. "all"
	// means no constraint.
	State string

	// File is a glob pattern over the record path. Empty means no
	// constraint.
	File string

	// MinRefs and MaxRefs are inclusive bounds on the reference count.
	// nil means unbounded on that side.
	MinRefs *int
	MaxRefs *int

	// HasCallers and HasCallees are tri-state: true requires a count > 0,
	// false requires a count of 0, nil imposes no constraint.
	HasCallers *bool
	HasCallees *bool

	// Entry requires the entry-point flag when true. nil and false impose
	// no constraint.
	Entry *bool
}

// Sentinel values for the enum fields.
const (
	KindAll  = "all"
	StateAll = "all"
)

// Kind vocabulary accepted by the parser and UI.
var symbolKinds = map[string]bool{
	"function":  true,
	"method":    true,
	"class":     true,
	"struct":    true,
	"enum":      true,
	"interface": true,
	"type":      true,
	"variable":  true,
}

// State vocabulary accepted by the parser and UI.
var symbolStates = map[string]bool{
	"used":  true,
	"dead":  true,
	"cycle": true,
	"entry": true,
}

// ValidKind reports whether kind is a member of the kind vocabulary.
func ValidKind(kind string) bool { return symbolKinds[kind] }

// ValidState reports whether state is a member of the state vocabulary.
func ValidState(state string) bool { return symbolStates[state] }

// DefaultSpec returns a FilterSpec with every field at its "no constraint"
// sentinel.
func DefaultSpec() FilterSpec {
	return FilterSpec{Kind: KindAll, State: StateAll}
}

// Clone returns a deep copy. Mutating the copy (including through its
// pointer fields) never affects the receiver.
func (s FilterSpec) Clone() FilterSpec {
	c := s
	c.MinRefs = cloneInt(s.MinRefs)
	c.MaxRefs = cloneInt(s.MaxRefs)
	c.HasCallers = cloneBool(s.HasCallers)
	c.HasCallees = cloneBool(s.HasCallees)
	c.Entry = cloneBool(s.Entry)
	return c
}

// Equal reports whether two specs impose identical constraints.
func (s FilterSpec) Equal(o FilterSpec) bool {
	return s.Search == o.Search &&
		s.Kind == o.Kind &&
		s.State == o.State &&
		s.File == o.File &&
		intEq(s.MinRefs, o.MinRefs) &&
		intEq(s.MaxRefs, o.MaxRefs) &&
		boolEq(s.HasCallers, o.HasCallers) &&
		boolEq(s.HasCallees, o.HasCallees) &&
		boolEq(s.Entry, o.Entry)
}

// HasActiveFilters reports whether any field differs from its default
// sentinel.
func (s FilterSpec) HasActiveFilters() bool {
	return !s.Equal(DefaultSpec())
}

// ActiveFilter is one entry in the active-filter chip list.
type ActiveFilter struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// ActiveFilters returns one entry per non-default field, in the fixed
// order kind, state, file, minRefs, maxRefs, hasCallers, hasCallees,
// entry. Labels are "<key>:<value>" except the caller/callee tri-states,
// which render as "has:callers" (true) and "callers:0" (false).
func (s FilterSpec) ActiveFilters() []ActiveFilter {
	var list []ActiveFilter
	if s.Kind != KindAll {
		list = append(list, ActiveFilter{"kind", s.Kind, "kind:" + s.Kind})
	}
	if s.State != StateAll {
		list = append(list, ActiveFilter{"state", s.State, "state:" + s.State})
	}
	if s.File != "" {
		list = append(list, ActiveFilter{"file", s.File, "file:" + s.File})
	}
	if s.MinRefs != nil {
		v := strconv.Itoa(*s.MinRefs)
		list = append(list, ActiveFilter{"minRefs", v, "minRefs:" + v})
	}
	if s.MaxRefs != nil {
		v := strconv.Itoa(*s.MaxRefs)
		list = append(list, ActiveFilter{"maxRefs", v, "maxRefs:" + v})
	}
	if s.HasCallers != nil {
		list = append(list, triStateChip("hasCallers", "callers", *s.HasCallers))
	}
	if s.HasCallees != nil {
		list = append(list, triStateChip("hasCallees", "callees", *s.HasCallees))
	}
	if s.Entry != nil {
		v := strconv.FormatBool(*s.Entry)
		list = append(list, ActiveFilter{"entry", v, "entry:" + v})
	}
	return list
}

func triStateChip(key, noun string, v bool) ActiveFilter {
	if v {
		return ActiveFilter{key, "true", "has:" + noun}
	}
	return ActiveFilter{key, "false", noun + ":0"}
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func intEq(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func boolEq(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
