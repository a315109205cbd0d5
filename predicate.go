package sift

import "strings"

// Matches evaluates one record against the spec. Every active constraint
// must hold; evaluation stops at the first failure.
func Matches(r Record, spec FilterSpec) bool {
	var glob *Glob
	if spec.File != "" {
		glob = CompileGlob(spec.File)
	}
	return matchesCompiled(r, spec, glob)
}

// FilterRecords returns the records satisfying Matches, preserving input
// order. The file glob is compiled once for the whole pass.
func FilterRecords(records []Record, spec FilterSpec) []Record {
	var glob *Glob
	if spec.File != "" {
		glob = CompileGlob(spec.File)
	}
	var out []Record
	for _, r := range records {
		if matchesCompiled(r, spec, glob) {
			out = append(out, r)
		}
	}
	return out
}

func matchesCompiled(r Record, spec FilterSpec, glob *Glob) bool {
	if spec.Search != "" {
		needle := strings.ToLower(spec.Search)
		if !strings.Contains(strings.ToLower(r.Name), needle) &&
			!strings.Contains(strings.ToLower(r.Path), needle) {
			return false
		}
	}
	if spec.Kind != KindAll && !strings.EqualFold(r.Kind, spec.Kind) {
		return false
	}
	if spec.State != StateAll && !matchesState(r, spec.State) {
		return false
	}
	if glob != nil && !glob.Match(r.Path) {
		return false
	}
	if spec.MinRefs != nil && r.Refs < *spec.MinRefs {
		return false
	}
	if spec.MaxRefs != nil && r.Refs > *spec.MaxRefs {
		return false
	}
	if spec.HasCallers != nil && (r.Callers > 0) != *spec.HasCallers {
		return false
	}
	if spec.HasCallees != nil && (r.Callees > 0) != *spec.HasCallees {
		return false
	}
	if spec.Entry != nil && *spec.Entry && !r.Entry {
		return false
	}
	return true
}

// matchesState applies the usage-state rule. "dead" and "used" are not
// strict complements: a record with zero references and a false dead flag
// satisfies "dead" but not "used". That composite rule is the observed
// backend behavior and is kept as-is.
func matchesState(r Record, state string) bool {
	switch state {
	case "dead":
		return r.Dead || r.Refs == 0
	case "used":
		return !r.Dead && r.Refs != 0
	case "cycle":
		return r.InCycle
	case "entry":
		return r.Entry
	}
	return true
}
