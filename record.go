package sift

import "encoding/json"

// Record is a symbol as reported by the code-intelligence backend: an
// indexed code entity with usage metadata.
type Record struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Refs    int    `json:"refs"`
	Callers int    `json:"callers"`
	Callees int    `json:"callees"`
	Dead    bool   `json:"dead"`
	InCycle bool   `json:"cycle"`
	Entry   bool   `json:"entry"`
}

// recordJSON accepts the synonymous field names different backend
// endpoints use for the same data. The primary name wins when both are
// present.
type recordJSON struct {
	Name        string  `json:"name"`
	Path        string  `json:"path"`
	Kind        *string `json:"kind"`
	Type        *string `json:"type"`
	Refs        *int    `json:"refs"`
	References  *int    `json:"references"`
	Callers     *int    `json:"callers"`
	CallerCount *int    `json:"caller_count"`
	Callees     *int    `json:"callees"`
	CalleeCount *int    `json:"callee_count"`
	Dead        bool    `json:"dead"`
	Cycle       *bool   `json:"cycle"`
	InCycle     *bool   `json:"in_cycle"`
	Entry       bool    `json:"entry"`
}

// UnmarshalJSON decodes a record, accepting kind/type, refs/references,
// callers/caller_count, callees/callee_count, and cycle/in_cycle as
// synonyms.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Record{
		Name:    raw.Name,
		Path:    raw.Path,
		Kind:    firstString(raw.Kind, raw.Type),
		Refs:    firstInt(raw.Refs, raw.References),
		Callers: firstInt(raw.Callers, raw.CallerCount),
		Callees: firstInt(raw.Callees, raw.CalleeCount),
		Dead:    raw.Dead,
		InCycle: firstBool(raw.Cycle, raw.InCycle),
		Entry:   raw.Entry,
	}
	return nil
}

func firstString(ps ...*string) string {
	for _, p := range ps {
		if p != nil {
			return *p
		}
	}
	return ""
}

func firstInt(ps ...*int) int {
	for _, p := range ps {
		if p != nil {
			return *p
		}
	}
	return 0
}

func firstBool(ps ...*bool) bool {
	for _, p := range ps {
		if p != nil {
			return *p
		}
	}
	return false
}
