package main

import (
	"github.com/jward/sift"
	"github.com/jward/sift/internal/store"
)

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command    string `json:"command"`
	Results    any    `json:"results"`
	TotalCount *int   `json:"total_count,omitempty"`
	Query      string `json:"query,omitempty"`
	Error      string `json:"error,omitempty"`
}

// CLISymbol is a JSON-friendly symbol representation.
type CLISymbol struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Refs    int    `json:"refs"`
	Callers int    `json:"callers"`
	Callees int    `json:"callees"`
	Dead    bool   `json:"dead"`
	Cycle   bool   `json:"cycle"`
	Entry   bool   `json:"entry"`
}

// CLIPreset is a JSON-friendly preset representation.
type CLIPreset struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Query string `json:"query"`
}

// recordFromSymbol converts a stored symbol row into the filter engine's
// record shape.
func recordFromSymbol(sym *store.Symbol) sift.Record {
	return sift.Record{
		Name:    sym.Name,
		Path:    sym.Path,
		Kind:    sym.Kind,
		Refs:    sym.RefCount,
		Callers: sym.CallerCount,
		Callees: sym.CalleeCount,
		Dead:    sym.Dead,
		InCycle: sym.InCycle,
		Entry:   sym.Entry,
	}
}

// symbolFromRecord converts a decoded record into a storable symbol row.
func symbolFromRecord(r sift.Record) *store.Symbol {
	return &store.Symbol{
		Name:        r.Name,
		Path:        r.Path,
		Kind:        r.Kind,
		RefCount:    r.Refs,
		CallerCount: r.Callers,
		CalleeCount: r.Callees,
		Dead:        r.Dead,
		InCycle:     r.InCycle,
		Entry:       r.Entry,
	}
}

// symbolToCLI converts a record to its CLI output shape.
func symbolToCLI(r sift.Record) CLISymbol {
	return CLISymbol{
		Name:    r.Name,
		Path:    r.Path,
		Kind:    r.Kind,
		Refs:    r.Refs,
		Callers: r.Callers,
		Callees: r.Callees,
		Dead:    r.Dead,
		Cycle:   r.InCycle,
		Entry:   r.Entry,
	}
}
