package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/jward/sift"
)

// outputResultText renders a CLIResult as human-readable text based on
// the payload type.
func outputResultText(result CLIResult) error {
	w := os.Stdout
	switch results := result.Results.(type) {
	case []CLISymbol:
		formatSymbolsText(w, results)
		if result.TotalCount != nil {
			fmt.Fprintf(w, "\n%d of %d symbols\n", len(results), *result.TotalCount)
		}
	case []CLIPreset:
		formatPresetsText(w, results)
	case []sift.ActiveFilter:
		formatChipsText(w, results)
	case string:
		fmt.Fprintln(w, results)
	default:
		fmt.Fprintf(w, "%v\n", results)
	}
	return nil
}

// formatSymbolsText formats symbols as aligned columns.
func formatSymbolsText(w io.Writer, syms []CLISymbol) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tPATH\tREFS\tCALLERS\tCALLEES\tFLAGS")
	for _, s := range syms {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			s.Name, s.Kind, s.Path, s.Refs, s.Callers, s.Callees, symbolFlags(s))
	}
	tw.Flush()
}

// symbolFlags renders the boolean columns compactly: d=dead, c=cycle,
// e=entry.
func symbolFlags(s CLISymbol) string {
	flags := ""
	if s.Dead {
		flags += "d"
	}
	if s.Cycle {
		flags += "c"
	}
	if s.Entry {
		flags += "e"
	}
	if flags == "" {
		return "-"
	}
	return flags
}

// formatPresetsText formats presets as aligned columns.
func formatPresetsText(w io.Writer, presets []CLIPreset) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tQUERY")
	for _, p := range presets {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Name, p.Query)
	}
	tw.Flush()
}

// formatChipsText formats active-filter chips one per line.
func formatChipsText(w io.Writer, chips []sift.ActiveFilter) {
	for _, c := range chips {
		fmt.Fprintln(w, c.Label)
	}
	if len(chips) == 0 {
		fmt.Fprintln(w, "(no active filters)")
	}
}
