package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jward/sift"
	"github.com/jward/sift/internal/store"
)

var loadCmd = &cobra.Command{
	Use:   "load <symbols.json>",
	Short: "Load a symbol snapshot into the database",
	Long:  "Reads a JSON array of symbol records (synonymous field names like type/kind and references/refs are accepted) and replaces the stored symbol set.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return outputError("load", fmt.Errorf("reading %s: %w", args[0], err))
	}

	var records []sift.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return outputError("load", fmt.Errorf("decoding %s: %w", args[0], err))
	}

	st, err := store.NewStore(flagDB)
	if err != nil {
		return outputError("load", err)
	}
	defer st.Close()

	syms := make([]*store.Symbol, len(records))
	for i, r := range records {
		syms[i] = symbolFromRecord(r)
	}
	if err := st.ReplaceSymbols(syms); err != nil {
		return outputError("load", err)
	}

	total := len(syms)
	return outputResult(CLIResult{
		Command:    "load",
		Results:    fmt.Sprintf("loaded %d symbols into %s", total, flagDB),
		TotalCount: &total,
	})
}
