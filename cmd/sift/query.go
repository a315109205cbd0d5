package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jward/sift"
	"github.com/jward/sift/internal/store"
)

var flagPreset string

var queryCmd = &cobra.Command{
	Use:   "query [query string...]",
	Short: "Filter stored symbols with a query string",
	Long:  "Parses the query, evaluates it against every stored symbol, and prints the matches. Use --preset to run a saved query instead.",
	RunE:  runQuery,
}

var chipsCmd = &cobra.Command{
	Use:   "chips <query string...>",
	Short: "Show the active-filter chips for a query",
	Long:  "Parses the query and prints one chip per non-default filter field, in display order.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChips,
}

func init() {
	queryCmd.Flags().StringVar(&flagPreset, "preset", "", "run the saved preset with this name")
}

// openStore opens the Store from the --db flag path.
func openStore() (*store.Store, error) {
	if _, err := os.Stat(flagDB); os.IsNotExist(err) {
		return nil, fmt.Errorf("database not found: %s (run 'sift load' first)", flagDB)
	}
	return store.NewStore(flagDB)
}

// resolveQuery returns the query string to run: either the joined
// positional args or, with --preset, the stored preset's query.
func resolveQuery(st *store.Store, args []string) (string, error) {
	if flagPreset == "" {
		return strings.Join(args, " "), nil
	}
	if len(args) > 0 {
		return "", fmt.Errorf("cannot combine --preset with a query string")
	}
	presets := sift.NewPresetStore(st)
	preset, ok := presets.Get(flagPreset)
	if !ok {
		return "", fmt.Errorf("no preset named %q", flagPreset)
	}
	return preset.Query, nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return outputError("query", err)
	}
	defer st.Close()

	query, err := resolveQuery(st, args)
	if err != nil {
		return outputError("query", err)
	}

	syms, err := st.Symbols()
	if err != nil {
		return outputError("query", err)
	}
	records := make([]sift.Record, len(syms))
	for i, sym := range syms {
		records[i] = recordFromSymbol(sym)
	}

	spec := sift.Parse(query)
	matched := sift.FilterRecords(records, spec)

	out := make([]CLISymbol, len(matched))
	for i, r := range matched {
		out[i] = symbolToCLI(r)
	}
	total := len(records)
	return outputResult(CLIResult{
		Command:    "query",
		Results:    out,
		TotalCount: &total,
		Query:      sift.QueryString(spec),
	})
}

func runChips(cmd *cobra.Command, args []string) error {
	spec := sift.Parse(strings.Join(args, " "))
	return outputResult(CLIResult{
		Command: "chips",
		Results: spec.ActiveFilters(),
		Query:   sift.QueryString(spec),
	})
}

// outputResult marshals a CLIResult to stdout in the selected format.
func outputResult(result CLIResult) error {
	if flagFormat == "text" {
		return outputResultText(result)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputError writes an error in the selected format and returns it so
// RunE can propagate it to Cobra. In JSON mode the error is written to
// stdout as a CLIResult envelope. In text mode it goes to stderr.
func outputError(command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	result := CLIResult{
		Command: command,
		Error:   err.Error(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
	return err
}
