package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagDB     string
	flagFormat string
)

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "sift",
	Short:         "Search and filter engine for code-intelligence symbol data",
	Long:          "Sift filters symbol records with a small query language (kind:, state:, file:, refs:, callers:, callees:, entry:, has: plus free text) and manages saved filter presets.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "sift.db", "database path")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "json", "output format: json|text")

	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(chipsCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(presetCmd)
}

// validateFormat rejects anything other than the supported formats.
func validateFormat(format string) error {
	switch format {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("invalid format %q: must be json or text", format)
	}
}
