package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jward/sift"
	"github.com/jward/sift/internal/store"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage saved filter presets",
	Long:  "List, save, and delete named query presets. A fresh database starts with the built-in preset set.",
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	RunE:  runPresetList,
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name> <query string...>",
	Short: "Save a query under a name",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runPresetSave,
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a preset by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetDelete,
}

func init() {
	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetSaveCmd)
	presetCmd.AddCommand(presetDeleteCmd)
}

// openPresetStore opens the database (creating it if needed) and wraps it
// in a PresetStore.
func openPresetStore() (*sift.PresetStore, *store.Store, error) {
	st, err := store.NewStore(flagDB)
	if err != nil {
		return nil, nil, err
	}
	return sift.NewPresetStore(st), st, nil
}

func runPresetList(cmd *cobra.Command, args []string) error {
	presets, st, err := openPresetStore()
	if err != nil {
		return outputError("preset-list", err)
	}
	defer st.Close()

	list := presets.Load()
	out := make([]CLIPreset, len(list))
	for i, p := range list {
		out[i] = CLIPreset(p)
	}
	total := len(out)
	return outputResult(CLIResult{
		Command:    "preset-list",
		Results:    out,
		TotalCount: &total,
	})
}

func runPresetSave(cmd *cobra.Command, args []string) error {
	presets, st, err := openPresetStore()
	if err != nil {
		return outputError("preset-save", err)
	}
	defer st.Close()

	name := args[0]
	// Canonicalize through a parse/serialize round trip so the stored
	// query is grammar-clean.
	query := sift.QueryString(sift.Parse(strings.Join(args[1:], " ")))
	preset := presets.Add(name, query)
	return outputResult(CLIResult{
		Command: "preset-save",
		Results: CLIPreset(preset),
	})
}

func runPresetDelete(cmd *cobra.Command, args []string) error {
	presets, st, err := openPresetStore()
	if err != nil {
		return outputError("preset-delete", err)
	}
	defer st.Close()

	id := args[0]
	before := presets.Load()
	presets.Remove(id)
	after := presets.Load()
	if len(after) == len(before) {
		return outputError("preset-delete", fmt.Errorf("no preset with id %q", id))
	}
	return outputResult(CLIResult{
		Command: "preset-delete",
		Results: fmt.Sprintf("deleted preset %s", id),
	})
}
