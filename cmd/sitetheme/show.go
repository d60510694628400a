package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/sitetheme/internal/output"
	"github.com/jmylchreest/sitetheme/internal/store"
)

var showOpts struct {
	format string
	field  string
	noVars bool
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active theme and its derived variables",
	Long: `Show the active theme: the custom theme if one is saved, otherwise the
selected preset, otherwise the default preset.

Examples:
  # Theme fields and every derived variable
  sitetheme show

  # Only the background colour
  sitetheme show --field bg

  # As JSON
  sitetheme show --format json`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&showOpts.format, "format", "f", "plain",
		"Output format (plain, json, yaml, css)")
	showCmd.Flags().StringVar(&showOpts.field, "field", "",
		"Output a single field (name, text, bg, accent, font, family)")
	showCmd.Flags().BoolVar(&showOpts.noVars, "no-vars", false,
		"Omit derived variables")
}

func runShow(cmd *cobra.Command, args []string) error {
	themes := store.NewThemeStore(storage, nil)
	sel, err := themes.Selection()
	if err != nil {
		return fmt.Errorf("%w (run 'sitetheme reset' to repair)", err)
	}
	active, err := themes.Load()
	if err != nil {
		return err
	}

	if showOpts.field != "" {
		fmt.Println(output.FormatField(active, showOpts.field))
		return nil
	}

	opts := output.DefaultFormatterOptions()
	opts.ShowVars = !showOpts.noVars
	opts.Selector = cfg.CSS.Selector

	formatter, err := newFormatter(showOpts.format, opts)
	if err != nil {
		return err
	}
	if err := formatter.FormatTheme(os.Stdout, active); err != nil {
		return err
	}

	if showOpts.format == string(output.FormatPlain) {
		source := "preset " + sel.Preset
		if sel.IsCustom() {
			source = "custom theme"
		}
		saved := "never saved"
		if updated := storage.UpdatedAt(); !updated.IsZero() {
			saved = "saved " + humanize.Time(updated)
		}
		fmt.Printf("\n%s, %s (%s)\n", source, saved, storage.Path())
	}
	return nil
}
