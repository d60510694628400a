package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sitetheme/internal/output"
	"github.com/jmylchreest/sitetheme/internal/store"
)

var presetsOpts struct {
	format   string
	template string
	noIndex  bool
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the bundled theme presets",
	Long: `List the bundled theme presets. The active preset is marked with '*'.

Examples:
  # List presets
  sitetheme presets

  # Output as YAML
  sitetheme presets --format yaml

  # One stylesheet with a block per preset
  sitetheme presets --format css

  # Custom template
  sitetheme presets --template '{{.Entry.ID}} {{.Entry.Theme.BackgroundColor}}'`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)

	presetsCmd.Flags().StringVarP(&presetsOpts.format, "format", "f", "plain",
		"Output format (plain, json, yaml, css)")
	presetsCmd.Flags().StringVar(&presetsOpts.template, "template", "",
		"Custom Go template for plain output")
	presetsCmd.Flags().BoolVar(&presetsOpts.noIndex, "no-index", false,
		"Omit the index prefix in plain output")
}

func runPresets(cmd *cobra.Command, args []string) error {
	themes := store.NewThemeStore(storage, nil)

	// A malformed custom theme still lets the catalog be listed
	sel, err := themes.Selection()
	if err != nil {
		logger.Warn("failed to read selection", "error", err)
	}

	catalog := themes.Catalog()
	entries := make([]output.Entry, 0, len(catalog.Names()))
	for _, name := range catalog.Names() {
		entries = append(entries, output.Entry{
			ID:     name,
			Theme:  catalog.Preset(name),
			Active: !sel.IsCustom() && sel.Preset == name,
		})
	}

	opts := output.DefaultFormatterOptions()
	opts.Template = presetsOpts.template
	opts.ShowIndex = !presetsOpts.noIndex
	opts.Selector = cfg.CSS.Selector

	formatter, err := newFormatter(presetsOpts.format, opts)
	if err != nil {
		return err
	}
	return formatter.FormatPresets(os.Stdout, entries)
}

// newFormatter validates a --format value.
func newFormatter(format string, opts output.FormatterOptions) (output.Formatter, error) {
	for _, f := range output.FormatTypes {
		if string(f) == format {
			return output.NewFormatter(f, opts), nil
		}
	}
	return nil, fmt.Errorf("unknown format %q (use plain, json, yaml or css)", format)
}
