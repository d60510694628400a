package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sitetheme/internal/picker"
	"github.com/jmylchreest/sitetheme/internal/theme"
)

var customOpts struct {
	text   string
	bg     string
	accent string
	font   string
}

var customCmd = &cobra.Command{
	Use:   "custom",
	Short: "Save a custom theme",
	Long: `Save a custom theme built from colour names or literal colours. Fields
that are not given keep their current value. Any selected preset is
cleared.

Colour names:
  ` + colorNames() + `

Fonts: system, serif, mono

Examples:
  # Dark blue text on white with an orange accent
  sitetheme custom --text very-dark --bg white --accent orange

  # Literal colours and a monospace font
  sitetheme custom --text '#222222' --bg '#fafafa' --font mono`,
	Args: cobra.NoArgs,
	RunE: runCustom,
}

func init() {
	rootCmd.AddCommand(customCmd)

	customCmd.Flags().StringVar(&customOpts.text, "text", "",
		"Text colour (name or #rrggbb)")
	customCmd.Flags().StringVar(&customOpts.bg, "bg", "",
		"Background colour (name or #rrggbb)")
	customCmd.Flags().StringVar(&customOpts.accent, "accent", "",
		"Accent colour (name or #rrggbb)")
	customCmd.Flags().StringVar(&customOpts.font, "font", "",
		"Font (system, serif, mono)")
}

func runCustom(cmd *cobra.Command, args []string) error {
	if customOpts.font != "" && !theme.IsFontKey(theme.FontKey(customOpts.font)) {
		return fmt.Errorf("unknown font %q (use system, serif or mono)", customOpts.font)
	}

	p, err := loadPage()
	if err != nil {
		return fmt.Errorf("%w (run 'sitetheme reset' to repair)", err)
	}

	// Start from the active theme's literal values. The picker's own
	// LoadSettings shows names and would turn unnamed colours into "medium".
	current := p.Theme
	ctl := p.Picker.Controls()
	set := func(f *picker.Field, current, flag string) {
		f.Value = current
		if flag != "" {
			f.Value = flag
		}
	}
	set(ctl.TextColor, current.TextColor, customOpts.text)
	set(ctl.BackgroundColor, current.BackgroundColor, customOpts.bg)
	set(ctl.AccentColor, current.AccentColor, customOpts.accent)
	set(ctl.Font, string(current.Font), customOpts.font)

	if err := p.Picker.ApplyCustom(); err != nil {
		return err
	}

	active, err := p.Store.Load()
	if err != nil {
		return err
	}
	fmt.Printf("Saved custom theme: text=%s bg=%s accent=%s font=%s\n",
		active.TextColor, active.BackgroundColor, active.AccentColor, active.Font)
	return nil
}

func colorNames() string {
	names := make([]string, len(picker.Colors))
	for i, c := range picker.Colors {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}
