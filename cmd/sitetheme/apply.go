package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <preset|index>",
	Short: "Select a bundled preset",
	Long: `Select a bundled preset as the active theme. Any saved custom theme is
removed. The preset may be given by name or by its 1-based index in
'sitetheme presets'.

Examples:
  sitetheme apply ocean
  sitetheme apply 2`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return themeCatalog().Names(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	name, err := resolvePreset(args[0])
	if err != nil {
		return err
	}

	p, err := loadPage()
	if err != nil {
		return fmt.Errorf("%w (run 'sitetheme reset' to repair)", err)
	}
	if err := p.Picker.SelectPreset(name); err != nil {
		return err
	}

	fmt.Printf("Selected preset %s\n", name)
	return nil
}

// resolvePreset maps a preset name or 1-based index to a catalog name.
func resolvePreset(arg string) (string, error) {
	catalog := themeCatalog()
	if catalog.Has(arg) {
		return arg, nil
	}
	// Try as index
	if idx, err := strconv.Atoi(arg); err == nil {
		names := catalog.Names()
		if idx < 1 || idx > len(names) {
			return "", fmt.Errorf("preset index %d out of range (1-%d)", idx, len(names))
		}
		return names[idx-1], nil
	}
	return "", fmt.Errorf("unknown preset %q (see 'sitetheme presets')", arg)
}
