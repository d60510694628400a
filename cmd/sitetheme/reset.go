package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sitetheme/internal/store"
	"github.com/jmylchreest/sitetheme/internal/theme"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Return to the default preset",
	Long: `Select the default preset and remove any custom theme. This also repairs
a storage document holding a custom theme that can't be read.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	// Written directly so a malformed custom theme never blocks the reset
	if err := store.NewThemeStore(storage, nil).SavePreset(theme.DefaultPreset); err != nil {
		return err
	}
	fmt.Printf("Reset to preset %s\n", theme.DefaultPreset)
	return nil
}

// themeCatalog returns the catalog commands resolve presets against.
func themeCatalog() *theme.Catalog {
	return theme.Default()
}
