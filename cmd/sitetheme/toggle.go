package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sitetheme/internal/toggle"
)

var toggleOpts struct {
	status bool
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip between light and dark mode",
	Long: `Flip the stored light/dark mode, as the page's mode button does. The
mode is kept apart from the theme selection.

Examples:
  # Flip the mode
  sitetheme toggle

  # Print the current mode without changing it
  sitetheme toggle --status`,
	Args: cobra.NoArgs,
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)

	toggleCmd.Flags().BoolVar(&toggleOpts.status, "status", false,
		"Print the current mode without changing it")
}

func runToggle(cmd *cobra.Command, args []string) error {
	doc := toggle.NewMemoryDocument()
	button := &toggle.MemoryButton{}
	tc := toggle.New(storage, doc, button, logger, toggle.WithAttribute(cfg.Toggle.Attribute))

	mode := tc.Load()
	if !toggleOpts.status {
		var err error
		if mode, err = tc.Toggle(); err != nil {
			return err
		}
	}

	fmt.Printf("%s=%q\n", cfg.Toggle.Attribute, mode)
	fmt.Printf("button: %s (%s)\n", button.Text, button.Attrs["aria-label"])
	return nil
}
