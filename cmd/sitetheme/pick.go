package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/sitetheme/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Launch the interactive theme picker",
	Long: `Launch the interactive theme picker with a live preview of the active
theme.

The picker follows the site's theme modal: choose a preset, or build a
custom theme from colour names or literal colours and a font. Changes
made by other processes are picked up while it runs.

Key bindings:
  o, enter     Open the picker
  tab          Next field
  ↑/↓          Choose a preset
  ←/→          Choose a font
  enter        Select preset / apply custom theme
  ctrl+r       Reset to the default preset
  t            Toggle light/dark mode
  esc          Close the picker
  ?            Show help
  q            Quit`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	p, err := loadPage()
	if p == nil {
		return err
	}
	if err != nil {
		// The picker starts without the theme modal; ctrl+r repairs it
		logger.Warn("starting without theme picker", "error", err)
	}

	return tui.Run(tui.RunOptions{
		Config:  cfg,
		Page:    p.Page,
		Sink:    p.sink,
		Button:  p.button,
		Storage: storage,
		Logger:  logger,
	})
}
