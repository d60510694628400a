package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jmylchreest/sitetheme/internal/config"
	"github.com/jmylchreest/sitetheme/internal/page"
	"github.com/jmylchreest/sitetheme/internal/store"
	"github.com/jmylchreest/sitetheme/internal/style"
	"github.com/jmylchreest/sitetheme/internal/toggle"
)

// RunOptions configures the TUI.
type RunOptions struct {
	Config  *config.Config
	Page    *page.Page
	Sink    *style.MemorySink
	Button  *toggle.MemoryButton
	Storage *store.FileStorage // Storage to watch for changes (nil = no watching)
	Logger  *slog.Logger
}

// Run starts the TUI with the given options.
func Run(opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := New(opts.Page, Options{
		Sink:        opts.Sink,
		Button:      opts.Button,
		ShowHelp:    cfg.TUI.ShowHelp,
		ShowPreview: cfg.TUI.ShowPreview,
		Logger:      logger,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Start file watcher if storage provided
	if opts.Storage != nil {
		watcher, err := store.NewWatcher(opts.Storage, func() { p.Send(ReloadMsg{}) }, logger)
		if err != nil {
			logger.Warn("failed to create storage watcher", "error", err)
		} else if err := watcher.Start(); err != nil {
			logger.Warn("failed to start storage watcher", "error", err)
		} else {
			defer func() { _ = watcher.Stop() }()
		}
	}

	_, err := p.Run()
	return err
}
