// Package main provides the CLI entrypoint for sitetheme.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sitetheme/internal/config"
	"github.com/jmylchreest/sitetheme/internal/page"
	"github.com/jmylchreest/sitetheme/internal/store"
	"github.com/jmylchreest/sitetheme/internal/style"
	"github.com/jmylchreest/sitetheme/internal/toggle"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose     bool
		storagePath string
		configPath  string
	}
	logger *slog.Logger

	// storage is the persisted key/value document shared by all commands
	storage *store.FileStorage
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sitetheme",
	Short: "Theme manager for a static site",
	Long: `sitetheme manages the colour theme of a static site.

It keeps the visitor-facing selection (a named preset or a custom theme,
and the light/dark mode) in a storage document, derives the full set of
CSS custom properties from it, and checks which links on a page would be
animated with view transitions.

Running sitetheme without a subcommand launches the interactive picker.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logging
		setupLogger()

		// Load configuration
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Storage path: flag, then config, then the data directory
		path := globalOpts.storagePath
		if path == "" {
			if cfg.Storage.Path == "" {
				if err := config.EnsureDataDir(); err != nil {
					return fmt.Errorf("failed to create data directory: %w", err)
				}
			}
			path = cfg.StoragePath()
		}

		storage, err = store.OpenFileStorage(path)
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		logger.Debug("opened storage", "path", path, "revision", storage.Revision())

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if storage != nil {
			return storage.Close()
		}
		return nil
	},
	// Default to the picker when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPick(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.storagePath, "storage", "",
		"Path to storage document (default: ~/.local/share/sitetheme/storage.json)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/sitetheme/config.toml)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// loadedPage is a page loaded against the global storage with in-memory
// surfaces.
type loadedPage struct {
	*page.Page
	sink   *style.MemorySink
	button *toggle.MemoryButton
}

// loadPage resolves and applies the stored theme. When only the theme
// fails, the page is returned together with the error.
func loadPage() (*loadedPage, error) {
	lp := &loadedPage{
		sink:   style.NewMemorySink(),
		button: &toggle.MemoryButton{},
	}
	p, err := page.Load(page.Options{
		Storage:         storage,
		Sink:            lp.sink,
		Logger:          logger,
		ToggleButton:    lp.button,
		ToggleAttribute: cfg.Toggle.Attribute,
		Host:            cfg.Transition.Host,
	})
	if p == nil {
		return nil, err
	}
	lp.Page = p
	return lp, err
}
