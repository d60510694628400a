package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sitetheme/internal/output"
	"github.com/jmylchreest/sitetheme/internal/store"
)

var cssOpts struct {
	out      string
	selector string
	all      bool
	watch    bool
}

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Write the active theme as CSS custom properties",
	Long: `Write the active theme as a block of CSS custom properties, including
the derived fallback, border and secondary colours and the variables used
by form pages.

With --watch the stylesheet is rewritten whenever the storage document
changes, until interrupted.

Examples:
  # Print to stdout
  sitetheme css

  # Keep public/theme.css in sync with the saved selection
  sitetheme css --out public/theme.css --watch

  # Every preset, scoped by [data-preset="..."]
  sitetheme css --all`,
	Args: cobra.NoArgs,
	RunE: runCSS,
}

func init() {
	rootCmd.AddCommand(cssCmd)

	cssCmd.Flags().StringVarP(&cssOpts.out, "out", "o", "",
		"Output file (default: [css] output from config, else stdout)")
	cssCmd.Flags().StringVar(&cssOpts.selector, "selector", "",
		"Selector for the rule (default: [css] selector from config)")
	cssCmd.Flags().BoolVar(&cssOpts.all, "all", false,
		"Write a block for every preset")
	cssCmd.Flags().BoolVarP(&cssOpts.watch, "watch", "w", false,
		"Rewrite when the storage document changes")
}

func runCSS(cmd *cobra.Command, args []string) error {
	out := cssOpts.out
	if out == "" {
		out = cfg.CSS.Output
	}
	if cssOpts.watch && out == "" {
		return fmt.Errorf("--watch needs an output file (--out or [css] output)")
	}

	if err := writeCSS(out); err != nil {
		return err
	}
	if !cssOpts.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchCSS(ctx, out, cfg.CSS.WatchDebounce.Duration())
}

// renderCSS renders the stylesheet for the stored selection.
func renderCSS(w io.Writer) error {
	opts := output.DefaultFormatterOptions()
	opts.Selector = cfg.CSS.Selector
	if cssOpts.selector != "" {
		opts.Selector = cssOpts.selector
	}
	formatter := output.NewCSSFormatter(opts)

	themes := store.NewThemeStore(storage, nil)
	if cssOpts.all {
		sel, err := themes.Selection()
		if err != nil {
			logger.Warn("failed to read selection", "error", err)
		}
		catalog := themes.Catalog()
		var entries []output.Entry
		for _, name := range catalog.Names() {
			entries = append(entries, output.Entry{
				ID:     name,
				Theme:  catalog.Preset(name),
				Active: !sel.IsCustom() && sel.Preset == name,
			})
		}
		return formatter.FormatPresets(w, entries)
	}

	active, err := themes.Load()
	if err != nil {
		return err
	}
	return formatter.FormatTheme(w, active)
}

// writeCSS renders to path, or stdout when path is empty. Files are
// replaced atomically.
func writeCSS(path string) error {
	if path == "" {
		return renderCSS(os.Stdout)
	}

	var buf bytes.Buffer
	if err := renderCSS(&buf); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	logger.Debug("wrote stylesheet", "path", path, "revision", storage.Revision())
	return nil
}

// watchCSS rewrites path after each storage change, waiting for the
// debounce interval so a burst of writes produces one rewrite.
func watchCSS(ctx context.Context, path string, debounce time.Duration) error {
	changed := make(chan struct{}, 1)
	watcher, err := store.NewWatcher(storage, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, logger)
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	defer func() { _ = watcher.Stop() }()

	fmt.Fprintf(os.Stderr, "Watching %s, writing %s\n", storage.Path(), path)

	var timer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
			timer = time.After(debounce)
		case <-timer:
			timer = nil
			if err := writeCSS(path); err != nil {
				logger.Warn("failed to write stylesheet", "path", path, "error", err)
			}
		}
	}
}
