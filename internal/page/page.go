// Package page wires the theming features together in page-load order.
package page

import (
	"fmt"
	"log/slog"

	"github.com/jmylchreest/sitetheme/internal/picker"
	"github.com/jmylchreest/sitetheme/internal/store"
	"github.com/jmylchreest/sitetheme/internal/style"
	"github.com/jmylchreest/sitetheme/internal/theme"
	"github.com/jmylchreest/sitetheme/internal/toggle"
	"github.com/jmylchreest/sitetheme/internal/transition"
)

// Options configures Load.
type Options struct {
	Storage store.Storage
	Catalog *theme.Catalog // nil = bundled catalog
	Sink    style.Sink
	Logger  *slog.Logger

	// Picker controls. A nil value binds every control.
	Controls *picker.Controls

	// Toggle document and button. Document nil = in-memory document.
	Document        toggle.Document
	ToggleButton    toggle.Button
	ToggleAttribute string

	// Navigation. Transitioner nil = capability absent.
	Transitioner transition.Transitioner
	Navigator    transition.Navigator
	Host         string
}

// Page holds the wired features of one loaded page.
type Page struct {
	Theme      theme.Theme
	Store      *store.ThemeStore
	Applier    *theme.Applier
	Picker     *picker.Controller // nil while ThemeErr is set
	Toggle     *toggle.Controller
	Mode       toggle.Mode
	Navigation transition.Strategy

	// ThemeErr is the error from resolving the stored theme, if any.
	ThemeErr error

	controls picker.Controls
	logger   *slog.Logger
}

// Load resolves and applies the active theme, then wires the controls.
// The theme is rendered before any control exists.
//
// The toggle and navigation do not depend on the theme. When the stored
// theme can't be resolved they are still wired and the returned Page is
// usable without a picker; the error is returned and kept in ThemeErr.
func Load(opts Options) (*Page, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	themes := store.NewThemeStore(opts.Storage, opts.Catalog)
	p := &Page{
		Store:    themes,
		Applier:  theme.NewApplier(opts.Sink, logger),
		controls: picker.FullControls(themes.Catalog()),
		logger:   logger,
	}
	if opts.Controls != nil {
		p.controls = *opts.Controls
	}

	themeErr := p.RetryTheme()

	doc := opts.Document
	if doc == nil {
		doc = toggle.NewMemoryDocument()
	}
	p.Toggle = toggle.New(opts.Storage, doc, opts.ToggleButton, logger, toggle.WithAttribute(opts.ToggleAttribute))
	p.Mode = p.Toggle.Load()

	nav := opts.Navigator
	if nav == nil {
		nav = transition.NavigatorFunc(func(string) error { return nil })
	}
	p.Navigation = transition.Select(opts.Transitioner, nav, opts.Host, logger)

	return p, themeErr
}

// RetryTheme resolves and applies the stored theme, wiring the picker the
// first time it succeeds. It clears ThemeErr on success.
func (p *Page) RetryTheme() error {
	active, err := p.Store.Load()
	if err != nil {
		p.ThemeErr = fmt.Errorf("failed to load active theme: %w", err)
		p.logger.Warn("theme unavailable, picker disabled", "error", err)
		return p.ThemeErr
	}

	p.Applier.Apply(active)
	p.Theme = active
	p.ThemeErr = nil
	if p.Picker == nil {
		p.Picker = picker.New(p.Store, p.Applier, p.controls, p.logger)
	}
	return nil
}
