// Package picker implements the theme picker: a modal with preset buttons,
// three colour fields, a font field and apply/reset buttons.
package picker

import (
	"log/slog"
	"slices"

	"github.com/jmylchreest/sitetheme/internal/store"
	"github.com/jmylchreest/sitetheme/internal/theme"
)

// State is the modal state.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Field is a form control holding a value.
type Field struct {
	Value string
}

// Controls describes which picker controls exist on the page.
// Every control is optional; a missing one disables only its own behaviour.
type Controls struct {
	ToggleButton    bool
	Modal           bool
	CloseButton     bool
	PresetButtons   []string // preset name carried by each button
	TextColor       *Field
	BackgroundColor *Field
	AccentColor     *Field
	Font            *Field
	ApplyButton     bool
	ResetButton     bool
}

// FullControls returns a control set with every control present and one
// preset button per catalog entry.
func FullControls(catalog *theme.Catalog) Controls {
	return Controls{
		ToggleButton:    true,
		Modal:           true,
		CloseButton:     true,
		PresetButtons:   catalog.Names(),
		TextColor:       &Field{},
		BackgroundColor: &Field{},
		AccentColor:     &Field{},
		Font:            &Field{},
		ApplyButton:     true,
		ResetButton:     true,
	}
}

// Controller drives the picker in response to discrete UI events.
type Controller struct {
	store    *store.ThemeStore
	applier  *theme.Applier
	controls Controls
	state    State
	logger   *slog.Logger
}

// New creates a Controller. The page theme must already have been applied.
func New(s *store.ThemeStore, applier *theme.Applier, controls Controls, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		store:    s,
		applier:  applier,
		controls: controls,
		logger:   logger,
	}
}

// State returns the modal state.
func (c *Controller) State() State {
	return c.state
}

// Controls returns the bound controls. Field pointers are shared, so callers
// can write field values before ApplyCustom.
func (c *Controller) Controls() Controls {
	return c.controls
}

// Open handles activation of the toggle button: it opens the modal and
// syncs the form with the active theme.
func (c *Controller) Open() error {
	if !c.controls.ToggleButton || !c.controls.Modal {
		return nil
	}
	c.state = Open
	return c.LoadSettings()
}

// Close handles the close button.
func (c *Controller) Close() {
	if !c.controls.CloseButton {
		return
	}
	c.close()
}

// ClickOutside handles a click on the modal backdrop.
func (c *Controller) ClickOutside() {
	c.close()
}

func (c *Controller) close() {
	if !c.controls.Modal {
		return
	}
	c.state = Closed
}

// SelectPreset handles a preset button. Names without a button are ignored.
func (c *Controller) SelectPreset(name string) error {
	if !slices.Contains(c.controls.PresetButtons, name) {
		c.logger.Debug("no preset button", "preset", name)
		return nil
	}

	c.applier.Apply(c.store.Catalog().Preset(name))
	if err := c.store.SavePreset(name); err != nil {
		return err
	}
	c.close()
	c.logger.Info("selected preset", "preset", name)
	return nil
}

// ApplyCustom builds a custom theme from the form fields, applies it and
// persists it. Each colour field may hold a symbolic name or a literal.
func (c *Controller) ApplyCustom() error {
	ctl := c.controls
	if !ctl.ApplyButton || ctl.TextColor == nil || ctl.BackgroundColor == nil ||
		ctl.AccentColor == nil || ctl.Font == nil {
		return nil
	}

	custom := theme.Theme{
		DisplayName:     theme.CustomThemeName,
		TextColor:       ColorValue(ctl.TextColor.Value),
		BackgroundColor: ColorValue(ctl.BackgroundColor.Value),
		AccentColor:     ColorValue(ctl.AccentColor.Value),
		Font:            theme.FontKey(ctl.Font.Value),
	}

	c.applier.Apply(custom)
	if err := c.store.SaveCustom(custom); err != nil {
		return err
	}
	c.close()
	c.logger.Info("applied custom theme",
		"text", custom.TextColor, "background", custom.BackgroundColor,
		"accent", custom.AccentColor, "font", custom.Font)
	return nil
}

// Reset re-selects the default preset and refreshes the form. The modal
// stays open.
func (c *Controller) Reset() error {
	if !c.controls.ResetButton {
		return nil
	}

	c.applier.Apply(c.store.Catalog().Preset(theme.DefaultPreset))
	if err := c.store.SavePreset(theme.DefaultPreset); err != nil {
		return err
	}
	c.logger.Info("reset theme", "preset", theme.DefaultPreset)
	return c.LoadSettings()
}

// LoadSettings fills the form fields from the active theme. Colours are shown
// by symbolic name, see ColorName.
func (c *Controller) LoadSettings() error {
	t, err := c.store.Load()
	if err != nil {
		return err
	}

	ctl := c.controls
	if ctl.TextColor != nil {
		ctl.TextColor.Value = ColorName(t.TextColor)
	}
	if ctl.BackgroundColor != nil {
		ctl.BackgroundColor.Value = ColorName(t.BackgroundColor)
	}
	if ctl.AccentColor != nil {
		ctl.AccentColor.Value = ColorName(t.AccentColor)
	}
	if ctl.Font != nil {
		ctl.Font.Value = string(t.Font)
	}
	return nil
}
