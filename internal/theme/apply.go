package theme

import (
	"log/slog"

	"github.com/jmylchreest/sitetheme/internal/style"
)

// Secondary colours used for light and dark backgrounds.
const (
	SecondaryOnLight = "#64748b"
	SecondaryOnDark  = "#94a3b8"
)

// Variables is the full set of values written for one theme.
type Variables struct {
	TextColor          string
	BackgroundColor    string
	AccentColor        string
	FontFamily         string
	BackgroundFallback string
	BorderColor        string
	TextFallback       string
	SecondaryColor     string
	AccentFallback     string
	LightBackground    bool
}

// Derive computes the display variables for t. It is pure; nothing it
// returns is ever persisted.
func Derive(t Theme) Variables {
	bg := t.BackgroundColor
	light := IsLightBackground(bg)

	v := Variables{
		TextColor:       t.TextColor,
		BackgroundColor: bg,
		AccentColor:     t.AccentColor,
		FontFamily:      FontFamily(t.Font),
		LightBackground: light,
	}

	if light {
		v.BackgroundFallback = AdjustBrightness(bg, -0.03)
		v.BorderColor = AdjustBrightness(bg, -0.1)
		v.TextFallback = AdjustBrightness(t.TextColor, 0.15)
		v.SecondaryColor = SecondaryOnLight
		v.AccentFallback = AdjustBrightness(t.AccentColor, -0.1)
	} else {
		v.BackgroundFallback = AdjustBrightness(bg, 0.15)
		v.BorderColor = AdjustBrightness(bg, 0.25)
		v.TextFallback = AdjustBrightness(t.TextColor, -0.1)
		v.SecondaryColor = SecondaryOnDark
		v.AccentFallback = AdjustBrightness(t.AccentColor, 0.1)
	}

	return v
}

// Properties returns the variables in the order they are written to a sink.
// Both the portfolio and the form page namespaces are included.
func (v Variables) Properties() []style.Property {
	return []style.Property{
		{Name: style.VarTextColor, Value: v.TextColor},
		{Name: style.VarBackgroundColor, Value: v.BackgroundColor},
		{Name: style.VarPrimaryColor, Value: v.AccentColor},
		{Name: style.VarFontFamily, Value: v.FontFamily},
		{Name: style.VarBackgroundFallback, Value: v.BackgroundFallback},
		{Name: style.VarBorderColor, Value: v.BorderColor},
		{Name: style.VarTextFallback, Value: v.TextFallback},
		{Name: style.VarSecondaryColor, Value: v.SecondaryColor},
		{Name: style.VarAccentColor, Value: v.AccentColor},
		{Name: style.VarPrimaryFallback, Value: v.AccentFallback},
		{Name: style.VarFormBackground, Value: v.BackgroundColor},
		{Name: style.VarContainerBg, Value: v.BackgroundFallback},
		{Name: style.VarFocusColor, Value: v.AccentColor},
	}
}

// Applier writes themes into a style sink.
type Applier struct {
	sink   style.Sink
	logger *slog.Logger
}

// NewApplier creates an Applier writing to sink.
func NewApplier(sink style.Sink, logger *slog.Logger) *Applier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Applier{sink: sink, logger: logger}
}

// Apply writes every variable for t to the sink, synchronously.
func (a *Applier) Apply(t Theme) {
	vars := Derive(t)
	if vars.FontFamily == "" {
		a.logger.Warn("theme uses unknown font key", "theme", t.DisplayName, "font", t.Font)
	}
	for _, p := range vars.Properties() {
		a.sink.SetProperty(p.Name, p.Value)
	}
	a.logger.Debug("applied theme", "name", t.DisplayName, "light_background", vars.LightBackground)
}
