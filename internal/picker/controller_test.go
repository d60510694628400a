package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/sitetheme/internal/store"
	"github.com/jmylchreest/sitetheme/internal/style"
	"github.com/jmylchreest/sitetheme/internal/theme"
)

type fixture struct {
	storage *store.MemoryStorage
	sink    *style.MemorySink
	ctrl    *Controller
}

func newFixture(t *testing.T, items map[string]string, controls func(*Controls)) fixture {
	t.Helper()

	storage := store.NewMemoryStorage(items)
	s := store.NewThemeStore(storage, nil)
	sink := style.NewMemorySink()
	ctl := FullControls(s.Catalog())
	if controls != nil {
		controls(&ctl)
	}
	return fixture{
		storage: storage,
		sink:    sink,
		ctrl:    New(s, theme.NewApplier(sink, nil), ctl, nil),
	}
}

func (f fixture) variable(name string) string {
	v, _ := f.sink.Get(name)
	return v
}

func TestController_OpenSyncsFields(t *testing.T) {
	f := newFixture(t, map[string]string{store.KeyPreset: "ocean"}, nil)

	require.NoError(t, f.ctrl.Open())
	assert.Equal(t, Open, f.ctrl.State())

	ctl := f.ctrl.Controls()
	assert.Equal(t, "deep-sky", ctl.TextColor.Value)
	assert.Equal(t, "light-sky", ctl.BackgroundColor.Value)
	assert.Equal(t, "sky", ctl.AccentColor.Value)
	assert.Equal(t, "system", ctl.Font.Value)
}

func TestController_CloseTransitions(t *testing.T) {
	f := newFixture(t, nil, nil)

	require.NoError(t, f.ctrl.Open())
	f.ctrl.Close()
	assert.Equal(t, Closed, f.ctrl.State())

	require.NoError(t, f.ctrl.Open())
	f.ctrl.ClickOutside()
	assert.Equal(t, Closed, f.ctrl.State())
}

func TestController_SelectPreset(t *testing.T) {
	f := newFixture(t, nil, nil)
	require.NoError(t, store.NewThemeStore(f.storage, nil).SaveCustom(theme.Theme{
		DisplayName:     theme.CustomThemeName,
		TextColor:       "#000000",
		BackgroundColor: "#ffffff",
		AccentColor:     "#ff0000",
		Font:            theme.FontMono,
	}))

	require.NoError(t, f.ctrl.Open())
	require.NoError(t, f.ctrl.SelectPreset("forest"))

	assert.Equal(t, Closed, f.ctrl.State())
	assert.Equal(t, "#f0fdf4", f.variable(style.VarBackgroundColor))

	preset, ok := f.storage.Get(store.KeyPreset)
	assert.True(t, ok)
	assert.Equal(t, "forest", preset)
	_, ok = f.storage.Get(store.KeyCustom)
	assert.False(t, ok)
}

func TestController_SelectPresetWithoutButtonIsIgnored(t *testing.T) {
	f := newFixture(t, nil, func(c *Controls) { c.PresetButtons = []string{"light", "dark"} })

	require.NoError(t, f.ctrl.SelectPreset("sunset"))
	assert.Zero(t, f.sink.Writes())
	_, ok := f.storage.Get(store.KeyPreset)
	assert.False(t, ok)
}

func TestController_ApplyCustomResolvesSymbolicNames(t *testing.T) {
	f := newFixture(t, map[string]string{store.KeyPreset: "dark"}, nil)
	require.NoError(t, f.ctrl.Open())

	ctl := f.ctrl.Controls()
	ctl.TextColor.Value = "amber"
	ctl.BackgroundColor.Value = "light-orange"
	ctl.AccentColor.Value = "#abcdef"
	ctl.Font.Value = "mono"

	require.NoError(t, f.ctrl.ApplyCustom())
	assert.Equal(t, Closed, f.ctrl.State())

	assert.Equal(t, "#431407", f.variable(style.VarTextColor))
	assert.Equal(t, "#fff7ed", f.variable(style.VarBackgroundColor))
	assert.Equal(t, "#abcdef", f.variable(style.VarAccentColor))
	assert.Equal(t, theme.FontFamily(theme.FontMono), f.variable(style.VarFontFamily))

	_, ok := f.storage.Get(store.KeyPreset)
	assert.False(t, ok)

	got, err := store.NewThemeStore(f.storage, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, theme.Theme{
		DisplayName:     theme.CustomThemeName,
		TextColor:       "#431407",
		BackgroundColor: "#fff7ed",
		AccentColor:     "#abcdef",
		Font:            theme.FontMono,
	}, got)
}

func TestController_ReopenShowsLiteralAsMedium(t *testing.T) {
	f := newFixture(t, nil, nil)
	require.NoError(t, f.ctrl.Open())

	ctl := f.ctrl.Controls()
	ctl.TextColor.Value = "dark"
	ctl.BackgroundColor.Value = "white"
	ctl.AccentColor.Value = "#abcdef"
	ctl.Font.Value = "serif"
	require.NoError(t, f.ctrl.ApplyCustom())

	require.NoError(t, f.ctrl.Open())
	assert.Equal(t, "dark", ctl.TextColor.Value)
	assert.Equal(t, "white", ctl.BackgroundColor.Value)
	assert.Equal(t, DefaultColorName, ctl.AccentColor.Value)
	assert.Equal(t, "serif", ctl.Font.Value)
}

func TestController_ResetAlwaysSelectsLight(t *testing.T) {
	starts := map[string]map[string]string{
		"empty":  nil,
		"preset": {store.KeyPreset: "sunset"},
		"custom": {store.KeyCustom: `{"name":"Custom","textColor":"#000000","bgColor":"#123456","accentColor":"#ff0000","font":"mono"}`},
		"broken": {store.KeyCustom: `{oops`},
	}

	for name, items := range starts {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, items, nil)
			f.ctrl.state = Open

			require.NoError(t, f.ctrl.Reset())

			assert.Equal(t, Open, f.ctrl.State(), "reset keeps the modal open")
			preset, ok := f.storage.Get(store.KeyPreset)
			assert.True(t, ok)
			assert.Equal(t, "light", preset)
			_, ok = f.storage.Get(store.KeyCustom)
			assert.False(t, ok)

			assert.Equal(t, "#ffffff", f.variable(style.VarBackgroundColor))
			ctl := f.ctrl.Controls()
			assert.Equal(t, "dark", ctl.TextColor.Value)
			assert.Equal(t, "white", ctl.BackgroundColor.Value)
			assert.Equal(t, "blue", ctl.AccentColor.Value)
		})
	}
}

func TestController_PresetRoundTripThroughFields(t *testing.T) {
	for _, name := range theme.BundledPresets {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, nil, nil)
			require.NoError(t, f.ctrl.SelectPreset(name))
			require.NoError(t, f.ctrl.Open())

			p := theme.Default().Preset(name)
			ctl := f.ctrl.Controls()
			assert.Equal(t, p.TextColor, ColorValue(ctl.TextColor.Value))
			assert.Equal(t, p.BackgroundColor, ColorValue(ctl.BackgroundColor.Value))
			assert.Equal(t, p.AccentColor, ColorValue(ctl.AccentColor.Value))
		})
	}
}

func TestController_MissingControlsAreNoOps(t *testing.T) {
	f := newFixture(t, nil, func(c *Controls) { *c = Controls{} })

	require.NoError(t, f.ctrl.Open())
	assert.Equal(t, Closed, f.ctrl.State())

	f.ctrl.Close()
	f.ctrl.ClickOutside()
	require.NoError(t, f.ctrl.SelectPreset("dark"))
	require.NoError(t, f.ctrl.ApplyCustom())
	require.NoError(t, f.ctrl.Reset())

	assert.Zero(t, f.sink.Writes())
	assert.Empty(t, f.storage.Items())
}

func TestController_ApplyNeedsEveryField(t *testing.T) {
	f := newFixture(t, nil, func(c *Controls) { c.Font = nil })

	require.NoError(t, f.ctrl.ApplyCustom())
	assert.Zero(t, f.sink.Writes())
}

func TestController_CloseButtonMissingStillClosesOnBackdrop(t *testing.T) {
	f := newFixture(t, nil, func(c *Controls) { c.CloseButton = false })

	require.NoError(t, f.ctrl.Open())
	f.ctrl.Close()
	assert.Equal(t, Open, f.ctrl.State())
	f.ctrl.ClickOutside()
	assert.Equal(t, Closed, f.ctrl.State())
}

func TestController_OpenReportsMalformedCustom(t *testing.T) {
	f := newFixture(t, map[string]string{store.KeyCustom: `[]`}, nil)

	err := f.ctrl.Open()
	assert.ErrorIs(t, err, store.ErrMalformedCustomTheme)
}
