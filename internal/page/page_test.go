package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/sitetheme/internal/picker"
	"github.com/jmylchreest/sitetheme/internal/store"
	"github.com/jmylchreest/sitetheme/internal/style"
	"github.com/jmylchreest/sitetheme/internal/toggle"
)

func TestLoad_AppliesActiveTheme(t *testing.T) {
	storage := store.NewMemoryStorage(map[string]string{
		store.KeyPreset:   "dark",
		toggle.StorageKey: "dark",
	})
	sink := style.NewMemorySink()

	p, err := Load(Options{Storage: storage, Sink: sink, Host: "example.com"})
	require.NoError(t, err)

	assert.Equal(t, "Dark", p.Theme.DisplayName)
	bg, _ := sink.Get(style.VarBackgroundColor)
	assert.Equal(t, "#0f172a", bg)
	assert.Equal(t, toggle.Dark, p.Mode)
	assert.Equal(t, picker.Closed, p.Picker.State())
	assert.Equal(t, "plain", p.Navigation.Name())
}

func TestLoad_ThemeRenderedBeforeControlsWired(t *testing.T) {
	sink := style.NewMemorySink()
	p, err := Load(Options{Storage: store.NewMemoryStorage(nil), Sink: sink})
	require.NoError(t, err)

	// All variables are present as soon as Load returns, before any event.
	assert.Len(t, sink.Properties(), 13)
	assert.Equal(t, 13, sink.Writes())

	require.NoError(t, p.Picker.Open())
	assert.Equal(t, 13, sink.Writes(), "opening the picker does not re-apply")
}

func TestLoad_PickerAndToggleShareStorage(t *testing.T) {
	storage := store.NewMemoryStorage(nil)
	sink := style.NewMemorySink()
	p, err := Load(Options{Storage: storage, Sink: sink})
	require.NoError(t, err)

	require.NoError(t, p.Picker.SelectPreset("sunset"))
	_, err = p.Toggle.Toggle()
	require.NoError(t, err)

	preset, _ := storage.Get(store.KeyPreset)
	mode, _ := storage.Get(toggle.StorageKey)
	assert.Equal(t, "sunset", preset)
	assert.Equal(t, "dark", mode)

	bg, _ := sink.Get(style.VarBackgroundColor)
	assert.Equal(t, "#fff7ed", bg, "toggle does not touch colour variables")
}

func TestLoad_MalformedCustomFails(t *testing.T) {
	storage := store.NewMemoryStorage(map[string]string{store.KeyCustom: "nope"})
	p, err := Load(Options{Storage: storage, Sink: style.NewMemorySink()})
	assert.ErrorIs(t, err, store.ErrMalformedCustomTheme)
	require.NotNil(t, p)
	assert.ErrorIs(t, p.ThemeErr, store.ErrMalformedCustomTheme)
	assert.Nil(t, p.Picker)
}

func TestLoad_MalformedCustomKeepsToggleAndNavigation(t *testing.T) {
	storage := store.NewMemoryStorage(map[string]string{
		store.KeyCustom:   "{bad",
		toggle.StorageKey: "dark",
	})
	doc := toggle.NewMemoryDocument()
	button := &toggle.MemoryButton{}

	p, err := Load(Options{
		Storage:      storage,
		Sink:         style.NewMemorySink(),
		Document:     doc,
		ToggleButton: button,
		Transitioner: transitionFunc(func(update func() error) error { return update() }),
		Host:         "example.com",
	})
	require.Error(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "dark", doc.Attribute(toggle.DefaultAttribute))
	assert.Equal(t, toggle.Dark, p.Mode)
	assert.Equal(t, "☀️ Light", button.Text)
	assert.Equal(t, "view-transition", p.Navigation.Name())

	mode, err := p.Toggle.Toggle()
	require.NoError(t, err)
	assert.Equal(t, toggle.Light, mode)
}

func TestPage_RetryThemeWiresPicker(t *testing.T) {
	storage := store.NewMemoryStorage(map[string]string{store.KeyCustom: "{bad"})
	sink := style.NewMemorySink()
	p, err := Load(Options{Storage: storage, Sink: sink})
	require.Error(t, err)
	assert.Empty(t, sink.Properties())

	require.NoError(t, storage.Remove(store.KeyCustom))
	require.NoError(t, p.RetryTheme())

	assert.NoError(t, p.ThemeErr)
	require.NotNil(t, p.Picker)
	assert.Equal(t, "Light", p.Theme.DisplayName)
	assert.Len(t, sink.Properties(), 13)
}

type transitionFunc func(update func() error) error

func (f transitionFunc) StartViewTransition(update func() error) error {
	return f(update)
}

func TestLoad_CustomControls(t *testing.T) {
	controls := &picker.Controls{Modal: true}
	p, err := Load(Options{
		Storage:  store.NewMemoryStorage(nil),
		Sink:     style.NewMemorySink(),
		Controls: controls,
	})
	require.NoError(t, err)

	require.NoError(t, p.Picker.Open())
	assert.Equal(t, picker.Closed, p.Picker.State(), "no toggle button, nothing opens")
}
