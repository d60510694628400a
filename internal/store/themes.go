package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmylchreest/sitetheme/internal/theme"
)

// Storage keys used by ThemeStore.
const (
	KeyPreset = "theme"
	KeyCustom = "customTheme"
)

// ErrMalformedCustomTheme is returned by Load when the persisted custom theme
// cannot be decoded. It is not recovered from: the caller decides whether to
// report it or reset the selection.
var ErrMalformedCustomTheme = errors.New("malformed custom theme")

// Selection is the persisted choice: a preset name or a custom theme.
// Exactly one of the two is set.
type Selection struct {
	Preset string
	Custom *theme.Theme
}

// IsCustom reports whether the selection is a custom theme.
func (s Selection) IsCustom() bool {
	return s.Custom != nil
}

// ThemeStore reads and writes the active theme selection.
type ThemeStore struct {
	storage Storage
	catalog *theme.Catalog
}

// NewThemeStore creates a ThemeStore. A nil catalog uses the bundled one.
func NewThemeStore(storage Storage, catalog *theme.Catalog) *ThemeStore {
	if catalog == nil {
		catalog = theme.Default()
	}
	return &ThemeStore{storage: storage, catalog: catalog}
}

// Catalog returns the preset catalog presets are resolved against.
func (s *ThemeStore) Catalog() *theme.Catalog {
	return s.catalog
}

// Selection returns the persisted selection. A persisted custom theme takes
// precedence over any preset name; with neither present the default preset
// is selected.
func (s *ThemeStore) Selection() (Selection, error) {
	if raw, ok := s.storage.Get(KeyCustom); ok && raw != "" {
		var t theme.Theme
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			return Selection{}, fmt.Errorf("%w: %w", ErrMalformedCustomTheme, err)
		}
		return Selection{Custom: &t}, nil
	}

	name, ok := s.storage.Get(KeyPreset)
	if !ok || name == "" {
		name = theme.DefaultPreset
	}
	return Selection{Preset: name}, nil
}

// Load resolves the active theme.
func (s *ThemeStore) Load() (theme.Theme, error) {
	sel, err := s.Selection()
	if err != nil {
		return theme.Theme{}, err
	}
	if sel.Custom != nil {
		return *sel.Custom, nil
	}
	return s.catalog.Preset(sel.Preset), nil
}

// SaveCustom persists t and clears any preset selection.
func (s *ThemeStore) SaveCustom(t theme.Theme) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode custom theme: %w", err)
	}
	if err := s.storage.Set(KeyCustom, string(data)); err != nil {
		return fmt.Errorf("save custom theme: %w", err)
	}
	if err := s.storage.Remove(KeyPreset); err != nil {
		return fmt.Errorf("clear preset: %w", err)
	}
	return nil
}

// SavePreset persists the preset name and clears any custom theme.
// The name is stored as given; Load falls back to the default preset for
// names the catalog does not know.
func (s *ThemeStore) SavePreset(name string) error {
	if err := s.storage.Set(KeyPreset, name); err != nil {
		return fmt.Errorf("save preset: %w", err)
	}
	if err := s.storage.Remove(KeyCustom); err != nil {
		return fmt.Errorf("clear custom theme: %w", err)
	}
	return nil
}
