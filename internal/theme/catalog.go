package theme

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// ErrNoDefaultPreset is returned when a catalog has no DefaultPreset entry.
var ErrNoDefaultPreset = errors.New("catalog has no " + DefaultPreset + " preset")

var validate = validator.New(validator.WithRequiredStructEnabled())

// catalogFile is the on-disk layout of a preset catalog.
type catalogFile struct {
	Presets []presetEntry `toml:"preset" validate:"required,dive"`
}

type presetEntry struct {
	ID    string `toml:"id" validate:"required"`
	Theme
}

// Catalog is a fixed, read-only table of named preset themes.
type Catalog struct {
	names   []string
	presets map[string]Theme
}

// LoadCatalog parses and validates a TOML preset catalog.
// Every preset must carry 6-digit hex colours and a known font key, and the
// catalog must contain the DefaultPreset.
func LoadCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := validate.Struct(file); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	c := &Catalog{presets: make(map[string]Theme, len(file.Presets))}
	for _, p := range file.Presets {
		if _, dup := c.presets[p.ID]; dup {
			return nil, fmt.Errorf("invalid catalog: duplicate preset %q", p.ID)
		}
		c.names = append(c.names, p.ID)
		c.presets[p.ID] = p.Theme
	}

	if _, ok := c.presets[DefaultPreset]; !ok {
		return nil, ErrNoDefaultPreset
	}
	return c, nil
}

// Preset returns the named preset, or the DefaultPreset if name is unknown.
func (c *Catalog) Preset(name string) Theme {
	if t, ok := c.presets[name]; ok {
		return t
	}
	return c.presets[DefaultPreset]
}

// Lookup returns the named preset and whether it exists.
func (c *Catalog) Lookup(name string) (Theme, bool) {
	t, ok := c.presets[name]
	return t, ok
}

// Has reports whether name is a preset id.
func (c *Catalog) Has(name string) bool {
	_, ok := c.presets[name]
	return ok
}

// Names returns preset ids in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}
