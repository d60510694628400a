package theme

import (
	_ "embed"
	"sync"
)

// embeddedCatalog is the bundled preset table.
//
//go:embed presets/catalog.toml
var embeddedCatalog []byte

// DefaultPreset is the preset used when nothing else is selected or a
// requested preset does not exist.
const DefaultPreset = "light"

// BundledPresets lists the preset ids shipped with the binary.
var BundledPresets = []string{"light", "dark", "ocean", "forest", "sunset"}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the bundled catalog. It is parsed on first use and shared.
// A bundled catalog that fails to parse or validate is a build defect, so
// this panics rather than returning an error.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := LoadCatalog(embeddedCatalog)
		if err != nil {
			panic("theme: bundled catalog is invalid: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
