package picker

import "strings"

// DefaultColorName is shown for any colour that has no symbolic name.
const DefaultColorName = "medium"

// NamedColor is one entry of the symbolic colour table.
type NamedColor struct {
	Name string
	Hex  string
}

// Colors is the symbolic colour table offered by the colour fields, in
// display order.
var Colors = []NamedColor{
	{"very-dark", "#0f172a"},
	{"dark", "#1e293b"},
	{"medium-dark", "#334155"},
	{"medium", "#64748b"},
	{"medium-light", "#94a3b8"},
	{"light", "#e2e8f0"},
	{"very-light", "#f1f5f9"},
	{"white", "#ffffff"},
	{"blue", "#2563eb"},
	{"light-blue", "#60a5fa"},
	{"sky", "#0369a1"},
	{"deep-sky", "#0c4a6e"},
	{"light-sky", "#e0f2fe"},
	{"green", "#16a34a"},
	{"light-green", "#f0fdf4"},
	{"forest", "#14532d"},
	{"orange", "#ea580c"},
	{"light-orange", "#fff7ed"},
	{"amber", "#431407"},
}

// ColorValue maps a symbolic name to its hex value. Anything that is not a
// known name is returned unchanged and used as a literal colour; it is not
// checked for being well-formed hex.
func ColorValue(name string) string {
	for _, c := range Colors {
		if c.Name == name {
			return c.Hex
		}
	}
	return name
}

// ColorName maps a hex value back to its symbolic name by exact,
// case-insensitive comparison. Values outside the table map to
// DefaultColorName, so a custom literal colour is shown as "medium" when the
// picker is reopened. There is no nearest-colour matching.
func ColorName(hex string) string {
	for _, c := range Colors {
		if strings.EqualFold(c.Hex, hex) {
			return c.Name
		}
	}
	return DefaultColorName
}

// ColorIndex returns the position of name in Colors, or -1.
func ColorIndex(name string) int {
	for i, c := range Colors {
		if c.Name == name {
			return i
		}
	}
	return -1
}
