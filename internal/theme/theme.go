package theme

// FontKey identifies one of the bundled font stacks.
type FontKey string

const (
	FontSystem FontKey = "system"
	FontSerif  FontKey = "serif"
	FontMono   FontKey = "mono"
)

// fontFamilies maps a font key to the CSS font-family value it stands for.
var fontFamilies = map[FontKey]string{
	FontSystem: "system-ui, -apple-system, sans-serif",
	FontSerif:  `Georgia, "Times New Roman", serif`,
	FontMono:   `"Courier New", monospace`,
}

// FontKeys lists the known font keys in display order.
var FontKeys = []FontKey{FontSystem, FontSerif, FontMono}

// FontFamily returns the font-family string for key.
// There is no fallback: an unknown key yields the empty string, which leaves
// the font variable unset for the page. Keys are checked when the catalog is
// loaded, so this only happens for hand-edited custom themes.
func FontFamily(key FontKey) string {
	return fontFamilies[key]
}

// IsFontKey reports whether key is in the font table.
func IsFontKey(key FontKey) bool {
	_, ok := fontFamilies[key]
	return ok
}

// Theme is a complete colour and font bundle.
// The JSON field names are the persisted form of a custom theme.
type Theme struct {
	DisplayName     string  `json:"name" yaml:"name" toml:"name" validate:"required"`
	TextColor       string  `json:"textColor" yaml:"text_color" toml:"text_color" validate:"required,len=7,hexcolor"`
	BackgroundColor string  `json:"bgColor" yaml:"bg_color" toml:"bg_color" validate:"required,len=7,hexcolor"`
	AccentColor     string  `json:"accentColor" yaml:"accent_color" toml:"accent_color" validate:"required,len=7,hexcolor"`
	Font            FontKey `json:"font" yaml:"font" toml:"font" validate:"oneof=system serif mono"`
}

// CustomThemeName is the display name given to themes built in the picker.
const CustomThemeName = "Custom"
