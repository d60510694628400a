package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/sitetheme/internal/theme"
)

// JSONFormatter formats themes as JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// FormatPresets writes entries as a JSON array.
func (f *JSONFormatter) FormatPresets(w io.Writer, entries []Entry) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}

// FormatTheme writes a single theme as JSON.
func (f *JSONFormatter) FormatTheme(w io.Writer, t theme.Theme) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newThemeDocument(t, f.opts.ShowVars))
}
