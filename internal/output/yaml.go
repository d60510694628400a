package output

import (
	"io"

	"github.com/jmylchreest/sitetheme/internal/theme"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats themes as YAML.
type YAMLFormatter struct {
	opts FormatterOptions
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(opts FormatterOptions) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// FormatPresets writes entries as a YAML sequence.
func (f *YAMLFormatter) FormatPresets(w io.Writer, entries []Entry) error {
	return f.encode(w, entries)
}

// FormatTheme writes a single theme as a YAML document.
func (f *YAMLFormatter) FormatTheme(w io.Writer, t theme.Theme) error {
	return f.encode(w, newThemeDocument(t, f.opts.ShowVars))
}

func (f *YAMLFormatter) encode(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
