// Package output provides output formatters for themes.
package output

import (
	"io"

	"github.com/jmylchreest/sitetheme/internal/theme"
)

// Entry is one catalog preset as listed by the CLI.
type Entry struct {
	ID     string      `json:"id" yaml:"id"`
	Theme  theme.Theme `json:"theme" yaml:"theme"`
	Active bool        `json:"active" yaml:"active"`
}

// Formatter formats themes for output.
type Formatter interface {
	// FormatPresets writes a list of catalog entries.
	FormatPresets(w io.Writer, entries []Entry) error
	// FormatTheme writes a single theme and its derived variables.
	FormatTheme(w io.Writer, t theme.Theme) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
	FormatCSS   FormatType = "css"
)

// FormatTypes lists the accepted --format values.
var FormatTypes = []FormatType{FormatPlain, FormatJSON, FormatYAML, FormatCSS}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts)
	case FormatYAML:
		return NewYAMLFormatter(opts)
	case FormatCSS:
		return NewCSSFormatter(opts)
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(opts)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Template  string // Custom template for plain format
	ShowIndex bool   // Show 1-based index prefix
	ShowVars  bool   // Include derived variables for a single theme
	Selector  string // Selector for css output of a single theme
}

// DefaultFormatterOptions returns sensible defaults for plain output.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		ShowIndex: true,
		ShowVars:  true,
		Selector:  ":root",
	}
}

// themeDocument is the structured form shared by the json and yaml formatters.
type themeDocument struct {
	Theme     theme.Theme       `json:"theme" yaml:"theme"`
	Variables map[string]string `json:"variables,omitempty" yaml:"variables,omitempty"`
}

func newThemeDocument(t theme.Theme, withVars bool) themeDocument {
	doc := themeDocument{Theme: t}
	if withVars {
		doc.Variables = make(map[string]string)
		for _, p := range theme.Derive(t).Properties() {
			doc.Variables[p.Name] = p.Value
		}
	}
	return doc
}
