package output

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/jmylchreest/sitetheme/internal/theme"
)

// PlainFormatter formats themes as plain text.
type PlainFormatter struct {
	opts     FormatterOptions
	template *template.Template
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	f := &PlainFormatter{opts: opts}

	// Parse custom template if provided
	if opts.Template != "" {
		tmpl, err := template.New("plain").Funcs(templateFuncs()).Parse(opts.Template)
		if err == nil {
			f.template = tmpl
		}
	}

	return f
}

// templateData provides data for custom templates.
type templateData struct {
	Index int
	Entry Entry
}

// templateFuncs returns template helper functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"family": func(key theme.FontKey) string {
			return theme.FontFamily(key)
		},
		"upper": strings.ToUpper,
	}
}

// FormatPresets writes one line per entry.
func (f *PlainFormatter) FormatPresets(w io.Writer, entries []Entry) error {
	for i, e := range entries {
		if err := f.formatEntry(w, i+1, e); err != nil {
			return err
		}
	}
	return nil
}

func (f *PlainFormatter) formatEntry(w io.Writer, index int, e Entry) error {
	if f.template != nil {
		if err := f.template.Execute(w, templateData{Index: index, Entry: e}); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}

	var sb strings.Builder
	if e.Active {
		sb.WriteString("* ")
	} else {
		sb.WriteString("  ")
	}
	if f.opts.ShowIndex {
		sb.WriteString(fmt.Sprintf("[%d] ", index))
	}
	sb.WriteString(fmt.Sprintf("%-8s %-8s text=%s bg=%s accent=%s font=%s\n",
		e.ID, e.Theme.DisplayName,
		e.Theme.TextColor, e.Theme.BackgroundColor, e.Theme.AccentColor, e.Theme.Font))

	_, err := w.Write([]byte(sb.String()))
	return err
}

// FormatTheme writes the theme fields followed by its derived variables.
func (f *PlainFormatter) FormatTheme(w io.Writer, t theme.Theme) error {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("name:   %s\n", t.DisplayName))
	sb.WriteString(fmt.Sprintf("text:   %s\n", t.TextColor))
	sb.WriteString(fmt.Sprintf("bg:     %s\n", t.BackgroundColor))
	sb.WriteString(fmt.Sprintf("accent: %s\n", t.AccentColor))
	sb.WriteString(fmt.Sprintf("font:   %s\n", t.Font))

	if f.opts.ShowVars {
		sb.WriteString("\n")
		for _, p := range theme.Derive(t).Properties() {
			sb.WriteString(fmt.Sprintf("  %-22s %s\n", p.Name, p.Value))
		}
	}

	_, err := w.Write([]byte(sb.String()))
	return err
}

// FormatField outputs a specific field from a theme.
func FormatField(t theme.Theme, field string) string {
	switch strings.ToLower(field) {
	case "name", "display_name":
		return t.DisplayName
	case "text", "text_color", "textcolor":
		return t.TextColor
	case "bg", "bg_color", "background":
		return t.BackgroundColor
	case "accent", "accent_color", "accentcolor":
		return t.AccentColor
	case "font":
		return string(t.Font)
	case "family", "font_family":
		return theme.FontFamily(t.Font)
	default:
		return t.DisplayName
	}
}
