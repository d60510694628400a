package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/sitetheme/internal/style"
	"github.com/jmylchreest/sitetheme/internal/theme"
)

// PresetAttribute is the attribute used to scope per-preset css blocks.
const PresetAttribute = "data-preset"

// CSSFormatter renders themes as custom property blocks.
type CSSFormatter struct {
	opts FormatterOptions
}

// NewCSSFormatter creates a new CSS formatter.
func NewCSSFormatter(opts FormatterOptions) *CSSFormatter {
	return &CSSFormatter{opts: opts}
}

// FormatPresets writes one block per entry, scoped by preset attribute.
// The active entry also gets a block for the configured selector.
func (f *CSSFormatter) FormatPresets(w io.Writer, entries []Entry) error {
	for i, e := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		selector := fmt.Sprintf("[%s=%q]", PresetAttribute, e.ID)
		if e.Active {
			selector = f.selector() + ", " + selector
		}
		if err := writeBlock(w, selector, e.Theme); err != nil {
			return err
		}
	}
	return nil
}

// FormatTheme writes the variables for t under the configured selector.
func (f *CSSFormatter) FormatTheme(w io.Writer, t theme.Theme) error {
	return writeBlock(w, f.selector(), t)
}

func (f *CSSFormatter) selector() string {
	if f.opts.Selector == "" {
		return ":root"
	}
	return f.opts.Selector
}

func writeBlock(w io.Writer, selector string, t theme.Theme) error {
	css := style.NewCSSWriter(selector)
	theme.NewApplier(css, nil).Apply(t)
	_, err := css.WriteTo(w)
	return err
}
