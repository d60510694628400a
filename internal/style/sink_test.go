package style

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySink_KeepsFirstWriteOrder(t *testing.T) {
	s := NewMemorySink()
	s.SetProperty("--b", "1")
	s.SetProperty("--a", "2")
	s.SetProperty("--b", "3")

	assert.Equal(t, []Property{{"--b", "3"}, {"--a", "2"}}, s.Properties())
	assert.Equal(t, 3, s.Writes())

	v, ok := s.Get("--b")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	_, ok = s.Get("--missing")
	assert.False(t, ok)
}

func TestCSSWriter_RendersRule(t *testing.T) {
	w := NewCSSWriter("")
	w.SetProperty(VarTextColor, "#1e293b")
	w.SetProperty(VarFontFamily, `Georgia, "Times New Roman", serif`)

	var buf bytes.Buffer
	n, err := w.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	expected := ":root {\n" +
		"  --text-color: #1e293b;\n" +
		"  --font-family-primary: Georgia, \"Times New Roman\", serif;\n" +
		"}\n"
	assert.Equal(t, expected, buf.String())
	assert.Equal(t, []string{VarFontFamily, VarTextColor}, w.Names())
}

func TestCSSWriter_CustomSelector(t *testing.T) {
	w := NewCSSWriter("html[data-site]")
	var buf bytes.Buffer
	_, err := w.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "html[data-site] {\n}\n", buf.String())
}

func TestBuildPalette_UsesSinkColors(t *testing.T) {
	s := NewMemorySink()
	s.SetProperty(VarTextColor, "#1e293b")
	s.SetProperty(VarBackgroundColor, "#ffffff")
	s.SetProperty(VarAccentColor, "#2563eb")

	p := BuildPalette(s)
	assert.Equal(t, lipgloss.Color("#1e293b"), p.Text.GetForeground())
	assert.Equal(t, lipgloss.Color("#ffffff"), p.Page.GetBackground())
	assert.Equal(t, lipgloss.Color("#2563eb"), p.Accent.GetForeground())
	assert.Equal(t, lipgloss.NoColor{}, p.Border.GetForeground())
}
