package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jmylchreest/sitetheme/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testEntries() []Entry {
	return []Entry{
		{
			ID: "light",
			Theme: theme.Theme{
				DisplayName:     "Light",
				TextColor:       "#333333",
				BackgroundColor: "#ffffff",
				AccentColor:     "#0066cc",
				Font:            theme.FontSystem,
			},
			Active: true,
		},
		{
			ID: "dark",
			Theme: theme.Theme{
				DisplayName:     "Dark",
				TextColor:       "#f0f0f0",
				BackgroundColor: "#1a1a2e",
				AccentColor:     "#4da6ff",
				Font:            theme.FontSystem,
			},
		},
	}
}

func TestPlainFormatter_FormatPresets(t *testing.T) {
	var buf bytes.Buffer

	formatter := NewPlainFormatter(DefaultFormatterOptions())
	err := formatter.FormatPresets(&buf, testEntries())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.True(t, strings.HasPrefix(lines[0], "* [1] light"))
	assert.Contains(t, lines[0], "bg=#ffffff")
	assert.True(t, strings.HasPrefix(lines[1], "  [2] dark"))
	assert.Contains(t, lines[1], "accent=#4da6ff")
}

func TestPlainFormatter_NoIndex(t *testing.T) {
	var buf bytes.Buffer

	opts := DefaultFormatterOptions()
	opts.ShowIndex = false
	err := NewPlainFormatter(opts).FormatPresets(&buf, testEntries())
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "[1]")
}

func TestPlainFormatter_CustomTemplate(t *testing.T) {
	var buf bytes.Buffer

	opts := DefaultFormatterOptions()
	opts.Template = "{{.Index}}:{{.Entry.ID}}:{{upper .Entry.Theme.DisplayName}}:{{family .Entry.Theme.Font}}"
	err := NewPlainFormatter(opts).FormatPresets(&buf, testEntries()[:1])
	require.NoError(t, err)

	assert.Equal(t, "1:light:LIGHT:system-ui, -apple-system, sans-serif\n", buf.String())
}

func TestPlainFormatter_InvalidTemplateFallsBack(t *testing.T) {
	var buf bytes.Buffer

	opts := DefaultFormatterOptions()
	opts.Template = "{{.Broken"
	err := NewPlainFormatter(opts).FormatPresets(&buf, testEntries()[:1])
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "light")
}

func TestPlainFormatter_FormatTheme(t *testing.T) {
	var buf bytes.Buffer

	err := NewPlainFormatter(DefaultFormatterOptions()).FormatTheme(&buf, testEntries()[0].Theme)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "name:   Light")
	assert.Contains(t, out, "--border-color")
	assert.Contains(t, out, "#e6e6e6")
}

func TestJSONFormatter_FormatPresets(t *testing.T) {
	var buf bytes.Buffer

	err := NewJSONFormatter(DefaultFormatterOptions()).FormatPresets(&buf, testEntries())
	require.NoError(t, err)

	var decoded []Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, testEntries(), decoded)
	assert.Contains(t, buf.String(), `"bgColor": "#ffffff"`)
}

func TestJSONFormatter_FormatTheme(t *testing.T) {
	var buf bytes.Buffer

	err := NewJSONFormatter(DefaultFormatterOptions()).FormatTheme(&buf, testEntries()[1].Theme)
	require.NoError(t, err)

	var decoded themeDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Dark", decoded.Theme.DisplayName)
	assert.Equal(t, "#94a3b8", decoded.Variables["--secondary-color"])
	assert.Len(t, decoded.Variables, 13)
}

func TestJSONFormatter_WithoutVariables(t *testing.T) {
	var buf bytes.Buffer

	opts := DefaultFormatterOptions()
	opts.ShowVars = false
	err := NewJSONFormatter(opts).FormatTheme(&buf, testEntries()[1].Theme)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "variables")
}

func TestYAMLFormatter_FormatTheme(t *testing.T) {
	var buf bytes.Buffer

	err := NewYAMLFormatter(DefaultFormatterOptions()).FormatTheme(&buf, testEntries()[0].Theme)
	require.NoError(t, err)

	var decoded themeDocument
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, testEntries()[0].Theme, decoded.Theme)
	assert.Equal(t, "#f7f7f7", decoded.Variables["--background-color-fallback"])
}

func TestYAMLFormatter_FormatPresets(t *testing.T) {
	var buf bytes.Buffer

	err := NewYAMLFormatter(DefaultFormatterOptions()).FormatPresets(&buf, testEntries())
	require.NoError(t, err)

	var decoded []Entry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "dark", decoded[1].ID)
	assert.True(t, decoded[0].Active)
}

func TestCSSFormatter_FormatTheme(t *testing.T) {
	var buf bytes.Buffer

	opts := DefaultFormatterOptions()
	opts.Selector = "html"
	err := NewCSSFormatter(opts).FormatTheme(&buf, testEntries()[0].Theme)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "html {\n"))
	assert.Contains(t, out, "  --bg-color: #ffffff;\n")
	assert.Contains(t, out, "  --focus-color: #0066cc;\n")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestCSSFormatter_FormatPresets(t *testing.T) {
	var buf bytes.Buffer

	err := NewCSSFormatter(FormatterOptions{}).FormatPresets(&buf, testEntries())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `:root, [data-preset="light"] {`)
	assert.Contains(t, out, `[data-preset="dark"] {`)
	assert.NotContains(t, out, `:root, [data-preset="dark"]`)
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format   FormatType
		expected any
	}{
		{FormatPlain, &PlainFormatter{}},
		{FormatJSON, &JSONFormatter{}},
		{FormatYAML, &YAMLFormatter{}},
		{FormatCSS, &CSSFormatter{}},
		{"unknown", &PlainFormatter{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			f := NewFormatter(tt.format, DefaultFormatterOptions())
			assert.IsType(t, tt.expected, f)
		})
	}
}

func TestFormatField(t *testing.T) {
	th := testEntries()[1].Theme

	tests := []struct {
		field    string
		expected string
	}{
		{"name", "Dark"},
		{"text", "#f0f0f0"},
		{"BG", "#1a1a2e"},
		{"accent_color", "#4da6ff"},
		{"font", "system"},
		{"family", "system-ui, -apple-system, sans-serif"},
		{"unknown", "Dark"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatField(th, tt.field))
		})
	}
}
