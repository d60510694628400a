package style

import "github.com/charmbracelet/lipgloss"

// Palette is a set of lipgloss styles built from applied theme variables,
// used to preview a theme in the terminal.
type Palette struct {
	Page      lipgloss.Style
	Card      lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Link      lipgloss.Style
	Secondary lipgloss.Style
	Border    lipgloss.Style
	Focus     lipgloss.Style
}

// BuildPalette converts the variables held by sink into lipgloss styles.
// Variables that were never written render with the terminal default.
func BuildPalette(sink *MemorySink) Palette {
	color := func(name string) lipgloss.TerminalColor {
		if v, ok := sink.Get(name); ok && v != "" {
			return lipgloss.Color(v)
		}
		return lipgloss.NoColor{}
	}

	bg := color(VarBackgroundColor)
	text := color(VarTextColor)

	return Palette{
		Page: lipgloss.NewStyle().
			Foreground(text).
			Background(bg).
			Padding(1, 2),
		Card: lipgloss.NewStyle().
			Foreground(text).
			Background(color(VarContainerBg)).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(color(VarBorderColor)).
			Padding(0, 1),
		Text:      lipgloss.NewStyle().Foreground(text),
		Muted:     lipgloss.NewStyle().Foreground(color(VarTextFallback)),
		Accent:    lipgloss.NewStyle().Foreground(color(VarAccentColor)).Bold(true),
		Link:      lipgloss.NewStyle().Foreground(color(VarPrimaryFallback)).Underline(true),
		Secondary: lipgloss.NewStyle().Foreground(color(VarSecondaryColor)),
		Border:    lipgloss.NewStyle().Foreground(color(VarBorderColor)),
		Focus:     lipgloss.NewStyle().Foreground(color(VarFocusColor)).Bold(true),
	}
}
