// Package tui provides the BubbleTea-based theme picker.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jmylchreest/sitetheme/internal/page"
	"github.com/jmylchreest/sitetheme/internal/picker"
	"github.com/jmylchreest/sitetheme/internal/style"
	"github.com/jmylchreest/sitetheme/internal/theme"
	"github.com/jmylchreest/sitetheme/internal/toggle"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModePreview Mode = iota
	ModePicker
	ModeHelp
)

// focus identifies the picker control that receives keys.
type focus int

const (
	focusPresets focus = iota
	focusText
	focusBackground
	focusAccent
	focusFont
	focusCount
)

// colour inputs, indexed by focus - focusText.
const colorInputs = 3

// Model is the main TUI model.
type Model struct {
	page   *page.Page
	sink   *style.MemorySink
	button *toggle.MemoryButton
	logger *slog.Logger

	// Current mode
	mode Mode

	// Picker form
	focus   focus
	cursor  int
	fontIdx int
	inputs  [colorInputs]textinput.Model
	help    help.Model

	// Display
	showHelp    bool
	showPreview bool
	width       int
	height      int
	ready       bool

	// Key bindings
	keys KeyMap

	// Status message
	statusMsg string
	statusErr bool
}

// Options configures a Model.
type Options struct {
	Sink        *style.MemorySink    // Sink the page theme is applied to
	Button      *toggle.MemoryButton // Toggle button bound to the page, may be nil
	ShowHelp    bool
	ShowPreview bool
	Logger      *slog.Logger
}

// New creates a new TUI model for a loaded page.
func New(p *page.Page, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var inputs [colorInputs]textinput.Model
	placeholders := [colorInputs]string{"text colour", "background colour", "accent colour"}
	names := make([]string, len(picker.Colors))
	for i, c := range picker.Colors {
		names[i] = c.Name
	}
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 32
		in.Width = 16
		in.ShowSuggestions = true
		in.SetSuggestions(names)
		in.KeyMap.AcceptSuggestion = key.NewBinding(key.WithKeys("ctrl+f"))
		inputs[i] = in
	}

	return Model{
		page:        p,
		sink:        opts.Sink,
		button:      opts.Button,
		logger:      logger,
		mode:        ModePreview,
		inputs:      inputs,
		help:        help.New(),
		showHelp:    opts.ShowHelp,
		showPreview: opts.ShowPreview,
		keys:        DefaultKeyMap(),
	}
}

// Mode returns the current UI mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

// ReloadMsg asks the model to re-read the persisted selection, for example
// after another process changed the storage document.
type ReloadMsg struct{}

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

func status(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isErr: isErr}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case ReloadMsg:
		return m.reload()

	case statusMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil
	}

	return m, nil
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case ModePreview:
		return m.handlePreviewKey(msg)
	case ModePicker:
		return m.handlePickerKey(msg)
	case ModeHelp:
		if key.Matches(msg, m.keys.Back, m.keys.Help, m.keys.Quit) {
			m.mode = ModePreview
		}
		return m, nil
	}

	return m, nil
}

// handlePreviewKey handles keys while the picker is closed.
func (m Model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	case key.Matches(msg, m.keys.Open):
		return m.open()
	case key.Matches(msg, m.keys.Toggle):
		return m.toggleMode()
	case key.Matches(msg, m.keys.Reset) && m.page.ThemeErr != nil:
		return m.repair()
	}
	return m, nil
}

// handlePickerKey handles keys while the picker modal is open.
func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	typing := m.focus >= focusText && m.focus <= focusAccent && msg.Type == tea.KeyRunes

	switch {
	case key.Matches(msg, m.keys.Back):
		m.page.Picker.Close()
		return m.syncMode(), nil
	case key.Matches(msg, m.keys.NextItem):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.PrevItem):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.keys.Reset):
		return m.reset()
	case !typing && key.Matches(msg, m.keys.Toggle):
		return m.toggleMode()
	}

	switch m.focus {
	case focusPresets:
		names := m.page.Picker.Controls().PresetButtons
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(names)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Enter):
			if m.cursor < len(names) {
				return m.selectPreset(names[m.cursor])
			}
		}
		return m, nil

	case focusFont:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.fontIdx = (m.fontIdx + len(theme.FontKeys) - 1) % len(theme.FontKeys)
		case key.Matches(msg, m.keys.Right):
			m.fontIdx = (m.fontIdx + 1) % len(theme.FontKeys)
		case key.Matches(msg, m.keys.Enter):
			return m.applyCustom()
		}
		return m, nil

	default:
		if key.Matches(msg, m.keys.Enter) {
			return m.applyCustom()
		}
		i := int(m.focus - focusText)
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		return m, cmd
	}
}

// handleMouse closes the picker on a click outside the modal.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModePicker || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	modal := m.viewModal()
	if msg.X >= lipgloss.Width(modal) || msg.Y >= lipgloss.Height(modal) {
		m.page.Picker.ClickOutside()
		return m.syncMode(), nil
	}
	return m, nil
}

func (m Model) open() (tea.Model, tea.Cmd) {
	if m.page.Picker == nil {
		return m, status("Picker unavailable: stored theme can't be read (ctrl+r to reset)", true)
	}
	if err := m.page.Picker.Open(); err != nil {
		return m, status("Failed to load settings: "+err.Error(), true)
	}
	m = m.syncMode()
	if m.mode != ModePicker {
		return m, nil
	}
	m = m.syncForm()
	return m.setFocus(focusPresets)
}

func (m Model) selectPreset(name string) (tea.Model, tea.Cmd) {
	if err := m.page.Picker.SelectPreset(name); err != nil {
		return m, status("Failed to save preset: "+err.Error(), true)
	}
	return m.syncMode(), status("Selected "+name, false)
}

func (m Model) applyCustom() (tea.Model, tea.Cmd) {
	ctl := m.page.Picker.Controls()
	fields := [colorInputs]*picker.Field{ctl.TextColor, ctl.BackgroundColor, ctl.AccentColor}
	for i, f := range fields {
		if f != nil {
			f.Value = strings.TrimSpace(m.inputs[i].Value())
		}
	}
	if ctl.Font != nil {
		ctl.Font.Value = string(theme.FontKeys[m.fontIdx])
	}

	if err := m.page.Picker.ApplyCustom(); err != nil {
		return m, status("Failed to save custom theme: "+err.Error(), true)
	}
	return m.syncMode(), status("Applied custom theme", false)
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	if err := m.page.Picker.Reset(); err != nil {
		return m, status("Failed to reset: "+err.Error(), true)
	}
	m = m.syncForm()
	m.cursor = 0
	return m, status("Reset to "+theme.DefaultPreset, false)
}

func (m Model) toggleMode() (tea.Model, tea.Cmd) {
	mode, err := m.page.Toggle.Toggle()
	if err != nil {
		return m, status("Failed to save mode: "+err.Error(), true)
	}
	m.page.Mode = mode
	return m, status("Switched to "+string(mode)+" mode", false)
}

// repair replaces an unreadable stored theme with the default preset.
func (m Model) repair() (tea.Model, tea.Cmd) {
	if err := m.page.Store.SavePreset(theme.DefaultPreset); err != nil {
		return m, status("Failed to reset: "+err.Error(), true)
	}
	if err := m.page.RetryTheme(); err != nil {
		return m, status(err.Error(), true)
	}
	return m, status("Reset to "+theme.DefaultPreset, false)
}

// reload re-applies the stored mode and theme.
func (m Model) reload() (tea.Model, tea.Cmd) {
	m.page.Mode = m.page.Toggle.Load()
	if err := m.page.RetryTheme(); err != nil {
		return m, status("Failed to reload theme: "+err.Error(), true)
	}
	m.logger.Debug("reloaded theme", "name", m.page.Theme.DisplayName)

	if m.mode == ModePicker {
		if err := m.page.Picker.LoadSettings(); err != nil {
			return m, status("Failed to load settings: "+err.Error(), true)
		}
		m = m.syncForm()
	}
	return m, nil
}

// syncMode follows the picker state after a controller call.
func (m Model) syncMode() Model {
	if m.page.Picker.State() == picker.Open {
		m.mode = ModePicker
	} else {
		m.mode = ModePreview
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
	}
	return m
}

// syncForm copies the controller's field values into the inputs.
func (m Model) syncForm() Model {
	ctl := m.page.Picker.Controls()
	fields := [colorInputs]*picker.Field{ctl.TextColor, ctl.BackgroundColor, ctl.AccentColor}
	for i, f := range fields {
		if f != nil {
			m.inputs[i].SetValue(f.Value)
		}
	}
	if ctl.Font != nil {
		for i, k := range theme.FontKeys {
			if string(k) == ctl.Font.Value {
				m.fontIdx = i
			}
		}
	}
	return m
}

func (m Model) setFocus(f focus) (tea.Model, tea.Cmd) {
	m.focus = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if focus(i)+focusText == f {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, cmd
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	switch m.mode {
	case ModePreview:
		return m.viewPreview()
	case ModePicker:
		return m.viewPicker()
	case ModeHelp:
		return m.viewHelp()
	default:
		return ""
	}
}

func (m Model) viewPreview() string {
	var s string
	if m.page.ThemeErr != nil {
		s += lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.page.ThemeErr.Error()) + "\n"
		s += fmt.Sprintf("Mode: %s. Press ctrl+r to reset the theme.\n", m.page.Mode)
	} else if m.showPreview && m.sink != nil {
		s += m.renderPage() + "\n"
	} else {
		s += fmt.Sprintf("Theme: %s (%s mode)\n", m.page.Theme.DisplayName, m.page.Mode)
	}
	return s + m.footer(m.keys.ShortHelp())
}

func (m Model) viewPicker() string {
	return m.viewModal() + "\n" + m.footer(m.keys.PickerHelp())
}

func (m Model) viewHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginBottom(1)

	h := m.help
	h.ShowAll = true
	return titleStyle.Render("Keyboard Shortcuts") + "\n" + h.View(m.keys) + "\n"
}

// viewModal renders the open picker. It is drawn from the top-left corner,
// so its size is the hit area for clicks.
func (m Model) viewModal() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	marker := func(f focus) string {
		if m.focus == f {
			return activeStyle.Render("> ")
		}
		return "  "
	}

	var sb strings.Builder
	sb.WriteString(activeStyle.Render("Theme") + "\n\n")

	sb.WriteString(marker(focusPresets) + labelStyle.Render("Presets") + "\n")
	catalog := m.page.Store.Catalog()
	for i, name := range m.page.Picker.Controls().PresetButtons {
		cursor := "   "
		if m.focus == focusPresets && i == m.cursor {
			cursor = " ▸ "
		}
		label := name
		if catalog.Has(name) {
			label = catalog.Preset(name).DisplayName
		}
		sb.WriteString(cursor + label + "\n")
	}

	sb.WriteString("\n")
	labels := [colorInputs]string{"Text", "Background", "Accent"}
	for i, in := range m.inputs {
		f := focus(i) + focusText
		sb.WriteString(fmt.Sprintf("%s%-11s %s %s\n",
			marker(f), labelStyle.Render(labels[i]), in.View(), swatch(picker.ColorValue(in.Value()))))
	}
	sb.WriteString(fmt.Sprintf("%s%-11s ‹ %s ›\n", marker(focusFont), labelStyle.Render("Font"), theme.FontKeys[m.fontIdx]))

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(sb.String())
}

// renderPage previews the applied variables as a small page.
func (m Model) renderPage() string {
	p := style.BuildPalette(m.sink)

	toggleLabel := string(m.page.Mode)
	if m.button != nil && m.button.Text != "" {
		toggleLabel = m.button.Text
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		p.Accent.Render(m.page.Theme.DisplayName),
		"  ",
		p.Secondary.Render("["+toggleLabel+"]"),
	)
	card := p.Card.Render(
		p.Text.Render("Body text in the theme colour.") + "\n" +
			p.Muted.Render("Muted text for captions.") + "\n" +
			p.Link.Render("A link to another page") + "\n" +
			p.Focus.Render("Focused field"),
	)
	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		card,
		p.Border.Render(strings.Repeat("─", 24)),
		p.Secondary.Render("Font: "+string(m.page.Theme.Font)),
	)
	return p.Page.Render(body)
}

func (m Model) footer(bindings []key.Binding) string {
	if m.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
		if m.statusErr {
			statusStyle = statusStyle.Foreground(lipgloss.Color("9"))
		}
		return statusStyle.Render(m.statusMsg)
	}
	if !m.showHelp {
		return ""
	}
	return m.help.ShortHelpView(bindings)
}

// swatch renders a colour sample, or nothing for values lipgloss can't show.
func swatch(hex string) string {
	if !strings.HasPrefix(hex, "#") || len(hex) != 7 {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
