package prompt

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	keyStyle    = lipgloss.NewStyle().Faint(true)
)

// selectModel represents the Bubble Tea model for option selection.
type selectModel struct {
	message  string
	options  []Option
	cursor   int
	selected *Option
	quitting bool
}

// initialSelectModel creates a new select model.
func initialSelectModel(message string, options []Option) selectModel {
	return selectModel{
		message: message,
		options: options,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyInput(msg)
	}

	return m, nil
}

// handleKeyInput processes key input and returns the updated model and command.
func (m selectModel) handleKeyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		selected := m.options[m.cursor]
		m.selected = &selected
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
		return m, nil
	}

	// Shortcut keys select immediately
	for i, option := range m.options {
		if option.Key != "" && strings.EqualFold(option.Key, key) {
			selected := m.options[i]
			m.cursor = i
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var s strings.Builder

	// Header
	s.WriteString(fmt.Sprintf("? %s  [Use arrows or shortcut keys]\n", m.message))

	for i, option := range m.options {
		s.WriteString(formatOption(option, m.cursor == i))
		s.WriteString("\n")
	}

	// Footer
	s.WriteString("\nPress Enter to select, Esc or Ctrl+C to cancel")

	return s.String()
}

// formatOption formats an option for display.
func formatOption(option Option, active bool) string {
	text := option.Name
	if option.Key != "" {
		text = fmt.Sprintf("%s %s", keyStyle.Render("("+option.Key+")"), option.Name)
	}

	if active {
		return cursorStyle.Render("> ") + text
	}
	return "  " + text
}

// promptSelectBubbleTea runs the Bubble Tea program for option selection.
func promptSelectBubbleTea(message string, options []Option, out io.Writer) (Option, error) {
	if len(options) == 0 {
		return Option{}, ErrNoOptions
	}

	p := tea.NewProgram(initialSelectModel(message, options), tea.WithOutput(out))

	finalModel, err := p.Run()
	if err != nil {
		return Option{}, fmt.Errorf("failed to run selection program: %w", err)
	}

	// Cast to our model type
	model, ok := finalModel.(selectModel)
	if !ok {
		return Option{}, fmt.Errorf("unexpected model type")
	}

	// Check if user quit without selecting
	if model.selected == nil {
		return Option{}, ErrNoSelection
	}

	return *model.selected, nil
}
