package shared

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/kanban/models"
	"taskboard/internal/tui/theme"
)

// TextInputModel wraps bubbles/textinput with validation
type TextInputModel struct {
	Input     textinput.Model
	Prompt    string
	Validator func(string) error
	Error     string
	Width     int
}

// TextInputResultMsg is sent when input is confirmed or cancelled
type TextInputResultMsg struct {
	Value     string
	Cancelled bool
}

// NewTextInput creates a focused text input
func NewTextInput(prompt, placeholder string, validator func(string) error) *TextInputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Focus()
	return &TextInputModel{
		Input:     ti,
		Prompt:    prompt,
		Validator: validator,
		Width:     50,
	}
}

// NewDateInput creates a text input configured for date entry
func NewDateInput(prompt string) *TextInputModel {
	return NewTextInput(prompt, "yyyy-MM-dd", ValidateDateFormat)
}

// Update handles a key press. enter validates and emits a result; esc cancels.
func (m *TextInputModel) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if m.Validator != nil {
				if err := m.Validator(m.Input.Value()); err != nil {
					m.Error = err.Error()
					return nil
				}
			}
			value := m.Input.Value()
			return func() tea.Msg {
				return TextInputResultMsg{Value: value}
			}

		case "esc":
			return func() tea.Msg {
				return TextInputResultMsg{Cancelled: true}
			}
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)

	// Clear error when user types
	m.Error = ""

	return cmd
}

// View renders the input in a bordered box
func (m *TextInputModel) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Current.Secondary)
	boxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current.Primary).
		Padding(0, 1)

	content := promptStyle.Render(m.Prompt+": ") + m.Input.View() + "\n"
	if m.Error != "" {
		content += theme.Error.Render("Error: "+m.Error) + "\n"
	}
	content += theme.HelpHint.Render("[enter] confirm  [esc] cancel")

	return boxStyle.Width(m.Width).Render(content)
}

// Value returns the current input value
func (m *TextInputModel) Value() string {
	return m.Input.Value()
}

// SetValue sets the input value
func (m *TextInputModel) SetValue(v string) {
	m.Input.SetValue(v)
}

// ValidateDateFormat accepts an empty string or a yyyy-MM-dd date
func ValidateDateFormat(s string) error {
	if _, err := models.ParseDate(s); err != nil {
		return fmt.Errorf("invalid date format, use yyyy-MM-dd")
	}
	return nil
}
