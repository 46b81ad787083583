package messages

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ViewType represents the different views in the application
type ViewType int

const (
	ViewBoard ViewType = iota
	ViewWeek
)

// SwitchViewMsg is sent by child views to switch to a different view
type SwitchViewMsg struct {
	View ViewType
}

// FilterDueMsg asks the board to show only tasks due on Date
type FilterDueMsg struct {
	Date time.Time
}

// ThemeToggledMsg reports the theme after a toggle
type ThemeToggledMsg struct {
	Dark bool
	Err  error
}

func SwitchView(v ViewType) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: v}
	}
}
