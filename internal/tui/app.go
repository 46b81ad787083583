package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/config"
	"taskboard/internal/kanban/operations"
	"taskboard/internal/logs"
	agendaview "taskboard/internal/tui/agenda"
	kanbanview "taskboard/internal/tui/kanban"
	"taskboard/internal/tui/shared"
	"taskboard/internal/tui/theme"
	"taskboard/internal/users"
)

// AppModel is the root model that dispatches to child views
type AppModel struct {
	cfg         *config.Config
	ctrl        *operations.Controller
	currentView ViewType
	boardView   kanbanview.BoardModel
	weekView    agendaview.WeekModel
	saveTheme   func(dark bool) error
	showHelp    bool
	width       int
	height      int
	ready       bool
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Config, ctrl *operations.Controller, dir *users.Directory) AppModel {
	theme.Apply(cfg.IsDark())

	view := ViewBoard
	if cfg.DefaultView == config.ViewWeek {
		view = ViewWeek
	}

	return AppModel{
		cfg:         cfg,
		ctrl:        ctrl,
		currentView: view,
		boardView:   kanbanview.NewBoardModel(ctrl, dir, cfg.IntakeColumn),
		weekView:    agendaview.NewWeekModel(ctrl, dir),
		saveTheme:   config.SaveTheme,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 3 // Reserve space for status bar
		m.boardView.SetSize(msg.Width, contentHeight)
		m.weekView.SetSize(msg.Width, contentHeight)
		return m, nil

	case SwitchViewMsg:
		m.currentView = msg.View
		if msg.View == ViewWeek {
			m.weekView.Refresh()
		}
		return m, nil

	case FilterDueMsg:
		m.boardView.SetDueFilter(msg.Date)
		return m, nil

	case ThemeToggledMsg:
		if msg.Err != nil {
			logs.Logger.Warnf("could not save theme: %v", msg.Err)
		}
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Forms, inputs and drags on the board get every key
		if !(m.currentView == ViewBoard && m.boardView.IsModal()) {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "T":
				return m.toggleTheme()
			case "w":
				if m.currentView == ViewBoard {
					m.currentView = ViewWeek
					m.weekView.Refresh()
					return m, nil
				}
			}
		}
	}

	// Dispatch to current child view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewBoard:
		m.boardView, cmd = m.boardView.Update(msg)
	case ViewWeek:
		m.weekView, cmd = m.weekView.Update(msg)
	}
	return m, cmd
}

// toggleTheme flips the palette now and persists the choice in the background
func (m AppModel) toggleTheme() (tea.Model, tea.Cmd) {
	dark := !theme.IsDark()
	theme.Apply(dark)
	if dark {
		m.cfg.Theme = config.ThemeDark
	} else {
		m.cfg.Theme = config.ThemeLight
	}

	save := m.saveTheme
	return m, func() tea.Msg {
		return ThemeToggledMsg{Dark: dark, Err: save(dark)}
	}
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup(helpSections(), m.width, m.height)
	}

	var content string
	switch m.currentView {
	case ViewBoard:
		content = m.boardView.View()
	case ViewWeek:
		content = m.weekView.View()
	}

	var statusText string
	switch m.currentView {
	case ViewWeek:
		statusText = "Week | esc/b: board | T: theme | ?: help | q: quit"
	default:
		statusText = "Board | w: week | T: theme | ?: help | q: quit"
	}

	statusBar := theme.StatusBar.Width(m.width).Render(theme.HelpHint.Render(statusText))

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func helpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{Title: "Global", Binds: []shared.HelpBind{
			{Key: "w", Desc: "Week at a glance"},
			{Key: "T", Desc: "Toggle light/dark theme"},
			{Key: "?", Desc: "Show this help"},
			{Key: "q", Desc: "Quit"},
			{Key: "ctrl+c", Desc: "Force quit"},
		}},
		{Title: "Board", Binds: []shared.HelpBind{
			{Key: "h/j/k/l", Desc: "Navigate"},
			{Key: "n", Desc: "New task"},
			{Key: "e / enter", Desc: "Edit task"},
			{Key: "d", Desc: "Delete task"},
			{Key: "i", Desc: "Activity history"},
			{Key: "c", Desc: "Add column"},
			{Key: "X", Desc: "Delete column"},
		}},
		{Title: "Moving", Binds: []shared.HelpBind{
			{Key: "m / space", Desc: "Pick up task"},
			{Key: "h / l", Desc: "Target column"},
			{Key: "j / k", Desc: "Target position"},
			{Key: "enter", Desc: "Drop"},
			{Key: "esc", Desc: "Cancel"},
		}},
		{Title: "Filters", Binds: []shared.HelpBind{
			{Key: "/", Desc: "Search titles"},
			{Key: "L", Desc: "Cycle label"},
			{Key: "A", Desc: "Cycle assignee"},
			{Key: "D", Desc: "Due date"},
			{Key: "C / esc", Desc: "Clear filters"},
		}},
		{Title: "Week", Binds: []shared.HelpBind{
			{Key: "j / k", Desc: "Select day"},
			{Key: "enter", Desc: "Show that day on the board"},
			{Key: "t", Desc: "Back to today"},
		}},
	}
}
