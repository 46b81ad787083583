package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/config"
	"taskboard/internal/kanban/models"
	"taskboard/internal/kanban/operations"
	"taskboard/internal/tui/theme"
	"taskboard/internal/users"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newApp(t *testing.T, view string) (AppModel, *[]bool) {
	t.Helper()
	cfg := &config.Config{IntakeColumn: "todo", Theme: config.ThemeLight, DefaultView: view}
	ctrl, err := operations.NewController(operations.SeedBoard(time.Now()), operations.WithUsers(users.Default()))
	require.NoError(t, err)

	var saved []bool
	app := NewAppModel(cfg, ctrl, users.Default())
	app.saveTheme = func(dark bool) error {
		saved = append(saved, dark)
		return nil
	}

	model, _ := app.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	return model.(AppModel), &saved
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	model, cmd := m.Update(msg)
	return model.(AppModel), cmd
}

func TestApp_DefaultView(t *testing.T) {
	m, _ := newApp(t, config.ViewBoard)
	assert.Equal(t, ViewBoard, m.currentView)

	m, _ = newApp(t, config.ViewWeek)
	assert.Equal(t, ViewWeek, m.currentView)
}

func TestApp_SwitchViews(t *testing.T) {
	m, _ := newApp(t, config.ViewBoard)

	m, _ = update(m, runes("w"))
	assert.Equal(t, ViewWeek, m.currentView)
	assert.Contains(t, m.View(), "Week:")

	m, _ = update(m, SwitchViewMsg{View: ViewBoard})
	assert.Equal(t, ViewBoard, m.currentView)
	assert.Contains(t, m.View(), "To-Do")
}

func TestApp_ToggleTheme(t *testing.T) {
	m, saved := newApp(t, config.ViewBoard)
	defer theme.Apply(false)

	m, cmd := update(m, runes("T"))
	require.NotNil(t, cmd)
	msg := cmd()

	assert.True(t, theme.IsDark())
	assert.Equal(t, config.ThemeDark, m.cfg.Theme)
	assert.Equal(t, []bool{true}, *saved)
	assert.Equal(t, ThemeToggledMsg{Dark: true}, msg)

	m, cmd = update(m, runes("T"))
	cmd()
	assert.False(t, theme.IsDark())
	assert.Equal(t, []bool{true, false}, *saved)
}

func TestApp_Help(t *testing.T) {
	m, _ := newApp(t, config.ViewBoard)

	m, _ = update(m, runes("?"))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Pick up task")

	m, _ = update(m, runes("x"))
	assert.False(t, m.showHelp)
}

func TestApp_ModalBoardKeepsKeys(t *testing.T) {
	m, _ := newApp(t, config.ViewBoard)

	// Open the new task form; "q" must be typed into it rather than quit
	m, _ = update(m, runes("n"))
	m, _ = update(m, runes("q"))

	assert.True(t, m.boardView.IsModal())
	assert.Equal(t, ViewBoard, m.currentView)
	assert.Contains(t, m.View(), "New task")
}

func TestApp_FilterDue(t *testing.T) {
	m, _ := newApp(t, config.ViewWeek)

	m, _ = update(m, FilterDueMsg{Date: time.Date(2025, 7, 28, 0, 0, 0, 0, time.Local)})

	f := m.boardView.Filter()
	assert.Equal(t, "2025-07-28", models.FormatDate(f.DueDate))
}
