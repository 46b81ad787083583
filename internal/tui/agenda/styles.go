package agenda

import (
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/tui/theme"
)

type weekStyles struct {
	title         lipgloss.Style
	dayHeader     lipgloss.Style
	today         lipgloss.Style
	selectedDay   lipgloss.Style
	count         lipgloss.Style
	empty         lipgloss.Style
	overdueHeader lipgloss.Style
	column        lipgloss.Style
	banner        lipgloss.Style
}

func currentStyles() weekStyles {
	p := theme.Current
	return weekStyles{
		title:         theme.Title,
		dayHeader:     theme.Subtitle,
		today:         theme.Ok,
		selectedDay:   lipgloss.NewStyle().Bold(true).Foreground(p.TextBright).Background(p.Primary),
		count:         theme.Muted,
		empty:         lipgloss.NewStyle().Foreground(p.TextMuted).Italic(true),
		overdueHeader: theme.Error,
		column:        lipgloss.NewStyle().Foreground(p.Accent),
		banner:        theme.Warn,
	}
}
