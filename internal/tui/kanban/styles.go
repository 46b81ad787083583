package kanban

import (
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/tui/theme"
)

const (
	// Layout constants
	columnWidth             = 34
	columnPaddingHorizontal = 1
	cardPaddingHorizontal   = 1
	cardBorderWidth         = 1
	columnTotalWidth        = columnWidth + 2
)

// boardStyles is rebuilt from the active palette on every render so a theme
// toggle applies immediately.
type boardStyles struct {
	title               lipgloss.Style
	column              lipgloss.Style
	selectedColumn      lipgloss.Style
	columnTitle         lipgloss.Style
	selectedColumnTitle lipgloss.Style
	card                lipgloss.Style
	selectedCard        lipgloss.Style
	moveCard            lipgloss.Style
	cardTitle           lipgloss.Style
	cardPreview         lipgloss.Style
	dropMarker          lipgloss.Style
	scrollIndicator     lipgloss.Style
	filterIndicator     lipgloss.Style
	formLabel           lipgloss.Style
	formFocusedLabel    lipgloss.Style
}

func currentStyles() boardStyles {
	p := theme.Current

	cardBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), false, false, false, true).
		Padding(0, cardPaddingHorizontal).
		MarginBottom(1)

	return boardStyles{
		title: theme.Title.Padding(0, 1),
		column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, columnPaddingHorizontal).
			Width(columnWidth),
		selectedColumn: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.BorderFocused).
			Padding(1, columnPaddingHorizontal).
			Width(columnWidth),
		columnTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Align(lipgloss.Center),
		selectedColumnTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Warning).
			Background(p.Surface).
			Underline(true).
			Align(lipgloss.Center),
		card: cardBase.BorderForeground(p.Border),
		selectedCard: cardBase.
			BorderForeground(p.BorderFocused).
			Background(p.Surface).
			Bold(true),
		moveCard: cardBase.
			BorderForeground(p.Warning).
			Foreground(p.Warning).
			Bold(true),
		cardTitle:       lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		cardPreview:     lipgloss.NewStyle().Foreground(p.TextMuted),
		dropMarker:      lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		scrollIndicator: lipgloss.NewStyle().Foreground(p.TextMuted).Italic(true),
		filterIndicator: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		formLabel:       lipgloss.NewStyle().Foreground(p.Secondary).Width(13),
		formFocusedLabel: lipgloss.NewStyle().
			Foreground(p.Warning).
			Bold(true).
			Width(13),
	}
}
