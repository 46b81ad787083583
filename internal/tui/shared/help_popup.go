package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/tui/theme"
)

// HelpBind represents a single keybind entry
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection represents a group of related keybinds
type HelpSection struct {
	Title string
	Binds []HelpBind
}

// helpColumnWidth is the rendered width of one column of sections
const helpColumnWidth = 44

// RenderHelpPopup renders a centered help popup with the given sections.
// Sections are split over two columns when the terminal is wide enough.
func RenderHelpPopup(sections []HelpSection, width, height int) string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Current.Secondary).Width(14)
	descStyle := lipgloss.NewStyle().Foreground(theme.Current.Text)

	renderSections := func(group []HelpSection) string {
		var b strings.Builder
		for i, section := range group {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(theme.Title.Render(section.Title) + "\n")
			for _, bind := range section.Binds {
				b.WriteString("  " + keyStyle.Render(bind.Key) + descStyle.Render(bind.Desc) + "\n")
			}
		}
		return strings.TrimRight(b.String(), "\n")
	}

	body := renderSections(sections)
	if len(sections) > 1 && width >= 2*helpColumnWidth+8 {
		split := (len(sections) + 1) / 2
		col := lipgloss.NewStyle().Width(helpColumnWidth)
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			col.Render(renderSections(sections[:split])),
			col.Render(renderSections(sections[split:])),
		)
	}

	content := body + "\n\n" + theme.HelpHint.Render("Press any key to close")
	return CenterBox(theme.ModalBox.Render(content), width, height)
}
