package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CenterBox places a rendered box in the middle of the available area.
// A zero size leaves the box as is.
func CenterBox(box string, width, height int) string {
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// CenterContent renders content vertically centered in the available height.
func CenterContent(content string, height int) string {
	content = strings.TrimRight(content, "\n")
	if content == "" || height <= 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	if len(lines) >= height {
		return content
	}

	topPad := (height - len(lines)) / 2
	return strings.Repeat("\n", topPad) + content
}

// Truncate shortens s to at most width cells, ending in "..."
func Truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 {
		return string(runes[:width])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// SingleLine collapses whitespace and newlines into single spaces
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
