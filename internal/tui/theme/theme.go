package theme

import (
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/kanban/models"
)

// Palette is the set of colors one theme is drawn with
type Palette struct {
	Text          lipgloss.Color
	TextMuted     lipgloss.Color
	TextBright    lipgloss.Color
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Accent        lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Danger        lipgloss.Color
	Surface       lipgloss.Color
	Border        lipgloss.Color
	BorderFocused lipgloss.Color
}

// ---------------------------------------------------------------------------
// Palettes: ANSI 0-15 plus one 256-color surface
// ---------------------------------------------------------------------------

var Dark = Palette{
	Text:          lipgloss.Color("7"),
	TextMuted:     lipgloss.Color("8"),
	TextBright:    lipgloss.Color("15"),
	Primary:       lipgloss.Color("4"),
	Secondary:     lipgloss.Color("6"),
	Accent:        lipgloss.Color("5"),
	Success:       lipgloss.Color("2"),
	Warning:       lipgloss.Color("3"),
	Danger:        lipgloss.Color("1"),
	Surface:       lipgloss.Color("236"),
	Border:        lipgloss.Color("8"),
	BorderFocused: lipgloss.Color("4"),
}

var Light = Palette{
	Text:          lipgloss.Color("0"),
	TextMuted:     lipgloss.Color("8"),
	TextBright:    lipgloss.Color("0"),
	Primary:       lipgloss.Color("4"),
	Secondary:     lipgloss.Color("6"),
	Accent:        lipgloss.Color("5"),
	Success:       lipgloss.Color("2"),
	Warning:       lipgloss.Color("3"),
	Danger:        lipgloss.Color("1"),
	Surface:       lipgloss.Color("254"),
	Border:        lipgloss.Color("7"),
	BorderFocused: lipgloss.Color("4"),
}

// Current is the active palette. Set through Apply.
var Current = Light

var dark bool

// ---------------------------------------------------------------------------
// Semantic text styles, rebuilt by Apply
// ---------------------------------------------------------------------------

var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	Error lipgloss.Style
	Warn  lipgloss.Style
	Ok    lipgloss.Style

	Cursor     lipgloss.Style
	Selected   lipgloss.Style
	SelectedBg lipgloss.Style

	Assignee lipgloss.Style

	ModalBox   lipgloss.Style
	ModalTitle lipgloss.Style
	ModalHelp  lipgloss.Style

	StatusBar lipgloss.Style
	HelpHint  lipgloss.Style

	NavActive   lipgloss.Style
	NavInactive lipgloss.Style
)

func init() {
	Apply(false)
}

// Apply switches every style to the dark or light palette
func Apply(useDark bool) {
	dark = useDark
	p := Light
	if useDark {
		p = Dark
	}
	Current = p

	Title = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	Subtitle = lipgloss.NewStyle().Bold(true).Foreground(p.Secondary)
	Muted = lipgloss.NewStyle().Foreground(p.TextMuted)
	Bold = lipgloss.NewStyle().Bold(true)

	Error = lipgloss.NewStyle().Bold(true).Foreground(p.Danger)
	Warn = lipgloss.NewStyle().Bold(true).Foreground(p.Warning)
	Ok = lipgloss.NewStyle().Bold(true).Foreground(p.Success)

	Cursor = lipgloss.NewStyle().Bold(true).Foreground(p.Success)
	Selected = lipgloss.NewStyle().Bold(true).Foreground(p.Warning)
	SelectedBg = lipgloss.NewStyle().Foreground(p.TextBright).Background(p.Surface)

	Assignee = lipgloss.NewStyle().Foreground(p.Secondary)

	ModalBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)
	ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(p.Warning)
	ModalHelp = lipgloss.NewStyle().Foreground(p.TextMuted)

	StatusBar = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(p.Border)
	HelpHint = lipgloss.NewStyle().Foreground(p.TextMuted)

	NavActive = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	NavInactive = lipgloss.NewStyle().Foreground(p.TextMuted)
}

// IsDark reports whether the dark palette is active
func IsDark() bool {
	return dark
}

// LabelColor returns the badge color for a label
func LabelColor(l models.Label) lipgloss.Color {
	switch l {
	case models.LabelBug:
		return Current.Danger
	case models.LabelFeature:
		return Current.Primary
	case models.LabelUrgent:
		return Current.Warning
	case models.LabelImprovement:
		return Current.Success
	}
	return Current.TextMuted
}

// Label renders a label badge
func Label(l *models.Label) string {
	if l == nil {
		return ""
	}
	return lipgloss.NewStyle().Bold(true).Foreground(LabelColor(*l)).Render("#" + string(*l))
}
