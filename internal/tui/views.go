package tui

import "taskboard/internal/tui/messages"

// Re-export types from messages package for convenience
type ViewType = messages.ViewType

const (
	ViewBoard = messages.ViewBoard
	ViewWeek  = messages.ViewWeek
)

type SwitchViewMsg = messages.SwitchViewMsg
type FilterDueMsg = messages.FilterDueMsg
type ThemeToggledMsg = messages.ThemeToggledMsg
