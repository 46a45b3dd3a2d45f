package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View is a screen the TUI can switch to from the menu.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}
