package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Export tick message constructors for testing
var (
	NewRefreshMsg = func(t time.Time) tea.Msg { return refreshMsg(t) }
	NewPollMsg    = func(t time.Time) tea.Msg { return pollMsg(t) }
)
