// Package tui provides the interactive terminal editor for the watch
// rule set.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/normd/normd/internal/ui/output"
)

const (
	defaultRefreshInterval = 500 * time.Millisecond
	defaultPollInterval    = time.Second
)

// NewModel creates an editor model over ed, rendering to w.
func NewModel(ed Editor, w io.Writer) Model {
	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	return Model{
		Editor:          ed,
		RefreshInterval: defaultRefreshInterval,
		PollInterval:    defaultPollInterval,
	}
}

// WithDisableTick disables the periodic refresh loops.
// This is primarily used for testing to keep frames deterministic.
func (m Model) WithDisableTick() Model {
	m.DisableTick = true
	return m
}
