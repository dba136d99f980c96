// Package style is the shared palette for everything normd prints:
// the rule editor, the plain list renderer and the console log handler.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent = lipgloss.Color("#7C6FF0")
	Slate  = lipgloss.Color("#6B7280")
	Snow   = lipgloss.Color("#FAFAFC")
	Green  = lipgloss.Color("#1F9D63")
	Red    = lipgloss.Color("#D64545")
	Amber  = lipgloss.Color("#E8A13C")
)

// Glyphs prefixed to log lines.
const (
	Cross   = "✗"
	Warning = "!"
)
