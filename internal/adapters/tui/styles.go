package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/normd/normd/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Accent).
			Foreground(style.Snow)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Accent).
			Bold(true)

	activeStyle = lipgloss.NewStyle()

	redundantStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	invalidStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	dimStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	modifiedStyle = lipgloss.NewStyle().
			Foreground(style.Amber)

	promptStyle = lipgloss.NewStyle().
			Foreground(style.Amber)

	noticeStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	noticeErrStyle = lipgloss.NewStyle().
			Foreground(style.Red)
)
