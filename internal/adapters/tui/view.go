package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/normd/normd/internal/core/domain"
)

// chromeHeight is the number of frame lines around the rule list.
const chromeHeight = 4

// View renders the editor frame.
//
//nolint:gocritic // hugeParam ignored
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(m.header() + "\n\n")
	s.WriteString(m.ruleList())
	s.WriteString("\n" + m.footer() + "\n")

	return s.String()
}

func (m *Model) header() string {
	header := titleStyle.Render("NORMD") + " " + dimStyle.Render(m.Editor.Path())
	if m.Editor.Dirty() {
		header += " " + modifiedStyle.Render("[modified]")
	}
	return header
}

//nolint:gocritic // hugeParam ignored
func (m *Model) ruleList() string {
	rules := m.Editor.Rules()
	if len(rules) == 0 {
		return dimStyle.Render("no rules configured") + "\n"
	}

	start, end := 0, len(rules)
	if h := m.listHeight(); h > 0 {
		start = m.ListOffset
		end = start + h
		if end > len(rules) {
			end = len(rules)
		}
		if start > end {
			start = end
		}
	}

	var s strings.Builder
	for i := start; i < end; i++ {
		s.WriteString(m.renderRow(i, rules[i]) + "\n")
	}
	return s.String()
}

func (m *Model) renderRow(index int, rule domain.Rule) string {
	cursor := "  "
	rowStyle := ruleStyle(rule)
	if index == m.Editor.Selected() {
		cursor = selectedStyle.Render("> ")
		rowStyle = selectedStyle
	}

	row := fmt.Sprintf("%2d %s %-6s %-9s %s",
		index, rule.Status.Symbol(), rule.Action, rule.Mode, rule.Raw)
	if note := ruleAnnotation(rule); note != "" {
		return cursor + rowStyle.Render(row) + " " + dimStyle.Render(note)
	}
	return cursor + rowStyle.Render(row)
}

// ruleAnnotation names the positional relation a rule carries, using
// the indices the list displays.
func ruleAnnotation(rule domain.Rule) string {
	switch {
	case rule.RedundantOf != domain.NoRef:
		return fmt.Sprintf("(redundant of %d)", rule.RedundantOf)
	case rule.Overrides != domain.NoRef:
		return fmt.Sprintf("(overrides %d)", rule.Overrides)
	default:
		return ""
	}
}

func ruleStyle(rule domain.Rule) lipgloss.Style {
	switch rule.Status {
	case domain.StatusActive:
		return activeStyle
	case domain.StatusRedundant:
		return redundantStyle
	default:
		return invalidStyle
	}
}

func (m *Model) footer() string {
	switch {
	case m.Adding:
		return promptStyle.Render("add path: ") + m.Input + "█"
	case m.Notice != "" && m.NoticeIsErr:
		return noticeErrStyle.Render(m.Notice)
	case m.Notice != "":
		return noticeStyle.Render(m.Notice)
	default:
		return dimStyle.Render("j/k move · J/K reorder · a add · d delete · " +
			"w action · m mode · o sort · s save · r reload · q quit")
	}
}
