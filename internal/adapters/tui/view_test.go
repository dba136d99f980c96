package tui_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/normd/normd/internal/adapters/config"
	"github.com/normd/normd/internal/adapters/tui"
	"github.com/normd/normd/internal/app"
	"github.com/normd/normd/internal/core/domain"
	"github.com/normd/normd/internal/engine/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_EmptyRuleSet(t *testing.T) {
	m := newTestModel(t)
	out := m.View()

	assert.Contains(t, out, "NORMD")
	assert.Contains(t, out, m.Editor.Path())
	assert.Contains(t, out, "no rules configured")
	assert.Contains(t, out, "q quit")
}

func TestView_RuleRows(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	require.NoError(t, os.Mkdir(docs, 0o755))

	ed := app.NewEditor(config.NewStore(filepath.Join(dir, "rules.yaml")), rules.NewValidator(dir))
	require.NoError(t, ed.Reload())
	ed.Add(docs, domain.ActionWatch, domain.ModeRecursive)
	ed.Add(docs, domain.ActionWatch, domain.ModeRecursive)
	ed.Add(filepath.Join(dir, "missing"), domain.ActionWatch, domain.ModeRecursive)
	model := tui.NewModel(ed, io.Discard)
	m := &model

	out := m.View()

	// One row per status: active, duplicate, unresolvable
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "~")
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "(redundant of 0)")
	assert.Contains(t, out, "watch")
	assert.Contains(t, out, "recursive")
	assert.Contains(t, out, "> ", "selection cursor")
}

func TestView_OverrideAnnotation(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	skip := filepath.Join(docs, "skip")
	require.NoError(t, os.MkdirAll(skip, 0o755))

	ed := app.NewEditor(config.NewStore(filepath.Join(dir, "rules.yaml")), rules.NewValidator(dir))
	require.NoError(t, ed.Reload())
	ed.Add(docs, domain.ActionWatch, domain.ModeRecursive)
	ed.Add(skip, domain.ActionIgnore, domain.ModeRecursive)
	model := tui.NewModel(ed, io.Discard)
	m := &model

	out := m.View()
	assert.Contains(t, out, "ignore")
	assert.Contains(t, out, "(overrides 0)")
}

func TestView_ModifiedMarker(t *testing.T) {
	m := newTestModel(t, "a")
	assert.Contains(t, m.View(), "[modified]")

	require.NoError(t, m.Editor.Save())
	assert.NotContains(t, m.View(), "[modified]")
}

func TestView_AddPrompt(t *testing.T) {
	m := newTestModel(t)
	m, _ = updateModel(m, keyRunes("a"))
	m, _ = updateModel(m, keyRunes("/tmp/x"))

	out := m.View()
	assert.Contains(t, out, "add path: /tmp/x█")
	assert.NotContains(t, out, "q quit", "keymap hidden while the prompt is open")
}

func TestView_Notices(t *testing.T) {
	m := newTestModel(t, "a")
	m, _ = updateModel(m, keyRunes("s"))
	assert.Contains(t, m.View(), "saved")

	m.Notice = "boom"
	m.NoticeIsErr = true
	assert.Contains(t, m.View(), "boom")
	assert.NotContains(t, m.View(), "q quit")
}

func TestView_Windowing(t *testing.T) {
	m := newTestModel(t, "rule-0", "rule-1", "rule-2", "rule-3", "rule-4")

	// Without a known size every row renders.
	out := m.View()
	assert.Contains(t, out, "rule-0")
	assert.Contains(t, out, "rule-4")

	// Two rows fit a height of six; the window follows the selection.
	m, _ = updateModel(m, tea.WindowSizeMsg{Width: 80, Height: 6})
	out = m.View()
	assert.NotContains(t, out, "rule-0")
	assert.Contains(t, out, "rule-3")
	assert.Contains(t, out, "rule-4")
}
