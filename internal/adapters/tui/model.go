package tui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/normd/normd/internal/core/domain"
)

// Editor is the rule set surface the model drives. The application
// layer's editor satisfies it.
type Editor interface {
	Rules() domain.RuleSet
	Selected() int
	Select(i int)
	Add(raw string, action domain.Action, mode domain.Mode)
	Remove(i int) error
	ToggleAction(i int) error
	ToggleMode(i int) error
	Move(i, delta int) error
	Sort()
	Save() error
	Reload() error
	Refresh()
	Dirty() bool
	ChangedOnDisk() (bool, error)
	Path() string
}

// refreshMsg triggers a revalidation of every rule.
type refreshMsg time.Time

// pollMsg triggers the on-disk change check.
type pollMsg time.Time

// Model represents the interactive editor state.
type Model struct {
	Editor Editor

	Adding      bool
	Input       string
	Notice      string
	NoticeIsErr bool

	Width      int
	Height     int
	ListOffset int

	RefreshInterval time.Duration
	PollInterval    time.Duration
	DisableTick     bool
}

// Init starts the periodic revalidation and on-disk change loops.
//
//nolint:gocritic // hugeParam ignored
func (m *Model) Init() tea.Cmd {
	if m.DisableTick {
		return nil
	}
	return tea.Batch(m.refreshTick(), m.pollTick())
}

// Update handles incoming messages and updates the model state.
//
//nolint:gocritic // hugeParam ignored
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Adding {
			return m.updateAddPrompt(msg)
		}
		return m.updateList(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.ensureVisible()

	case refreshMsg:
		m.Editor.Refresh()
		return m, m.refreshTick()

	case pollMsg:
		m.reloadIfChanged()
		return m, m.pollTick()
	}

	return m, nil
}

// updateList dispatches a key press in list mode.
//
//nolint:cyclop // key dispatch
func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.Notice = ""
	m.NoticeIsErr = false

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "k", "up":
		m.Editor.Select(m.Editor.Selected() - 1)
		m.ensureVisible()
	case "j", "down":
		m.Editor.Select(m.Editor.Selected() + 1)
		m.ensureVisible()
	case "K":
		m.moveSelected(-1)
	case "J":
		m.moveSelected(1)
	case "a":
		m.Adding = true
		m.Input = ""
	case "d":
		if i := m.Editor.Selected(); i != domain.NoRef {
			m.reportError(m.Editor.Remove(i))
		}
	case "w":
		if i := m.Editor.Selected(); i != domain.NoRef {
			m.reportError(m.Editor.ToggleAction(i))
		}
	case "m":
		if i := m.Editor.Selected(); i != domain.NoRef {
			m.reportError(m.Editor.ToggleMode(i))
		}
	case "o":
		m.Editor.Sort()
	case "s":
		if err := m.Editor.Save(); err != nil {
			m.reportError(err)
		} else {
			m.flash("saved")
		}
	case "r":
		if err := m.Editor.Reload(); err != nil {
			m.reportError(err)
		} else {
			m.flash("reloaded")
		}
	}

	return m, nil
}

// updateAddPrompt dispatches a key press while the add prompt is open.
func (m *Model) updateAddPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		raw := strings.TrimSpace(m.Input)
		m.Adding = false
		m.Input = ""
		if raw != "" {
			m.Editor.Add(raw, domain.ActionWatch, domain.ModeRecursive)
			m.ensureVisible()
		}
	case tea.KeyEsc:
		m.Adding = false
		m.Input = ""
	case tea.KeyBackspace:
		if m.Input != "" {
			_, size := utf8.DecodeLastRuneInString(m.Input)
			m.Input = m.Input[:len(m.Input)-size]
		}
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeySpace:
		m.Input += " "
	case tea.KeyRunes:
		m.Input += string(msg.Runes)
	}

	return m, nil
}

func (m *Model) moveSelected(delta int) {
	i := m.Editor.Selected()
	if i == domain.NoRef {
		return
	}
	m.reportError(m.Editor.Move(i, delta))
	m.ensureVisible()
}

// reloadIfChanged picks up external edits while no local changes are
// pending.
func (m *Model) reloadIfChanged() {
	if m.Editor.Dirty() {
		return
	}
	changed, err := m.Editor.ChangedOnDisk()
	if err != nil || !changed {
		return
	}
	if err := m.Editor.Reload(); err == nil {
		m.flash("reloaded after external change")
	}
}

func (m *Model) reportError(err error) {
	if err == nil {
		return
	}
	m.Notice = err.Error()
	m.NoticeIsErr = true
}

func (m *Model) flash(notice string) {
	m.Notice = notice
	m.NoticeIsErr = false
}

func (m *Model) ensureVisible() {
	h := m.listHeight()
	sel := m.Editor.Selected()
	if h <= 0 || sel == domain.NoRef {
		return
	}
	if sel < m.ListOffset {
		m.ListOffset = sel
	} else if sel >= m.ListOffset+h {
		m.ListOffset = sel - h + 1
	}
}

// listHeight is the number of rule rows that fit the window. Zero means
// no size is known yet and the view renders unwindowed.
func (m *Model) listHeight() int {
	if m.Height == 0 {
		return 0
	}
	h := m.Height - chromeHeight
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) refreshTick() tea.Cmd {
	if m.DisableTick {
		return nil
	}
	return tea.Tick(m.RefreshInterval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func (m *Model) pollTick() tea.Cmd {
	if m.DisableTick {
		return nil
	}
	return tea.Tick(m.PollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}
