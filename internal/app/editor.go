package app

import (
	"sort"
	"strconv"

	"github.com/normd/normd/internal/core/domain"
	"github.com/normd/normd/internal/core/ports"
	"github.com/normd/normd/internal/engine/rules"
	"go.trai.ch/zerr"
)

// Editor is the single owner of the rule set between a load and a save.
// Every mutation revalidates and re-resolves the whole set, so the
// positional references between rules are never stale.
type Editor struct {
	store     ports.ConfigStore
	validator *rules.Validator

	rules    domain.RuleSet
	selected int
	dirty    bool
}

// NewEditor creates an Editor over store. Call Reload before use.
func NewEditor(store ports.ConfigStore, validator *rules.Validator) *Editor {
	return &Editor{
		store:     store,
		validator: validator,
		selected:  domain.NoRef,
	}
}

// Rules returns the resolved rule set for display. Callers must not
// mutate it.
func (e *Editor) Rules() domain.RuleSet {
	return e.rules
}

// Selected returns the index of the selected rule, or domain.NoRef
// while the set is empty.
func (e *Editor) Selected() int {
	return e.selected
}

// Select moves the selection to i, clamped to the rule range.
func (e *Editor) Select(i int) {
	e.selected = i
	e.clampSelection()
}

// Add appends a rule for raw and selects it. Ignore rules always cover
// their whole subtree, so an ignore action forces recursive mode.
func (e *Editor) Add(raw string, action domain.Action, mode domain.Mode) {
	if action == domain.ActionIgnore {
		mode = domain.ModeRecursive
	}
	e.rules = append(e.rules, domain.NewRule(raw, action, mode))
	e.selected = len(e.rules) - 1
	e.markDirty()
}

// Remove deletes the rule at i.
func (e *Editor) Remove(i int) error {
	if err := e.checkIndex(i); err != nil {
		return err
	}
	e.rules = append(e.rules[:i], e.rules[i+1:]...)
	e.clampSelection()
	e.markDirty()
	return nil
}

// ToggleAction flips the rule at i between watch and ignore. Switching
// to ignore forces recursive mode.
func (e *Editor) ToggleAction(i int) error {
	if err := e.checkIndex(i); err != nil {
		return err
	}
	e.rules[i].Action = e.rules[i].Action.Toggle()
	if e.rules[i].Action == domain.ActionIgnore {
		e.rules[i].Mode = domain.ModeRecursive
	}
	e.markDirty()
	return nil
}

// ToggleMode flips the rule at i between recursive and children. Mode
// is fixed while the action is ignore, so the call is a no-op then.
func (e *Editor) ToggleMode(i int) error {
	if err := e.checkIndex(i); err != nil {
		return err
	}
	if e.rules[i].Action == domain.ActionIgnore {
		return nil
	}
	e.rules[i].Mode = e.rules[i].Mode.Toggle()
	e.markDirty()
	return nil
}

// Move swaps the rule at i with its neighbor at i+delta. Moving past
// either end is a no-op. The selection follows a moved selected rule.
func (e *Editor) Move(i, delta int) error {
	if err := e.checkIndex(i); err != nil {
		return err
	}
	j := i + delta
	if j < 0 || j >= len(e.rules) {
		return nil
	}
	e.rules[i], e.rules[j] = e.rules[j], e.rules[i]
	if e.selected == i {
		e.selected = j
	}
	e.markDirty()
	return nil
}

// Sort orders the rules by their raw path string.
func (e *Editor) Sort() {
	sort.SliceStable(e.rules, func(a, b int) bool {
		return e.rules[a].Raw < e.rules[b].Raw
	})
	e.markDirty()
}

// Save persists the rule set.
func (e *Editor) Save() error {
	if err := e.store.Save(e.rules); err != nil {
		return err
	}
	e.dirty = false
	return nil
}

// Reload replaces the rule set with the file content, dropping local
// changes.
func (e *Editor) Reload() error {
	loaded, err := e.store.Load()
	if err != nil {
		return err
	}
	e.rules = loaded
	e.dirty = false
	e.refresh()
	e.clampSelection()
	return nil
}

// Refresh revalidates every rule against the file system and recomputes
// statuses. The rules themselves are untouched.
func (e *Editor) Refresh() {
	e.refresh()
}

// Dirty reports whether the rule set has unsaved changes.
func (e *Editor) Dirty() bool {
	return e.dirty
}

// ChangedOnDisk reports whether the backing file changed since the last
// load or save.
func (e *Editor) ChangedOnDisk() (bool, error) {
	return e.store.ChangedOnDisk()
}

// Path returns the location of the backing file.
func (e *Editor) Path() string {
	return e.store.Path()
}

func (e *Editor) markDirty() {
	e.dirty = true
	e.refresh()
}

func (e *Editor) refresh() {
	e.validator.ValidateAll(e.rules)
	rules.ResolveStatuses(e.rules)
}

func (e *Editor) checkIndex(i int) error {
	if i < 0 || i >= len(e.rules) {
		return zerr.With(zerr.Wrap(domain.ErrRuleIndex, ""), "index", strconv.Itoa(i))
	}
	return nil
}

func (e *Editor) clampSelection() {
	switch {
	case len(e.rules) == 0:
		e.selected = domain.NoRef
	case e.selected < 0:
		e.selected = 0
	case e.selected >= len(e.rules):
		e.selected = len(e.rules) - 1
	}
}
