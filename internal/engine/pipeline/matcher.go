// Package pipeline carries file system events from the watcher to the
// normalization engine: the matcher decides whether an event is
// covered, the dispatcher coalesces bursts and fans work out.
package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/normd/normd/internal/core/domain"
)

// Matcher resolves the effective action for an event path against an
// immutable active entry snapshot.
type Matcher struct {
	entries []domain.ActiveEntry
}

// NewMatcher creates a Matcher over the given snapshot.
func NewMatcher(entries []domain.ActiveEntry) *Matcher {
	return &Matcher{entries: entries}
}

// Effective returns the action governing path. The entry with the
// longest canonical path wins; ok is false when nothing matches.
func (m *Matcher) Effective(path string) (action domain.Action, ok bool) {
	best := -1
	for i, e := range m.entries {
		if !covers(e, path) {
			continue
		}
		if best < 0 || len(e.Canonical) > len(m.entries[best].Canonical) {
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return m.entries[best].Action, true
}

// covers reports whether the entry's scope contains path. Recursive
// entries cover themselves and everything below; Children entries
// cover direct children only.
func covers(e domain.ActiveEntry, path string) bool {
	if e.Mode == domain.ModeChildren {
		return filepath.Dir(path) == e.Canonical
	}
	return path == e.Canonical || underRoot(e.Canonical, path)
}

// underRoot reports whether path is strictly below root, component by
// component.
func underRoot(root, path string) bool {
	if !strings.HasPrefix(path, root) || path == root {
		return false
	}
	if strings.HasSuffix(root, string(filepath.Separator)) {
		return true
	}
	return path[len(root)] == filepath.Separator
}
