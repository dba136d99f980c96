package rules

import (
	"github.com/normd/normd/internal/core/domain"
)

// ActiveEntries projects the Active rules into the immutable entry list
// the watcher and matcher consume. Positional metadata is discarded.
func ActiveEntries(rules domain.RuleSet) []domain.ActiveEntry {
	entries := make([]domain.ActiveEntry, 0, len(rules))
	for _, r := range rules {
		if r.Status != domain.StatusActive {
			continue
		}
		entries = append(entries, domain.ActiveEntry{
			Canonical: r.Canonical,
			Action:    r.Action,
			Mode:      r.Mode,
		})
	}
	return entries
}
