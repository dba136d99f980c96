package rules

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/normd/normd/internal/core/domain"
)

// ResolveStatuses computes the final status and positional references
// of every rule in place. Rules carrying a canonical path start over as
// Active; validation failures keep their status and never participate.
//
// Rules are processed shortest canonical first, original order breaking
// ties, so every potential parent or duplicate is settled before the
// rules below it. Rerunning on an unchanged set yields identical
// output.
func ResolveStatuses(rules domain.RuleSet) {
	order := make([]int, 0, len(rules))
	for i := range rules {
		rules[i].RedundantOf = domain.NoRef
		rules[i].Overrides = domain.NoRef
		if rules[i].Canonical == "" {
			continue
		}
		rules[i].Status = domain.StatusActive
		order = append(order, i)
	}

	sort.SliceStable(order, func(a, b int) bool {
		la, lb := len(rules[order[a]].Canonical), len(rules[order[b]].Canonical)
		if la != lb {
			return la < lb
		}
		return order[a] < order[b]
	})

	for pos, i := range order {
		if dup := duplicateOf(rules, order[:pos], i); dup != domain.NoRef {
			rules[i].Status = domain.StatusRedundant
			rules[i].RedundantOf = dup
			continue
		}

		parent := fallbackParent(rules, i)
		if parent == domain.NoRef {
			continue
		}
		if rules[parent].Action == rules[i].Action {
			rules[i].Status = domain.StatusRedundant
			rules[i].RedundantOf = parent
		} else {
			rules[i].Overrides = parent
		}
	}
}

// duplicateOf finds the already-processed Active rule sharing rule i's
// canonical path, or NoRef.
func duplicateOf(rules domain.RuleSet, processed []int, i int) int {
	for _, j := range processed {
		if rules[j].Status == domain.StatusActive && rules[j].Canonical == rules[i].Canonical {
			return j
		}
	}
	return domain.NoRef
}

// fallbackParent finds the Active Recursive rule with the longest
// canonical path that is a strict ancestor of rule i's, or NoRef.
// Children rules never act as parents.
func fallbackParent(rules domain.RuleSet, i int) int {
	best := domain.NoRef
	for j := range rules {
		if j == i {
			continue
		}
		if rules[j].Status != domain.StatusActive || rules[j].Mode != domain.ModeRecursive {
			continue
		}
		if !isPathAncestor(rules[j].Canonical, rules[i].Canonical) {
			continue
		}
		if best == domain.NoRef || len(rules[j].Canonical) > len(rules[best].Canonical) {
			best = j
		}
	}
	return best
}

// isPathAncestor reports whether ancestor strictly contains path. The
// check is component-wise: "/a/b" is not an ancestor of "/a/bc".
func isPathAncestor(ancestor, path string) bool {
	if ancestor == path || !strings.HasPrefix(path, ancestor) {
		return false
	}
	if strings.HasSuffix(ancestor, string(filepath.Separator)) {
		return true
	}
	return path[len(ancestor)] == filepath.Separator
}
