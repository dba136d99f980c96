package rules_test

import (
	"testing"

	"github.com/normd/normd/internal/core/domain"
	"github.com/normd/normd/internal/engine/rules"
	"github.com/stretchr/testify/require"
)

// validRule builds a rule that already passed validation.
func validRule(canonical string, action domain.Action, mode domain.Mode) domain.Rule {
	r := domain.NewRule(canonical, action, mode)
	r.Canonical = canonical
	r.Status = domain.StatusActive
	return r
}

type ruleExpect struct {
	status      domain.Status
	redundantOf int
	overrides   int
}

func TestResolveStatuses(t *testing.T) {
	tests := []struct {
		name  string
		rules domain.RuleSet
		want  []ruleExpect
	}{
		{
			name: "independent paths stay active",
			rules: domain.RuleSet{
				validRule("/a", domain.ActionWatch, domain.ModeRecursive),
				validRule("/b", domain.ActionWatch, domain.ModeRecursive),
			},
			want: []ruleExpect{
				{domain.StatusActive, domain.NoRef, domain.NoRef},
				{domain.StatusActive, domain.NoRef, domain.NoRef},
			},
		},
		{
			name: "exact duplicate first wins",
			rules: domain.RuleSet{
				validRule("/a", domain.ActionWatch, domain.ModeRecursive),
				validRule("/a", domain.ActionWatch, domain.ModeChildren),
			},
			want: []ruleExpect{
				{domain.StatusActive, domain.NoRef, domain.NoRef},
				{domain.StatusRedundant, 0, domain.NoRef},
			},
		},
		{
			name: "duplicate chain binds to the active head",
			rules: domain.RuleSet{
				validRule("/a", domain.ActionIgnore, domain.ModeRecursive),
				validRule("/a", domain.ActionWatch, domain.ModeRecursive),
				validRule("/a", domain.ActionWatch, domain.ModeRecursive),
			},
			want: []ruleExpect{
				{domain.StatusActive, domain.NoRef, domain.NoRef},
				{domain.StatusRedundant, 0, domain.NoRef},
				{domain.StatusRedundant, 0, domain.NoRef},
			},
		},
		{
			name: "nested same action is redundant",
			rules: domain.RuleSet{
				validRule("/a", domain.ActionWatch, domain.ModeRecursive),
				validRule("/a/b/c", domain.ActionWatch, domain.ModeRecursive),
			},
			want: []ruleExpect{
				{domain.StatusActive, domain.NoRef, domain.NoRef},
				{domain.StatusRedundant, 0, domain.NoRef},
			},
		},
		{
			name: "nested opposite action overrides",
			rules: domain.RuleSet{
				validRule("/a", domain.ActionWatch, domain.ModeRecursive),
				validRule("/a/b", domain.ActionIgnore, domain.ModeRecursive),
			},
			want: []ruleExpect{
				{domain.StatusActive, domain.NoRef, domain.NoRef},
				{domain.StatusActive, domain.NoRef, 0},
			},
		},
		{
			name: "children parent never absorbs",
			rules: domain.RuleSet{
				validRule("/a", domain.ActionWatch, domain.ModeChildren),
				validRule("/a/b", domain.ActionWatch, domain.ModeRecursive),
			},
			want: []ruleExpect{
				{domain.StatusActive, domain.NoRef, domain.NoRef},
				{domain.StatusActive, domain.NoRef, domain.NoRef},
			},
		},
		{
			name: "deepest recursive ancestor is the parent",
			rules: domain.RuleSet{
				validRule("/a", domain.ActionWatch, domain.ModeRecursive),
				validRule("/a/b", domain.ActionIgnore, domain.ModeRecursive),
				validRule("/a/b/c", domain.ActionIgnore, domain.ModeRecursive),
			},
			want: []ruleExpect{
				{domain.StatusActive, domain.NoRef, domain.NoRef},
				{domain.StatusActive, domain.NoRef, 0},
				{domain.StatusRedundant, 1, domain.NoRef},
			},
		},
		{
			name: "sibling name prefix is not an ancestor",
			rules: domain.RuleSet{
				validRule("/a/b", domain.ActionWatch, domain.ModeRecursive),
				validRule("/a/bc", domain.ActionWatch, domain.ModeRecursive),
			},
			want: []ruleExpect{
				{domain.StatusActive, domain.NoRef, domain.NoRef},
				{domain.StatusActive, domain.NoRef, domain.NoRef},
			},
		},
		{
			name: "dependency carve-out keeps all three active",
			rules: domain.RuleSet{
				validRule("/p", domain.ActionWatch, domain.ModeRecursive),
				validRule("/p/node_modules", domain.ActionIgnore, domain.ModeRecursive),
				validRule("/p/node_modules/pkg", domain.ActionWatch, domain.ModeRecursive),
			},
			want: []ruleExpect{
				{domain.StatusActive, domain.NoRef, domain.NoRef},
				{domain.StatusActive, domain.NoRef, 0},
				{domain.StatusActive, domain.NoRef, 1},
			},
		},
		{
			name: "invalid rules keep their status and never parent",
			rules: domain.RuleSet{
				domain.NewRule("/gone", domain.ActionWatch, domain.ModeRecursive),
				validRule("/gone/sub", domain.ActionWatch, domain.ModeRecursive),
			},
			want: []ruleExpect{
				{domain.StatusNotFound, domain.NoRef, domain.NoRef},
				{domain.StatusActive, domain.NoRef, domain.NoRef},
			},
		},
		{
			name: "duplicate check outranks parent fallback",
			rules: domain.RuleSet{
				validRule("/a", domain.ActionWatch, domain.ModeRecursive),
				validRule("/a/b", domain.ActionIgnore, domain.ModeRecursive),
				validRule("/a/b", domain.ActionWatch, domain.ModeRecursive),
			},
			want: []ruleExpect{
				{domain.StatusActive, domain.NoRef, domain.NoRef},
				{domain.StatusActive, domain.NoRef, 0},
				{domain.StatusRedundant, 1, domain.NoRef},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules.ResolveStatuses(tt.rules)

			for i, want := range tt.want {
				require.Equal(t, want.status, tt.rules[i].Status, "rule %d status", i)
				require.Equal(t, want.redundantOf, tt.rules[i].RedundantOf, "rule %d redundantOf", i)
				require.Equal(t, want.overrides, tt.rules[i].Overrides, "rule %d overrides", i)
			}
		})
	}
}

func TestResolveStatusesRerunIsStable(t *testing.T) {
	set := domain.RuleSet{
		validRule("/p", domain.ActionWatch, domain.ModeRecursive),
		validRule("/p/node_modules", domain.ActionIgnore, domain.ModeRecursive),
		validRule("/p/node_modules", domain.ActionIgnore, domain.ModeRecursive),
		validRule("/p/node_modules/pkg", domain.ActionWatch, domain.ModeRecursive),
		domain.NewRule("/missing", domain.ActionWatch, domain.ModeRecursive),
	}

	rules.ResolveStatuses(set)
	first := make(domain.RuleSet, len(set))
	copy(first, set)

	rules.ResolveStatuses(set)
	require.Equal(t, first, set)
}

func TestResolveStatusesClearsStaleReferences(t *testing.T) {
	set := domain.RuleSet{
		validRule("/a", domain.ActionWatch, domain.ModeRecursive),
	}
	set[0].RedundantOf = 4
	set[0].Overrides = 2

	rules.ResolveStatuses(set)

	require.Equal(t, domain.StatusActive, set[0].Status)
	require.Equal(t, domain.NoRef, set[0].RedundantOf)
	require.Equal(t, domain.NoRef, set[0].Overrides)
}

func TestActiveEntries(t *testing.T) {
	set := domain.RuleSet{
		validRule("/a", domain.ActionWatch, domain.ModeRecursive),
		validRule("/a/b", domain.ActionIgnore, domain.ModeChildren),
		validRule("/a/c", domain.ActionWatch, domain.ModeRecursive),
		domain.NewRule("/missing", domain.ActionWatch, domain.ModeRecursive),
	}
	rules.ResolveStatuses(set)

	entries := rules.ActiveEntries(set)

	require.Len(t, entries, 3)
	require.Equal(t, domain.ActiveEntry{Canonical: "/a", Action: domain.ActionWatch, Mode: domain.ModeRecursive}, entries[0])
	require.Equal(t, domain.ActiveEntry{Canonical: "/a/b", Action: domain.ActionIgnore, Mode: domain.ModeChildren}, entries[1])
	require.Equal(t, domain.ActiveEntry{Canonical: "/a/c", Action: domain.ActionWatch, Mode: domain.ModeRecursive}, entries[2])
}
