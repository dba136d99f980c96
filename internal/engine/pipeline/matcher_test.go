package pipeline_test

import (
	"testing"

	"github.com/normd/normd/internal/core/domain"
	"github.com/normd/normd/internal/engine/pipeline"
	"github.com/stretchr/testify/require"
)

func TestMatcherEffective(t *testing.T) {
	entries := []domain.ActiveEntry{
		{Canonical: "/w", Action: domain.ActionWatch, Mode: domain.ModeRecursive},
		{Canonical: "/w/vendor", Action: domain.ActionIgnore, Mode: domain.ModeRecursive},
		{Canonical: "/w/vendor/keep", Action: domain.ActionWatch, Mode: domain.ModeRecursive},
		{Canonical: "/shallow", Action: domain.ActionWatch, Mode: domain.ModeChildren},
	}
	m := pipeline.NewMatcher(entries)

	tests := []struct {
		name       string
		path       string
		wantAction domain.Action
		wantOK     bool
	}{
		{
			name:       "inside recursive root",
			path:       "/w/a/b/file.txt",
			wantAction: domain.ActionWatch,
			wantOK:     true,
		},
		{
			name:       "recursive root itself",
			path:       "/w",
			wantAction: domain.ActionWatch,
			wantOK:     true,
		},
		{
			name:   "outside every scope",
			path:   "/elsewhere/file.txt",
			wantOK: false,
		},
		{
			name:       "ignored subtree wins over parent",
			path:       "/w/vendor/lib/file.txt",
			wantAction: domain.ActionIgnore,
			wantOK:     true,
		},
		{
			name:       "carve-out inside ignored subtree",
			path:       "/w/vendor/keep/file.txt",
			wantAction: domain.ActionWatch,
			wantOK:     true,
		},
		{
			name:       "children scope direct child",
			path:       "/shallow/file.txt",
			wantAction: domain.ActionWatch,
			wantOK:     true,
		},
		{
			name:   "children scope grandchild is out",
			path:   "/shallow/sub/file.txt",
			wantOK: false,
		},
		{
			name:   "children scope root itself is out",
			path:   "/shallow",
			wantOK: false,
		},
		{
			name:   "sibling name prefix is out",
			path:   "/warehouse/file.txt",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := m.Effective(tt.path)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.Equal(t, tt.wantAction, action)
			}
		})
	}
}

func TestMatcherEmptySnapshot(t *testing.T) {
	m := pipeline.NewMatcher(nil)

	_, ok := m.Effective("/anything")
	require.False(t, ok)
}
