package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/normd/normd/internal/adapters/config"
	"github.com/normd/normd/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*config.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	return config.NewStore(path), path
}

func TestLoadMissingFile(t *testing.T) {
	store, _ := newStore(t)

	rules, err := store.Load()

	require.NoError(t, err)
	require.Empty(t, rules)
}

func TestLoadEmptyFile(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	rules, err := store.Load()

	require.NoError(t, err)
	require.Empty(t, rules)
}

func TestLoadParsesRules(t *testing.T) {
	store, path := newStore(t)
	doc := `paths:
  - path: ~/Projects
    action: watch
    mode: recursive
  - path: ~/Projects/node_modules
    action: ignore
    mode: children
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	rules, err := store.Load()

	require.NoError(t, err)
	require.Len(t, rules, 2)
	require.Equal(t, "~/Projects", rules[0].Raw)
	require.Equal(t, domain.ActionWatch, rules[0].Action)
	require.Equal(t, domain.ModeRecursive, rules[0].Mode)
	require.Equal(t, "~/Projects/node_modules", rules[1].Raw)
	require.Equal(t, domain.ActionIgnore, rules[1].Action)
	require.Equal(t, domain.ModeChildren, rules[1].Mode)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	store, path := newStore(t)
	doc := `paths:
  - path: ~/Projects
    action: watch
    mode: recursive
    extra: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := store.Load()

	require.ErrorIs(t, err, domain.ErrConfigParse)
}

func TestLoadRejectsInvalidAction(t *testing.T) {
	store, path := newStore(t)
	doc := `paths:
  - path: ~/Projects
    action: observe
    mode: recursive
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := store.Load()

	require.ErrorIs(t, err, domain.ErrInvalidAction)
}

func TestLoadRejectsInvalidMode(t *testing.T) {
	store, path := newStore(t)
	doc := `paths:
  - path: ~/Projects
    action: watch
    mode: deep
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := store.Load()

	require.ErrorIs(t, err, domain.ErrInvalidMode)
}

func TestSaveRoundTripPreservesRawPaths(t *testing.T) {
	store, _ := newStore(t)
	rules := domain.RuleSet{
		domain.NewRule("~/Projects", domain.ActionWatch, domain.ModeRecursive),
		domain.NewRule("/var/tmp/Stück", domain.ActionIgnore, domain.ModeChildren),
	}

	require.NoError(t, store.Save(rules))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	for i := range rules {
		require.Equal(t, rules[i].Raw, loaded[i].Raw)
		require.Equal(t, rules[i].Action, loaded[i].Action)
		require.Equal(t, rules[i].Mode, loaded[i].Mode)
	}
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	store := config.NewStore(filepath.Join(dir, "nested", "deeper", "config.yaml"))

	err := store.Save(domain.RuleSet{
		domain.NewRule("~/Projects", domain.ActionWatch, domain.ModeRecursive),
	})

	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "nested", "deeper", "config.yaml"))
	require.NoError(t, statErr)
}

func TestChangedOnDisk(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, store.Save(domain.RuleSet{
		domain.NewRule("~/Projects", domain.ActionWatch, domain.ModeRecursive),
	}))

	changed, err := store.ChangedOnDisk()
	require.NoError(t, err)
	require.False(t, changed)

	// An outside writer touches the file.
	require.NoError(t, os.WriteFile(path, []byte("paths: []\n"), 0o644))

	changed, err = store.ChangedOnDisk()
	require.NoError(t, err)
	require.True(t, changed)

	_, err = store.Load()
	require.NoError(t, err)

	changed, err = store.ChangedOnDisk()
	require.NoError(t, err)
	require.False(t, changed)
}

func TestChangedOnDiskMissingFile(t *testing.T) {
	store, path := newStore(t)

	_, err := store.Load()
	require.NoError(t, err)

	changed, err := store.ChangedOnDisk()
	require.NoError(t, err)
	require.False(t, changed)

	require.NoError(t, os.WriteFile(path, []byte("paths: []\n"), 0o644))

	changed, err = store.ChangedOnDisk()
	require.NoError(t, err)
	require.True(t, changed)
}
