package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/normd/normd/internal/core/domain"
)

func TestResolvePaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	t.Setenv(domain.ConfigPathEnv, "")

	paths, err := domain.ResolvePaths()
	require.NoError(t, err)

	assert.Equal(t, home, paths.Home)
	assert.Equal(t, filepath.Join(home, ".config", "normd", "config.yaml"), paths.Config)
	assert.Equal(t, filepath.Join(home, ".cache", "normd", "heartbeat"), paths.Heartbeat)
	assert.Equal(t, filepath.Join(home, ".cache", "normd", "daemon.pid"), paths.PIDFile)
	assert.Equal(t, filepath.Join(home, ".cache", "normd", "daemon.log"), paths.DaemonLog)
}

func TestResolvePathsConfigOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(domain.ConfigPathEnv, "/etc/normd/custom.yaml")

	paths, err := domain.ResolvePaths()
	require.NoError(t, err)

	assert.Equal(t, "/etc/normd/custom.yaml", paths.Config)
}

func TestAbbreviateHome(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		home     string
		expected string
	}{
		{"inside home", "/home/u/Projects/doc.txt", "/home/u", "~/Projects/doc.txt"},
		{"home itself", "/home/u", "/home/u", "~"},
		{"outside home", "/var/tmp/doc.txt", "/home/u", "/var/tmp/doc.txt"},
		{"prefix but not ancestor", "/home/ubuntu/doc.txt", "/home/u", "/home/ubuntu/doc.txt"},
		{"empty home", "/home/u/doc.txt", "", "/home/u/doc.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.AbbreviateHome(tt.path, tt.home))
		})
	}
}
