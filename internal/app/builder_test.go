package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/normd/normd/internal/app"
	"github.com/normd/normd/internal/core/domain"
	_ "github.com/normd/normd/internal/wiring" // Register providers
	"github.com/stretchr/testify/require"
)

func TestAppWiring(t *testing.T) {
	// Resolve every path under a temporary home
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tmpDir, "cache"))
	t.Setenv(domain.ConfigPathEnv, filepath.Join(tmpDir, "config.yaml"))

	// Verify that the application graph can be constructed
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
