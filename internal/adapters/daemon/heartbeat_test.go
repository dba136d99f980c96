package daemon

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/normd/normd/internal/core/domain"
)

func TestHeartbeatRunMaintainsMarker(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "cache", "heartbeat")
	h := NewHeartbeat(marker)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()

	require.Eventually(t, func() bool {
		_, err := os.Stat(marker)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond, "marker never written")

	info, err := os.Stat(marker)
	require.NoError(t, err)
	first := info.ModTime()

	require.Eventually(t, func() bool {
		info, err := os.Stat(marker)
		return err == nil && info.ModTime().After(first)
	}, 3*time.Second, 50*time.Millisecond, "marker never refreshed")

	cancel()
	require.NoError(t, <-done)

	_, err = os.Stat(marker)
	require.ErrorIs(t, err, fs.ErrNotExist, "marker should be removed on shutdown")
}

func TestHeartbeatRunFailsWhenMarkerUnwritable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	h := NewHeartbeat(filepath.Join(blocker, "heartbeat"))

	err := h.Run(context.Background())
	require.ErrorIs(t, err, domain.ErrHeartbeatWrite)
}

func TestFresh(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{name: "zero age", age: 0, want: true},
		{name: "half max age", age: HeartbeatMaxAge / 2, want: true},
		{name: "exactly max age", age: HeartbeatMaxAge, want: true},
		{name: "just past max age", age: HeartbeatMaxAge + time.Millisecond, want: false},
		{name: "long stale", age: time.Hour, want: false},
		{name: "future mtime", age: -time.Second, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fresh(now.Add(-tt.age), now))
		})
	}
}
