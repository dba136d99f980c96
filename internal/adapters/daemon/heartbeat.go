package daemon

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"

	"github.com/normd/normd/internal/core/domain"
)

const (
	// HeartbeatInterval is how often the serving daemon refreshes its marker.
	HeartbeatInterval = 500 * time.Millisecond

	// HeartbeatMaxAge is the oldest the marker may be while the daemon still
	// counts as live.
	HeartbeatMaxAge = 750 * time.Millisecond
)

// Heartbeat refreshes the liveness marker file. Liveness is judged by the
// marker's mtime alone; there is no query protocol.
type Heartbeat struct {
	path string
}

// NewHeartbeat creates a reporter for the marker at path.
func NewHeartbeat(path string) *Heartbeat {
	return &Heartbeat{path: path}
}

// Run writes the marker immediately and then refreshes it every interval
// until the context ends. The marker is removed on the way out so
// controllers observe the stop before it would have gone stale.
func (h *Heartbeat) Run(ctx context.Context) error {
	if err := h.beat(); err != nil {
		return err
	}

	ticker := time.NewTicker(HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = os.Remove(h.path)
			return nil
		case <-ticker.C:
			if err := h.beat(); err != nil {
				return err
			}
		}
	}
}

// beat bumps the marker's mtime with a zero-byte overwrite.
func (h *Heartbeat) beat() error {
	if err := os.MkdirAll(filepath.Dir(h.path), domain.DirPerm); err != nil {
		return zerr.Wrap(domain.ErrHeartbeatWrite, err.Error())
	}
	if err := os.WriteFile(h.path, nil, domain.PrivateFilePerm); err != nil {
		return zerr.Wrap(domain.ErrHeartbeatWrite, err.Error())
	}
	return nil
}

// fresh reports whether a marker written at mtime still counts as live at
// now.
func fresh(mtime, now time.Time) bool {
	return now.Sub(mtime) <= HeartbeatMaxAge
}
