package ports

import (
	"context"
	"time"
)

//go:generate mockgen -source=daemon.go -destination=mocks/mock_daemon.go -package=mocks

// DaemonStatus represents the current state of the daemon.
type DaemonStatus struct {
	Running      bool
	PID          int
	HeartbeatAge time.Duration
}

// DaemonController manages the daemon lifecycle from the CLI
// perspective. Liveness is judged solely by the age of the heartbeat
// file: a missing or stale heartbeat means the daemon is not running,
// whatever the process table says.
type DaemonController interface {
	// IsRunning reports whether a live daemon heartbeat exists.
	IsRunning() bool

	// Start spawns a detached daemon process and waits for its first
	// heartbeat. It returns false without error when a daemon is
	// already running.
	Start(ctx context.Context) (started bool, err error)

	// Stop signals the running daemon and waits for its heartbeat to
	// expire. It returns false without error when no daemon is running.
	Stop(ctx context.Context) (stopped bool, err error)

	// Restart stops the daemon if it is running, then starts it.
	Restart(ctx context.Context) error

	// Status reports the daemon's liveness, PID, and heartbeat age.
	Status(ctx context.Context) (DaemonStatus, error)
}
