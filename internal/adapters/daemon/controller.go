// Package daemon provides the liveness marker the background process
// maintains and the controller that spawns, signals, and inspects it.
package daemon

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"go.trai.ch/zerr"

	"github.com/normd/normd/internal/core/domain"
	"github.com/normd/normd/internal/core/ports"
)

const (
	startPollInterval = 100 * time.Millisecond
	startPollTimeout  = 5 * time.Second
	stopPollInterval  = 500 * time.Millisecond
	stopPollTimeout   = 5 * time.Second
)

var _ ports.DaemonController = (*Controller)(nil)

// Controller manages the background process through the heartbeat marker
// and the PID file. It never talks to the daemon directly.
type Controller struct {
	paths      domain.Paths
	logger     ports.Logger
	executable string
}

// NewController creates a controller that spawns the current executable.
func NewController(paths domain.Paths, log ports.Logger) (*Controller, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine executable path")
	}
	return &Controller{
		paths:      paths,
		logger:     log,
		executable: exe,
	}, nil
}

// IsRunning reports whether the heartbeat marker is fresh.
func (c *Controller) IsRunning() bool {
	info, err := os.Stat(c.paths.Heartbeat)
	if err != nil {
		return false
	}
	return fresh(info.ModTime(), time.Now())
}

// Start spawns the daemon unless it is already running. The started return
// is false when a live daemon made spawning unnecessary.
func (c *Controller) Start(ctx context.Context) (bool, error) {
	if c.IsRunning() {
		return false, nil
	}

	if err := c.spawn(); err != nil {
		return false, err
	}

	if err := c.waitForHeartbeat(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// spawn starts `<self> daemon serve` detached from the current session with
// its output appended to the daemon log file.
func (c *Controller) spawn() error {
	if err := os.MkdirAll(filepath.Dir(c.paths.DaemonLog), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create daemon directory")
	}

	//nolint:gosec // G304: the log path derives from domain.Paths, not user input
	logFile, err := os.OpenFile(c.paths.DaemonLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.PrivateFilePerm)
	if err != nil {
		return zerr.Wrap(err, "failed to open daemon log")
	}

	//nolint:gosec // G204: executable is the current binary, args are fixed literals
	cmd := exec.Command(c.executable, "daemon", "serve")
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	if err := cmd.Start(); err != nil {
		_ = logFile.Close()
		return zerr.Wrap(err, "failed to spawn daemon")
	}

	go func() {
		_ = cmd.Wait()
		_ = logFile.Close()
	}()

	return nil
}

// waitForHeartbeat polls until the spawned daemon produces a fresh marker.
func (c *Controller) waitForHeartbeat(ctx context.Context) error {
	deadline := time.Now().Add(startPollTimeout)
	for time.Now().Before(deadline) {
		if c.IsRunning() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(startPollInterval):
		}
	}
	return zerr.With(zerr.Wrap(domain.ErrDaemonStartTimeout, ""), "log", c.paths.DaemonLog)
}

// Stop signals the daemon and waits for its heartbeat to go stale. The
// stopped return is false when there was nothing to stop.
func (c *Controller) Stop(ctx context.Context) (bool, error) {
	if !c.IsRunning() {
		return false, nil
	}

	pid, err := ReadPID(c.paths.PIDFile)
	if err != nil {
		return false, err
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return false, zerr.Wrap(domain.ErrPIDFile, err.Error())
	}
	if err := process.Signal(syscall.SIGTERM); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return false, zerr.With(zerr.Wrap(err, "failed to signal daemon"), "pid", pid)
	}

	if err := c.waitForStale(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// waitForStale polls until the marker goes stale or disappears.
func (c *Controller) waitForStale(ctx context.Context) error {
	deadline := time.Now().Add(stopPollTimeout)
	for time.Now().Before(deadline) {
		if !c.IsRunning() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(stopPollInterval):
		}
	}
	return domain.ErrDaemonStopTimeout
}

// Restart stops the daemon when it runs, then starts it.
func (c *Controller) Restart(ctx context.Context) error {
	if _, err := c.Stop(ctx); err != nil {
		return err
	}
	_, err := c.Start(ctx)
	return err
}

// Status reports liveness, the recorded PID, and the heartbeat age.
func (c *Controller) Status(_ context.Context) (ports.DaemonStatus, error) {
	var status ports.DaemonStatus

	if info, err := os.Stat(c.paths.Heartbeat); err == nil {
		status.HeartbeatAge = time.Since(info.ModTime())
		status.Running = fresh(info.ModTime(), time.Now())
	}

	if pid, err := ReadPID(c.paths.PIDFile); err == nil {
		status.PID = pid
	}

	return status, nil
}
