package daemon

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/zerr"

	"github.com/normd/normd/internal/core/domain"
)

// WritePID records the current process id at path. The serving daemon
// writes its own PID so the file is authoritative even when the spawning
// controller has long exited.
func WritePID(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to write daemon pid file")
	}
	pid := strconv.Itoa(os.Getpid())
	if err := os.WriteFile(path, []byte(pid+"\n"), domain.PrivateFilePerm); err != nil {
		return zerr.Wrap(err, "failed to write daemon pid file")
	}
	return nil
}

// ReadPID returns the process id recorded at path.
func ReadPID(path string) (int, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // G304: path derives from domain.Paths
	if err != nil {
		return 0, zerr.Wrap(domain.ErrPIDFile, err.Error())
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, zerr.Wrap(domain.ErrPIDFile, err.Error())
	}
	return pid, nil
}

// RemovePID deletes the PID file, ignoring a missing one.
func RemovePID(path string) {
	_ = os.Remove(path)
}
