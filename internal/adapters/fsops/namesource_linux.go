//go:build linux

package fsops

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// procNameSource resolves stored names by opening a path handle and
// reading the kernel's own record of it under /proc/self/fd.
type procNameSource struct{}

func newPlatformNameSource() NameSource {
	return procNameSource{}
}

func (procNameSource) ActualName(path string) (string, error) {
	fd, err := unix.Open(path, unix.O_PATH|unix.O_NOFOLLOW|unix.O_CLOEXEC, 0)
	if err != nil {
		return "", &os.PathError{Op: "open", Path: path, Err: err}
	}
	defer unix.Close(fd)

	resolved, err := os.Readlink(fmt.Sprintf("/proc/self/fd/%d", fd))
	if err != nil {
		// /proc may be unavailable in minimal environments.
		return scanParent(path)
	}
	return filepath.Base(resolved), nil
}
