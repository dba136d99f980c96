//go:build unix

package fsops

import (
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"golang.org/x/sys/unix"
)

// scanNameSource resolves stored names by listing the parent directory
// and matching device and inode identity. Works everywhere, costs one
// directory read per lookup.
type scanNameSource struct{}

func (scanNameSource) ActualName(path string) (string, error) {
	return scanParent(path)
}

// scanParent returns the stored basename of path by identity match
// against the parent directory listing. The identity survives a
// concurrent rename, so the name returned is current even when the
// path spelling is already stale.
func scanParent(path string) (string, error) {
	var target unix.Stat_t
	if err := unix.Lstat(path, &target); err != nil {
		return "", &os.PathError{Op: "lstat", Path: path, Err: err}
	}

	parent := filepath.Dir(path)
	entries, err := os.ReadDir(parent)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		var st unix.Stat_t
		if err := unix.Lstat(filepath.Join(parent, entry.Name()), &st); err != nil {
			continue
		}
		if st.Dev == target.Dev && st.Ino == target.Ino {
			return entry.Name(), nil
		}
	}
	return "", &os.PathError{Op: "scan", Path: path, Err: fs.ErrNotExist}
}

// deviceOf extracts the device ID backing info.
func deviceOf(info fs.FileInfo) (uint64, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}
	return uint64(st.Dev), true
}
