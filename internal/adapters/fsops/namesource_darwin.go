//go:build darwin

package fsops

import (
	"bytes"
	"os"
	"path/filepath"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// fgetpathNameSource resolves stored names through fcntl F_GETPATH,
// which returns the kernel's stored spelling of an open handle's path.
type fgetpathNameSource struct{}

func newPlatformNameSource() NameSource {
	return fgetpathNameSource{}
}

func (fgetpathNameSource) ActualName(path string) (string, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_SYMLINK|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return "", &os.PathError{Op: "open", Path: path, Err: err}
	}
	defer unix.Close(fd)

	var buf [unix.PathMax]byte
	_, _, errno := syscall.Syscall(syscall.SYS_FCNTL, uintptr(fd), unix.F_GETPATH, uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return scanParent(path)
	}

	resolved := string(buf[:])
	if i := bytes.IndexByte(buf[:], 0); i >= 0 {
		resolved = string(buf[:i])
	}
	return filepath.Base(resolved), nil
}
