package domain

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// AppDirName names the per-user configuration and cache directories.
	AppDirName = "normd"

	// ConfigFileName is the configuration file inside the config directory.
	ConfigFileName = "config.yaml"

	// ConfigPathEnv overrides the configuration file location when set.
	ConfigPathEnv = "NORMD_CONFIG"

	// HeartbeatFileName is the liveness marker inside the cache directory.
	HeartbeatFileName = "heartbeat"

	// PIDFileName records the daemon process id.
	PIDFileName = "daemon.pid"

	// DaemonLogFileName receives the detached daemon's output.
	DaemonLogFileName = "daemon.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// Paths holds every filesystem location the process uses. It is resolved
// once at startup and passed into constructors rather than consulted as
// ambient global state.
type Paths struct {
	Home      string
	Config    string
	Heartbeat string
	PIDFile   string
	DaemonLog string
}

// ResolvePaths resolves the process paths from the environment. A missing
// home directory is a permanent environment failure.
func ResolvePaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, zerr.Wrap(ErrPermanentEnvironment, "home directory not resolvable")
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	appCache := filepath.Join(cacheDir, AppDirName)

	return Paths{
		Home:      home,
		Config:    configPath(home),
		Heartbeat: filepath.Join(appCache, HeartbeatFileName),
		PIDFile:   filepath.Join(appCache, PIDFileName),
		DaemonLog: filepath.Join(appCache, DaemonLogFileName),
	}, nil
}

// configPath honors the environment override before falling back to the
// default location under the user's home.
func configPath(home string) string {
	if override := strings.TrimSpace(os.Getenv(ConfigPathEnv)); override != "" {
		return override
	}
	return filepath.Join(home, ".config", AppDirName, ConfigFileName)
}

// AbbreviateHome replaces a leading home directory with "~" for display.
func AbbreviateHome(path, home string) string {
	if home == "" || path == "" {
		return path
	}
	if path == home {
		return "~"
	}
	prefix := home + string(filepath.Separator)
	if strings.HasPrefix(path, prefix) {
		return "~" + string(filepath.Separator) + path[len(prefix):]
	}
	return path
}
