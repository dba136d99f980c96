package domain

import "go.trai.ch/zerr"

var (
	// ErrPermanentEnvironment is returned when the process environment is
	// broken in a way no restart can fix (no home directory, no native watch
	// subsystem). The process entry point maps it to a clean exit so a
	// supervisor does not retry forever.
	ErrPermanentEnvironment = zerr.New("permanent environment failure")

	// ErrConfigRead is returned when the configuration file cannot be read.
	ErrConfigRead = zerr.New("failed to read configuration file")

	// ErrConfigParse is returned when the configuration file cannot be parsed.
	ErrConfigParse = zerr.New("failed to parse configuration file")

	// ErrConfigWrite is returned when the configuration file cannot be written.
	ErrConfigWrite = zerr.New("failed to write configuration file")

	// ErrInvalidAction is returned when a rule declares an unknown action.
	ErrInvalidAction = zerr.New("invalid action, expected 'watch' or 'ignore'")

	// ErrInvalidMode is returned when a rule declares an unknown mode.
	ErrInvalidMode = zerr.New("invalid mode, expected 'recursive' or 'children'")

	// ErrRuleIndex is returned when a rule position is outside the rule set.
	ErrRuleIndex = zerr.New("rule index out of range")

	// ErrWatcherInit is returned when the file system watch subsystem cannot
	// be initialized.
	ErrWatcherInit = zerr.New("failed to initialize file system watcher")

	// ErrNameResolve is returned when the on-disk name of an entry cannot be
	// determined.
	ErrNameResolve = zerr.New("failed to resolve on-disk name")

	// ErrRename is returned when renaming an entry fails for a reason other
	// than the entry having vanished.
	ErrRename = zerr.New("failed to rename entry")

	// ErrPathInvalid is returned when a one-shot conversion target does not
	// resolve to an existing path.
	ErrPathInvalid = zerr.New("path does not exist or cannot be resolved")

	// ErrDaemonNotRunning is returned when a control operation requires a
	// live daemon and the heartbeat marker is stale.
	ErrDaemonNotRunning = zerr.New("daemon is not running")

	// ErrDaemonStartTimeout is returned when a spawned daemon never produces
	// a fresh heartbeat.
	ErrDaemonStartTimeout = zerr.New("daemon did not become live in time")

	// ErrDaemonStopTimeout is returned when a signalled daemon keeps
	// refreshing its heartbeat.
	ErrDaemonStopTimeout = zerr.New("daemon did not shut down in time")

	// ErrPIDFile is returned when the daemon PID file cannot be read or is
	// malformed.
	ErrPIDFile = zerr.New("failed to read daemon pid file")

	// ErrHeartbeatWrite is returned when the liveness marker cannot be
	// refreshed.
	ErrHeartbeatWrite = zerr.New("failed to write heartbeat marker")

	// ErrNotATerminal is returned when the interactive editor is started
	// without a terminal attached.
	ErrNotATerminal = zerr.New("interactive editor requires a terminal")
)
