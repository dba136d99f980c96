// Package detector provides environment detection for log format and
// terminal capability checks.
package detector

import (
	"os"

	"golang.org/x/term"
)

// LogMode represents the log output format.
type LogMode int

const (
	// LogModePretty renders human-readable console lines.
	LogModePretty LogMode = iota
	// LogModeJSON renders one JSON object per line.
	LogModeJSON
)

// DetectLogMode returns the recommended log format based on the
// environment. It checks if stderr is a TTY and if CI environment
// variables are set.
func DetectLogMode() LogMode {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return LogModeJSON
	}
	return LogModePretty
}

// ResolveLogMode applies the user override flag to auto-detection.
func ResolveLogMode(autoDetected LogMode, jsonFlag bool) LogMode {
	if jsonFlag {
		return LogModeJSON
	}
	return autoDetected
}

// InteractiveTerminal reports whether both stdin and stdout are
// terminals. The rule editor refuses to start without them.
func InteractiveTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
