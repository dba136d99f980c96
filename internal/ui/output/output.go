// Package output constructs termenv outputs with the color rules every
// printing surface shares.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile selects the richest color profile the environment supports.
// NO_COLOR always degrades to plain text.
func Profile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ProfileANSI behaves like Profile but never exceeds basic ANSI colors,
// so line-oriented output stays readable in CI pipelines.
func ProfileANSI() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New wraps w in a termenv.Output using Profile. A nil writer falls
// back to stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(Profile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
