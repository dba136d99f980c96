// Package linear renders the rule list as plain lines for
// non-interactive environments.
package linear

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/normd/normd/internal/core/domain"
	"github.com/normd/normd/internal/ui/output"
)

// Renderer writes the resolved rule list one line per rule. It is the
// non-interactive counterpart of the editor's list view.
type Renderer struct {
	w   io.Writer
	out *termenv.Output
}

// NewRenderer creates a Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{
		w:   w,
		out: termenv.NewOutput(w, termenv.WithProfile(output.ProfileANSI())),
	}
}

// Render prints one line per rule: position, status, action, mode, and
// the raw path, plus the positional annotation the rule carries.
func (r *Renderer) Render(rules domain.RuleSet) {
	if len(rules) == 0 {
		_, _ = fmt.Fprintln(r.w, "no rules configured")
		return
	}

	for i, rule := range rules {
		line := fmt.Sprintf("%2d %s %-9s %-6s %-9s %s",
			i, r.symbol(rule.Status), rule.Status, rule.Action, rule.Mode, rule.Raw)
		if note := annotation(rule); note != "" {
			line += " " + r.out.String(note).Faint().String()
		}
		_, _ = fmt.Fprintln(r.w, line)
	}
}

func (r *Renderer) symbol(status domain.Status) string {
	s := r.out.String(status.Symbol())
	switch status {
	case domain.StatusActive:
		return s.Foreground(termenv.ANSIGreen).String()
	case domain.StatusRedundant:
		return s.Faint().String()
	default:
		return s.Foreground(termenv.ANSIRed).String()
	}
}

func annotation(rule domain.Rule) string {
	switch {
	case rule.RedundantOf != domain.NoRef:
		return fmt.Sprintf("(redundant of %d)", rule.RedundantOf)
	case rule.Overrides != domain.NoRef:
		return fmt.Sprintf("(overrides %d)", rule.Overrides)
	default:
		return ""
	}
}
