// Package rules turns the raw configured path list into resolved,
// deduplicated watch rules and the active projection the daemon
// consumes.
package rules

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/normd/normd/internal/core/domain"
)

// Validator canonicalizes raw rule paths against a fixed home directory.
type Validator struct {
	home string
}

// NewValidator creates a Validator expanding "~" against home.
func NewValidator(home string) *Validator {
	return &Validator{home: home}
}

// Validate canonicalizes a raw path and reports its tentative status.
// The canonical result is empty for every non-Active status.
func (v *Validator) Validate(raw string) (string, domain.Status) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", domain.StatusNotFound
	}

	abs, err := filepath.Abs(v.expandHome(trimmed))
	if err != nil {
		return "", domain.StatusNotFound
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", statusFromFSError(err)
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return "", statusFromFSError(err)
	}
	if !info.IsDir() {
		return "", domain.StatusNotADirectory
	}

	return canonical, domain.StatusActive
}

// ValidateAll revalidates every rule in place, resetting positional
// references. Statuses are tentative until ResolveStatuses runs.
func (v *Validator) ValidateAll(rules domain.RuleSet) {
	for i := range rules {
		canonical, status := v.Validate(rules[i].Raw)
		rules[i].Canonical = canonical
		rules[i].Status = status
		rules[i].RedundantOf = domain.NoRef
		rules[i].Overrides = domain.NoRef
	}
}

func (v *Validator) expandHome(path string) string {
	if path == "~" {
		return v.home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(v.home, path[2:])
	}
	return path
}

func statusFromFSError(err error) domain.Status {
	if errors.Is(err, fs.ErrPermission) {
		return domain.StatusPermissionDenied
	}
	return domain.StatusNotFound
}
