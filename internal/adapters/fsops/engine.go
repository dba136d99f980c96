package fsops

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/normd/normd/internal/core/domain"
	"github.com/normd/normd/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Normalizer = (*Engine)(nil)
	_ ports.Converter  = (*Engine)(nil)
)

// Engine renames file system entries between normalization forms.
type Engine struct {
	names  NameSource
	home   string
	logger ports.Logger
}

// NewEngine creates an Engine. home is only used to abbreviate logged
// paths.
func NewEngine(names NameSource, home string, logger ports.Logger) *Engine {
	return &Engine{names: names, home: home, logger: logger}
}

// NormalizeEntry renames the entry at path so its basename satisfies
// form. The stored name is read through the NameSource first; the
// spelling of path itself is only a locator. A vanished entry is not
// an error.
func (e *Engine) NormalizeEntry(_ context.Context, path string, form domain.Form) error {
	actual, err := e.names.ActualName(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrNameResolve.Error()), "path", path)
	}
	if form.IsNormal(actual) {
		return nil
	}

	dir := filepath.Dir(path)
	from := filepath.Join(dir, actual)
	to := filepath.Join(dir, form.Apply(actual))
	if err := os.Rename(from, to); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		wrapped := zerr.Wrap(err, domain.ErrRename.Error())
		wrapped = zerr.With(wrapped, "from", from)
		wrapped = zerr.With(wrapped, "to", to)
		return wrapped
	}

	e.logger.Info(fmt.Sprintf("%s: %s", form.Transition(), domain.AbbreviateHome(to, e.home)))
	return nil
}

// ConvertEntry normalizes the basename of the entry at path.
func (e *Engine) ConvertEntry(ctx context.Context, path string, form domain.Form) error {
	return e.NormalizeEntry(ctx, path, form)
}

// renameInPlace renames one directory entry to its normalized
// spelling. name comes from a directory listing and is authoritative.
// It reports the entry's final name and whether the entry still
// exists; rename failures are logged and leave the old name standing.
func (e *Engine) renameInPlace(dir, name string, form domain.Form) (string, bool) {
	if form.IsNormal(name) {
		return name, true
	}

	from := filepath.Join(dir, name)
	to := filepath.Join(dir, form.Apply(name))
	if err := os.Rename(from, to); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return name, false
		}
		wrapped := zerr.Wrap(err, domain.ErrRename.Error())
		wrapped = zerr.With(wrapped, "from", from)
		wrapped = zerr.With(wrapped, "to", to)
		e.logger.Error(wrapped)
		return name, true
	}

	e.logger.Info(fmt.Sprintf("%s: %s", form.Transition(), domain.AbbreviateHome(to, e.home)))
	return form.Apply(name), true
}
