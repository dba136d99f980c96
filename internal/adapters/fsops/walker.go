package fsops

import (
	"context"
	"os"
	"path/filepath"

	"github.com/normd/normd/internal/core/domain"
	"go.trai.ch/zerr"
)

// ConvertChildren normalizes the direct children of the directory at
// path. The directory's own name is left untouched. Per-entry failures
// are logged and skipped.
func (e *Engine) ConvertChildren(_ context.Context, path string, form domain.Form) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return zerr.Wrap(err, "failed to list "+path)
	}

	for _, entry := range entries {
		e.renameInPlace(path, entry.Name(), form)
	}
	return nil
}

// ConvertTree normalizes every entry below path, breadth first, level
// by level. Each directory is renamed before it is descended into so
// child paths stay valid. The root's own name is left untouched.
// Symlinks are never followed and the walk never crosses onto another
// device.
func (e *Engine) ConvertTree(ctx context.Context, path string, form domain.Form) error {
	rootInfo, err := os.Stat(path)
	if err != nil {
		return zerr.Wrap(err, "failed to stat "+path)
	}
	rootDev, haveDev := deviceOf(rootInfo)

	queue := []string{path}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		dir := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(dir)
		if err != nil {
			if dir == path {
				return zerr.Wrap(err, "failed to list "+path)
			}
			e.logger.Error(zerr.Wrap(err, "failed to list "+dir))
			continue
		}

		for _, entry := range entries {
			// Identity must be read before the rename invalidates
			// the listed name.
			info, err := entry.Info()
			if err != nil {
				continue
			}

			name, exists := e.renameInPlace(dir, entry.Name(), form)
			if !exists || !info.IsDir() {
				continue
			}
			if haveDev {
				if dev, ok := deviceOf(info); ok && dev != rootDev {
					continue
				}
			}
			queue = append(queue, filepath.Join(dir, name))
		}
	}
	return nil
}
