// Package watcher implements file system watching for the normalization daemon.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"

	"github.com/normd/normd/internal/core/domain"
	"github.com/normd/normd/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

// shouldSkipDirectories are directories that should not be watched.
var shouldSkipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

// Watcher implements file system watching using fsnotify. Registered
// directories feed converted events into the sink; the sink decides which
// of them lead to work.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	sink      ports.EventSink

	// recursive roots absorb directories created after Start.
	recursive []string
}

// NewWatcher creates a new file system watcher delivering into sink.
func NewWatcher(log ports.Logger, sink ports.EventSink) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(domain.ErrWatcherInit, err.Error())
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		logger:    log,
		sink:      sink,
	}, nil
}

// Start registers every entry with the kernel watcher. An entry that cannot
// be registered is logged and skipped; the remaining entries stay watched.
func (w *Watcher) Start(_ context.Context, entries []domain.ActiveEntry) error {
	for _, entry := range entries {
		if err := w.watchEntry(entry); err != nil {
			w.logger.Warn(fmt.Sprintf("cannot watch %s: %v", entry.Canonical, err))
		}
	}
	return nil
}

// watchEntry adds the directories covered by one entry. Children mode
// watches only the directory itself; recursive mode walks the tree.
func (w *Watcher) watchEntry(entry domain.ActiveEntry) error {
	if entry.Mode == domain.ModeChildren {
		return w.fsWatcher.Add(entry.Canonical)
	}

	added := 0
	for dir := range w.watchRecursively(entry.Canonical) {
		if err := w.fsWatcher.Add(dir); err != nil {
			if dir == entry.Canonical {
				return err
			}
			w.logger.Warn(fmt.Sprintf("cannot watch %s: %v", dir, err))
			continue
		}
		added++
	}
	if added == 0 {
		return fmt.Errorf("no watchable directories under %s", entry.Canonical)
	}

	w.recursive = append(w.recursive, entry.Canonical)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Run pumps kernel events into the sink until the context is canceled or
// the watcher is stopped. Offer never blocks, so the pump keeps up with the
// kernel queue regardless of downstream pressure.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}

			watchEvent := convertEvent(event)
			if watchEvent == nil {
				continue
			}

			w.logger.Trace(fmt.Sprintf("%s %s", watchEvent.Operation, watchEvent.Path))
			w.sink.Offer(*watchEvent)

			// A directory created under a recursive root widens the watch.
			if event.Op&fsnotify.Create == fsnotify.Create {
				w.maybeWatchNewDirectory(event.Name)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn(fmt.Sprintf("file system error: %v", err))
		}
	}
}

// maybeWatchNewDirectory registers a freshly created directory tree when it
// lies under a recursive root. Children-mode entries never grow.
func (w *Watcher) maybeWatchNewDirectory(path string) {
	if !w.underRecursiveRoot(path) {
		return
	}

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || shouldSkipDirectories[info.Name()] {
		return
	}

	for dir := range w.watchRecursively(path) {
		if err := w.fsWatcher.Add(dir); err != nil {
			w.logger.Warn(fmt.Sprintf("cannot watch %s: %v", dir, err))
		}
	}
}

func (w *Watcher) underRecursiveRoot(path string) bool {
	for _, root := range w.recursive {
		prefix := root
		if !strings.HasSuffix(prefix, string(filepath.Separator)) {
			prefix += string(filepath.Separator)
		}
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// watchRecursively walks the directory tree and yields all directories.
func (w *Watcher) watchRecursively(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Continue walking even if there's an error accessing a directory.
				return nil //nolint:nilerr // This is intentional - we want to skip problematic directories
			}
			if d.IsDir() {
				if path != root && shouldSkipDirectories[d.Name()] {
					return fs.SkipDir
				}
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

// convertEvent converts an fsnotify event to a ports.WatchEvent.
// Chmod-only events carry no name change and are dropped.
func convertEvent(event fsnotify.Event) *ports.WatchEvent {
	path := event.Name

	if event.Op&fsnotify.Write == fsnotify.Write {
		return &ports.WatchEvent{
			Path:      path,
			Operation: ports.OpWrite,
		}
	}

	if event.Op&fsnotify.Create == fsnotify.Create {
		return &ports.WatchEvent{
			Path:      path,
			Operation: ports.OpCreate,
		}
	}

	if event.Op&fsnotify.Remove == fsnotify.Remove {
		return &ports.WatchEvent{
			Path:      path,
			Operation: ports.OpRemove,
		}
	}

	if event.Op&fsnotify.Rename == fsnotify.Rename {
		return &ports.WatchEvent{
			Path:      path,
			Operation: ports.OpRename,
		}
	}

	return nil
}
