package ports

import (
	"context"

	"github.com/normd/normd/internal/core/domain"
)

//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file or directory was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
)

// String returns the lowercase name of the operation.
func (o WatchOp) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpWrite:
		return "write"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// WatchEvent represents a file system event from the watcher.
type WatchEvent struct {
	// Path is the absolute path of the file or directory that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// EventSink accepts raw events from the watcher's delivery context.
// Offer must never block: an implementation that cannot accept an
// event drops it.
type EventSink interface {
	Offer(event WatchEvent)
}

// Watcher defines the interface for watching file system changes.
type Watcher interface {
	// Start registers watches for every watch-action entry. A
	// registration failure for a single entry is logged and skipped
	// without affecting the others.
	Start(ctx context.Context, entries []domain.ActiveEntry) error
	// Run pumps events to the sink until the context ends.
	Run(ctx context.Context) error
	// Stop stops the watcher and releases all resources.
	Stop() error
}
