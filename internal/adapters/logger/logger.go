// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/normd/normd/internal/core/ports"
)

// LevelTrace sits below slog.LevelDebug and carries per-event diagnostics
// such as individual watcher events.
const LevelTrace = slog.Level(-8)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error (go.trai.ch/zerr v0.3.0+).
// If zerr's API changes, errors will gracefully fall back to standard error handling.
type messager interface {
	Message() string
}

// metadater describes an error carrying structured key/value context,
// matching zerr's Metadata() accessor.
type metadater interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of a rendered error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	level    *slog.LevelVar
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger instance logging to stderr at info level.
func New() ports.Logger {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)

	l := &Logger{
		level:  level,
		output: os.Stderr,
	}
	l.logger = slog.New(l.handler(os.Stderr))
	return l
}

// handler builds the slog handler for the current mode. The level var is
// shared across rebuilds so SetLevel affects every handler ever built.
func (l *Logger) handler(w io.Writer) slog.Handler {
	if l.jsonMode {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: l.level,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.LevelKey {
					if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
						a.Value = slog.StringValue("TRACE")
					}
				}
				return a
			},
		})
	}
	return NewPrettyHandler(w, &slog.HandlerOptions{Level: l.level})
}

// SetOutput updates the logger's output destination.
// This is thread-safe and updates the underlying slog handler.
// It preserves the current JSON mode and level settings.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.handler(w))
}

// SetJSON switches between JSON and pretty logging.
// When enabled, logs are output as JSON. When disabled, pretty-printed logs are used.
// The output destination and level are preserved.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable

	w := l.output
	if w == nil {
		w = os.Stderr
	}
	l.logger = slog.New(l.handler(w))
}

// SetLevel adjusts the minimum level of all current and future handlers.
func (l *Logger) SetLevel(level slog.Level) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.level.Set(level)
}

// Trace logs a high-volume diagnostic message.
func (l *Logger) Trace(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Log(context.Background(), LevelTrace, msg)
}

// Debug logs a development diagnostic message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its full cause chain.
// In JSON mode the error is attached as a structured attribute; otherwise
// the chain is rendered hierarchically with one line per cause.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// collectErrorEntries walks the error chain and produces one entry per
// logical error. zerr errors contribute their own message and metadata;
// the first non-zerr error contributes its full Error() text and ends
// the walk. A metadata attachment repeats the message of the error it
// annotates and is folded into that error's entry.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry

	current := err
	for current != nil {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		msg := m.Message()
		var meta map[string]any
		if md, ok := current.(metadater); ok {
			meta = md.Metadata()
		}

		if n := len(entries); n > 0 && entries[n-1].Message == msg {
			entries[n-1].Metadata = mergeMetadata(entries[n-1].Metadata, meta)
		} else {
			entries = append(entries, ErrorEntry{Message: msg, Metadata: meta})
		}
		current = errors.Unwrap(current)
	}

	return entries
}

// mergeMetadata keeps existing keys and adds missing ones. The outermost
// attachment wins on conflict since the chain is walked outside in.
func mergeMetadata(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		if _, taken := dst[k]; !taken {
			dst[k] = v
		}
	}
	return dst
}

// formatErrorEntries renders collected entries hierarchically. The first
// entry becomes the "Error:" line, the rest a "Caused by:" list. Multiline
// messages keep their inner lines aligned under the first, metadata lines
// follow their entry sorted by key. No trailing newline is emitted.
func formatErrorEntries(entries []ErrorEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var out []string

	for i, entry := range entries {
		lines := strings.Split(entry.Message, "\n")

		if i == 0 {
			out = append(out, "Error: "+lines[0])
			for _, line := range lines[1:] {
				out = append(out, "       "+line)
			}
			out = append(out, metadataLines(entry.Metadata, "       ")...)
			continue
		}

		if i == 1 {
			out = append(out, "", "  Caused by:")
		}
		out = append(out, "    → "+lines[0])
		for _, line := range lines[1:] {
			out = append(out, "      "+line)
		}
		out = append(out, metadataLines(entry.Metadata, "      ")...)
	}

	return strings.Join(out, "\n")
}

func metadataLines(meta map[string]any, indent string) []string {
	if len(meta) == 0 {
		return nil
	}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, meta[k]))
	}
	return lines
}
