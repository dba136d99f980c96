// Package app implements the application layer for normd.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/normd/normd/internal/adapters/daemon"
	"github.com/normd/normd/internal/adapters/linear"
	"github.com/normd/normd/internal/adapters/tui"
	"github.com/normd/normd/internal/adapters/watcher"
	"github.com/normd/normd/internal/core/domain"
	"github.com/normd/normd/internal/core/ports"
	"github.com/normd/normd/internal/engine/pipeline"
	"github.com/normd/normd/internal/engine/rules"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// WatcherFactory builds the file system watcher for a daemon run.
type WatcherFactory func(log ports.Logger, sink ports.EventSink) (ports.Watcher, error)

// App represents the main application logic.
type App struct {
	store      ports.ConfigStore
	converter  ports.Converter
	normalizer ports.Normalizer
	controller ports.DaemonController
	logger     ports.Logger
	tracer     ports.Tracer
	paths      domain.Paths

	stdout      io.Writer
	newWatcher  WatcherFactory
	teaOptions  []tea.ProgramOption
	disableTick bool
}

// New creates a new App instance.
func New(
	store ports.ConfigStore,
	converter ports.Converter,
	normalizer ports.Normalizer,
	controller ports.DaemonController,
	log ports.Logger,
	tracer ports.Tracer,
	paths domain.Paths,
) *App {
	return &App{
		store:      store,
		converter:  converter,
		normalizer: normalizer,
		controller: controller,
		logger:     log,
		tracer:     tracer,
		paths:      paths,
		stdout:     os.Stdout,
		newWatcher: defaultWatcherFactory,
	}
}

func defaultWatcherFactory(log ports.Logger, sink ports.EventSink) (ports.Watcher, error) {
	w, err := watcher.NewWatcher(log, sink)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// WithStdout redirects report output such as the rule table.
// This is primarily used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithWatcherFactory replaces the file system watcher constructor.
// This is primarily used for testing.
func (a *App) WithWatcherFactory(f WatcherFactory) *App {
	a.newWatcher = f
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithDisableTick disables the editor's periodic refresh loops.
// This is primarily used for testing to keep frames deterministic.
func (a *App) WithDisableTick() *App {
	a.disableTick = true
	return a
}

// ConvertOptions configuration for the Convert method.
type ConvertOptions struct {
	Directory bool
	Contents  bool
	Recursive bool
	Reverse   bool
}

// Convert applies a one-shot conversion to path. A directory converts
// its direct children unless the directory entry itself or the whole
// tree is requested; a plain file converts itself.
func (a *App) Convert(ctx context.Context, path string, opts ConvertOptions) error {
	ctx, span := a.tracer.Start(ctx, "convert")
	defer span.End()

	form := domain.FormNFC
	if opts.Reverse {
		form = domain.FormNFD
	}

	err := func() error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrPathInvalid, err.Error()), "path", path)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrPathInvalid, err.Error()), "path", path)
		}

		switch {
		case !info.IsDir() || opts.Directory:
			return a.converter.ConvertEntry(ctx, abs, form)
		case opts.Recursive:
			return a.converter.ConvertTree(ctx, abs, form)
		default:
			return a.converter.ConvertChildren(ctx, abs, form)
		}
	}()
	if err != nil {
		span.SetError(err)
	}
	return err
}

// ServeDaemon runs the watch pipeline in the foreground until ctx ends.
// A broken configuration watches nothing but never prevents startup;
// only an unavailable watch subsystem is fatal.
func (a *App) ServeDaemon(ctx context.Context) error {
	set, err := a.store.Load()
	if err != nil {
		a.logger.Error(err)
		set = domain.RuleSet{}
	}
	validator := rules.NewValidator(a.paths.Home)
	validator.ValidateAll(set)
	rules.ResolveStatuses(set)
	a.reportSkipped(set)

	entries := rules.ActiveEntries(set)
	dispatcher := pipeline.NewDispatcher(
		pipeline.NewMatcher(entries),
		a.normalizer,
		domain.FormNFC,
		a.logger,
		a.tracer,
	)

	w, err := a.newWatcher(a.logger, dispatcher)
	if err != nil {
		return errors.Join(domain.ErrPermanentEnvironment, err)
	}
	defer func() {
		_ = w.Stop()
	}()

	targets := watchTargets(entries)
	if err := w.Start(ctx, targets); err != nil {
		return err
	}
	a.logger.Debug("configuration loaded from " + a.store.Path())
	a.logger.Info(fmt.Sprintf("watching %d configured paths", len(targets)))

	if err := daemon.WritePID(a.paths.PIDFile); err != nil {
		a.logger.Warn(fmt.Sprintf("cannot record pid: %v", err))
	}
	defer daemon.RemovePID(a.paths.PIDFile)

	heartbeat := daemon.NewHeartbeat(a.paths.Heartbeat)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return w.Run(ctx)
	})
	g.Go(func() error {
		return dispatcher.Run(ctx)
	})
	g.Go(func() error {
		return heartbeat.Run(ctx)
	})
	return g.Wait()
}

// reportSkipped logs every configured rule that is not in effect.
func (a *App) reportSkipped(set domain.RuleSet) {
	for _, r := range set {
		switch r.Status {
		case domain.StatusActive:
		case domain.StatusRedundant:
			a.logger.Debug(fmt.Sprintf("%s is redundant", r.Raw))
		default:
			a.logger.Warn(fmt.Sprintf("not watching %s: %s", r.Raw, r.Status))
		}
	}
}

// watchTargets filters the snapshot to the entries that receive kernel
// watches. Ignore entries stay visible to the matcher but are never
// registered.
func watchTargets(entries []domain.ActiveEntry) []domain.ActiveEntry {
	targets := make([]domain.ActiveEntry, 0, len(entries))
	for _, e := range entries {
		if e.Action == domain.ActionWatch {
			targets = append(targets, e)
		}
	}
	return targets
}

// StartDaemon spawns the background daemon unless one is running.
func (a *App) StartDaemon(ctx context.Context) error {
	started, err := a.controller.Start(ctx)
	if err != nil {
		return err
	}
	if !started {
		a.logger.Info("daemon already running")
		return nil
	}
	a.logger.Info("daemon started")
	return nil
}

// StopDaemon stops the background daemon if one is running.
func (a *App) StopDaemon(ctx context.Context) error {
	stopped, err := a.controller.Stop(ctx)
	if err != nil {
		return err
	}
	if !stopped {
		a.logger.Info("daemon is not running")
		return nil
	}
	a.logger.Info("daemon stopped")
	return nil
}

// RestartDaemon stops the daemon if it is running, then starts it.
func (a *App) RestartDaemon(ctx context.Context) error {
	if err := a.controller.Restart(ctx); err != nil {
		return err
	}
	a.logger.Info("daemon restarted")
	return nil
}

// DaemonStatus prints the daemon liveness report.
func (a *App) DaemonStatus(ctx context.Context) error {
	status, err := a.controller.Status(ctx)
	if err != nil {
		return err
	}
	switch {
	case !status.Running:
		_, _ = fmt.Fprintln(a.stdout, "daemon is not running")
	case status.PID > 0:
		_, _ = fmt.Fprintf(a.stdout, "daemon running (pid %d, heartbeat %s ago)\n",
			status.PID, status.HeartbeatAge.Round(time.Millisecond))
	default:
		_, _ = fmt.Fprintf(a.stdout, "daemon running (heartbeat %s ago)\n",
			status.HeartbeatAge.Round(time.Millisecond))
	}
	return nil
}

// Editor opens the rule set for editing with the current file loaded.
func (a *App) Editor() (*Editor, error) {
	ed := NewEditor(a.store, rules.NewValidator(a.paths.Home))
	if err := ed.Reload(); err != nil {
		return nil, err
	}
	return ed, nil
}

// ConfigList prints the resolved rule table.
func (a *App) ConfigList(ctx context.Context) error {
	_, span := a.tracer.Start(ctx, "config.list")
	defer span.End()

	ed, err := a.Editor()
	if err != nil {
		span.SetError(err)
		return err
	}
	linear.NewRenderer(a.stdout).Render(ed.Rules())
	return nil
}

// ConfigAdd appends a rule and persists the set.
func (a *App) ConfigAdd(ctx context.Context, raw string, ignore, children bool) error {
	return a.mutateConfig(ctx, "config.add", func(ed *Editor) error {
		action := domain.ActionWatch
		if ignore {
			action = domain.ActionIgnore
		}
		mode := domain.ModeRecursive
		if children {
			mode = domain.ModeChildren
		}
		ed.Add(raw, action, mode)
		a.logger.Info(fmt.Sprintf("added %s", raw))
		return nil
	})
}

// ConfigRemove deletes the rule at index and persists the set.
func (a *App) ConfigRemove(ctx context.Context, index int) error {
	return a.mutateConfig(ctx, "config.remove", func(ed *Editor) error {
		return ed.Remove(index)
	})
}

// ConfigMove swaps the rule at index with a neighbor and persists the
// set.
func (a *App) ConfigMove(ctx context.Context, index, delta int) error {
	return a.mutateConfig(ctx, "config.move", func(ed *Editor) error {
		return ed.Move(index, delta)
	})
}

// ConfigSort orders the rules by raw path and persists the set.
func (a *App) ConfigSort(ctx context.Context) error {
	return a.mutateConfig(ctx, "config.sort", func(ed *Editor) error {
		ed.Sort()
		return nil
	})
}

// ConfigToggleAction flips the action of the rule at index and persists
// the set.
func (a *App) ConfigToggleAction(ctx context.Context, index int) error {
	return a.mutateConfig(ctx, "config.toggle-action", func(ed *Editor) error {
		return ed.ToggleAction(index)
	})
}

// ConfigToggleMode flips the mode of the rule at index and persists the
// set.
func (a *App) ConfigToggleMode(ctx context.Context, index int) error {
	return a.mutateConfig(ctx, "config.toggle-mode", func(ed *Editor) error {
		return ed.ToggleMode(index)
	})
}

// mutateConfig loads the rule set, applies op, and saves the result.
func (a *App) mutateConfig(ctx context.Context, name string, op func(*Editor) error) error {
	_, span := a.tracer.Start(ctx, name)
	defer span.End()

	err := func() error {
		ed, err := a.Editor()
		if err != nil {
			return err
		}
		if err := op(ed); err != nil {
			return err
		}
		return ed.Save()
	}()
	if err != nil {
		span.SetError(err)
	}
	return err
}

// Edit runs the interactive rule editor until the user quits.
func (a *App) Edit(ctx context.Context) error {
	ed, err := a.Editor()
	if err != nil {
		return err
	}

	model := tui.NewModel(ed, os.Stderr)
	if a.disableTick {
		model = model.WithDisableTick()
	}
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
	if _, err := tea.NewProgram(&model, opts...).Run(); err != nil {
		return zerr.Wrap(err, "editor terminated abnormally")
	}
	return nil
}
