package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/normd/normd/internal/core/domain"
	"github.com/normd/normd/internal/core/ports"
	"golang.org/x/sync/semaphore"
)

var _ ports.EventSink = (*Dispatcher)(nil)

const (
	// DefaultTickInterval is how often the pending map is drained.
	DefaultTickInterval = 50 * time.Millisecond
	// DefaultMaxInFlight caps concurrently running normalization tasks.
	DefaultMaxInFlight = 200
	// intakeCapacity bounds the raw event channel. A saturated channel
	// drops the newest event.
	intakeCapacity = 100
)

// Dispatcher coalesces watcher events per path and spawns one
// normalization task per distinct pending path on every tick. Within a
// window only the most recent event for a path survives; across paths
// there is no ordering guarantee.
type Dispatcher struct {
	matcher *Matcher
	engine  ports.Normalizer
	logger  ports.Logger
	tracer  ports.Tracer
	form    domain.Form

	tick    time.Duration
	sem     *semaphore.Weighted
	intake  chan ports.WatchEvent
	pending map[string]ports.WatchEvent
	wg      sync.WaitGroup
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithTickInterval overrides the drain interval.
func WithTickInterval(d time.Duration) Option {
	return func(disp *Dispatcher) { disp.tick = d }
}

// WithMaxInFlight overrides the concurrent task cap.
func WithMaxInFlight(n int64) Option {
	return func(disp *Dispatcher) { disp.sem = semaphore.NewWeighted(n) }
}

// NewDispatcher creates a Dispatcher normalizing matched events toward
// form.
func NewDispatcher(
	matcher *Matcher,
	engine ports.Normalizer,
	form domain.Form,
	logger ports.Logger,
	tracer ports.Tracer,
	opts ...Option,
) *Dispatcher {
	d := &Dispatcher{
		matcher: matcher,
		engine:  engine,
		logger:  logger,
		tracer:  tracer,
		form:    form,
		tick:    DefaultTickInterval,
		sem:     semaphore.NewWeighted(DefaultMaxInFlight),
		intake:  make(chan ports.WatchEvent, intakeCapacity),
		pending: make(map[string]ports.WatchEvent),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Offer hands a raw event to the dispatcher. It never blocks: when the
// intake channel is saturated the event is dropped and logged.
func (d *Dispatcher) Offer(event ports.WatchEvent) {
	select {
	case d.intake <- event:
	default:
		d.logger.Warn(fmt.Sprintf("event queue full, dropping %s", event.Path))
	}
}

// Run hosts the intake and drain loop until ctx ends, then waits for
// in-flight tasks.
func (d *Dispatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.wg.Wait()
			return nil
		case event := <-d.intake:
			d.admit(event)
		case <-ticker.C:
			d.drain(ctx)
		}
	}
}

// admit filters a raw event into the pending map. Events outside every
// watched scope, inside an ignored scope, or naming an entry that is
// already normalized are discarded here.
func (d *Dispatcher) admit(event ports.WatchEvent) {
	action, ok := d.matcher.Effective(event.Path)
	if !ok || action == domain.ActionIgnore {
		return
	}
	if d.form.IsNormal(filepath.Base(event.Path)) {
		return
	}
	d.pending[event.Path] = event
}

// drain spawns one task per distinct pending path and resets the map.
func (d *Dispatcher) drain(ctx context.Context) {
	if len(d.pending) == 0 {
		return
	}
	batch := d.pending
	d.pending = make(map[string]ports.WatchEvent)

	for path := range batch {
		d.spawn(ctx, path)
	}
}

// spawn runs one normalization task. The semaphore ticket is acquired
// inside the goroutine so a saturated pool never stalls the tick loop.
func (d *Dispatcher) spawn(ctx context.Context, path string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		if err := d.sem.Acquire(ctx, 1); err != nil {
			return
		}
		defer d.sem.Release(1)

		taskCtx, span := d.tracer.Start(ctx, "normalize")
		defer span.End()

		if err := d.engine.NormalizeEntry(taskCtx, path, d.form); err != nil {
			span.SetError(err)
			d.logger.Error(err)
		}
	}()
}
