package telemetry

import (
	"context"

	"github.com/normd/normd/internal/core/ports"
)

var _ ports.Tracer = (*NoOpTracer)(nil)

// NoOpTracer satisfies ports.Tracer without recording anything.
type NoOpTracer struct{}

// NewNoOpTracer creates a tracer that discards all spans.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start returns the context unchanged and a span that does nothing.
func (t *NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noOpSpan{}
}

type noOpSpan struct{}

func (noOpSpan) End()           {}
func (noOpSpan) SetError(error) {}
