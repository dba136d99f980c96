package telemetry

import (
	"context"
	"fmt"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/normd/normd/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*logProcessor)(nil)

// logProcessor reports completed spans to the logger. OnEnd runs
// synchronously on the goroutine that ends the span.
type logProcessor struct {
	logger ports.Logger
}

func (p *logProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

func (p *logProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	elapsed := s.EndTime().Sub(s.StartTime())
	p.logger.Debug(fmt.Sprintf("%s took %s", s.Name(), elapsed.Round(time.Microsecond)))
}

func (p *logProcessor) Shutdown(_ context.Context) error { return nil }

func (p *logProcessor) ForceFlush(_ context.Context) error { return nil }
