package ports

import "context"

//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks

// Tracer creates spans for units of work.
type Tracer interface {
	// Start begins a new span and returns a context carrying it.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a single traced operation.
type Span interface {
	// End completes the span.
	End()
	// SetError records an error on the span.
	SetError(err error)
}
