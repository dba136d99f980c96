// Package ports defines the interfaces between the core and its adapters.
package ports

//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks

// Logger is the leveled diagnostics sink. Core logic only emits events and
// never depends on log content being read back.
type Logger interface {
	// Trace logs a high-volume diagnostic message.
	Trace(msg string)

	// Debug logs a development diagnostic message.
	Debug(msg string)

	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning message.
	Warn(msg string)

	// Error logs an error with its full cause chain.
	Error(err error)
}
