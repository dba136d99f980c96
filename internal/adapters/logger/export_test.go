// export_test.go widens access to the error rendering helpers for the
// golden tests.
package logger

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
