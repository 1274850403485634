// Package logger exposes the process-wide Logger used by the processor, services,
// CLI and REST API, backed by log/slog with console or rotating file output.
package logger

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
