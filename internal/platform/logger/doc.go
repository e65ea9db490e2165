// Package logger provides structured logging for the application.
//
// It builds on log/slog to emit JSON logs at a configurable level and
// offers context helpers so middleware can attach a request-scoped logger
// carrying a trace ID.
package logger
