// Package logging provides structured logging using Go's standard library log/slog.
// It outputs logs in JSON format and scopes loggers per komposera component.
package logging
