package logging

import "strings"

// Level represents log levels
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name, falling back to InfoLevel for anything it does not recognise.
func ParseLevel(level string) Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DebugLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Fields represents structured logging fields
type Fields map[string]any

// Logger is the logging surface every package in this module writes through
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)

	// WithFields returns a logger with preset fields
	WithFields(fields Fields) Logger

	// SetLevel sets the minimum log level
	SetLevel(level Level)
}

// OrNop returns logger, or a NoOpLogger when logger is nil.
func OrNop(logger Logger) Logger {
	if logger == nil {
		return NoOpLogger{}
	}
	return logger
}

// NoOpLogger discards everything. Tests and library callers that bring no logger get this one.
type NoOpLogger struct{}

func (NoOpLogger) Debug(msg string, fields ...Fields)            {}
func (NoOpLogger) Info(msg string, fields ...Fields)             {}
func (NoOpLogger) Warn(msg string, fields ...Fields)             {}
func (NoOpLogger) Error(err error, msg string, fields ...Fields) {}
func (n NoOpLogger) WithFields(fields Fields) Logger             { return n }
func (NoOpLogger) SetLevel(level Level)                          {}
