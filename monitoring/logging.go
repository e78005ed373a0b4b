package monitoring

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// Logger emits structured events.
type Logger interface {
	Log(ctx context.Context, level LogLevel, eventType string, message string, details map[string]interface{})
}

type logger struct {
	l *log.Logger
}

// NewLogger returns a Logger writing to stderr, prefixed with component.
func NewLogger(component string) Logger {
	return NewWriterLogger(os.Stderr, component, DEBUG)
}

// NewWriterLogger returns a Logger writing to w. Events below minLevel are dropped.
func NewWriterLogger(w io.Writer, component string, minLevel LogLevel) Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           minLevel.charm(),
		Prefix:          component,
	})
	return &logger{l: l}
}

func (l *logger) Log(_ context.Context, level LogLevel, eventType string, message string, details map[string]interface{}) {
	keyvals := make([]interface{}, 0, 2+2*len(details))
	keyvals = append(keyvals, "event", eventType)
	for k, v := range details {
		keyvals = append(keyvals, k, v)
	}
	l.l.Log(level.charm(), message, keyvals...)
}

type nopLogger struct{}

// NewNopLogger returns a Logger that discards every event.
func NewNopLogger() Logger {
	return nopLogger{}
}

func (nopLogger) Log(context.Context, LogLevel, string, string, map[string]interface{}) {}

func (l LogLevel) charm() log.Level {
	switch l {
	case DEBUG:
		return log.DebugLevel
	case INFO:
		return log.InfoLevel
	case WARN:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
