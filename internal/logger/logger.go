// Package logger provides the structured logger shared by the CLI, the
// draft stores and the browser.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	// Component tags every entry with the emitting subsystem.
	Component string
	// RunID correlates the entries of one invocation. Generated when empty.
	RunID string
}

// Logger wraps zerolog to provide a simplified API for the application.
type Logger struct {
	// scope carries run_id and caller fields; base adds the component on top.
	scope     zerolog.Logger
	base      zerolog.Logger
	component string
	runID     string
}

// New creates a configured Logger instance based on Options. Entries go to
// stderr unless a writer is supplied.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	scope := zerolog.New(output).Level(level).With().Timestamp().Str("run_id", runID).Logger()
	return newScoped(scope, opts.Component, runID), nil
}

func newScoped(scope zerolog.Logger, component, runID string) *Logger {
	base := scope
	if component != "" {
		base = scope.With().Str("component", component).Logger()
	}
	return &Logger{scope: scope, base: base, component: component, runID: runID}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return newScoped(zerolog.Nop(), "", "")
}

// RunID returns the invocation identifier attached to every entry.
func (l *Logger) RunID() string {
	if l == nil {
		return ""
	}
	return l.runID
}

// WithComponent returns a derived logger whose component replaces the
// current one.
func (l *Logger) WithComponent(component string) *Logger {
	if l == nil {
		return nil
	}
	return newScoped(l.scope, component, l.runID)
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	component := l.component
	builder := l.scope.With()
	for key, value := range fields {
		if key == "component" {
			if name, ok := value.(string); ok {
				component = name
			}
			continue
		}
		builder = builder.Interface(key, value)
	}

	return newScoped(builder.Logger(), component, l.runID)
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
