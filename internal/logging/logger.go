package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rs/zerolog"
)

// Field is a single structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// String constructs a string-valued Field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int constructs an int-valued Field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 constructs a uint64-valued Field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 constructs a float64-valued Field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err constructs an error-valued Field under the conventional "error"
// key.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err}
}

// Logger is the structured logging contract used by ndcore's ambient
// stack (internal/app, which cmd/ndctl runs). The
// ndslice and bigint packages themselves never depend on it — the core
// stays log-free, per SPEC_FULL.md §4.2b.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
	Printf(format string, args ...any)
	Println(args ...any)
}

// ZerologAdapter implements Logger over a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: zl}
}

// NewLogger builds a ZerologAdapter writing to w, tagging every entry
// with a "component" field.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{logger: zl}
}

// NewDefaultLogger builds a ZerologAdapter writing to stderr.
func NewDefaultLogger() *ZerologAdapter {
	return NewLogger(os.Stderr, "ndcore")
}

func applyFields(evt *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			evt = evt.Str(f.Key, v)
		case int:
			evt = evt.Int(f.Key, v)
		case int64:
			evt = evt.Int64(f.Key, v)
		case uint64:
			evt = evt.Uint64(f.Key, v)
		case float64:
			evt = evt.Float64(f.Key, v)
		case bool:
			evt = evt.Bool(f.Key, v)
		case error:
			evt = evt.AnErr(f.Key, v)
		case nil:
			evt = evt.Interface(f.Key, v)
		default:
			evt = evt.Interface(f.Key, v)
		}
	}
	return evt
}

func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.logger.Info(), fields).Msg(msg)
}

func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	evt := a.logger.Error().Err(err)
	applyFields(evt, fields).Msg(msg)
}

func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.logger.Debug(), fields).Msg(msg)
}

func (a *ZerologAdapter) Printf(format string, args ...any) {
	a.logger.Info().Msg(fmt.Sprintf(format, args...))
}

func (a *ZerologAdapter) Println(args ...any) {
	a.logger.Info().Msg(fmt.Sprintln(args...))
}

// StdLoggerAdapter implements Logger over the standard library's
// *log.Logger, for callers that do not want a zerolog dependency in
// their own output pipeline (e.g. a CLI piping to a plain file).
type StdLoggerAdapter struct {
	std *log.Logger
}

// NewStdLoggerAdapter wraps an existing *log.Logger.
func NewStdLoggerAdapter(stdLogger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{std: stdLogger}
}

func formatFields(fields []Field) string {
	s := ""
	for _, f := range fields {
		s += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	return s
}

func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	a.std.Printf("[INFO] %s%s", msg, formatFields(fields))
}

func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	a.std.Printf("[ERROR] %s: %v%s", msg, err, formatFields(fields))
}

func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.std.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

func (a *StdLoggerAdapter) Printf(format string, args ...any) {
	a.std.Printf(format, args...)
}

func (a *StdLoggerAdapter) Println(args ...any) {
	a.std.Println(args...)
}
