// Package logger provides a small structured logging interface over slog.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Frames between runtime.Callers and the code calling a Logger method.
const skipFrames = 3

// Logger is the structured logger used across the module.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)

	// Named returns a child logger; names nest with dots.
	Named(name string) Logger
}

// Field is one key/value attribute of a record.
type Field struct {
	Key   string
	Value any
}

func String(key, val string) Field          { return Field{Key: key, Value: val} }
func Int(key string, val int) Field         { return Field{Key: key, Value: val} }
func Float64(key string, val float64) Field { return Field{Key: key, Value: val} }
func Bool(key string, val bool) Field       { return Field{Key: key, Value: val} }
func Any(key string, val any) Field         { return Field{Key: key, Value: val} }
func Error(err error) Field                 { return Field{Key: "error", Value: err} }

// Time renders t as a calendar date when it has no clock component.
func Time(key string, t time.Time) Field {
	if t.Equal(t.Truncate(24 * time.Hour)) {
		return Field{Key: key, Value: t.Format(time.DateOnly)}
	}
	return Field{Key: key, Value: t.Format(time.RFC3339)}
}

type recordLogger struct {
	handler slog.Handler
	name    string
}

func (l *recordLogger) Named(name string) Logger {
	if l.name != "" {
		name = l.name + "." + name
	}
	return &recordLogger{handler: l.handler, name: name}
}

func (l *recordLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.emit(ctx, slog.LevelDebug, msg, fields)
}

func (l *recordLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.emit(ctx, slog.LevelInfo, msg, fields)
}

func (l *recordLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.emit(ctx, slog.LevelWarn, msg, fields)
}

func (l *recordLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.emit(ctx, slog.LevelError, msg, fields)
}

func (l *recordLogger) emit(ctx context.Context, level slog.Level, msg string, fields []Field) {
	if !l.handler.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(skipFrames, pcs[:])
	rec := slog.NewRecord(time.Now(), level, msg, pcs[0])
	if l.name != "" {
		rec.AddAttrs(slog.String("logger", l.name))
	}
	for _, f := range fields {
		rec.AddAttrs(slog.Any(f.Key, f.Value))
	}
	_ = l.handler.Handle(ctx, rec)
}

var (
	mu       sync.RWMutex
	global   Logger
	levelVar slog.LevelVar
)

// ErrNilWriter is returned by InitWithWriter for a nil writer.
var ErrNilWriter = errors.New("logger: nil writer")

// InitWithWriter installs the global logger writing text records to w and
// resets the level to info.
func InitWithWriter(w io.Writer) error {
	if w == nil {
		return ErrNilWriter
	}
	levelVar.Set(slog.LevelInfo)
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource:   true,
		Level:       &levelVar,
		ReplaceAttr: shortSource,
	})
	mu.Lock()
	global = &recordLogger{handler: h}
	mu.Unlock()
	return nil
}

// Discard returns a logger that drops every record.
func Discard() Logger {
	return &recordLogger{handler: slog.NewTextHandler(io.Discard, nil)}
}

// shortSource prints the source attribute as path:line relative to the
// working directory.
func shortSource(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.SourceKey {
		return a
	}
	src, ok := a.Value.Any().(*slog.Source)
	if !ok || src == nil {
		return a
	}
	file := filepath.Base(src.File)
	if cwd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(cwd, src.File); err == nil {
			file = rel
		}
	}
	return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", file, src.Line))
}

// Get returns the global logger. It panics before InitWithWriter.
func Get() Logger {
	mu.RLock()
	defer mu.RUnlock()
	if global == nil {
		panic("logger: InitWithWriter has not been called")
	}
	return global
}

// Named is shorthand for Get().Named(name).
func Named(name string) Logger {
	return Get().Named(name)
}

// SetLevel changes the level of the global handler.
func SetLevel(level slog.Level) { levelVar.Set(level) }

// SetLevelString accepts the slog level names plus "warning"; empty means info.
func SetLevelString(level string) error {
	s := strings.TrimSpace(level)
	switch strings.ToLower(s) {
	case "":
		s = "info"
	case "warning":
		s = "warn"
	}
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("unknown log level %q", level)
	}
	SetLevel(lv)
	return nil
}
