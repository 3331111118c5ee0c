// Package logger provides component-scoped structured logging.
//
// The TUI owns the terminal, so log output goes to a file (or any writer)
// configured with Init. Until then everything is discarded.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	log    = zerolog.Nop()
	closer io.Closer
)

// Init directs log output to w at the given level ("debug", "info", "warn", "error").
func Init(w io.Writer, level string) {
	mu.Lock()
	defer mu.Unlock()

	log = zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// InitFile opens path for appending and directs log output there.
func InitFile(path, level string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	Close()
	Init(f, level)

	mu.Lock()
	closer = f
	mu.Unlock()
	return nil
}

// Close releases the log file opened by InitFile and discards further output.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	log = zerolog.Nop()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func emit(ev *zerolog.Event, component, msg string, fields map[string]interface{}) {
	if ev == nil {
		return
	}
	ev.Str("component", component).Fields(fields).Msg(msg)
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

// DebugCF logs a debug message for component with optional fields.
func DebugCF(component, msg string, fields map[string]interface{}) {
	emit(current().Debug(), component, msg, fields)
}

// InfoCF logs an info message for component with optional fields.
func InfoCF(component, msg string, fields map[string]interface{}) {
	emit(current().Info(), component, msg, fields)
}

// WarnCF logs a warning for component with optional fields.
func WarnCF(component, msg string, fields map[string]interface{}) {
	emit(current().Warn(), component, msg, fields)
}

// ErrorCF logs an error for component with optional fields.
func ErrorCF(component, msg string, fields map[string]interface{}) {
	emit(current().Error(), component, msg, fields)
}
