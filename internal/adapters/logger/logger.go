// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/peerseek/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	level  slog.Level
	mu     sync.RWMutex
}

// New creates a Logger writing human-readable text to stderr at info level.
func New() *Logger {
	return NewWithWriter(os.Stderr, slog.LevelInfo)
}

// NewWithWriter creates a Logger writing to w at the given minimum level.
func NewWithWriter(w io.Writer, level slog.Level) *Logger {
	return &Logger{
		logger: slog.New(newHandler(w, level)),
		level:  level,
	}
}

func newHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// SetOutput updates the logger's output destination.
// It is safe to call while other goroutines are logging.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(newHandler(w, l.level))
}

// Info logs an informational message with optional key/value attributes.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs a warning message with optional key/value attributes.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}
