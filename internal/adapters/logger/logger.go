// Package logger implements a logging adapter using log/slog over a charmbracelet/log handler.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"go.trai.ch/crateq/internal/core/domain"
	"go.trai.ch/crateq/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	handler *log.Logger
	logger  *slog.Logger
	mu      sync.RWMutex
}

// New creates a new Logger writing to stderr at info level.
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a new Logger writing to w at info level.
func NewWithWriter(w io.Writer) *Logger {
	handler := newHandler(w, log.InfoLevel)
	return &Logger{
		handler: handler,
		logger:  slog.New(handler),
	}
}

func newHandler(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "crateq",
	})
}

// SetOutput updates the logger's output destination, keeping the current level.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	handler := newHandler(w, l.handler.GetLevel())
	l.handler = handler
	l.logger = slog.New(handler)
}

// SetLevel changes the minimum level that is written.
func (l *Logger) SetLevel(level domain.LogLevel) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	// Both scales share the slog level values.
	l.handler.SetLevel(log.Level(level))
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with the metadata attached along its chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	zerr.Log(context.Background(), l.logger, err)
}
