// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"go.trai.ch/pinenv/internal/core/ports"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// metadataProvider matches the Metadata() method provided by zerr.Error.
type metadataProvider interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain prepared for display.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// Logger implements ports.Logger using log/slog.
// Pretty output is rendered by charmbracelet/log, JSON output by slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	level    slog.Level
	jsonMode bool
	output   io.Writer
}

var _ ports.Logger = (*Logger)(nil)

// New creates a new Logger writing pretty output to stderr.
func New() *Logger {
	l := &Logger{
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
	l.rebuild()
	return l
}

// SetOutput updates the logger's output destination.
// It preserves the current JSON mode and level. If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose enables debug messages.
func (l *Logger) SetVerbose(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = slog.LevelInfo
	if enable {
		l.level = slog.LevelDebug
	}
	l.rebuild()
}

// rebuild replaces the handler. Callers must hold mu.
func (l *Logger) rebuild() {
	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, &slog.HandlerOptions{Level: l.level})
	} else {
		handler = newPrettyHandler(l.output, l.level)
	}
	l.logger = slog.New(handler)
}

// Debug logs a message shown only in verbose mode.
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

// Error logs an error together with its cause chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
	l.logger.Debug(fmt.Sprintf("%+v", err))
}

// collectErrorEntries walks the error chain. zerr links contribute their own
// message and metadata. The first standard error ends the walk with its full text.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		var meta map[string]any
		if mp, ok := current.(metadataProvider); ok {
			meta = mp.Metadata()
		}

		// zerr.With on a plain error produces a link with an empty message.
		if msg := m.Message(); msg != "" || len(entries) == 0 {
			entries = append(entries, ErrorEntry{Message: msg, Metadata: meta})
		} else if len(meta) > 0 {
			last := &entries[len(entries)-1]
			if last.Metadata == nil {
				last.Metadata = map[string]any{}
			}
			for k, v := range meta {
				last.Metadata[k] = v
			}
		}
		current = errors.Unwrap(current)
	}
	return entries
}

// formatErrorEntries renders entries as "Error: ..." followed by a "Caused by:" list.
// Metadata is printed below its message, sorted by key.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		var head, indent string
		if i == 0 {
			head, indent = "Error: ", "       "
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}

		keys := make([]string, 0, len(entry.Metadata))
		for k := range entry.Metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, entry.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}

func newPrettyHandler(w io.Writer, level slog.Level) slog.Handler {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Level:           log.Level(level),
	})
}
