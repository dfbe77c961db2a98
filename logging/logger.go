package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// rotatingWriter writes to a new log file each calendar day.
type rotatingWriter struct {
	logDir      string
	baseName    string
	currentFile *os.File
	currentDate string
	mu          sync.Mutex
}

func newRotatingWriter(logDir, baseName string) *rotatingWriter {
	return &rotatingWriter{
		logDir:   logDir,
		baseName: baseName,
	}
}

// Write implements io.Writer. Log file dates use local time.
func (w *rotatingWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	today := time.Now().Format("2006-01-02")
	if w.currentFile == nil || w.currentDate != today {
		if err := w.rotate(today); err != nil {
			return 0, err
		}
	}

	return w.currentFile.Write(p)
}

func (w *rotatingWriter) rotate(date string) error {
	if w.currentFile != nil {
		w.currentFile.Close()
	}

	name := fmt.Sprintf("%s-%s.log", w.baseName, date)
	file, err := os.OpenFile(filepath.Join(w.logDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	w.currentFile = file
	w.currentDate = date
	return nil
}

// Close closes the currently open log file, if any.
func (w *rotatingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.currentFile != nil {
		return w.currentFile.Close()
	}
	return nil
}

// CreateLogger creates a logger that writes JSON lines to daily rotating
// files under logDir. If the directory cannot be created, it falls back to
// stdout so logging never prevents startup.
func CreateLogger(logLevel LogLevel, logDir string, fileName string) Logger {
	var level slog.Level
	switch logLevel {
	case LogLevelDebug:
		level = slog.LevelDebug
	case LogLevelInfo:
		level = slog.LevelInfo
	case LogLevelWarn:
		level = slog.LevelWarn
	case LogLevelError:
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		}))
	}

	return slog.New(slog.NewJSONHandler(newRotatingWriter(logDir, fileName), &slog.HandlerOptions{
		Level: level,
	}))
}

// nopLogger discards everything.
type nopLogger struct{}

// NopLogger is a singleton Logger that performs no operations. Constructors
// fall back to it when handed a nil logger.
var NopLogger Logger = &nopLogger{}

func (l *nopLogger) Info(msg string, args ...any)  {}
func (l *nopLogger) Warn(msg string, args ...any)  {}
func (l *nopLogger) Error(msg string, args ...any) {}
func (l *nopLogger) Debug(msg string, args ...any) {}
