// Package logging provides structured logging for depthchart.
// Each run writes one log file; old files are pruned by count and age.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Log file names are filePrefix + timestamp + fileSuffix.
const (
	filePrefix = "depthchart_"
	fileSuffix = ".log"
)

// Level represents log severity levels.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps "debug", "info", "warn" or "error" (any case) to a Level.
// Anything else is LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config configures the logger.
type Config struct {
	// Level is the minimum log level to output.
	Level Level
	// LogDir is the directory to write log files (e.g., ".depthchart/logs").
	LogDir string
	// MaxLogFiles is the maximum number of log files to keep.
	MaxLogFiles int
	// MaxLogAge is the maximum age of log files before cleanup.
	MaxLogAge time.Duration
	// Console mirrors log output to stderr.
	Console bool
	// JSONFormat uses JSON output format for structured logs.
	JSONFormat bool
}

// DefaultConfig returns default logging configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:       LevelInfo,
		LogDir:      ".depthchart/logs",
		MaxLogFiles: 10,
		MaxLogAge:   7 * 24 * time.Hour,
	}
}

// Logger is a structured logger for depthchart.
type Logger struct {
	slog    *slog.Logger
	config  *Config
	logFile *os.File
	logPath string
	mu      *sync.Mutex
}

// New creates a logger writing to a new timestamped file in config.LogDir
// and prunes old log files.
func New(config *Config) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := os.MkdirAll(config.LogDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(config.LogDir, filePrefix+time.Now().Format("20060102_150405")+fileSuffix)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	var out io.Writer = logFile
	if config.Console {
		out = io.MultiWriter(logFile, os.Stderr)
	}

	logger := &Logger{
		slog:    slog.New(newHandler(out, config)),
		config:  config,
		logFile: logFile,
		logPath: logPath,
		mu:      &sync.Mutex{},
	}

	if err := logger.Cleanup(); err != nil {
		logger.Warn("log cleanup failed", "error", err)
	}

	return logger, nil
}

// NewWriter creates a logger that writes to w instead of a file.
func NewWriter(w io.Writer, config *Config) *Logger {
	if config == nil {
		config = DefaultConfig()
	}
	return &Logger{
		slog:   slog.New(newHandler(w, config)),
		config: config,
		mu:     &sync.Mutex{},
	}
}

// NewNoop creates a no-op logger that discards all output.
func NewNoop() *Logger {
	return NewWriter(io.Discard, nil)
}

func newHandler(w io.Writer, config *Config) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: config.Level.toSlogLevel(),
	}
	if config.JSONFormat {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// LogPath returns the path to the current log file, or "" when not writing
// to a file.
func (l *Logger) LogPath() string {
	return l.logPath
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile != nil {
		err := l.logFile.Close()
		l.logFile = nil
		return err
	}
	return nil
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// With returns a new logger with the given attributes added. The returned
// logger shares the parent's file.
func (l *Logger) With(args ...any) *Logger {
	clone := *l
	clone.slog = l.slog.With(args...)
	return &clone
}

// Context keys for logging.
type contextKey string

const (
	// ContextKeyCommand is the context key for the CLI command being run.
	ContextKeyCommand contextKey = "command"
	// ContextKeyChartFile is the context key for the chart file in use.
	ContextKeyChartFile contextKey = "chart_file"
)

// WithCommand adds the command name to the context.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, ContextKeyCommand, command)
}

// WithChartFile adds the chart file path to the context.
func WithChartFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, ContextKeyChartFile, path)
}

// WithContext returns a logger carrying the command and chart file stored
// in ctx, if any.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	var args []any
	if command, ok := ctx.Value(ContextKeyCommand).(string); ok && command != "" {
		args = append(args, "command", command)
	}
	if path, ok := ctx.Value(ContextKeyChartFile).(string); ok && path != "" {
		args = append(args, "chart_file", path)
	}
	if len(args) == 0 {
		return l
	}
	return l.With(args...)
}

// Cleanup removes old log files based on MaxLogFiles and MaxLogAge. The
// current log file is never removed.
func (l *Logger) Cleanup() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.config.LogDir == "" {
		return nil
	}

	entries, err := os.ReadDir(l.config.LogDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		path    string
		modTime time.Time
	}
	var logFiles []logFileInfo

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			path:    filepath.Join(l.config.LogDir, name),
			modTime: info.ModTime(),
		})
	}

	// Newest first
	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.After(logFiles[j].modTime)
	})

	now := time.Now()
	removed := 0
	for i, lf := range logFiles {
		if lf.path == l.logPath {
			continue
		}

		tooMany := l.config.MaxLogFiles > 0 && i >= l.config.MaxLogFiles
		tooOld := l.config.MaxLogAge > 0 && now.Sub(lf.modTime) > l.config.MaxLogAge
		if tooMany || tooOld {
			if err := os.Remove(lf.path); err == nil {
				removed++
			}
		}
	}

	if removed > 0 {
		l.slog.Debug("cleaned up old log files", "count", removed)
	}

	return nil
}
