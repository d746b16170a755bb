package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/thorrdu/cutc/internal/cache"
)

var (
	defaultLogger *slog.Logger
	logWriter     io.Writer
	once          sync.Once
	mu            sync.Mutex
)

// Get returns the global logger instance, initializing it once
func Get() *slog.Logger {
	once.Do(func() {
		logWriter = initWriter()
		defaultLogger = newLogger(logWriter)
	})
	mu.Lock()
	defer mu.Unlock()
	return defaultLogger
}

// SetVerbose mirrors every log record to stderr in addition to the log file
func SetVerbose(verbose bool) {
	Get()
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		defaultLogger = newLogger(io.MultiWriter(logWriter, os.Stderr))
	} else {
		defaultLogger = newLogger(logWriter)
	}
}

func newLogger(w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(handler)
}

// initWriter creates the writer for cutc.log in the cache directory
// Uses lumberjack for automatic log rotation
// If the cache directory cannot be determined, all output is discarded
func initWriter() io.Writer {
	logPath, err := cache.GetLogPath()
	if err != nil {
		return io.Discard
	}

	return &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    1, // 1 MB max
		MaxBackups: 0, // Don't keep old log files
		MaxAge:     0, // Don't delete based on age
		Compress:   false,
	}
}
