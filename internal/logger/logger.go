package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	gormlogger "gorm.io/gorm/logger"
)

// New builds the process logger. Local runs get human readable text output,
// every other environment gets JSON.
func New(level string, local bool) *slog.Logger {
	return NewWithWriter(os.Stdout, level, local)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level string, local bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if local {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps LOG_LEVEL values onto slog levels, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "trace":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "fatal":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewGormLogger routes GORM's SQL and slow query output through l. GORM
// levels map onto slog levels, so errors and slow queries survive LOG_LEVEL=info.
func NewGormLogger(l *slog.Logger, local bool) gormlogger.Interface {
	level := gormlogger.Warn
	if local {
		level = gormlogger.Info
	}

	return gormlogger.NewSlogLogger(l, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
