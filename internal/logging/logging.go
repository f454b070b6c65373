// Package logging builds the application logger. A TUI owns the terminal,
// so logs go to a file (or nowhere), never to stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a file logger at the given level. An empty path returns a
// no-op logger. Timestamps render in loc.
func New(path, level string, loc *time.Location) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zonedTimeEncoder(loc)
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(f),
		lvl,
	)
	return zap.New(core), nil
}

// zonedTimeEncoder renders timestamps in the configured timezone.
func zonedTimeEncoder(loc *time.Location) zapcore.TimeEncoder {
	if loc == nil {
		loc = time.Local
	}
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.In(loc).Format("2006-01-02 15:04:05.000"))
	}
}
