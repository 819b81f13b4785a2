// Package logging provides file-backed diagnostic logging for mqlforge.
// Logs go to a file under the user config dir, never to stdout: the studio
// TUI owns the terminal, so anything printed there would corrupt the
// bubbletea frame. Until Init is called every log call is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Init opens (or creates) the log file at dir/mqlforge.log and installs a
// production-encoded zap logger writing to it.
func Init(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	path := filepath.Join(dir, "mqlforge.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(f),
		zapcore.InfoLevel,
	)

	mu.Lock()
	logger = zap.New(core)
	mu.Unlock()
	return nil
}

// L returns the current logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Sync flushes buffered entries. Safe to call on the no-op logger.
func Sync() {
	_ = L().Sync()
}
