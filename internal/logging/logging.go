// Package logging holds the process-wide diagnostic logger. Diagnostics go to
// stderr so they never mix with report output on stdout.
package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop().Sugar()
)

// Init replaces the logger. Without debug only warnings and errors are shown.
func Init(debug bool) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	Set(l.Sugar())
	return nil
}

// Set installs l, or a no-op logger when l is nil.
func Set(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

// L returns the current logger. It is a no-op until Init or Set is called.
func L() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Sync flushes buffered entries; errors from syncing a terminal are ignored.
func Sync() {
	_ = L().Sync()
}
