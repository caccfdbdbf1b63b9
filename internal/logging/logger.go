// Package logging provides category-based file logging for prodview.
// The interactive UI owns the terminal, so logs never go to stdout/stderr;
// they are written under <workspace>/.prodview/logs/ with one file per
// category, and only when debug mode is enabled in the config.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/subsystem.
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config resolution
	CategorySource Category = "source" // Outbound catalog requests
	CategoryUI     Category = "ui"     // TUI lifecycle and key events
	CategoryFilter Category = "filter" // Filter/derive pipeline activity
)

// Settings controls whether and how loggers write. Mirrors the logging block
// of the config file; kept as its own type so config can depend on logging
// without a cycle.
type Settings struct {
	Debug      bool
	Level      string          // debug/info/warn/error, default info
	Categories map[string]bool // nil means all categories enabled
}

var (
	mu       sync.RWMutex
	loggers  = make(map[Category]*zap.Logger)
	logsDir  string
	settings Settings
)

// Initialize sets up the logging directory. Should be called once at startup
// with the workspace path. A disabled config is a silent no-op: Get returns
// nop loggers and no directory is created.
func Initialize(workspace string, s Settings) error {
	if workspace == "" {
		return fmt.Errorf("workspace path required")
	}

	mu.Lock()
	settings = s
	loggers = make(map[Category]*zap.Logger)
	logsDir = filepath.Join(workspace, ".prodview", "logs")
	mu.Unlock()

	if !s.Debug {
		return nil
	}
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	Get(CategoryBoot).Info("logging initialized",
		zap.String("workspace", workspace),
		zap.String("level", level(s).String()),
	)
	return nil
}

func level(s Settings) zapcore.Level {
	switch s.Level {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func enabled(category Category) bool {
	if !settings.Debug {
		return false
	}
	if settings.Categories == nil {
		return true
	}
	on, ok := settings.Categories[string(category)]
	if !ok {
		return true // enabled by default when not listed
	}
	return on
}

// Get returns (or creates) the logger for the given category. Returns a nop
// logger when debug mode is off, the category is disabled, or the log file
// cannot be opened.
func Get(category Category) *zap.Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	dir := logsDir
	on := enabled(category) && dir != ""
	mu.RUnlock()

	if !on {
		return zap.NewNop()
	}

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	// Date-prefixed files keep rotation a plain delete.
	name := fmt.Sprintf("%s_%s.log", time.Now().Format("2006-01-02"), category)
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zap.NewNop()
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(file),
		level(settings),
	)

	l := zap.New(core).With(zap.String("cat", string(category)))
	loggers[category] = l
	return l
}

// Sync flushes all open category loggers. Called on shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	for _, l := range loggers {
		_ = l.Sync()
	}
}
