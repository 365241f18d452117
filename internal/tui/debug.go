package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugLogPath is the fixed path for debug logs.
const DebugLogPath = "slotpick-debug.log"

// NewDebugLogger returns a JSON logger writing to DebugLogPath when enabled
// and a no-op logger otherwise. The TUI owns the terminal, so nothing is
// logged to stderr.
func NewDebugLogger(enabled bool) (*zap.Logger, error) {
	return newFileLogger(enabled, DebugLogPath)
}

func newFileLogger(enabled bool, path string) (*zap.Logger, error) {
	if !enabled {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Encoding = "json"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("creating debug log: %w", err)
	}
	return logger.Named("slotpick"), nil
}

func keyFields(msg tea.KeyMsg, mode Mode) []zap.Field {
	return []zap.Field{
		zap.String("key", msg.String()),
		zap.Stringer("mode", mode),
	}
}
