package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDebugLogger_Disabled(t *testing.T) {
	logger, err := NewDebugLogger(false)
	if err != nil {
		t.Fatalf("NewDebugLogger: %v", err)
	}
	if logger.Core().Enabled(-1) {
		t.Error("disabled logger should drop debug entries")
	}
}

func TestFileLogger_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, err := newFileLogger(true, path)
	if err != nil {
		t.Fatalf("newFileLogger: %v", err)
	}
	logger.Debug("key press", keyFields(keyMsg("j"), ModeNormal)...)
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	line := string(data)
	for _, want := range []string{`"key press"`, `"key":"j"`, `"mode":"normal"`} {
		if !strings.Contains(line, want) {
			t.Errorf("log %q missing %s", line, want)
		}
	}
}
