package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/slotpick/internal/config"
)

func TestDetectInitState(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.DBPath = filepath.Join(dir, "data", "slotpick.db")
	configPath := filepath.Join(dir, "config.toml")

	state, err := DetectInitState(cfg, configPath)
	if err != nil {
		t.Fatalf("DetectInitState: %v", err)
	}
	if !state.NeedsInit || !state.ConfigMissing || !state.DBMissing {
		t.Fatalf("state = %+v, want everything missing", state)
	}

	if err := Initialize(cfg, state); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	repo, err := OpenRepo(cfg.Storage.DBPath)
	if err != nil {
		t.Fatalf("OpenRepo: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	state, err = DetectInitState(cfg, configPath)
	if err != nil {
		t.Fatalf("DetectInitState: %v", err)
	}
	if state.NeedsInit {
		t.Errorf("state after init = %+v", state)
	}
	if _, err := os.Stat(configPath); err != nil {
		t.Errorf("config not written: %v", err)
	}
}

func TestOpenRepo_EmptyPath(t *testing.T) {
	if _, err := OpenRepo(""); !errors.Is(err, ErrEmptyDBPath) {
		t.Errorf("err = %v, want ErrEmptyDBPath", err)
	}
}
