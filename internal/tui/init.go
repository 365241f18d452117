package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/javiermolinar/slotpick/internal/config"
	"github.com/javiermolinar/slotpick/internal/db"
)

// ErrEmptyDBPath is returned when no database path is configured.
var ErrEmptyDBPath = errors.New("db path is empty")

// InitState tracks whether startup initialization is required.
type InitState struct {
	NeedsInit     bool
	ConfigMissing bool
	DBMissing     bool
	ConfigPath    string
	DBPath        string
}

// DetectInitState checks for missing config or database files.
func DetectInitState(cfg *config.Config, configPath string) (InitState, error) {
	state := InitState{
		ConfigPath: configPath,
		DBPath:     cfg.Storage.DBPath,
	}

	configMissing, err := pathMissing(state.ConfigPath)
	if err != nil {
		return InitState{}, fmt.Errorf("checking config path: %w", err)
	}
	dbMissing, err := pathMissing(state.DBPath)
	if err != nil {
		return InitState{}, fmt.Errorf("checking db path: %w", err)
	}

	state.ConfigMissing = configMissing
	state.DBMissing = dbMissing
	state.NeedsInit = configMissing || dbMissing
	return state, nil
}

// Initialize writes the default config when it is missing. The database is
// created on first open.
func Initialize(cfg *config.Config, state InitState) error {
	if !state.ConfigMissing || state.ConfigPath == "" {
		return nil
	}
	if err := cfg.SaveTo(state.ConfigPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

func pathMissing(path string) (bool, error) {
	if path == "" {
		return true, nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if os.IsNotExist(err) {
		return true, nil
	}
	return false, err
}

// OpenRepo opens the database at dbPath, creating its directory.
func OpenRepo(dbPath string) (*db.SQLite, error) {
	if dbPath == "" {
		return nil, ErrEmptyDBPath
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}
