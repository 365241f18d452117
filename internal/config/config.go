// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/javiermolinar/slotpick/internal/dateutil"
	"github.com/javiermolinar/slotpick/internal/decide"
)

// Config holds the application configuration.
type Config struct {
	Picker   PickerConfig   `toml:"picker"`
	Schedule ScheduleConfig `toml:"schedule"`
	Decision DecisionConfig `toml:"decision"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// PickerConfig holds selection and labelling settings.
type PickerConfig struct {
	Capacity          int    `toml:"capacity"`            // max selections, <0 is treated as 0
	Unlimited         bool   `toml:"unlimited"`           // ignore capacity
	Continuous        bool   `toml:"continuous"`          // evict the oldest selection when full
	SelectedByDefault bool   `toml:"selected_by_default"` // seed slots the grid marks as selected
	Alpha             bool   `toml:"alpha"`               // weekday names instead of dates as day keys
	Locale            string `toml:"locale"`              // e.g., "en-US"
	Unit              string `toml:"unit"`                // e.g., "15m"
	InitialDay        string `toml:"initial_day"`         // today, tomorrow, this-week, monday, 2025-01-15
	DaysPerPage       int    `toml:"days_per_page"`
}

// ScheduleConfig describes the grid generated when no grid is given.
type ScheduleConfig struct {
	Workdays []string `toml:"workdays"`  // e.g., ["monday", "tuesday", ...]
	DayStart string   `toml:"day_start"` // e.g., "09:00"
	DayEnd   string   `toml:"day_end"`   // e.g., "17:00"
	Days     int      `toml:"days"`      // number of days generated
}

// DecisionConfig selects how proposals are decided.
type DecisionConfig struct {
	Mode string `toml:"mode"` // "auto", "confirm", "journal"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Picker: PickerConfig{
			Capacity:          3,
			SelectedByDefault: true,
			Alpha:             true,
			Locale:            "en-US",
			Unit:              "15m",
			InitialDay:        "today",
			DaysPerPage:       7,
		},
		Schedule: ScheduleConfig{
			Workdays: []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
			DayStart: "09:00",
			DayEnd:   "17:00",
			Days:     14,
		},
		Decision: DecisionConfig{
			Mode: decide.ModeAuto,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "frappe",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "slotpick.db"
	}
	return filepath.Join(home, ".local", "share", "slotpick", "slotpick.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "slotpick", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("SLOTPICK_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SLOTPICK_CAPACITY: %w", err)
		}
		cfg.Picker.Capacity = n
	}
	if v := os.Getenv("SLOTPICK_CONTINUOUS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SLOTPICK_CONTINUOUS: %w", err)
		}
		cfg.Picker.Continuous = b
	}
	if v := os.Getenv("SLOTPICK_LOCALE"); v != "" {
		cfg.Picker.Locale = v
	}
	if v := os.Getenv("SLOTPICK_UNIT"); v != "" {
		cfg.Picker.Unit = v
	}
	if v := os.Getenv("SLOTPICK_INITIAL_DAY"); v != "" {
		cfg.Picker.InitialDay = v
	}
	if v := os.Getenv("SLOTPICK_DECISION_MODE"); v != "" {
		cfg.Decision.Mode = v
	}
	if v := os.Getenv("SLOTPICK_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("SLOTPICK_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	unit, err := c.UnitDuration()
	if err != nil {
		return err
	}
	if c.Picker.DaysPerPage < 1 {
		return errors.New("days_per_page must be at least 1")
	}
	if _, err := language.Parse(c.Picker.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Picker.Locale, err)
	}
	if _, err := dateutil.ParseInitialDay(c.Picker.InitialDay, time.Now()); err != nil {
		return fmt.Errorf("initial_day: %w", err)
	}

	start, err := dateutil.ParseClock(c.Schedule.DayStart)
	if err != nil {
		return fmt.Errorf("day_start: %w", err)
	}
	end, err := dateutil.ParseClock(c.Schedule.DayEnd)
	if err != nil {
		return fmt.Errorf("day_end: %w", err)
	}
	if end-start < unit {
		return errors.New("day_end must be at least one unit after day_start")
	}
	if c.Schedule.Days < 1 {
		return errors.New("schedule days must be at least 1")
	}
	if len(c.Schedule.Workdays) == 0 {
		return errors.New("at least one workday must be configured")
	}
	for _, day := range c.Schedule.Workdays {
		if _, ok := dateutil.ParseWeekday(day); !ok {
			return fmt.Errorf("invalid workday: %s", day)
		}
	}

	if !decide.IsMode(c.Decision.Mode) {
		return fmt.Errorf("invalid decision mode %q (want one of %s)", c.Decision.Mode, strings.Join(decide.Modes(), ", "))
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// EffectiveCapacity returns the capacity the engine should run with.
func (c *Config) EffectiveCapacity() int {
	if c.Picker.Unlimited {
		return math.MaxInt
	}
	if c.Picker.Capacity < 0 {
		return 0
	}
	return c.Picker.Capacity
}

// UnitDuration parses the configured period length.
func (c *Config) UnitDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Picker.Unit)
	if err != nil {
		return 0, fmt.Errorf("invalid unit %q: %w", c.Picker.Unit, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("unit must be positive, got %s", c.Picker.Unit)
	}
	return d, nil
}

// InitialDay resolves the configured first day relative to now.
func (c *Config) InitialDay(now time.Time) (time.Time, error) {
	return dateutil.ParseInitialDay(c.Picker.InitialDay, now)
}

// IsWorkday returns true if the given weekday is a configured workday.
func (c *Config) IsWorkday(weekday time.Weekday) bool {
	for _, d := range c.Schedule.Workdays {
		if wd, ok := dateutil.ParseWeekday(d); ok && wd == weekday {
			return true
		}
	}
	return false
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
