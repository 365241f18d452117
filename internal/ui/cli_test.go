package ui

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/slotpick/internal/config"
	"github.com/javiermolinar/slotpick/internal/db"
	"github.com/javiermolinar/slotpick/internal/grid"
	"github.com/javiermolinar/slotpick/internal/selection"
)

const weekYAML = `name: week
start: "2024-01-01 09:00"
unit: 30m
days:
  - - number: 1
    - number: 2
      selected: true
    - null
    - number: 3
      reserved: true
  - - number: 1
      id: room-a
    - number: 2
`

func TestMain(m *testing.M) {
	DisableColor()
	os.Exit(m.Run())
}

type testEnv struct {
	dir      string
	cfg      *config.Config
	repo     *db.SQLite
	gridPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Storage.DBPath = filepath.Join(dir, "test.db")
	cfg.Picker.InitialDay = "2024-01-01"

	repo, err := db.New(cfg.Storage.DBPath)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	gridPath := filepath.Join(dir, "week.yaml")
	if err := os.WriteFile(gridPath, []byte(weekYAML), 0o644); err != nil {
		t.Fatalf("failed to write grid: %v", err)
	}

	return &testEnv{dir: dir, cfg: cfg, repo: repo, gridPath: gridPath}
}

// run executes one command line on a fresh app sharing the env's repo.
func (e *testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	a := NewApp(e.repo, e.cfg)
	a.configPath = filepath.Join(e.dir, "config.toml")
	a.now = func() time.Time { return time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local) }

	var out bytes.Buffer
	a.root.SetOut(&out)
	a.root.SetErr(&out)
	a.root.SetIn(strings.NewReader(stdin))
	a.root.SetArgs(args)
	err := a.root.ExecuteContext(context.Background())
	return out.String(), err
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.run(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	assertContains(t, out, "slotpick dev (commit: none)")
}

func TestPickCommand(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(cfg *config.Config)
		args   []string
		stdin  string
		want   []string
		reject []string
	}{
		{
			name: "seeds and selects",
			args: []string{"--click", "Monday:1", "--click", "Tuesday:1"},
			want: []string{
				"Monday:1 select Monday:1 (9:00:00 AM) accept",
				"Tuesday:1 select Tuesday:1 (9:00:00 AM) accept",
				"Selection 3/3 (full)",
				"Monday: 2 (9:30:00 AM), 1 (9:00:00 AM)",
				"Tuesday: 1 (9:00:00 AM) [room-a]",
			},
		},
		{
			name: "click on selected slot deselects",
			args: []string{"--click", "Monday:2"},
			want: []string{
				"Monday:2 deselect Monday:2 (9:30:00 AM) accept",
				"Selection 0/3",
				"(nothing selected)",
			},
		},
		{
			name: "full picker rejects",
			setup: func(cfg *config.Config) {
				cfg.Picker.Capacity = 1
			},
			args: []string{"--click", "Tuesday:2"},
			want: []string{
				"Tuesday:2 full reject",
				"Selection 1/1 (full)",
				"Monday: 2 (9:30:00 AM)",
			},
			reject: []string{"  Tuesday: "},
		},
		{
			name: "continuous replaces oldest",
			setup: func(cfg *config.Config) {
				cfg.Picker.Capacity = 1
				cfg.Picker.Continuous = true
			},
			args: []string{"--click", "Tuesday:2"},
			want: []string{
				"replace Monday:2 (9:30:00 AM) with Tuesday:2 (9:30:00 AM) accept",
				"Tuesday: 2 (9:30:00 AM)",
			},
			reject: []string{"  Monday: "},
		},
		{
			name: "reserved slot is skipped",
			args: []string{"--click", "Monday:3"},
			want: []string{"skip Monday:3 is reserved", "Selection 1/3"},
		},
		{
			name: "unlimited",
			setup: func(cfg *config.Config) {
				cfg.Picker.Unlimited = true
				cfg.Picker.SelectedByDefault = false
			},
			args: []string{"--click", "Monday:1"},
			want: []string{"Selection 1/∞"},
		},
		{
			name:  "confirm mode rejects on no",
			args:  []string{"--click", "Monday:1", "--mode", "confirm"},
			stdin: "n\n",
			want: []string{
				"select Monday:1 (9:00:00 AM)? [y/N]: ",
				"Monday:1 select Monday:1 (9:00:00 AM) reject",
				"Selection 1/3",
			},
		},
		{
			name:  "confirm mode accepts on yes",
			args:  []string{"--click", "Monday:1", "--mode", "confirm"},
			stdin: "y\n",
			want:  []string{"accept", "Selection 2/3"},
		},
		{
			name: "confirm mode rejects at end of input",
			args: []string{"--click", "Monday:1", "--click", "Tuesday:1", "--mode", "confirm"},
			want: []string{"Selection 1/3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.setup != nil {
				tt.setup(env.cfg)
			}
			args := append([]string{"pick", "--grid", env.gridPath}, tt.args...)
			out, err := env.run(t, tt.stdin, args...)
			if err != nil {
				t.Fatalf("pick failed: %v\n%s", err, out)
			}
			assertContains(t, out, tt.want...)
			for _, r := range tt.reject {
				if strings.Contains(out, r) {
					t.Errorf("output should not contain %q:\n%s", r, out)
				}
			}
		})
	}
}

func TestPickCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{name: "unknown slot", args: []string{"--click", "Monday:9"}, wantErr: ErrUnknownSlot},
		{name: "unknown day", args: []string{"--click", "Sunday:1"}, wantErr: ErrUnknownSlot},
		{name: "malformed click", args: []string{"--click", "Monday"}, wantErr: ErrInvalidClick},
		{name: "no clicks", args: nil, wantMsg: "at least one --click"},
		{name: "bad mode", args: []string{"--click", "Monday:1", "--mode", "maybe"}, wantMsg: "unknown decision mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			args := append([]string{"pick", "--grid", env.gridPath}, tt.args...)
			_, err := env.run(t, "", args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestPickCommand_GeneratedGrid(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Picker.SelectedByDefault = false
	env.cfg.Picker.Alpha = false

	// 2024-01-01 is a Monday; the default day starts at 09:00 with 15m slots.
	out, err := env.run(t, "", "pick", "--click", "1/2/2024:2")
	if err != nil {
		t.Fatalf("pick failed: %v\n%s", err, out)
	}
	assertContains(t, out, "select 1/2/2024:2 (9:15:00 AM) accept", "1/2/2024: 2 (9:15:00 AM)")
}

func TestPickCommand_JournalMode(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Decision.Mode = "journal"
	env.cfg.Picker.SelectedByDefault = false

	out, err := env.run(t, "", "pick", "--grid", env.gridPath, "--click", "Monday:1", "--click", "Monday:1")
	if err != nil {
		t.Fatalf("pick failed: %v\n%s", err, out)
	}

	entries, err := env.repo.ListDecisions(context.Background(), "")
	if err != nil {
		t.Fatalf("ListDecisions failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Action != "select" || entries[1].Action != "deselect" {
		t.Errorf("actions = %q, %q", entries[0].Action, entries[1].Action)
	}
	if entries[0].Session != entries[1].Session {
		t.Error("expected one session per run")
	}

	out, err = env.run(t, "", "decisions", "--session", entries[0].Session)
	if err != nil {
		t.Fatalf("decisions failed: %v", err)
	}
	assertContains(t, out, "Session "+entries[0].Session, "select", "deselect", "Monday:1", "accept")
}

func TestDecisionsCommand_Empty(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.run(t, "", "decisions")
	if err != nil {
		t.Fatalf("decisions failed: %v", err)
	}
	assertContains(t, out, "No decisions recorded")
}

func TestGridCommands(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "grid", "import", env.gridPath, "--name", "office")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	assertContains(t, out, "Imported office (2 days, 5 slots)")

	out, err = env.run(t, "", "grid", "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	assertContains(t, out, "office", "2 days, 5 slots")

	out, err = env.run(t, "", "grid", "show", "office")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	assertContains(t, out,
		"Monday 1/1  1 9:00:00 AM · 2 9:30:00 AM · 3 10:30:00 AM",
		"Tuesday 2/1  1 9:00:00 AM · 2 9:30:00 AM",
	)

	out, err = env.run(t, "", "grid", "export", "office")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	assertContains(t, out, "name: office", "reserved: true", "gap: true")

	// Imported grids are clickable by name.
	out, err = env.run(t, "", "pick", "--grid", "office", "--click", "Tuesday:2")
	if err != nil {
		t.Fatalf("pick failed: %v", err)
	}
	assertContains(t, out, "select Tuesday:2 (9:30:00 AM) accept")

	if _, err := env.run(t, "", "grid", "delete", "office"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	_, err = env.run(t, "", "grid", "delete", "office")
	if !errors.Is(err, grid.ErrGridNotFound) {
		t.Errorf("second delete error = %v, want ErrGridNotFound", err)
	}

	out, err = env.run(t, "", "grid", "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	assertContains(t, out, "No grids imported")
}

func TestConfigCommand(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(env.dir, "config.toml")

	out, err := env.run(t, "n\n", "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	assertContains(t, out, "No config file found", "[picker]", "capacity            = 3")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// Edit the capacity and keep everything else.
	input := "y\n5\n" + strings.Repeat("\n", 15)
	out, err = env.run(t, input, "config")
	if err != nil {
		t.Fatalf("config edit failed: %v\n%s", err, out)
	}
	assertContains(t, out, "Configuration saved!")

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Picker.Capacity != 5 {
		t.Errorf("capacity = %d, want 5", cfg.Picker.Capacity)
	}
	if cfg.Schedule.DayStart != "09:00" {
		t.Errorf("day_start = %q, want 09:00", cfg.Schedule.DayStart)
	}
}

func TestParseClick(t *testing.T) {
	tests := []struct {
		in      string
		day     string
		number  selection.Number
		wantErr bool
	}{
		{in: "Monday:1", day: "Monday", number: "1"},
		{in: "1/6/2025:3", day: "1/6/2025", number: "3"},
		{in: "2025-01-06:A1", day: "2025-01-06", number: "A1"},
		{in: "Mon:day:7", day: "Mon:day", number: "7"},
		{in: "Monday", wantErr: true},
		{in: ":1", wantErr: true},
		{in: "Monday:", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			day, number, err := parseClick(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidClick) {
					t.Errorf("error = %v, want ErrInvalidClick", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if day != tt.day || number != tt.number {
				t.Errorf("parseClick(%q) = %q, %q; want %q, %q", tt.in, day, number, tt.day, tt.number)
			}
		})
	}
}

func TestPrintSelection(t *testing.T) {
	entries := []selection.Entry{
		{Key: selection.SlotKey{Day: "Tuesday", Number: "4"}, Record: selection.Record{Time: "10:00:00 AM"}},
		{Key: selection.SlotKey{Day: "Monday", Number: "1"}},
		{Key: selection.SlotKey{Day: "Tuesday", Number: "2"}, Record: selection.Record{ID: "x"}},
	}

	var buf bytes.Buffer
	printSelection(&buf, entries, 5)
	want := "Selection 3/5\n  Tuesday: 4 (10:00:00 AM), 2 [x]\n  Monday: 1\n"
	if buf.String() != want {
		t.Errorf("printSelection =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestFormatCapacity(t *testing.T) {
	tests := []struct {
		n, capacity int
		want        string
	}{
		{0, 3, "0/3"},
		{2, 0, "2/0"},
		{7, selection.Unlimited, "7/∞"},
	}
	for _, tt := range tests {
		if got := formatCapacity(tt.n, tt.capacity); got != tt.want {
			t.Errorf("formatCapacity(%d, %d) = %q, want %q", tt.n, tt.capacity, got, tt.want)
		}
	}
}
