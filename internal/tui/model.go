// Package tui provides the terminal slot picker.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/slotpick/internal/config"
	"github.com/javiermolinar/slotpick/internal/decide"
	"github.com/javiermolinar/slotpick/internal/grid"
	"github.com/javiermolinar/slotpick/internal/selection"
	"github.com/javiermolinar/slotpick/internal/tui/commands"
	"github.com/javiermolinar/slotpick/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeConfirm      // A proposal waits for y/n
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeConfirm:
		return "confirm"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Position represents a cursor position: a day column and a period row.
type Position struct {
	Day int
	Row int
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	engine *selection.Engine
	grid   *grid.Grid
	labels *grid.Labeler
	config *config.Config
	logger *zap.Logger

	// Decisions. decider runs for every proposal unless confirm is set, in
	// which case the user answers and journal (if any) records the answer.
	decider selection.Decider
	confirm bool
	journal decide.Journaler
	session string

	// Theme and styles
	theme  *theme.Theme
	styles *Styles
	keys   keyMap
	help   help.Model

	// State
	cursor  Position
	page    int // first visible day
	scroll  int // first visible row
	mode    Mode
	pending *selection.Proposal

	// Terminal dimensions and layout
	width  int
	height int
	layout LayoutCache

	// Messages
	statusMsg  string
	statusTime time.Time

	now       func() time.Time
	clipboard commands.Writer
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithDecider sets the decider used outside confirm mode.
func WithDecider(d selection.Decider) ModelOption {
	return func(m *Model) {
		if d != nil {
			m.decider = d
		}
	}
}

// WithConfirm makes the user answer every proposal in a dialog.
func WithConfirm(confirm bool) ModelOption {
	return func(m *Model) {
		m.confirm = confirm
	}
}

// WithJournal records the answers given in confirm mode.
func WithJournal(j decide.Journaler, session string) ModelOption {
	return func(m *Model) {
		m.journal = j
		m.session = session
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// WithClipboard overrides the clipboard writer.
func WithClipboard(w commands.Writer) ModelOption {
	return func(m *Model) {
		m.clipboard = w
	}
}

// WithInitialDay moves the first page to the given date when the grid
// contains it.
func WithInitialDay(day time.Time) ModelOption {
	return func(m *Model) {
		idx := dayIndex(m.grid.Start, day)
		if idx < 0 || idx >= m.grid.NumDays() {
			return
		}
		m.cursor.Day = idx
		m.page = idx
	}
}

// dayIndex returns how many calendar days day is after start.
func dayIndex(start, day time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(s).Hours() / 24)
}

// New creates a new TUI model for a grid whose selections live in engine.
func New(engine *selection.Engine, g *grid.Grid, labels *grid.Labeler, cfg *config.Config, opts ...ModelOption) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle.Bold(true)
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle

	m := &Model{
		engine:  engine,
		grid:    g,
		labels:  labels,
		config:  cfg,
		logger:  zap.NewNop(),
		decider: decide.Fixed(selection.Accept),
		theme:   t,
		styles:  styles,
		keys:    newKeyMap(),
		help:    h,
		mode:    ModeNormal,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}
	m.layout = m.buildLayoutCache(0, 0)
	m.cursor.Row = m.firstSlotRow(m.cursor.Day)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Engine returns the engine backing the picker.
func (m Model) Engine() *selection.Engine {
	return m.engine
}

// Run starts the TUI and returns the final selection.
func Run(m *Model) ([]selection.Entry, error) {
	p := tea.NewProgram(*m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}
	return m.engine.Snapshot(), nil
}
