package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/slotpick/internal/dateutil"
	"github.com/javiermolinar/slotpick/internal/decide"
	"github.com/javiermolinar/slotpick/internal/grid"
	"github.com/javiermolinar/slotpick/internal/selection"
)

// Click errors.
var (
	ErrInvalidClick = errors.New("click must look like Day:Number")
	ErrUnknownSlot  = errors.New("no such slot in grid")
)

// picker bundles an engine with the labeler of its grid.
type picker struct {
	engine *selection.Engine
	labels *grid.Labeler
}

// loadGrid resolves a grid reference: a file path, an imported grid name,
// or, when empty, a grid generated from the schedule config.
func (a *App) loadGrid(ctx context.Context, ref string) (*grid.Grid, error) {
	var (
		g   *grid.Grid
		err error
	)
	switch {
	case ref == "":
		g, err = a.generateGrid()
	case isFile(ref):
		g, err = grid.DecodeFile(ref)
	default:
		if err := a.ensureRepo(); err != nil {
			return nil, err
		}
		g, err = a.repo.LoadGrid(ctx, ref)
	}
	if err != nil {
		return nil, fmt.Errorf("loading grid: %w", err)
	}

	if g.Start.IsZero() {
		start, err := a.scheduleStart()
		if err != nil {
			return nil, err
		}
		g.Start = start
	}
	if g.Unit <= 0 {
		if unit, err := a.config.UnitDuration(); err == nil {
			g.Unit = unit
		}
	}
	return g, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// scheduleStart returns the configured initial day at the configured day
// start.
func (a *App) scheduleStart() (time.Time, error) {
	day, err := a.config.InitialDay(a.now())
	if err != nil {
		return time.Time{}, err
	}
	dayStart, err := dateutil.ParseClock(a.config.Schedule.DayStart)
	if err != nil {
		return time.Time{}, err
	}
	return dateutil.TruncateToDay(day).Add(dayStart), nil
}

func (a *App) generateGrid() (*grid.Grid, error) {
	from, err := a.config.InitialDay(a.now())
	if err != nil {
		return nil, err
	}
	dayStart, err := dateutil.ParseClock(a.config.Schedule.DayStart)
	if err != nil {
		return nil, err
	}
	dayEnd, err := dateutil.ParseClock(a.config.Schedule.DayEnd)
	if err != nil {
		return nil, err
	}
	unit, err := a.config.UnitDuration()
	if err != nil {
		return nil, err
	}
	return grid.Generate(grid.Schedule{
		Name:     "schedule",
		From:     from,
		Days:     a.config.Schedule.Days,
		DayStart: dayStart,
		DayEnd:   dayEnd,
		Unit:     unit,
		Workday:  a.config.IsWorkday,
	})
}

// newPicker builds the engine for g, seeding it when selected_by_default
// is on.
func (a *App) newPicker(g *grid.Grid) (*picker, error) {
	labels, err := grid.ForGrid(g, a.config.Picker.Locale, a.config.Picker.Alpha)
	if err != nil {
		return nil, err
	}
	capacity := a.config.EffectiveCapacity()

	opts := []selection.Option{
		selection.WithContinuous(a.config.Picker.Continuous),
		selection.WithLogger(a.logger),
	}
	if a.config.Picker.SelectedByDefault {
		opts = append(opts, selection.WithStore(selection.Seed(g, labels, capacity)))
	}
	a.logger.Debug("picker ready",
		zap.String("grid", g.Name),
		zap.Int("days", g.NumDays()),
		zap.Int("capacity", capacity),
		zap.Bool("continuous", a.config.Picker.Continuous),
	)
	return &picker{engine: selection.NewEngine(capacity, opts...), labels: labels}, nil
}

// decider returns the decider for a decision mode. Confirm mode prompts on
// in and out.
func (a *App) decider(mode string, in io.Reader, out io.Writer) (selection.Decider, error) {
	switch mode {
	case decide.ModeAuto, "":
		return decide.Auto(a.logger), nil
	case decide.ModeConfirm:
		return decide.Prompt(in, out), nil
	case decide.ModeJournal:
		if err := a.ensureRepo(); err != nil {
			return nil, err
		}
		session := decide.NewSession()
		a.logger.Info("journaling decisions", zap.String("session", session))
		return decide.Journal(decide.Auto(a.logger), a.repo, session), nil
	default:
		return nil, fmt.Errorf("unknown decision mode %q", mode)
	}
}

func (a *App) pickCmd() *cobra.Command {
	var (
		gridRef string
		clicks  []string
		mode    string
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Apply clicks to a grid without the TUI",
		Long: `Run a list of clicks through the picker and print the resulting selection.

Each click names a slot as Day:Number, where Day is the day key shown by
"slotpick grid show" (a date, or a weekday name with alpha = true).`,
		Example: `  slotpick pick --grid week.yaml --click 1/6/2025:3 --click 1/7/2025:1
  slotpick pick --grid office --click Monday:2 --mode confirm`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(clicks) == 0 {
				return errors.New("at least one --click is required")
			}
			if mode == "" {
				mode = a.config.Decision.Mode
			}
			if !decide.IsMode(mode) {
				return fmt.Errorf("unknown decision mode %q (want one of %s)", mode, strings.Join(decide.Modes(), ", "))
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			g, err := a.loadGrid(ctx, gridRef)
			if err != nil {
				return err
			}
			p, err := a.newPicker(g)
			if err != nil {
				return err
			}
			d, err := a.decider(mode, cmd.InOrStdin(), out)
			if err != nil {
				return err
			}

			for _, c := range clicks {
				if err := a.applyClick(ctx, out, g, p, d, c); err != nil {
					return err
				}
			}

			fmt.Fprintln(out)
			printSelection(out, p.engine.Snapshot(), p.engine.Capacity())
			return nil
		},
	}

	cmd.Flags().StringVar(&gridRef, "grid", "", "Grid file or imported grid name (defaults to the schedule)")
	cmd.Flags().StringArrayVar(&clicks, "click", nil, "Slot to click, as Day:Number (repeatable)")
	cmd.Flags().StringVar(&mode, "mode", "", "Decision mode: auto, confirm or journal (defaults to config)")

	return cmd
}

func (a *App) applyClick(ctx context.Context, out io.Writer, g *grid.Grid, p *picker, d selection.Decider, click string) error {
	day, number, err := parseClick(click)
	if err != nil {
		return err
	}
	placement, ok := findSlot(g, p.labels, day, number)
	if !ok {
		return fmt.Errorf("%s: %w", click, ErrUnknownSlot)
	}
	if placement.Slot.Reserved {
		fmt.Fprintf(out, "%s %s\n", formatMuted("skip"), formatReserved(click+" is reserved"))
		return nil
	}

	proposal, decision, err := p.engine.Click(ctx, selection.EventAt(placement, p.labels), d)
	if err != nil {
		return err
	}
	printClick(out, click, proposal, decision)
	return nil
}

// parseClick splits "Day:Number" at the last colon.
func parseClick(s string) (string, selection.Number, error) {
	i := strings.LastIndex(s, ":")
	if i <= 0 || i == len(s)-1 {
		return "", "", fmt.Errorf("%q: %w", s, ErrInvalidClick)
	}
	return strings.TrimSpace(s[:i]), selection.Number(strings.TrimSpace(s[i+1:])), nil
}

// findSlot returns the first slot with the given day key and number.
func findSlot(g *grid.Grid, labels *grid.Labeler, day string, number selection.Number) (grid.Placement, bool) {
	for d := range g.Days {
		if labels.DayKey(d) != day {
			continue
		}
		for _, p := range g.Placements(d) {
			if selection.Number(p.Slot.Number) == number {
				return p, true
			}
		}
	}
	return grid.Placement{}, false
}
