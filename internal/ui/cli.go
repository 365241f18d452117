// Package ui provides the slotpick command line.
package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/slotpick/internal/config"
	"github.com/javiermolinar/slotpick/internal/decide"
	"github.com/javiermolinar/slotpick/internal/grid"
	"github.com/javiermolinar/slotpick/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// Store is the storage the CLI needs: grids plus the decision journal.
type Store interface {
	grid.Repository
	decide.Journaler
	ListDecisions(ctx context.Context, session string) ([]decide.JournalEntry, error)
}

// App holds the CLI application state.
type App struct {
	repo       Store
	ownsRepo   bool
	config     *config.Config
	configPath string
	root       *cobra.Command
	debug      bool // Enable debug logging
	noColor    bool
	journal    bool // Journal TUI confirm answers
	logger     *zap.Logger
	now        func() time.Time
}

// NewApp creates a new CLI application. A nil repo is opened from the
// configured db_path on first use.
func NewApp(repo Store, cfg *config.Config) *App {
	a := &App{
		repo:       repo,
		config:     cfg,
		configPath: config.DefaultConfigPath(),
		logger:     zap.NewNop(),
		now:        time.Now,
	}

	var gridRef string
	a.root = &cobra.Command{
		Use:   "slotpick",
		Short: "Pick calendar slots from a grid",
		Long: `Slotpick shows a grid of days and time slots and lets you pick up to a
configured number of them.

Without --grid it generates a grid from the [schedule] section of the
config. --grid accepts a YAML/TOML grid file or the name of an imported grid.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if a.noColor {
				DisableColor()
			}
			logger, err := tui.NewDebugLogger(a.debug)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd.Context(), cmd.OutOrStdout(), gridRef)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+tui.DebugLogPath+")")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	a.root.Flags().StringVar(&gridRef, "grid", "", "Grid file or imported grid name")
	a.root.Flags().BoolVar(&a.journal, "journal", false, "Record confirm mode answers in the decision journal")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.pickCmd())
	a.root.AddCommand(a.gridCmd())
	a.root.AddCommand(a.decisionsCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "slotpick %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the configured database if no repository was given.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := tui.OpenRepo(a.config.Storage.DBPath)
	if err != nil {
		return err
	}
	a.repo = repo
	a.ownsRepo = true
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.ExecuteContext(context.Background())
}

// Close releases the repository opened by the app and flushes the logger.
func (a *App) Close() error {
	_ = a.logger.Sync()
	if a.ownsRepo && a.repo != nil {
		return a.repo.Close()
	}
	return nil
}

func (a *App) runTUI(ctx context.Context, out io.Writer, gridRef string) error {
	state, err := tui.DetectInitState(a.config, a.configPath)
	if err != nil {
		return err
	}
	if state.ConfigMissing {
		if err := tui.Initialize(a.config, state); err != nil {
			return err
		}
		fmt.Fprintf(out, "Created %s\n", state.ConfigPath)
	}

	g, err := a.loadGrid(ctx, gridRef)
	if err != nil {
		return err
	}
	p, err := a.newPicker(g)
	if err != nil {
		return err
	}

	opts := []tui.ModelOption{tui.WithLogger(a.logger)}
	switch a.config.Decision.Mode {
	case decide.ModeConfirm:
		opts = append(opts, tui.WithConfirm(true))
		if a.journal {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			opts = append(opts, tui.WithJournal(a.repo, decide.NewSession()))
		}
	default:
		d, err := a.decider(a.config.Decision.Mode, nil, out)
		if err != nil {
			return err
		}
		opts = append(opts, tui.WithDecider(d))
	}
	if day, err := a.config.InitialDay(a.now()); err == nil {
		opts = append(opts, tui.WithInitialDay(day))
	}

	entries, err := tui.Run(tui.New(p.engine, g, p.labels, a.config, opts...))
	if err != nil {
		return err
	}
	printSelection(out, entries, p.engine.Capacity())
	return nil
}
