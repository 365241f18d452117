package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/javiermolinar/slotpick/internal/grid"
)

func (a *App) gridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Manage stored grids",
		Long: `Import grid files into the database and inspect them.

Imported grids can be opened by name with --grid.`,
	}

	cmd.AddCommand(a.gridImportCmd())
	cmd.AddCommand(a.gridListCmd())
	cmd.AddCommand(a.gridShowCmd())
	cmd.AddCommand(a.gridExportCmd())
	cmd.AddCommand(a.gridDeleteCmd())

	return cmd
}

func (a *App) gridImportCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a YAML or TOML grid file",
		Example: `  slotpick grid import week.yaml
  slotpick grid import rooms.toml --name office`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grid.DecodeFile(args[0])
			if err != nil {
				return err
			}
			if name != "" {
				g.Name = name
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}
			if err := a.repo.SaveGrid(cmd.Context(), g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%d days, %d slots)\n",
				formatHeader(g.Name), g.NumDays(), len(g.AllPlacements()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Store the grid under this name instead of the file's")

	return cmd
}

func (a *App) gridListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List imported grids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			summaries, err := a.repo.ListGrids(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(summaries) == 0 {
				fmt.Fprintln(out, formatMuted("No grids imported"))
				return nil
			}
			for _, s := range summaries {
				fmt.Fprintf(out, "%s %s\n", formatHeader(s.Name),
					formatMuted(fmt.Sprintf("%d days, %d slots", s.NumDays, s.NumSlots)))
			}
			return nil
		},
	}
}

func (a *App) gridShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|file>",
		Short: "Print a grid's days and slots",
		Long: `Print every day of a grid with its day key and slots.

The day keys are the ones "slotpick pick --click" expects.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			labels, err := grid.ForGrid(g, a.config.Picker.Locale, a.config.Picker.Alpha)
			if err != nil {
				return err
			}
			printGrid(cmd.OutOrStdout(), g, labels)
			return nil
		},
	}
}

func (a *App) gridExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <name>",
		Short: "Write an imported grid as YAML to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			g, err := a.repo.LoadGrid(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(grid.NewDocument(g))
			if err != nil {
				return fmt.Errorf("encoding grid: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func (a *App) gridDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an imported grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			err := a.repo.DeleteGrid(cmd.Context(), args[0])
			if errors.Is(err, grid.ErrGridNotFound) {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

// printGrid writes one line per day: its key, its date and its slots.
func printGrid(out io.Writer, g *grid.Grid, labels *grid.Labeler) {
	fmt.Fprintln(out, formatHeader(g.Name))
	for d, day := range g.Days {
		header := fmt.Sprintf("%s %s", labels.DayKey(d), formatMuted(labels.ShortDate(d)))
		if len(day) == 0 {
			fmt.Fprintf(out, "  %s  %s\n", header, formatMuted("closed"))
			continue
		}

		cells := make([]string, 0, len(day))
		for _, p := range g.Placements(d) {
			label := fmt.Sprintf("%s %s", p.Slot.Number, labels.TimeLabel(d, p.Offset))
			switch {
			case p.Slot.Reserved:
				cells = append(cells, formatReserved(label))
			case p.Slot.Selected:
				cells = append(cells, formatSelected(label))
			default:
				cells = append(cells, formatOpen(label))
			}
		}
		fmt.Fprintf(out, "  %s  %s\n", header, strings.Join(cells, formatMuted(" · ")))
	}
}
