package ui

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotpick/internal/decide"
	"github.com/javiermolinar/slotpick/internal/selection"
)

func (a *App) decisionsCmd() *cobra.Command {
	var session string

	cmd := &cobra.Command{
		Use:   "decisions",
		Short: "Show journaled decisions",
		Long: `Print the proposals recorded in journal mode, oldest first.

Set [decision] mode = "journal" to record every decision the picker makes.`,
		Example: `  slotpick decisions
  slotpick decisions --session 1b4e28ba-2fa1-11d2-883f-0016d3cca427`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			entries, err := a.repo.ListDecisions(cmd.Context(), session)
			if err != nil {
				return err
			}
			printDecisions(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().StringVar(&session, "session", "", "Only show decisions of this session")

	return cmd
}

func printDecisions(out io.Writer, entries []decide.JournalEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, formatMuted("No decisions recorded"))
		return
	}

	var session string
	for _, e := range entries {
		if e.Session != session {
			session = e.Session
			fmt.Fprintln(out, formatHeader("Session "+session))
		}
		fmt.Fprintf(out, "  %s  %-8s %s %s\n",
			formatMuted(e.At.Format("2006-01-02 15:04:05")),
			e.Action,
			journalTarget(e),
			formatJournalDecision(e.Decision),
		)
	}
}

func journalTarget(e decide.JournalEntry) string {
	add := e.AddDay + ":" + e.AddNumber
	remove := e.RemoveDay + ":" + e.RemoveNumber
	switch {
	case e.AddDay != "" && e.RemoveDay != "":
		return remove + " -> " + add
	case e.AddDay != "":
		return add
	case e.RemoveDay != "":
		return remove
	default:
		return "-"
	}
}

func formatJournalDecision(d string) string {
	if d == selection.Accept.String() {
		return formatDecision(selection.Accept)
	}
	return formatDecision(selection.Reject)
}
