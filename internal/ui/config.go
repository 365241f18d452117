package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotpick/internal/config"
	"github.com/javiermolinar/slotpick/internal/decide"
	"github.com/javiermolinar/slotpick/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  slotpick config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(a.configPath, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runConfigInteractive(configPath string, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	reader := bufio.NewReader(in)
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	p := prompter{reader: reader, out: out}

	cfg.Picker.Capacity = p.int("Capacity", cfg.Picker.Capacity)
	cfg.Picker.Unlimited = p.bool("Unlimited", cfg.Picker.Unlimited)
	cfg.Picker.Continuous = p.bool("Continuous", cfg.Picker.Continuous)
	cfg.Picker.SelectedByDefault = p.bool("Selected by default", cfg.Picker.SelectedByDefault)
	cfg.Picker.Alpha = p.bool("Weekday names as day keys", cfg.Picker.Alpha)
	cfg.Picker.Locale = p.value("Locale", cfg.Picker.Locale)
	cfg.Picker.Unit = p.value("Slot unit", cfg.Picker.Unit)
	cfg.Picker.InitialDay = p.value("Initial day", cfg.Picker.InitialDay)
	cfg.Picker.DaysPerPage = p.int("Days per page", cfg.Picker.DaysPerPage)
	cfg.Schedule.DayStart = p.value("Day start", cfg.Schedule.DayStart)
	cfg.Schedule.DayEnd = p.value("Day end", cfg.Schedule.DayEnd)
	cfg.Schedule.Workdays = p.slice("Workdays (comma-separated)", cfg.Schedule.Workdays)
	cfg.Schedule.Days = p.int("Days to generate", cfg.Schedule.Days)
	cfg.Decision.Mode = p.choice("Decision mode", cfg.Decision.Mode, decide.Modes(), decide.IsMode)
	cfg.Storage.DBPath = p.value("Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = p.choice("UI theme", cfg.UI.Theme, theme.Available(), theme.IsAvailable)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[picker]")
	fmt.Fprintf(out, "  capacity            = %d\n", cfg.Picker.Capacity)
	fmt.Fprintf(out, "  unlimited           = %t\n", cfg.Picker.Unlimited)
	fmt.Fprintf(out, "  continuous          = %t\n", cfg.Picker.Continuous)
	fmt.Fprintf(out, "  selected_by_default = %t\n", cfg.Picker.SelectedByDefault)
	fmt.Fprintf(out, "  alpha               = %t\n", cfg.Picker.Alpha)
	fmt.Fprintf(out, "  locale              = %s\n", cfg.Picker.Locale)
	fmt.Fprintf(out, "  unit                = %s\n", cfg.Picker.Unit)
	fmt.Fprintf(out, "  initial_day         = %s\n", cfg.Picker.InitialDay)
	fmt.Fprintf(out, "  days_per_page       = %d\n", cfg.Picker.DaysPerPage)
	fmt.Fprintln(out, "\n[schedule]")
	fmt.Fprintf(out, "  day_start           = %s\n", cfg.Schedule.DayStart)
	fmt.Fprintf(out, "  day_end             = %s\n", cfg.Schedule.DayEnd)
	fmt.Fprintf(out, "  workdays            = %s\n", strings.Join(cfg.Schedule.Workdays, ", "))
	fmt.Fprintf(out, "  days                = %d\n", cfg.Schedule.Days)
	fmt.Fprintln(out, "\n[decision]")
	fmt.Fprintf(out, "  mode                = %s\n", cfg.Decision.Mode)
	fmt.Fprintln(out, "\n[storage]")
	fmt.Fprintf(out, "  db_path             = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme               = %s\n", cfg.UI.Theme)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

// prompter reads edited values line by line. An empty line keeps the
// current value.
type prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func (p prompter) value(label, current string) string {
	if current == "" {
		fmt.Fprintf(p.out, "  %s: ", label)
	} else {
		fmt.Fprintf(p.out, "  %s [%s]: ", label, current)
	}
	input, _ := p.reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func (p prompter) int(label string, current int) int {
	for {
		value := p.value(label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(p.out, "  Invalid number %q\n", value)
	}
}

func (p prompter) bool(label string, current bool) bool {
	for {
		value := p.value(label, strconv.FormatBool(current))
		switch strings.ToLower(value) {
		case "true", "yes", "y":
			return true
		case "false", "no", "n":
			return false
		}
		fmt.Fprintf(p.out, "  Invalid answer %q (want true or false)\n", value)
	}
}

func (p prompter) slice(label string, current []string) []string {
	value := p.value(label, strings.Join(current, ", "))
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

func (p prompter) choice(label, current string, options []string, valid func(string) bool) string {
	joined := strings.Join(options, ", ")
	label = fmt.Sprintf("%s (%s)", label, joined)
	for {
		value := strings.ToLower(p.value(label, current))
		if valid(value) {
			return value
		}
		fmt.Fprintf(p.out, "  Invalid value %q. Available: %s\n", value, joined)
	}
}
