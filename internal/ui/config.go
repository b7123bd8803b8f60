package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/gridline/internal/config"
	"github.com/javiermolinar/gridline/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var path string
	var edit bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Configuration management.

If no config file exists, creates one with default values.
Otherwise, displays the current config. With --edit, prompts for
each value and saves the result.

Example:
  gridline config
  gridline config --edit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = config.DefaultConfigPath()
			}
			return runConfig(path, edit, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Config file path (default: ~/.config/gridline/config.toml)")
	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "Edit the configuration interactively")
	return cmd
}

func runConfig(path string, edit bool, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Config file: %s\n\n", path)

	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(path)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(path); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", path)
	}

	printConfig(out, cfg)
	if !edit {
		return nil
	}

	reader := bufio.NewReader(in)
	fmt.Fprintln(out)

	cfg.Grid.Rows = promptInt(reader, out, "Rows (including header)", cfg.Grid.Rows)
	cfg.Grid.Cols = promptInt(reader, out, "Columns (including header)", cfg.Grid.Cols)
	cfg.Grid.ColWidth = promptInt(reader, out, "Column width", cfg.Grid.ColWidth)
	cfg.Grid.RowHeight = promptInt(reader, out, "Row height", cfg.Grid.RowHeight)
	cfg.Grid.HistoryLimit = promptInt(reader, out, "History limit (0 = unlimited)", cfg.Grid.HistoryLimit)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, formatHeader("Current configuration:"))
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[grid]")
	fmt.Fprintf(out, "  rows           = %d\n", cfg.Grid.Rows)
	fmt.Fprintf(out, "  cols           = %d\n", cfg.Grid.Cols)
	fmt.Fprintf(out, "  col_width      = %d\n", cfg.Grid.ColWidth)
	fmt.Fprintf(out, "  row_height     = %d\n", cfg.Grid.RowHeight)
	fmt.Fprintf(out, "  min_col_width  = %d\n", cfg.Grid.MinColWidth)
	fmt.Fprintf(out, "  min_row_height = %d\n", cfg.Grid.MinRowHeight)
	fmt.Fprintf(out, "  resize_grab    = %d\n", cfg.Grid.ResizeGrab)
	fmt.Fprintf(out, "  history_limit  = %d\n", cfg.Grid.HistoryLimit)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme          = %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "  px_per_col     = %d\n", cfg.UI.PxPerCol)
	fmt.Fprintf(out, "  px_per_line    = %d\n", cfg.UI.PxPerLine)
	fmt.Fprintf(out, "  resize_grab    = %d\n", cfg.UI.ResizeGrab)
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
		// Stop asking once input runs out.
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
