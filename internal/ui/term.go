package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Column names in previews
	colorColumn = color.New(color.FgCyan, color.Bold)

	// Counts and sizes
	colorStats = color.New(color.FgGreen)

	// Truncation and empty-cell markers
	colorWarning = color.New(color.FgYellow)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatHeader(s string) string  { return colorHeader.Sprint(s) }
func formatColumn(s string) string  { return colorColumn.Sprint(s) }
func formatStats(s string) string   { return colorStats.Sprint(s) }
func formatWarning(s string) string { return colorWarning.Sprint(s) }
func formatMuted(s string) string   { return colorMuted.Sprint(s) }
