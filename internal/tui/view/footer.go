package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GridStats is what the stats line reports about the grid.
type GridStats struct {
	Cells int // populated cells
	Cols  int // data columns
	Rows  int // data rows

	// Selection names the selected block ("B2:C3", "rows 3-4"); Filled counts
	// the populated cells inside it.
	Selection string
	Filled    int

	// Visible names the data block on screen, e.g. "A1:J11".
	Visible string

	Undo string
	Redo string
}

// StatsStyles styles the parts of the stats line.
type StatsStyles struct {
	Accent    lipgloss.Style
	Separator lipgloss.Style
}

// StatsText renders the stats line: cell count, extent, selection, visible
// block and the next undo and redo steps.
func StatsText(s GridStats, styles StatsStyles) string {
	parts := []string{
		styles.Accent.Render(FormatCount(s.Cells, "cell")),
		fmt.Sprintf("%d×%d", s.Cols, s.Rows),
	}
	if s.Selection != "" {
		sel := s.Selection
		if s.Filled > 0 {
			sel += fmt.Sprintf(" (%d filled)", s.Filled)
		}
		parts = append(parts, sel)
	}
	if s.Visible != "" {
		parts = append(parts, "view "+s.Visible)
	}
	if s.Undo != "" {
		parts = append(parts, "undo: "+s.Undo)
	}
	if s.Redo != "" {
		parts = append(parts, "redo: "+s.Redo)
	}
	return strings.Join(parts, styles.Separator.Render(" · "))
}
