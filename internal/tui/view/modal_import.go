// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ImportSummaryModel contains the fields needed to render an import summary.
type ImportSummaryModel struct {
	Source  string
	Format  string
	Records int
	Cells   int
	Dropped int
	Headers []string
}

// ImportSummaryStyles groups styles for the import summary body.
type ImportSummaryStyles struct {
	BodyStyle    lipgloss.Style
	LabelStyle   lipgloss.Style
	WarningStyle lipgloss.Style
}

// RenderImportSummaryBody renders what an import loaded into the grid.
func RenderImportSummaryBody(model ImportSummaryModel, styles ImportSummaryStyles) string {
	var body strings.Builder

	row := func(label, value string) {
		body.WriteString(styles.LabelStyle.Render(label) + styles.BodyStyle.Render(value) + "\n")
	}
	row(" Source:", model.Source)
	row(" Format:", model.Format)
	row(" Records:", FormatCount(model.Records, "record"))
	row(" Cells:", FormatCount(model.Cells, "cell"))
	if len(model.Headers) > 0 {
		row(" Columns:", strings.Join(model.Headers, ", "))
	}
	if model.Dropped > 0 {
		body.WriteString("\n" + styles.WarningStyle.Render(
			" "+FormatCount(model.Dropped, "value")+" fell outside the grid and were skipped."))
	}

	return strings.TrimRight(body.String(), "\n")
}
