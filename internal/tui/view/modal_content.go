// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpSection is a titled group of key bindings.
type HelpSection struct {
	Title    string
	Bindings [][2]string
}

// HelpStyles groups styles for the help body.
type HelpStyles struct {
	SectionTitleStyle lipgloss.Style
	LabelStyle        lipgloss.Style
	BodyStyle         lipgloss.Style
}

// RenderHelpBody renders key bindings grouped by section.
func RenderHelpBody(sections []HelpSection, styles HelpStyles) string {
	var body strings.Builder
	for i, section := range sections {
		if i > 0 {
			body.WriteString("\n\n")
		}
		body.WriteString(styles.SectionTitleStyle.Render(section.Title))
		for _, b := range section.Bindings {
			body.WriteString("\n")
			body.WriteString(styles.LabelStyle.Render(" "+b[0]) + styles.BodyStyle.Render(b[1]))
		}
	}
	return body.String()
}

// ConfirmDeleteModel contains the fields needed to render the confirm delete body.
type ConfirmDeleteModel struct {
	// Lines names what is removed, e.g. "rows 4-6".
	Lines string
	Cells int
}

// ConfirmDeleteStyles groups styles for the confirm delete body.
type ConfirmDeleteStyles struct {
	BodyStyle lipgloss.Style
	MetaStyle lipgloss.Style
}

// RenderConfirmDeleteBody renders the modal body for the delete confirmation.
func RenderConfirmDeleteBody(model ConfirmDeleteModel, styles ConfirmDeleteStyles) string {
	var body strings.Builder

	body.WriteString(styles.BodyStyle.Render(fmt.Sprintf("Delete %s?", model.Lines)) + "\n")
	if model.Cells > 0 {
		body.WriteString(styles.MetaStyle.Render(FormatCount(model.Cells, "populated cell") + " will be removed.\n"))
	}
	body.WriteString(styles.MetaStyle.Render("Undo restores them."))

	return body.String()
}
