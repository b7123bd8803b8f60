// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderHelpBody(t *testing.T) {
	styles := HelpStyles{
		SectionTitleStyle: lipgloss.NewStyle(),
		LabelStyle:        lipgloss.NewStyle().Width(10),
		BodyStyle:         lipgloss.NewStyle(),
	}
	sections := []HelpSection{
		{Title: "Move", Bindings: [][2]string{{"arrows", "move focus"}}},
		{Title: "Edit", Bindings: [][2]string{{"enter", "edit cell"}, {"esc", "cancel"}}},
	}

	body := RenderHelpBody(sections, styles)
	for _, want := range []string{"Move", "Edit", " arrows", "move focus", " esc", "cancel"} {
		if !strings.Contains(body, want) {
			t.Errorf("help body missing %q:\n%s", want, body)
		}
	}
	if got := strings.Count(body, "\n"); got != 5 {
		t.Errorf("newlines = %d, want 5", got)
	}
}

func TestRenderConfirmDeleteBody(t *testing.T) {
	styles := ConfirmDeleteStyles{
		BodyStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		MetaStyle: lipgloss.NewStyle(),
	}

	body := RenderConfirmDeleteBody(ConfirmDeleteModel{Lines: "rows 4-6", Cells: 3}, styles)
	if !strings.Contains(body, styles.BodyStyle.Render("Delete rows 4-6?")) {
		t.Errorf("expected question to use body style: %q", body)
	}
	if !strings.Contains(body, "3 populated cells") {
		t.Errorf("expected cell count: %q", body)
	}

	empty := RenderConfirmDeleteBody(ConfirmDeleteModel{Lines: "column B"}, styles)
	if strings.Contains(empty, "populated") {
		t.Errorf("empty lines should not mention cells: %q", empty)
	}
}
