// Package tui provides the terminal user interface for gridline.
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/gridline/internal/config"
	"github.com/javiermolinar/gridline/internal/grid"
	"github.com/javiermolinar/gridline/internal/selection"
	"github.com/javiermolinar/gridline/internal/tui/view"
)

func TestView_BeforeWindowSize(t *testing.T) {
	m := New(config.Default())
	if got := m.View(); got != "Loading..." {
		t.Errorf("View() = %q, want Loading...", got)
	}
}

func TestView_TooSmall(t *testing.T) {
	m := New(config.Default())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	if got := updated.(Model).View(); !strings.Contains(got, "Terminal too small") {
		t.Errorf("View() = %q", got)
	}
}

func TestView_Layout(t *testing.T) {
	m := newTestModel(t)
	m.session.Store().Set(1, 1, "hello")
	m.session.Store().Set(2, 1, "3.5")

	out := ansi.Strip(m.View())
	lines := strings.Split(out, "\n")
	if len(lines) != 30 {
		t.Fatalf("View() has %d lines, want 30", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 100 {
			t.Errorf("line %d width = %d, want 100", i, w)
		}
	}
	if !strings.Contains(lines[0], "gridline") {
		t.Errorf("title = %q", lines[0])
	}
	// Line 1 is the column header row, line 3 the first data row.
	for _, want := range []string{"A", "B", "C"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("header %q missing %q", lines[1], want)
		}
	}
	if !strings.Contains(lines[3], "hello") || !strings.Contains(lines[3], "3.5") {
		t.Errorf("row 1 = %q", lines[3])
	}
}

func TestView_ModalOverlay(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyF1})
	if out := ansi.Strip(m.View()); !strings.Contains(out, "Keys") || !strings.Contains(out, "Undo or redo") {
		t.Error("help modal not drawn")
	}
}

func TestCellView(t *testing.T) {
	m := newTestModel(t)
	m.session.Store().Set(2, 2, "42")
	m.session.Store().Set(3, 2, "text")
	coord := m.session.Selection()
	coord.SelectCell(2, 2)
	coord.HandleKey(selection.KeyRight, selection.ModShift)

	tests := []struct {
		name      string
		col, row  int
		wantText  string
		wantStyle lipgloss.Style
		wantAlign lipgloss.Position
	}{
		{"corner", 0, 0, "", m.styles.CornerStyle, lipgloss.Left},
		{"active column header", 2, 0, "B", m.styles.HeaderActiveStyle, lipgloss.Center},
		{"column header", 5, 0, "E", m.styles.HeaderStyle, lipgloss.Center},
		{"active row header", 0, 2, "2", m.styles.HeaderActiveStyle, lipgloss.Right},
		{"anchor", 2, 2, "42", m.styles.CursorStyle, lipgloss.Right},
		{"range", 3, 2, "text", m.styles.RangeStyle, lipgloss.Left},
		{"plain", 4, 4, "", m.styles.CellStyle, lipgloss.Left},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := m.cellView(tt.col, tt.row)
			if cv.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", cv.Text, tt.wantText)
			}
			if cv.Align != tt.wantAlign {
				t.Errorf("Align = %v, want %v", cv.Align, tt.wantAlign)
			}
			if got, want := cv.Style.Render("x"), tt.wantStyle.Render("x"); got != want {
				t.Errorf("Style renders %q, want %q", got, want)
			}
		})
	}
}

func TestCellView_Editing(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("abc"))
	cv := m.cellView(1, 1)
	if !strings.Contains(ansi.Strip(cv.Text), "abc") {
		t.Errorf("edit cell text = %q", cv.Text)
	}
	if got, want := cv.Style.Render("x"), m.styles.EditStyle.Render("x"); got != want {
		t.Errorf("edit cell style = %q, want %q", got, want)
	}
}

func TestSelectionLabel(t *testing.T) {
	m := newTestModel(t)
	coord := m.session.Selection()

	if got := m.selectionLabel(); got != "A1" {
		t.Errorf("initial label = %q, want A1", got)
	}

	coord.SelectCell(2, 2)
	coord.HandleKey(selection.KeyDown, selection.ModShift)
	coord.HandleKey(selection.KeyRight, selection.ModShift)
	if got := m.selectionLabel(); got != "B2:C3" {
		t.Errorf("block label = %q, want B2:C3", got)
	}

	coord.SelectLines(grid.Rows, grid.Range{Start: 3, End: 5})
	if got := m.selectionLabel(); got != "rows 3-4" {
		t.Errorf("rows label = %q", got)
	}

	coord.SelectLines(grid.Columns, grid.Range{Start: 2, End: 3})
	if got := m.selectionLabel(); got != "column B" {
		t.Errorf("column label = %q", got)
	}

	coord.ClearSelection()
	if got := m.selectionLabel(); got != "" {
		t.Errorf("empty label = %q", got)
	}
}

func TestAlignFor(t *testing.T) {
	tests := []struct {
		value string
		want  lipgloss.Position
	}{
		{"12", lipgloss.Right},
		{" -3.5 ", lipgloss.Right},
		{"1e3", lipgloss.Right},
		{"abc", lipgloss.Left},
		{"", lipgloss.Left},
		{"12 apples", lipgloss.Left},
	}
	for _, tt := range tests {
		if got := alignFor(tt.value); got != tt.want {
			t.Errorf("alignFor(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestStatusText_PromptSuggestions(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes(":"), runes("g"))
	if got := m.statusText(80); got != "goto COL ROW" {
		t.Errorf("statusText() = %q, want goto usage", got)
	}
}

func TestGridStats(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("a"), tea.KeyMsg{Type: tea.KeyEnter})

	stats := m.gridStats()
	want := view.GridStats{
		Cells:     1,
		Cols:      19,
		Rows:      49,
		Selection: "A2",
		Visible:   "A1:I11",
		Undo:      "edit 1,1",
	}
	if stats != want {
		t.Errorf("gridStats() = %+v, want %+v", stats, want)
	}

	m.session.Selection().SelectLines(grid.Rows, grid.Range{Start: 1, End: 3})
	got := ansi.Strip(view.StatsText(m.gridStats(), view.StatsStyles{}))
	for _, part := range []string{"1 cell", "19×49", "rows 1-2 (1 filled)", "view A1:I11", "undo: edit 1,1"} {
		if !strings.Contains(got, part) {
			t.Errorf("stats line = %q, missing %q", got, part)
		}
	}
}

func TestGridStats_VisibleFollowsScroll(t *testing.T) {
	m := newTestModel(t)
	m.session.Scroll(160, 45)
	if got := m.visibleLabel(); got != "C2:K12" {
		t.Errorf("visibleLabel() = %q, want C2:K12", got)
	}
}
