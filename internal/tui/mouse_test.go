// Package tui provides the terminal user interface for gridline.
package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gridline/internal/cells"
	"github.com/javiermolinar/gridline/internal/grid"
	"github.com/javiermolinar/gridline/internal/selection"
)

// mouseAt builds a mouse event at grid-area cell (cx, cy) of a test model.
func mouseAt(cx, cy int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: 1 + cx, Y: 1 + cy, Action: action, Button: button}
}

func TestMouse_ClickSelectsCell(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m,
		mouseAt(25, 4, tea.MouseActionPress, tea.MouseButtonLeft),
		mouseAt(25, 4, tea.MouseActionRelease, tea.MouseButtonLeft),
	)
	st, ok := m.session.Selection().Cell()
	if !ok || st.Anchor != (cells.Key{Col: 2, Row: 2}) || st.Ranged() {
		t.Errorf("selection = %+v, %v; want B2", st, ok)
	}
	if m.session.Selection().State() != selection.Idle {
		t.Error("release should end the gesture")
	}
}

func TestMouse_DragExtendsBlock(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m,
		mouseAt(25, 4, tea.MouseActionPress, tea.MouseButtonLeft),
		mouseAt(35, 8, tea.MouseActionMotion, tea.MouseButtonLeft),
		mouseAt(35, 8, tea.MouseActionRelease, tea.MouseButtonLeft),
	)
	st, _ := m.session.Selection().Cell()
	if st.Anchor != (cells.Key{Col: 2, Row: 2}) || st.Focus != (cells.Key{Col: 3, Row: 4}) {
		t.Errorf("selection = %+v, want B2:C4", st)
	}
}

func TestMouse_ResizeColumn(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, mouseAt(19, 0, tea.MouseActionMotion, tea.MouseButtonNone))
	if m.hover != selection.CursorColResize {
		t.Errorf("hover = %v, want column resize", m.hover)
	}

	m = press(t, m,
		mouseAt(19, 0, tea.MouseActionPress, tea.MouseButtonLeft),
		mouseAt(24, 0, tea.MouseActionMotion, tea.MouseButtonLeft),
	)
	if _, _, ok := m.session.Selection().ResizeTargets(); !ok {
		t.Fatal("drag on the separator did not start a resize")
	}
	m = press(t, m, mouseAt(24, 0, tea.MouseActionRelease, tea.MouseButtonLeft))

	// Five terminal columns at 8 pixels each.
	if got := m.session.Dimensions().Size(grid.Columns, 1); got != 120 {
		t.Errorf("column 1 width = %d, want 120", got)
	}
	if m.session.History().Len() != 1 {
		t.Errorf("history has %d entries, want 1", m.session.History().Len())
	}
}

func TestMouse_EscCancelsResize(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m,
		mouseAt(19, 0, tea.MouseActionPress, tea.MouseButtonLeft),
		mouseAt(30, 0, tea.MouseActionMotion, tea.MouseButtonLeft),
		tea.KeyMsg{Type: tea.KeyEsc},
	)
	if got := m.session.Dimensions().Size(grid.Columns, 1); got != 80 {
		t.Errorf("column 1 width = %d, want restored 80", got)
	}
	if m.session.History().Len() != 0 {
		t.Error("cancelled resize was recorded")
	}
	// The selection survives the cancel.
	if m.session.Selection().ActiveKind() != selection.KindCell {
		t.Errorf("active kind = %v, want cells", m.session.Selection().ActiveKind())
	}
}

func TestMouse_Wheel(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, mouseAt(30, 10, tea.MouseActionPress, tea.MouseButtonWheelDown))
	if off := m.session.Dimensions().Offset(); off.Y != 90 || off.X != 0 {
		t.Errorf("offset after wheel down = %+v, want y=90", off)
	}

	m = press(t, m, tea.MouseMsg{X: 31, Y: 11, Shift: true, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if off := m.session.Dimensions().Offset(); off.X != 80 {
		t.Errorf("offset after shift+wheel = %+v, want x=80", off)
	}

	m = press(t, m, mouseAt(30, 10, tea.MouseActionPress, tea.MouseButtonWheelUp))
	if off := m.session.Dimensions().Offset(); off.Y != 0 {
		t.Errorf("offset after wheel up = %+v, want y=0", off)
	}
}

func TestMouse_ClickCommitsOpenEdit(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("z"))
	if m.mode != ModeEdit {
		t.Fatalf("mode = %v, want edit", m.mode)
	}
	m = press(t, m, mouseAt(25, 4, tea.MouseActionPress, tea.MouseButtonLeft))
	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want normal", m.mode)
	}
	if got := m.session.Store().Value(1, 1); got != "z" {
		t.Errorf("Value(1,1) = %q, want z", got)
	}
	if got := focus(t, m); got != (cells.Key{Col: 2, Row: 2}) {
		t.Errorf("focus = %v, want B2", got)
	}
}

func TestMouse_IgnoredUnderModal(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyF1})
	m = press(t, m, mouseAt(25, 4, tea.MouseActionPress, tea.MouseButtonLeft))
	if got := focus(t, m); got != (cells.Key{Col: 1, Row: 1}) {
		t.Errorf("focus = %v, want unchanged A1", got)
	}
}

func TestMouse_OutsideGridIgnored(t *testing.T) {
	m := newTestModel(t)
	// Row 0 of the terminal is the title line.
	m = press(t, m, tea.MouseMsg{X: 30, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.session.Selection().State() != selection.Idle {
		t.Error("press on the title started a gesture")
	}
}
