// Package tui provides the terminal user interface for gridline.
package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gridline/internal/cells"
	"github.com/javiermolinar/gridline/internal/config"
	"github.com/javiermolinar/gridline/internal/importer"
	"github.com/javiermolinar/gridline/internal/selection"
	"github.com/javiermolinar/gridline/internal/tui/commands"
)

// newTestModel returns a model over a 19x49 data grid sized to a 100x30
// terminal: the grid area is 98x23 cells starting at (1, 1).
func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Grid.Cols = 20
	cfg.Grid.Rows = 50
	m := New(cfg)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func TestNewModel_Defaults(t *testing.T) {
	m := New(nil)
	if m.mode != ModeNormal || m.modalType != ModalNone {
		t.Errorf("mode = %v, modal = %v", m.mode, m.modalType)
	}
	if m.pxPerCol != 8 || m.pxPerLine != 15 {
		t.Errorf("pixels per cell = %dx%d, want 8x15", m.pxPerCol, m.pxPerLine)
	}
	st, ok := m.session.Selection().Cell()
	if !ok || st.Anchor != (cells.Key{Col: 1, Row: 1}) {
		t.Errorf("initial selection = %+v, %v; want A1", st, ok)
	}
	if m.Init() != nil {
		t.Error("Init() without a load path should return nil")
	}
}

func TestNewModel_AppliesEditorStyles(t *testing.T) {
	m := New(config.Default())
	if got, want := m.editor.TextStyle.Render("x"), m.styles.InputTextStyle.Render("x"); got != want {
		t.Errorf("TextStyle mismatch: got %q, want %q", got, want)
	}
	if got, want := m.editor.Cursor.Style.Render("x"), m.styles.InputCursorStyle.Render("x"); got != want {
		t.Errorf("Cursor style mismatch: got %q, want %q", got, want)
	}
}

func TestNewModel_WithLoad(t *testing.T) {
	m := New(config.Default(), WithLoad("data.json", importer.Options{Limit: 5}))
	if m.loadPath != "data.json" || m.loadOpts.Limit != 5 {
		t.Errorf("load = %q %+v", m.loadPath, m.loadOpts)
	}
	if m.Init() == nil {
		t.Error("Init() with a load path should return a command")
	}
}

func TestNewModel_UsesUIResizeGrab(t *testing.T) {
	tests := []struct {
		name  string
		cellX int
		want  selection.State
	}{
		// Canvas x 159 is one pixel left of the column 1 edge at 160.
		{"separator column grabs", 19, selection.Resizing},
		// Canvas x 167 is seven pixels past it: outside the TUI grab.
		{"next column selects", 20, selection.DraggingLine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			press := tea.MouseMsg{X: 1 + tt.cellX, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
			updated, _ := m.Update(press)
			m = updated.(Model)
			if got := m.session.Selection().State(); got != tt.want {
				t.Errorf("State() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdate_WindowSizeSetsViewport(t *testing.T) {
	m := newTestModel(t)
	v := m.session.Selection().Viewport()
	if v.Width != 98*8 || v.Height != 23*15 {
		t.Errorf("viewport = %+v, want 784x345", v)
	}
}

func TestUpdate_StatusMessages(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(commands.StatusMsgCmd{Msg: "hello"})
	m = updated.(Model)
	if m.statusMsg != "hello" || m.statusError {
		t.Errorf("status = %q error=%v", m.statusMsg, m.statusError)
	}
	if cmd == nil {
		t.Error("status should schedule a clear")
	}

	// The clear is ignored until the message expires.
	updated, _ = m.Update(commands.ClearStatusMsg{})
	m = updated.(Model)
	if m.statusMsg != "hello" {
		t.Errorf("status cleared early: %q", m.statusMsg)
	}
}

func TestUpdate_ErrMsg(t *testing.T) {
	m := newTestModel(t)
	m.loading = true

	updated, _ := m.Update(commands.ErrMsg{Err: importer.ErrUnsupportedFormat})
	m = updated.(Model)
	if m.loading {
		t.Error("error should end loading")
	}
	if !m.statusError || m.err == nil {
		t.Errorf("status = %q error=%v", m.statusMsg, m.statusError)
	}
}

func TestUpdate_CopiedMsg(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(commands.CopiedMsg{Lines: 2})
	if cmd == nil {
		t.Fatal("CopiedMsg should produce a status command")
	}
	msg, ok := cmd().(commands.StatusMsgCmd)
	if !ok || msg.Msg != "Copied 2 lines" {
		t.Errorf("status = %#v", msg)
	}
}

func importResult(entries ...cells.Entry) *importer.Result {
	res := &importer.Result{Format: importer.FormatJSON, Source: "/tmp/people.json", Headers: []string{"name"}}
	for _, e := range entries {
		res.Entries = append(res.Entries, e)
		res.Cols = max(res.Cols, e.Key.Col)
		res.Rows = max(res.Rows, e.Key.Row)
	}
	return res
}

func TestUpdate_ImportShowsSummary(t *testing.T) {
	m := newTestModel(t)
	m.loading = true
	res := importResult(
		cells.Entry{Key: cells.Key{Col: 1, Row: 1}, Value: "name"},
		cells.Entry{Key: cells.Key{Col: 1, Row: 2}, Value: "ada"},
	)

	updated, _ := m.Update(commands.ImportedMsg{Result: res})
	m = updated.(Model)
	if m.loading {
		t.Error("import should end loading")
	}
	if m.mode != ModeModal || m.modalType != ModalImportSummary {
		t.Fatalf("mode = %v modal = %v, want import summary", m.mode, m.modalType)
	}
	if got := m.session.Store().Value(1, 2); got != "ada" {
		t.Errorf("Value(1,2) = %q, want ada", got)
	}

	// Without dropped values "u" does nothing.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'u'}})
	m = updated.(Model)
	if m.mode != ModeModal {
		t.Error("u closed the summary without dropped values")
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.mode != ModeNormal {
		t.Errorf("mode = %v after enter, want normal", m.mode)
	}
}

func TestUpdate_ImportUndoWhenDropped(t *testing.T) {
	m := newTestModel(t)
	m.session.Store().Set(3, 3, "before")
	res := importResult(
		cells.Entry{Key: cells.Key{Col: 1, Row: 1}, Value: "a"},
		cells.Entry{Key: cells.Key{Col: 40, Row: 1}, Value: "too far"},
	)

	updated, _ := m.Update(commands.ImportedMsg{Result: res})
	m = updated.(Model)
	if m.lastImport == nil || m.lastImport.Dropped != 1 {
		t.Fatalf("lastImport = %+v, want 1 dropped", m.lastImport)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'u'}})
	m = updated.(Model)
	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want normal", m.mode)
	}
	if got := m.session.Store().Value(3, 3); got != "before" {
		t.Errorf("undo import left Value(3,3) = %q", got)
	}
	if m.importMeta != nil {
		t.Error("undone import still named in the title")
	}
}

func TestUpdate_ImportWithoutChange(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(commands.ImportedMsg{Result: importResult()})
	if cmd == nil {
		t.Fatal("expected a status command")
	}
	if _, ok := cmd().(commands.StatusMsgCmd); !ok {
		t.Error("an unchanged import should report a status")
	}
}
