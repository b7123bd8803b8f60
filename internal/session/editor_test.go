package session

import (
	"errors"
	"testing"

	"github.com/javiermolinar/gridline/internal/cells"
	"github.com/javiermolinar/gridline/internal/selection"
)

func TestEditorCommitUndoRedo(t *testing.T) {
	s := newTestSession(t, 10, 20)
	s.Selection().SelectCell(2, 3)

	text, err := s.Editor().Begin()
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if text != "" {
		t.Errorf("Begin() = %q, want empty seed", text)
	}
	if err := s.Editor().SetText("hi"); err != nil {
		t.Fatalf("SetText() error = %v", err)
	}
	// Pending text is not visible until commit.
	if _, ok := s.Store().Get(2, 3); ok {
		t.Error("store changed before commit")
	}

	changed, err := s.Editor().Commit()
	if err != nil || !changed {
		t.Fatalf("Commit() = %v, %v", changed, err)
	}
	if s.Editor().Active() {
		t.Error("editor still active after commit")
	}
	if got := s.Store().Value(2, 3); got != "hi" {
		t.Errorf("Value(2,3) = %q, want hi", got)
	}

	s.Undo()
	if _, ok := s.Store().Get(2, 3); ok {
		t.Error("undo should restore the empty cell")
	}
	s.Redo()
	if got := s.Store().Value(2, 3); got != "hi" {
		t.Errorf("after redo Value(2,3) = %q, want hi", got)
	}
}

func TestEditorSeedsExistingValue(t *testing.T) {
	s := newTestSession(t, 10, 20)
	s.Store().Set(4, 4, "seed")
	s.Selection().SelectCell(4, 4)

	text, err := s.Editor().Begin()
	if err != nil || text != "seed" {
		t.Fatalf("Begin() = %q, %v; want seed", text, err)
	}
	key, ok := s.Editor().Key()
	if !ok || key != (cells.Key{Col: 4, Row: 4}) {
		t.Errorf("Key() = %v, %v", key, ok)
	}

	// Committing the same text records nothing.
	changed, err := s.Editor().Commit()
	if err != nil || changed {
		t.Errorf("Commit() = %v, %v; want no change", changed, err)
	}
	if s.History().Len() != 0 {
		t.Errorf("history has %d entries, want 0", s.History().Len())
	}
}

func TestEditorTargetsAnchor(t *testing.T) {
	s := newTestSession(t, 10, 20)
	s.Selection().SelectCell(2, 2)
	s.Selection().HandleKey(selection.KeyDown, selection.ModShift)

	if err := s.Editor().BeginWith("x"); err != nil {
		t.Fatalf("BeginWith() error = %v", err)
	}
	if _, err := s.Editor().Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if got := s.Store().Value(2, 2); got != "x" {
		t.Errorf("anchor value = %q, want x", got)
	}
	if _, ok := s.Store().Get(2, 3); ok {
		t.Error("focus cell should be untouched")
	}
}

func TestEditorCancel(t *testing.T) {
	s := newTestSession(t, 10, 20)
	s.Store().Set(1, 1, "keep")
	s.Selection().SelectCell(1, 1)

	if err := s.Editor().BeginWith("discard"); err != nil {
		t.Fatalf("BeginWith() error = %v", err)
	}
	if !s.Editor().Cancel() {
		t.Error("Cancel() = false with an open edit")
	}
	if s.Editor().Cancel() {
		t.Error("second Cancel() = true")
	}
	if got := s.Store().Value(1, 1); got != "keep" {
		t.Errorf("Value(1,1) = %q, want keep", got)
	}
	if s.Selection().Editing() {
		t.Error("coordinator still in editing mode")
	}
}

func TestEditorErrors(t *testing.T) {
	s := newTestSession(t, 10, 20)

	if _, err := s.Editor().Begin(); !errors.Is(err, ErrNoTarget) {
		t.Errorf("Begin() without selection error = %v, want ErrNoTarget", err)
	}
	if err := s.Editor().SetText("x"); !errors.Is(err, ErrNotEditing) {
		t.Errorf("SetText() error = %v, want ErrNotEditing", err)
	}
	if _, err := s.Editor().Commit(); !errors.Is(err, ErrNotEditing) {
		t.Errorf("Commit() error = %v, want ErrNotEditing", err)
	}
	if _, err := s.Editor().CommitAndMove(0, 1); !errors.Is(err, ErrNotEditing) {
		t.Errorf("CommitAndMove() error = %v, want ErrNotEditing", err)
	}

	// A cleared selection has no cell to edit.
	s.Selection().SelectCell(1, 1)
	s.Selection().ClearSelection()
	if _, err := s.Editor().Begin(); !errors.Is(err, ErrNoTarget) {
		t.Errorf("Begin() after clear error = %v, want ErrNoTarget", err)
	}
}

func TestEditorCommitAndMove(t *testing.T) {
	s := newTestSession(t, 5, 5)

	tests := []struct {
		name     string
		start    cells.Key
		dx, dy   int
		wantMove cells.Key
	}{
		{"enter moves down", cells.Key{Col: 2, Row: 2}, 0, 1, cells.Key{Col: 2, Row: 3}},
		{"tab moves right", cells.Key{Col: 2, Row: 2}, 1, 0, cells.Key{Col: 3, Row: 2}},
		{"clamped at last row", cells.Key{Col: 2, Row: 4}, 0, 1, cells.Key{Col: 2, Row: 4}},
		{"clamped at first column", cells.Key{Col: 1, Row: 2}, -1, 0, cells.Key{Col: 1, Row: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Selection().SelectCell(tt.start.Col, tt.start.Row)
			if err := s.Editor().BeginWith(tt.name); err != nil {
				t.Fatalf("BeginWith() error = %v", err)
			}
			if _, err := s.Editor().CommitAndMove(tt.dx, tt.dy); err != nil {
				t.Fatalf("CommitAndMove() error = %v", err)
			}
			if got := s.Store().Value(tt.start.Col, tt.start.Row); got != tt.name {
				t.Errorf("edited value = %q, want %q", got, tt.name)
			}
			st, ok := s.Selection().Cell()
			if !ok || st.Anchor != tt.wantMove || st.Focus != tt.wantMove {
				t.Errorf("selection = %+v, want %v", st, tt.wantMove)
			}
		})
	}
}

func TestEditingBlocksNavigation(t *testing.T) {
	s := newTestSession(t, 10, 20)
	s.Selection().SelectCell(2, 2)
	if _, err := s.Editor().Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}

	if s.Selection().HandleKey(selection.KeyDown, 0) {
		t.Error("HandleKey consumed a key during an edit")
	}
	s.Editor().Cancel()
	if !s.Selection().HandleKey(selection.KeyDown, 0) {
		t.Error("HandleKey ignored a key after the edit closed")
	}
}

func TestUndoDiscardsOpenEdit(t *testing.T) {
	s := newTestSession(t, 10, 20)
	s.Selection().SelectCell(1, 1)
	s.Editor().BeginWith("a")
	s.Editor().Commit()

	s.Editor().BeginWith("pending")
	if !s.Undo() {
		t.Fatal("Undo() = false")
	}
	if s.Editor().Active() {
		t.Error("undo should close the open edit")
	}
	if s.Store().Len() != 0 {
		t.Errorf("store = %v, want empty", s.Store().Entries())
	}
}
