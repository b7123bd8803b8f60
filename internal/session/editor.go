package session

import (
	"errors"

	"github.com/javiermolinar/gridline/internal/cells"
	"github.com/javiermolinar/gridline/internal/history"
)

// Editor holds the pending text of an in-place cell edit. Nothing reaches
// the store until Commit.
type Editor struct {
	s      *Session
	key    cells.Key
	text   string
	active bool
}

// Begin opens an edit on the selection anchor, seeded with its current value.
func (e *Editor) Begin() (string, error) {
	key, err := e.target()
	if err != nil {
		return "", err
	}
	e.open(key, e.s.store.Value(key.Col, key.Row))
	return e.text, nil
}

// BeginWith opens an edit on the selection anchor that replaces its value
// with text, as typing over a selected cell does.
func (e *Editor) BeginWith(text string) error {
	key, err := e.target()
	if err != nil {
		return err
	}
	e.open(key, text)
	return nil
}

// Active reports whether an edit is open.
func (e *Editor) Active() bool { return e.active }

// Key returns the cell being edited.
func (e *Editor) Key() (cells.Key, bool) { return e.key, e.active }

// Text returns the pending text.
func (e *Editor) Text() string { return e.text }

// SetText replaces the pending text.
func (e *Editor) SetText(text string) error {
	if !e.active {
		return ErrNotEditing
	}
	e.text = text
	return nil
}

// Commit closes the edit and records the change. It reports whether the cell
// value changed.
func (e *Editor) Commit() (bool, error) {
	if !e.active {
		return false, ErrNotEditing
	}
	key, text := e.key, e.text
	e.close()

	cmd, err := history.NewEditCell(e.s.store, key, text)
	if errors.Is(err, history.ErrNoChange) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	e.s.Execute(cmd)
	return true, nil
}

// Cancel discards the pending text. It reports whether an edit was open.
func (e *Editor) Cancel() bool {
	if !e.active {
		return false
	}
	e.close()
	return true
}

// CommitAndMove commits and then selects the cell (dx, dy) away from the one
// that was edited, clamped to the data area.
func (e *Editor) CommitAndMove(dx, dy int) (bool, error) {
	if !e.active {
		return false, ErrNotEditing
	}
	key := e.key
	changed, err := e.Commit()
	if err != nil {
		return changed, err
	}
	e.s.coord.SelectCell(key.Col+dx, key.Row+dy)
	return changed, nil
}

func (e *Editor) target() (cells.Key, error) {
	st, ok := e.s.coord.Cell()
	if !ok {
		return cells.Key{}, ErrNoTarget
	}
	return st.Anchor, nil
}

func (e *Editor) open(key cells.Key, text string) {
	e.key, e.text, e.active = key, text, true
	e.s.coord.SetEditing(true)
	e.s.coord.EnsureCellVisible(key.Col, key.Row)
}

func (e *Editor) close() {
	e.key, e.text, e.active = cells.Key{}, "", false
	e.s.coord.SetEditing(false)
}
