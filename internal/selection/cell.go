package selection

import (
	"github.com/javiermolinar/gridline/internal/cells"
	"github.com/javiermolinar/gridline/internal/grid"
)

// CellRange is an inclusive, normalized block of cells.
type CellRange struct {
	MinCol int
	MinRow int
	MaxCol int
	MaxRow int
}

// NewCellRange normalizes two corners into a range.
func NewCellRange(a, b cells.Key) CellRange {
	return CellRange{
		MinCol: min(a.Col, b.Col),
		MinRow: min(a.Row, b.Row),
		MaxCol: max(a.Col, b.Col),
		MaxRow: max(a.Row, b.Row),
	}
}

// Contains reports whether (col, row) lies inside the range.
func (r CellRange) Contains(col, row int) bool {
	return col >= r.MinCol && col <= r.MaxCol && row >= r.MinRow && row <= r.MaxRow
}

// Lines returns the half-open line range covered on an axis.
func (r CellRange) Lines(axis grid.Axis) grid.Range {
	if axis == grid.Columns {
		return grid.Range{Start: r.MinCol, End: r.MaxCol + 1}
	}
	return grid.Range{Start: r.MinRow, End: r.MaxRow + 1}
}

// CellState is the cell selection: the anchor where the gesture started and
// the focus that moves with drags and keys.
type CellState struct {
	Anchor cells.Key
	Focus  cells.Key
}

// Range returns the normalized block between anchor and focus.
func (s CellState) Range() CellRange {
	return NewCellRange(s.Anchor, s.Focus)
}

// Ranged reports whether more than one cell is selected.
func (s CellState) Ranged() bool {
	return s.Anchor != s.Focus
}

// CellSelector selects a cell or a block of cells in the grid body.
type CellSelector struct {
	baseHandler
	geo      *geometry
	state    CellState
	selected bool
	dragging bool
}

func newCellSelector(geo *geometry) *CellSelector {
	return &CellSelector{geo: geo}
}

func (s *CellSelector) Kind() Kind { return KindCell }

func (s *CellSelector) HitTest(ev PointerEvent) bool {
	col, ok := s.geo.lineAt(grid.Columns, ev.Pos.X)
	if !ok || col == 0 {
		return false
	}
	row, ok := s.geo.lineAt(grid.Rows, ev.Pos.Y)
	return ok && row != 0
}

func (s *CellSelector) PointerDown(ev PointerEvent) {
	key := s.keyAt(ev.Pos)
	s.dragging = true
	if ev.Mods.Has(ModShift) && s.selected {
		s.state.Focus = key
	} else {
		s.state = CellState{Anchor: key, Focus: key}
	}
	s.selected = true
	s.geo.requestRepaint()
}

func (s *CellSelector) PointerMove(ev PointerEvent) {
	if !s.dragging {
		return
	}
	key := s.keyAt(ev.Pos)
	if key == s.state.Focus {
		return
	}
	s.state.Focus = key
	s.geo.ensureVisible(grid.Columns, key.Col)
	s.geo.ensureVisible(grid.Rows, key.Row)
	s.geo.requestRepaint()
}

func (s *CellSelector) PointerUp(PointerEvent) {
	s.dragging = false
}

func (s *CellSelector) Cursor(ev PointerEvent) (Cursor, bool) {
	if s.HitTest(ev) {
		return CursorCell, true
	}
	return CursorDefault, false
}

func (s *CellSelector) ClearSelection() {
	s.selected = false
	s.dragging = false
	s.state = CellState{}
}

// State returns the selection, if any.
func (s *CellSelector) State() (CellState, bool) {
	return s.state, s.selected
}

// Select collapses the selection to a single cell, clamped to the data area.
func (s *CellSelector) Select(col, row int) {
	key := s.clamp(cells.Key{Col: col, Row: row})
	s.state = CellState{Anchor: key, Focus: key}
	s.selected = true
}

// ExtendTo moves the focus, keeping the anchor.
func (s *CellSelector) ExtendTo(col, row int) {
	if !s.selected {
		s.Select(col, row)
		return
	}
	s.state.Focus = s.clamp(cells.Key{Col: col, Row: row})
}

// Clamp pulls the selection back inside the data area after the grid shrinks.
func (s *CellSelector) Clamp() {
	if !s.selected {
		return
	}
	s.state.Anchor = s.clamp(s.state.Anchor)
	s.state.Focus = s.clamp(s.state.Focus)
}

func (s *CellSelector) keyAt(p Point) cells.Key {
	return cells.Key{
		Col: s.geo.dataLineAt(grid.Columns, p.X),
		Row: s.geo.dataLineAt(grid.Rows, p.Y),
	}
}

func (s *CellSelector) clamp(k cells.Key) cells.Key {
	maxCol := max(1, s.geo.dims.Len(grid.Columns)-1)
	maxRow := max(1, s.geo.dims.Len(grid.Rows)-1)
	return cells.Key{
		Col: max(1, min(k.Col, maxCol)),
		Row: max(1, min(k.Row, maxRow)),
	}
}
