package selection

import (
	"github.com/javiermolinar/gridline/internal/grid"
	"github.com/javiermolinar/gridline/internal/history"
)

// Key is a navigation key understood by the cell selection.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Options configures a Coordinator.
type Options struct {
	// ResizeGrab is the boundary grab distance in logical pixels.
	ResizeGrab int
	// Repaint is notified whenever the selection or layout changes.
	Repaint Repainter
	// OnCommit is called with every command the coordinator records.
	OnCommit func(history.Command)
}

// Coordinator dispatches pointer and keyboard events to exactly one handler
// at a time.
type Coordinator struct {
	geo       *geometry
	colResize *ResizeController
	rowResize *ResizeController
	rows      *LineSelector
	cols      *LineSelector
	cells     *CellSelector
	handlers  []Handler

	current Handler
	active  Kind
	editing bool
}

// NewCoordinator wires the handlers over dims. Resize commands are recorded
// on stack.
func NewCoordinator(dims *grid.Dimensions, stack *history.Stack, opts Options) *Coordinator {
	geo := &geometry{dims: dims, repaint: opts.Repaint}
	c := &Coordinator{geo: geo}
	c.rows = newLineSelector(geo, grid.Rows)
	c.cols = newLineSelector(geo, grid.Columns)
	c.cells = newCellSelector(geo)
	c.colResize = newResizeController(geo, grid.Columns, c.cols, stack, opts.ResizeGrab)
	c.rowResize = newResizeController(geo, grid.Rows, c.rows, stack, opts.ResizeGrab)
	c.colResize.onCommit = opts.OnCommit
	c.rowResize.onCommit = opts.OnCommit
	c.handlers = []Handler{c.colResize, c.rowResize, c.rows, c.cols, c.cells}
	return c
}

// SetViewport records the canvas size in logical pixels.
func (c *Coordinator) SetViewport(v grid.Viewport) {
	c.geo.viewport = v
	c.geo.dims.ClampOffset(v)
}

// Viewport returns the canvas size.
func (c *Coordinator) Viewport() grid.Viewport { return c.geo.viewport }

// SetRepainter replaces the repaint target.
func (c *Coordinator) SetRepainter(r Repainter) { c.geo.repaint = r }

// SetEditing tells the coordinator whether a text edit has focus. Keyboard
// navigation is disabled while editing.
func (c *Coordinator) SetEditing(editing bool) { c.editing = editing }

// Editing reports whether a text edit has focus.
func (c *Coordinator) Editing() bool { return c.editing }

// PointerDown probes the handlers in order and hands the gesture to the
// first hit. A press that hits nothing is ignored.
func (c *Coordinator) PointerDown(ev PointerEvent) {
	if c.current != nil {
		c.PointerUp(ev)
	}
	for _, h := range c.handlers {
		if !h.HitTest(ev) {
			continue
		}
		if kind := h.Kind(); isSelectionKind(kind) {
			for _, other := range c.handlers {
				if other != h {
					other.ClearSelection()
				}
			}
			c.active = kind
		}
		c.current = h
		h.PointerDown(ev)
		return
	}
}

// PointerMove forwards motion to the gesture owner.
func (c *Coordinator) PointerMove(ev PointerEvent) {
	if c.current != nil {
		c.current.PointerMove(ev)
	}
}

// PointerUp finishes the gesture. A release without a press is a no-op.
func (c *Coordinator) PointerUp(ev PointerEvent) {
	if c.current == nil {
		return
	}
	h := c.current
	c.current = nil
	h.PointerUp(ev)
}

// PointerLeave is treated as a release.
func (c *Coordinator) PointerLeave(ev PointerEvent) {
	c.PointerUp(ev)
}

// Cursor returns the hover feedback for ev. During a gesture it reflects the
// gesture owner.
func (c *Coordinator) Cursor(ev PointerEvent) Cursor {
	switch c.State() {
	case Resizing:
		if c.current.Kind() == KindColumnResize {
			return CursorColResize
		}
		return CursorRowResize
	case DraggingCell:
		return CursorCell
	case DraggingLine:
		return CursorDefault
	}
	for _, h := range c.handlers {
		if cur, ok := h.Cursor(ev); ok {
			return cur
		}
	}
	return CursorDefault
}

// Cancel aborts an in-progress resize, restoring the original sizes. It
// reports whether anything was cancelled.
func (c *Coordinator) Cancel() bool {
	r, ok := c.current.(*ResizeController)
	if !ok {
		return false
	}
	c.current = nil
	return r.Cancel()
}

// State returns the gesture state.
func (c *Coordinator) State() State {
	if c.current == nil {
		return Idle
	}
	switch c.current.Kind() {
	case KindColumnResize, KindRowResize:
		return Resizing
	case KindCell:
		return DraggingCell
	default:
		return DraggingLine
	}
}

// ActiveKind returns the selection kind that currently drives, or KindNone.
func (c *Coordinator) ActiveKind() Kind { return c.active }

// Cell returns the cell selection when cells are the active kind.
func (c *Coordinator) Cell() (CellState, bool) {
	if c.active != KindCell {
		return CellState{}, false
	}
	return c.cells.State()
}

// SelectedRows returns the selected rows in ascending order.
func (c *Coordinator) SelectedRows() []int { return c.rows.Selected() }

// SelectedCols returns the selected columns in ascending order.
func (c *Coordinator) SelectedCols() []int { return c.cols.Selected() }

// ResizeTargets returns the sizes recorded when the active resize started,
// keyed by line index.
func (c *Coordinator) ResizeTargets() (grid.Axis, map[int]int, bool) {
	for _, r := range []*ResizeController{c.colResize, c.rowResize} {
		if r.Active() {
			return r.Axis(), r.Original(), true
		}
	}
	return grid.Columns, nil, false
}

// SelectCell collapses the selection to one cell, makes cells the active
// kind and scrolls the cell into view.
func (c *Coordinator) SelectCell(col, row int) {
	c.claim(KindCell)
	c.cells.Select(col, row)
	st, _ := c.cells.State()
	c.EnsureCellVisible(st.Focus.Col, st.Focus.Row)
	c.geo.requestRepaint()
}

// SelectLines selects the lines in r on axis, making that axis the active kind.
func (c *Coordinator) SelectLines(axis grid.Axis, r grid.Range) {
	s := c.lineSelector(axis)
	c.claim(s.Kind())
	s.Select(r)
	c.geo.requestRepaint()
}

// ClearSelection drops every selection.
func (c *Coordinator) ClearSelection() {
	for _, h := range c.handlers {
		h.ClearSelection()
	}
	c.active = KindNone
	c.geo.requestRepaint()
}

// Clamp pulls selections back inside the grid after lines are removed.
func (c *Coordinator) Clamp() {
	c.cells.Clamp()
	c.rows.Clamp()
	c.cols.Clamp()
}

// EnsureCellVisible scrolls so (col, row) is clear of the sticky headers.
func (c *Coordinator) EnsureCellVisible(col, row int) {
	c.geo.ensureVisible(grid.Columns, col)
	c.geo.ensureVisible(grid.Rows, row)
}

// HandleKey moves the cell focus. Shift extends the block from the anchor;
// otherwise the selection collapses to the new cell. It reports whether the
// key was consumed, which only happens when cells drive and no edit is open.
func (c *Coordinator) HandleKey(key Key, mods Modifiers) bool {
	if c.editing || c.active != KindCell {
		return false
	}
	st, ok := c.cells.State()
	if !ok {
		return false
	}
	lastCol := c.geo.dims.Len(grid.Columns) - 1
	lastRow := c.geo.dims.Len(grid.Rows) - 1
	col, row := st.Focus.Col, st.Focus.Row
	ctrl := mods.Has(ModCtrl)

	switch key {
	case KeyUp:
		row--
	case KeyDown:
		row++
	case KeyLeft:
		col--
	case KeyRight:
		col++
	case KeyHome:
		col = 1
		if ctrl {
			row = 1
		}
	case KeyEnd:
		col = lastCol
		if ctrl {
			row = lastRow
		}
	case KeyPageUp:
		row -= c.geo.pageSize()
	case KeyPageDown:
		row += c.geo.pageSize()
	default:
		return false
	}
	col = max(1, min(col, lastCol))
	row = max(1, min(row, lastRow))

	if mods.Has(ModShift) {
		c.cells.ExtendTo(col, row)
	} else {
		c.cells.Select(col, row)
	}
	c.EnsureCellVisible(col, row)
	c.geo.requestRepaint()
	return true
}

// IsCellSelected reports whether (col, row) is highlighted by the active
// selection. Whole-line selections highlight every cell on the line.
func (c *Coordinator) IsCellSelected(col, row int) bool {
	switch c.active {
	case KindCell:
		st, ok := c.cells.State()
		return ok && st.Range().Contains(col, row)
	case KindRows:
		return c.rows.Contains(row)
	case KindColumns:
		return c.cols.Contains(col)
	}
	return false
}

// IsHeaderHighlighted reports whether header line i on axis should be drawn
// highlighted. For a cell selection this is derived from the block it spans.
func (c *Coordinator) IsHeaderHighlighted(axis grid.Axis, i int) bool {
	switch c.active {
	case KindCell:
		st, ok := c.cells.State()
		return ok && st.Range().Lines(axis).Contains(i)
	case KindRows:
		if axis == grid.Rows {
			return c.rows.Contains(i)
		}
		return false
	case KindColumns:
		if axis == grid.Columns {
			return c.cols.Contains(i)
		}
		return false
	}
	return false
}

// Target returns the span of lines on axis covered by the active selection.
// Cell blocks count on both axes; a whole-line selection only on its own axis.
func (c *Coordinator) Target(axis grid.Axis) (grid.Range, bool) {
	switch c.active {
	case KindCell:
		st, ok := c.cells.State()
		if !ok {
			return grid.Range{}, false
		}
		return st.Range().Lines(axis), true
	case KindRows, KindColumns:
		s := c.lineSelector(axis)
		if s.Kind() != c.active {
			return grid.Range{}, false
		}
		return s.Span()
	}
	return grid.Range{}, false
}

// InsertTarget returns where and how many lines an insert on axis should
// add. With no selection it is one line at index 1. It returns false when a
// whole-line selection of the other axis drives.
func (c *Coordinator) InsertTarget(axis grid.Axis) (at, count int, ok bool) {
	if c.active == KindNone {
		return 1, 1, true
	}
	r, ok := c.Target(axis)
	if !ok || r.Len() == 0 {
		return 0, 0, false
	}
	return r.Start, r.Len(), true
}

func (c *Coordinator) claim(kind Kind) {
	for _, h := range c.handlers {
		if h.Kind() != kind {
			h.ClearSelection()
		}
	}
	c.active = kind
}

func (c *Coordinator) lineSelector(axis grid.Axis) *LineSelector {
	if axis == grid.Columns {
		return c.cols
	}
	return c.rows
}

func isSelectionKind(k Kind) bool {
	return k == KindCell || k == KindRows || k == KindColumns
}

var (
	_ Handler = (*CellSelector)(nil)
	_ Handler = (*LineSelector)(nil)
	_ Handler = (*ResizeController)(nil)
)
