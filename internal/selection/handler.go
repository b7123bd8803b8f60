// Package selection arbitrates pointer and keyboard gestures over the grid.
//
// A Coordinator owns five handlers probed in a fixed order: column resize,
// row resize, row header, column header and cell body. The first handler whose
// hit test passes owns the gesture until pointer-up. Cell, row and column
// selections are mutually exclusive; claiming one clears the others.
package selection

import "github.com/javiermolinar/gridline/internal/grid"

// Point is a pointer position in logical pixels relative to the grid canvas.
type Point struct {
	X int
	Y int
}

// Along returns the coordinate on the given axis.
func (p Point) Along(axis grid.Axis) int {
	if axis == grid.Columns {
		return p.X
	}
	return p.Y
}

// Modifiers is a bit set of keyboard modifiers held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether every modifier in m2 is held.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// PointerEvent is a pointer press, motion or release.
type PointerEvent struct {
	Pos  Point
	Mods Modifiers
}

// Kind identifies a handler and, for selection handlers, the selection it drives.
type Kind int

const (
	KindNone Kind = iota
	KindCell
	KindRows
	KindColumns
	KindColumnResize
	KindRowResize
)

func (k Kind) String() string {
	switch k {
	case KindCell:
		return "cell"
	case KindRows:
		return "rows"
	case KindColumns:
		return "columns"
	case KindColumnResize:
		return "column-resize"
	case KindRowResize:
		return "row-resize"
	default:
		return "none"
	}
}

// State is the coordinator's gesture state.
type State int

const (
	Idle State = iota
	Resizing
	DraggingCell
	DraggingLine
)

func (s State) String() string {
	switch s {
	case Resizing:
		return "resizing"
	case DraggingCell:
		return "dragging-cell"
	case DraggingLine:
		return "dragging-line"
	default:
		return "idle"
	}
}

// Cursor is the hover feedback for a pointer position.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorColResize
	CursorRowResize
	CursorCell
)

// Repainter is notified whenever visible state changes.
type Repainter interface {
	Repaint()
}

// RepaintFunc adapts a function to Repainter.
type RepaintFunc func()

func (f RepaintFunc) Repaint() { f() }

// Handler is one gesture participant.
type Handler interface {
	Kind() Kind
	HitTest(ev PointerEvent) bool
	PointerDown(ev PointerEvent)
	PointerMove(ev PointerEvent)
	PointerUp(ev PointerEvent)
	Cursor(ev PointerEvent) (Cursor, bool)
	ClearSelection()
}

// baseHandler provides no-op defaults for the optional Handler methods.
type baseHandler struct{}

func (baseHandler) PointerMove(PointerEvent) {}
func (baseHandler) PointerUp(PointerEvent) {}
func (baseHandler) Cursor(PointerEvent) (Cursor, bool) { return CursorDefault, false }
func (baseHandler) ClearSelection() {}

// geometry maps canvas coordinates to line indices. The header line of each
// axis is sticky: it stays at the canvas origin regardless of scroll.
type geometry struct {
	dims     *grid.Dimensions
	viewport grid.Viewport
	repaint  Repainter
}

func (g *geometry) requestRepaint() {
	if g.repaint != nil {
		g.repaint.Repaint()
	}
}

func (g *geometry) header(axis grid.Axis) int {
	if g.dims.Len(axis) == 0 {
		return 0
	}
	return g.dims.Size(axis, 0)
}

func (g *geometry) offset(axis grid.Axis) int {
	return g.dims.Offset().Along(axis)
}

// lineAt returns the line under a canvas coordinate. Coordinates inside the
// sticky header band map to 0.
func (g *geometry) lineAt(axis grid.Axis, screen int) (int, bool) {
	if screen < 0 || screen >= g.viewport.Along(axis) {
		return 0, false
	}
	if screen < g.header(axis) {
		return 0, true
	}
	return g.dims.IndexAt(axis, screen+g.offset(axis))
}

// dataLineAt is lineAt for drags: the result is clamped to the data lines
// even when the pointer has left the canvas.
func (g *geometry) dataLineAt(axis grid.Axis, screen int) int {
	return g.dims.ClampIndexAt(axis, screen+g.offset(axis), 1)
}

// screenEnd returns the canvas coordinate of the far edge of line i.
func (g *geometry) screenEnd(axis grid.Axis, i int) int {
	if i == 0 {
		return g.header(axis)
	}
	return g.dims.End(axis, i) - g.offset(axis)
}

// ensureVisible scrolls so line i is inside the area not covered by the
// sticky header. It reports whether the offset changed.
func (g *geometry) ensureVisible(axis grid.Axis, i int) bool {
	if i <= 0 || i >= g.dims.Len(axis) {
		return false
	}
	before := g.dims.Offset()
	off := before.Along(axis)
	start := g.dims.Position(axis, i)
	end := g.dims.End(axis, i)
	extent := g.viewport.Along(axis)
	if end > off+extent {
		off = end - extent
	}
	if head := g.header(axis); start < off+head {
		off = start - head
	}
	if axis == grid.Columns {
		g.dims.ScrollTo(off, before.Y)
	} else {
		g.dims.ScrollTo(before.X, off)
	}
	g.dims.ClampOffset(g.viewport)
	return g.dims.Offset() != before
}

// pageSize returns the number of data rows that fit below the header,
// falling back to 10 before the viewport is known.
func (g *geometry) pageSize() int {
	avail := g.viewport.Height - g.header(grid.Rows)
	if avail <= 0 {
		return 10
	}
	off := g.offset(grid.Rows)
	first, ok := g.dims.IndexAt(grid.Rows, off+g.header(grid.Rows))
	if !ok {
		return 10
	}
	last, ok := g.dims.IndexAt(grid.Rows, off+g.viewport.Height-1)
	if !ok {
		last = g.dims.Len(grid.Rows) - 1
	}
	return max(1, last-first)
}
