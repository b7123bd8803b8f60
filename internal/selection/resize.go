package selection

import (
	"maps"

	"github.com/javiermolinar/gridline/internal/grid"
	"github.com/javiermolinar/gridline/internal/history"
)

// DefaultResizeGrab is the distance in logical pixels from a boundary within
// which a press starts a resize.
const DefaultResizeGrab = 8

// ResizeController turns a drag on a line boundary in the header band into a
// size change, recorded as one ResizeAxis command on release.
type ResizeController struct {
	baseHandler
	geo      *geometry
	axis     grid.Axis
	lines    *LineSelector
	stack    *history.Stack
	grab     int
	onCommit func(history.Command)

	index    int
	anchor   int
	original map[int]int
	active   bool
}

func newResizeController(geo *geometry, axis grid.Axis, lines *LineSelector, stack *history.Stack, grab int) *ResizeController {
	if grab <= 0 {
		grab = DefaultResizeGrab
	}
	return &ResizeController{geo: geo, axis: axis, lines: lines, stack: stack, grab: grab}
}

// Axis returns the axis whose line sizes are changed.
func (r *ResizeController) Axis() grid.Axis { return r.axis }

func (r *ResizeController) Kind() Kind {
	if r.axis == grid.Columns {
		return KindColumnResize
	}
	return KindRowResize
}

func (r *ResizeController) HitTest(ev PointerEvent) bool {
	_, ok := r.boundaryAt(ev.Pos)
	return ok
}

// boundaryAt returns the line whose far edge is within the grab distance of
// p, only inside the header band of the other axis. The header line itself is
// never resizable.
func (r *ResizeController) boundaryAt(p Point) (int, bool) {
	band, ok := r.geo.lineAt(r.axis.Other(), p.Along(r.axis.Other()))
	if !ok || band != 0 {
		return 0, false
	}
	screen := p.Along(r.axis)
	if screen < r.geo.header(r.axis) || screen >= r.geo.viewport.Along(r.axis) {
		return 0, false
	}
	i, ok := r.geo.dims.IndexAt(r.axis, screen+r.geo.offset(r.axis))
	if !ok {
		return 0, false
	}
	best, bestDist := 0, r.grab
	for _, cand := range []int{i - 1, i} {
		if cand <= 0 {
			continue
		}
		edge := r.geo.screenEnd(r.axis, cand)
		if edge <= r.geo.header(r.axis) {
			continue
		}
		if d := abs(screen - edge); d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best, best > 0
}

func (r *ResizeController) PointerDown(ev PointerEvent) {
	i, ok := r.boundaryAt(ev.Pos)
	if !ok {
		return
	}
	r.index = i
	r.anchor = ev.Pos.Along(r.axis)
	r.original = map[int]int{}
	for _, t := range r.targets(i) {
		r.original[t] = r.geo.dims.Size(r.axis, t)
	}
	r.active = true
	r.geo.dims.BeginResize(r.axis, i, r.anchor)
}

// targets returns the lines a drag on boundary i resizes: the whole selection
// when i belongs to a multi-line selection of the same axis, else i alone.
func (r *ResizeController) targets(i int) []int {
	if r.lines != nil && r.lines.Len() > 1 && r.lines.Contains(i) {
		return r.lines.Selected()
	}
	return []int{i}
}

func (r *ResizeController) PointerMove(ev PointerEvent) {
	if !r.active {
		return
	}
	size := r.original[r.index] + ev.Pos.Along(r.axis) - r.anchor
	for t := range r.original {
		r.geo.dims.SetSize(r.axis, t, size)
	}
	r.geo.dims.ClampOffset(r.geo.viewport)
	r.geo.requestRepaint()
}

func (r *ResizeController) PointerUp(PointerEvent) {
	if !r.active {
		return
	}
	current := make(map[int]int, len(r.original))
	for t := range r.original {
		current[t] = r.geo.dims.Size(r.axis, t)
	}
	// NewResizeAxis only fails with ErrNoChange; nothing to record then.
	if cmd, err := history.NewResizeAxis(r.geo.dims, r.axis, r.original, current); err == nil {
		r.stack.Push(cmd)
		if r.onCommit != nil {
			r.onCommit(cmd)
		}
	}
	r.reset()
	r.geo.requestRepaint()
}

func (r *ResizeController) Cursor(ev PointerEvent) (Cursor, bool) {
	if !r.HitTest(ev) {
		return CursorDefault, false
	}
	if r.axis == grid.Columns {
		return CursorColResize, true
	}
	return CursorRowResize, true
}

// Active reports whether a resize drag is in progress.
func (r *ResizeController) Active() bool { return r.active }

// Original returns the sizes recorded when the drag started.
func (r *ResizeController) Original() map[int]int { return maps.Clone(r.original) }

// Cancel abandons the drag and restores the original sizes without recording.
func (r *ResizeController) Cancel() bool {
	if !r.active {
		return false
	}
	for t, size := range r.original {
		r.geo.dims.SetSize(r.axis, t, size)
	}
	r.reset()
	r.geo.dims.ClampOffset(r.geo.viewport)
	r.geo.requestRepaint()
	return true
}

func (r *ResizeController) reset() {
	r.active = false
	r.original = nil
	r.geo.dims.EndResize()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
