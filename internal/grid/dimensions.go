package grid

import (
	"fmt"
	"slices"
	"sort"
)

// Reference layout defaults, in logical pixels.
const (
	DefaultColWidth     = 80
	DefaultRowHeight    = 30
	DefaultMinColWidth  = 60
	DefaultMinRowHeight = 20
)

// Layout holds the default and minimum line sizes for both axes.
type Layout struct {
	ColWidth     int
	RowHeight    int
	MinColWidth  int
	MinRowHeight int
}

// DefaultLayout returns the reference sizes: 80x30 cells, 60/20 minimums.
func DefaultLayout() Layout {
	return Layout{
		ColWidth:     DefaultColWidth,
		RowHeight:    DefaultRowHeight,
		MinColWidth:  DefaultMinColWidth,
		MinRowHeight: DefaultMinRowHeight,
	}
}

// ResizeSession tracks the boundary being dragged. Anchor is the pointer
// coordinate along Axis when the drag started.
type ResizeSession struct {
	Axis   Axis
	Index  int
	Anchor int
}

// axisTable stores one axis: sizes plus a prefix-sum table that is rebuilt
// from the lowest dirty index before any read.
type axisTable struct {
	sizes     []int
	prefix    []int
	dirtyFrom int
	min       int
	def       int
}

func newAxisTable(n, def, minSize int) *axisTable {
	def = max(def, minSize)
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = def
	}
	return &axisTable{sizes: sizes, def: def, min: minSize}
}

func (t *axisTable) invalidate(from int) {
	if from < t.dirtyFrom {
		t.dirtyFrom = from
	}
}

func (t *axisTable) recompute() {
	n := len(t.sizes)
	if t.dirtyFrom >= n && len(t.prefix) == n {
		return
	}
	from := min(t.dirtyFrom, len(t.prefix), n)
	if len(t.prefix) != n {
		prefix := make([]int, n)
		copy(prefix, t.prefix[:from])
		t.prefix = prefix
	}
	sum := 0
	if from > 0 {
		sum = t.prefix[from-1]
	}
	for i := from; i < n; i++ {
		sum += t.sizes[i]
		t.prefix[i] = sum
	}
	t.dirtyFrom = n
}

// Dimensions is the dimension registry: per-axis sizes, prefix sums, the
// scroll offset and the optional resize session.
type Dimensions struct {
	extent *Extent
	layout Layout
	axes   [2]*axisTable
	offset Offset
	resize *ResizeSession
}

// NewDimensions creates a registry sized from extent. The extent is kept in
// sync by Insert, Remove and Restore.
func NewDimensions(extent *Extent, layout Layout) *Dimensions {
	if extent.Cols < 0 || extent.Rows < 0 {
		panic(fmt.Sprintf("grid: negative extent %dx%d", extent.Cols, extent.Rows))
	}
	d := &Dimensions{extent: extent, layout: layout}
	d.axes[Columns] = newAxisTable(extent.Cols, layout.ColWidth, layout.MinColWidth)
	d.axes[Rows] = newAxisTable(extent.Rows, layout.RowHeight, layout.MinRowHeight)
	return d
}

// Extent returns the shared extent.
func (d *Dimensions) Extent() *Extent {
	return d.extent
}

// Layout returns the configured default and minimum sizes.
func (d *Dimensions) Layout() Layout {
	return d.layout
}

// Len returns the number of lines on the axis.
func (d *Dimensions) Len(axis Axis) int {
	return len(d.axes[axis].sizes)
}

// MinSize returns the minimum size of a line on the axis.
func (d *Dimensions) MinSize(axis Axis) int {
	return d.axes[axis].min
}

// DefaultSize returns the size given to newly inserted lines.
func (d *Dimensions) DefaultSize(axis Axis) int {
	return d.axes[axis].def
}

// Size returns the size of one line.
func (d *Dimensions) Size(axis Axis, i int) int {
	t := d.axes[axis]
	checkIndex(axis, i, len(t.sizes))
	return t.sizes[i]
}

// SetSize sets one line size, clamped to the axis minimum, and returns the
// stored value.
func (d *Dimensions) SetSize(axis Axis, i, size int) int {
	t := d.axes[axis]
	checkIndex(axis, i, len(t.sizes))
	size = max(size, t.min)
	if t.sizes[i] != size {
		t.sizes[i] = size
		t.invalidate(i)
	}
	return size
}

// Position returns the start offset of line i. Position(axis, Len) is the
// total extent of the axis.
func (d *Dimensions) Position(axis Axis, i int) int {
	t := d.axes[axis]
	checkBoundary(axis, i, len(t.sizes))
	if i == 0 {
		return 0
	}
	t.recompute()
	return t.prefix[i-1]
}

// End returns the far edge of line i.
func (d *Dimensions) End(axis Axis, i int) int {
	return d.Position(axis, i+1)
}

// Total returns the summed size of every line on the axis.
func (d *Dimensions) Total(axis Axis) int {
	return d.Position(axis, d.Len(axis))
}

// IndexAt returns the line whose span contains pos.
func (d *Dimensions) IndexAt(axis Axis, pos int) (int, bool) {
	t := d.axes[axis]
	n := len(t.sizes)
	if n == 0 || pos < 0 {
		return 0, false
	}
	t.recompute()
	if pos >= t.prefix[n-1] {
		return 0, false
	}
	return sort.Search(n, func(i int) bool { return t.prefix[i] > pos }), true
}

// ClampIndexAt is IndexAt clamped into [lo, Len-1].
func (d *Dimensions) ClampIndexAt(axis Axis, pos, lo int) int {
	n := d.Len(axis)
	if pos < 0 {
		return min(lo, n-1)
	}
	i, ok := d.IndexAt(axis, pos)
	if !ok {
		i = n - 1
	}
	return max(lo, min(i, n-1))
}

// Insert splices count lines of the given size at index at.
func (d *Dimensions) Insert(axis Axis, at, count, size int) {
	if count < 0 {
		panic(fmt.Sprintf("grid: negative insert count %d", count))
	}
	sizes := make([]int, count)
	for i := range sizes {
		sizes[i] = size
	}
	d.InsertSizes(axis, at, sizes)
}

// InsertSizes splices the given sizes at index at, clamping each to the minimum.
func (d *Dimensions) InsertSizes(axis Axis, at int, sizes []int) {
	t := d.axes[axis]
	checkBoundary(axis, at, len(t.sizes))
	if len(sizes) == 0 {
		return
	}
	clamped := make([]int, len(sizes))
	for i, s := range sizes {
		clamped[i] = max(s, t.min)
	}
	t.sizes = slices.Insert(t.sizes, at, clamped...)
	t.invalidate(at)
	d.extent.add(axis, len(sizes))
}

// Remove deletes count lines starting at at and returns their sizes.
func (d *Dimensions) Remove(axis Axis, at, count int) []int {
	t := d.axes[axis]
	if count <= 0 {
		return nil
	}
	checkIndex(axis, at, len(t.sizes))
	checkBoundary(axis, at+count, len(t.sizes))
	removed := slices.Clone(t.sizes[at : at+count])
	t.sizes = slices.Delete(t.sizes, at, at+count)
	t.invalidate(at)
	d.extent.add(axis, -count)
	if d.resize != nil && d.resize.Axis == axis && d.resize.Index >= len(t.sizes) {
		d.resize = nil
	}
	return removed
}

// Snapshot returns a copy of the axis size array.
func (d *Dimensions) Snapshot(axis Axis) []int {
	return slices.Clone(d.axes[axis].sizes)
}

// Restore replaces the axis size array with a copy of sizes, adjusting the extent.
func (d *Dimensions) Restore(axis Axis, sizes []int) {
	t := d.axes[axis]
	d.extent.add(axis, len(sizes)-len(t.sizes))
	t.sizes = slices.Clone(sizes)
	t.invalidate(0)
}

// Offset returns the current scroll offset.
func (d *Dimensions) Offset() Offset {
	return d.offset
}

// ScrollTo sets the scroll offset. Negative components become 0; the upper
// bound is applied by ClampOffset.
func (d *Dimensions) ScrollTo(x, y int) {
	d.offset = Offset{X: max(0, x), Y: max(0, y)}
}

// ScrollBy moves the scroll offset by a delta.
func (d *Dimensions) ScrollBy(dx, dy int) {
	d.ScrollTo(d.offset.X+dx, d.offset.Y+dy)
}

// BeginResize starts a resize session, replacing any previous one.
func (d *Dimensions) BeginResize(axis Axis, index, anchor int) {
	checkIndex(axis, index, d.Len(axis))
	d.resize = &ResizeSession{Axis: axis, Index: index, Anchor: anchor}
}

// Resize returns the active resize session, if any.
func (d *Dimensions) Resize() (ResizeSession, bool) {
	if d.resize == nil {
		return ResizeSession{}, false
	}
	return *d.resize, true
}

// EndResize clears the resize session.
func (d *Dimensions) EndResize() {
	d.resize = nil
}

// MaxOffset returns the largest offset that keeps the axis end inside the viewport.
func (d *Dimensions) MaxOffset(axis Axis, extent int) int {
	return max(0, d.Total(axis)-extent)
}

// ClampOffset keeps the scroll offset inside the content. While a resize
// session is active, the offset is nudged so the far edge of the line being
// resized stays visible.
func (d *Dimensions) ClampOffset(v Viewport) {
	x := d.clampAxis(Columns, d.offset.X, v.Width)
	y := d.clampAxis(Rows, d.offset.Y, v.Height)
	d.offset = Offset{X: x, Y: y}
}

func (d *Dimensions) clampAxis(axis Axis, off, extent int) int {
	maxOff := d.MaxOffset(axis, extent)
	if r := d.resize; r != nil && r.Axis == axis {
		edge := d.End(axis, r.Index)
		if edge > off+extent {
			off = min(maxOff, edge-extent)
		}
	}
	return max(0, min(off, maxOff))
}
