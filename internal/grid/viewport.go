package grid

import "sort"

// StartIndex returns the first index to draw for a scroll offset: the smallest
// index whose start is at or past offset, minus one buffer line so a partially
// scrolled line is still painted.
func (d *Dimensions) StartIndex(axis Axis, offset int) int {
	if offset <= 0 {
		return 0
	}
	i := d.firstStartAtOrAfter(axis, offset)
	return max(0, i-1)
}

// EndIndex returns the exclusive end of the visible range: the smallest index
// whose start is at or past offset+extent, capped at Len.
func (d *Dimensions) EndIndex(axis Axis, offset, extent int) int {
	target := offset + extent
	if target >= d.Total(axis) {
		return d.Len(axis)
	}
	return d.firstStartAtOrAfter(axis, target)
}

// VisibleRange returns [StartIndex, EndIndex) for the axis.
func (d *Dimensions) VisibleRange(axis Axis, offset, extent int) Range {
	start := d.StartIndex(axis, offset)
	end := d.EndIndex(axis, offset, extent)
	return Range{Start: start, End: max(start, end)}
}

// Visible returns the visible column and row ranges for the current offset.
func (d *Dimensions) Visible(v Viewport) (cols, rows Range) {
	cols = d.VisibleRange(Columns, d.offset.X, v.Width)
	rows = d.VisibleRange(Rows, d.offset.Y, v.Height)
	return cols, rows
}

// firstStartAtOrAfter returns the smallest i in [0, Len] with Position(i) >= pos,
// or Len when pos lies past the end.
func (d *Dimensions) firstStartAtOrAfter(axis Axis, pos int) int {
	n := d.Len(axis)
	i := sort.Search(n+1, func(i int) bool { return d.Position(axis, i) >= pos })
	return min(i, n)
}
