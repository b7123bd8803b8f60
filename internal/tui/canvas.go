package tui

import (
	"github.com/javiermolinar/gridline/internal/grid"
	"github.com/javiermolinar/gridline/internal/selection"
	"github.com/javiermolinar/gridline/internal/tui/view"
)

// The grid is laid out in logical pixels; each terminal cell covers a
// pxPerCol x pxPerLine block of them. A terminal cell stands for the last
// pixel of its block, so a line boundary always falls on the last terminal
// column or line of the band that shows it.

// viewport returns the canvas size in logical pixels for the grid area.
func (m Model) viewport() grid.Viewport {
	return grid.Viewport{
		Width:  m.layoutCache.GridW * m.pxPerCol,
		Height: m.layoutCache.GridH * m.pxPerLine,
	}
}

// pixelsPer returns the logical pixels one terminal cell spans on axis.
func (m Model) pixelsPer(axis grid.Axis) int {
	if axis == grid.Columns {
		return m.pxPerCol
	}
	return m.pxPerLine
}

// toCanvas maps terminal coordinates to a canvas point. Positions left of or
// above the grid map to negative coordinates.
func (m Model) toCanvas(x, y int) selection.Point {
	cx := x - m.layoutCache.GridLeft
	cy := y - m.layoutCache.GridTop
	return selection.Point{
		X: (cx+1)*m.pxPerCol - 1,
		Y: (cy+1)*m.pxPerLine - 1,
	}
}

// inGrid reports whether terminal coordinates fall inside the grid area.
func (m Model) inGrid(x, y int) bool {
	cx := x - m.layoutCache.GridLeft
	cy := y - m.layoutCache.GridTop
	return cx >= 0 && cy >= 0 && cx < m.layoutCache.GridW && cy < m.layoutCache.GridH
}

// visibleLines returns the lines drawn in the scrolling part of the grid
// area along axis, below or right of the sticky header.
func (m Model) visibleLines(axis grid.Axis) grid.Range {
	dims := m.session.Dimensions()
	head := dims.Size(axis, 0)
	extent := m.viewport().Along(axis) - head
	if extent <= 0 {
		return grid.Range{Start: 1, End: 1}
	}
	r := dims.VisibleRange(axis, dims.Offset().Along(axis)+head, extent)
	r.Start = max(r.Start, 1)
	r.End = max(r.End, r.Start)
	return r
}

// bands lays out the header line and the visible lines of axis as runs of
// terminal cells. Lines covered by the sticky header get no band.
func (m Model) bands(axis grid.Axis) []view.Band {
	dims := m.session.Dimensions()
	px := m.pixelsPer(axis)
	limit := m.layoutCache.GridH
	if axis == grid.Columns {
		limit = m.layoutCache.GridW
	}

	head := dims.Size(axis, 0)
	off := dims.Offset().Along(axis)
	r := m.visibleLines(axis)

	bands := make([]view.Band, 0, r.Len()+1)
	if b, ok := view.SpanBand(0, 0, head, px, limit); ok {
		bands = append(bands, b)
	}
	for i := r.Start; i < r.End; i++ {
		start := max(dims.Position(axis, i)-off, head)
		end := dims.End(axis, i) - off
		if b, ok := view.SpanBand(i, start, end, px, limit); ok {
			bands = append(bands, b)
		}
	}
	return bands
}
