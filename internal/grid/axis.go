// Package grid maps row and column indices to pixel offsets and back.
//
// Every axis keeps its sizes in a plain slice and a lazily rebuilt prefix-sum
// table, so position lookups are O(1) and hit-testing is a binary search.
// Index 0 on each axis is the header line; data starts at index 1.
package grid

import "fmt"

// Axis selects the column or row dimension.
type Axis int

const (
	Columns Axis = iota
	Rows
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case Columns:
		return "columns"
	case Rows:
		return "rows"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == Columns {
		return Rows
	}
	return Columns
}

// Extent holds the total number of columns and rows, header lines included.
// It is owned by the grid session and shared by pointer with every component
// that needs the live counts.
type Extent struct {
	Cols int
	Rows int
}

// Len returns the line count of the given axis.
func (e Extent) Len(axis Axis) int {
	if axis == Columns {
		return e.Cols
	}
	return e.Rows
}

func (e *Extent) add(axis Axis, n int) {
	if axis == Columns {
		e.Cols += n
		return
	}
	e.Rows += n
}

// Offset is the scroll position in logical pixels.
type Offset struct {
	X int
	Y int
}

// Along returns the offset component for the given axis.
func (o Offset) Along(axis Axis) int {
	if axis == Columns {
		return o.X
	}
	return o.Y
}

// Viewport is the visible canvas size in logical pixels, supplied by the renderer.
type Viewport struct {
	Width  int
	Height int
}

// Along returns the viewport extent for the given axis.
func (v Viewport) Along(axis Axis) int {
	if axis == Columns {
		return v.Width
	}
	return v.Height
}

// Range is a half-open index interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Contains reports whether i lies inside the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}
