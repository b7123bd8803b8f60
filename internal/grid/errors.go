package grid

import "fmt"

// RangeError reports an index outside its axis. It is raised with panic: a bad
// index is a caller bug, never a recoverable runtime condition.
type RangeError struct {
	Axis  Axis
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("grid: %s index %d out of range [0,%d)", e.Axis, e.Index, e.Len)
}

func checkIndex(axis Axis, i, n int) {
	if i < 0 || i >= n {
		panic(&RangeError{Axis: axis, Index: i, Len: n})
	}
}

// checkBoundary accepts i == n, the position just past the last line.
func checkBoundary(axis Axis, i, n int) {
	if i < 0 || i > n {
		panic(&RangeError{Axis: axis, Index: i, Len: n + 1})
	}
}
