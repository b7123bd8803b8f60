package history

import (
	"fmt"
	"maps"
	"slices"

	"github.com/javiermolinar/gridline/internal/cells"
	"github.com/javiermolinar/gridline/internal/grid"
)

// ResizeAxis sets the sizes of one or more lines on an axis.
type ResizeAxis struct {
	dims     *grid.Dimensions
	axis     grid.Axis
	newSizes map[int]int
	oldSizes map[int]int
}

// NewResizeAxis builds a resize from old to new sizes. Both maps are keyed by
// line index. New sizes are clamped to the axis minimum; entries whose sizes
// then match are ignored, and if none differ the constructor returns
// ErrNoChange.
func NewResizeAxis(dims *grid.Dimensions, axis grid.Axis, oldSizes, newSizes map[int]int) (*ResizeAxis, error) {
	next := make(map[int]int, len(newSizes))
	prev := make(map[int]int, len(newSizes))
	minSize := dims.MinSize(axis)
	for i, size := range newSizes {
		size = max(size, minSize)
		old, ok := oldSizes[i]
		if !ok {
			old = dims.Size(axis, i)
		}
		if old == size {
			continue
		}
		next[i] = size
		prev[i] = old
	}
	if len(next) == 0 {
		return nil, ErrNoChange
	}
	return &ResizeAxis{dims: dims, axis: axis, newSizes: next, oldSizes: prev}, nil
}

func (c *ResizeAxis) Forward()  { c.apply(c.newSizes) }
func (c *ResizeAxis) Backward() { c.apply(c.oldSizes) }

func (c *ResizeAxis) apply(sizes map[int]int) {
	for i, size := range sizes {
		c.dims.SetSize(c.axis, i, size)
	}
}

// Indices returns the resized line indices in ascending order.
func (c *ResizeAxis) Indices() []int {
	return slices.Sorted(maps.Keys(c.newSizes))
}

func (c *ResizeAxis) Describe() string {
	idx := c.Indices()
	if len(idx) == 1 {
		return fmt.Sprintf("resize %s %d", c.axis, idx[0])
	}
	return fmt.Sprintf("resize %d %s", len(idx), c.axis)
}

// EditCell replaces one cell value.
type EditCell struct {
	store  *cells.Store
	key    cells.Key
	old    string
	hadOld bool
	value  string
}

// NewEditCell builds an edit of the cell at key. It returns ErrNoChange when
// the value is unchanged; an empty cell and "" are the same value.
func NewEditCell(store *cells.Store, key cells.Key, value string) (*EditCell, error) {
	old, hadOld := store.Get(key.Col, key.Row)
	if old == value {
		return nil, ErrNoChange
	}
	return &EditCell{store: store, key: key, old: old, hadOld: hadOld, value: value}, nil
}

func (c *EditCell) Forward() {
	c.store.SetKey(c.key, c.value)
}

func (c *EditCell) Backward() {
	if !c.hadOld {
		c.store.Delete(c.key.Col, c.key.Row)
		return
	}
	c.store.SetKey(c.key, c.old)
}

// Key returns the edited cell.
func (c *EditCell) Key() cells.Key { return c.key }

func (c *EditCell) Describe() string {
	return "edit " + c.key.String()
}

// InsertAxis inserts default-sized lines and shifts cell data past them.
type InsertAxis struct {
	dims      *grid.Dimensions
	store     *cells.Store
	axis      grid.Axis
	at        int
	count     int
	displaced []cells.Entry
	prevSizes []int
}

// NewInsertAxis builds an insert of count lines before index at. Data lines
// start at 1, so at must lie in [1, Len].
func NewInsertAxis(dims *grid.Dimensions, store *cells.Store, axis grid.Axis, at, count int) (*InsertAxis, error) {
	if count <= 0 {
		return nil, ErrNoChange
	}
	if at < 1 || at > dims.Len(axis) {
		return nil, fmt.Errorf("insert %s at %d: %w", axis, at, ErrOutOfRange)
	}
	return &InsertAxis{dims: dims, store: store, axis: axis, at: at, count: count}, nil
}

func (c *InsertAxis) Forward() {
	c.displaced = c.store.EntriesFrom(c.axis, c.at)
	c.prevSizes = c.dims.Snapshot(c.axis)
	c.store.Shift(c.axis, c.at, c.count)
	c.dims.Insert(c.axis, c.at, c.count, c.dims.DefaultSize(c.axis))
}

func (c *InsertAxis) Backward() {
	c.store.ShiftBack(c.axis, c.at, c.count)
	c.store.Load(c.displaced)
	c.dims.Restore(c.axis, c.prevSizes)
}

// At returns the first inserted index.
func (c *InsertAxis) At() int { return c.at }

// Count returns the number of inserted lines.
func (c *InsertAxis) Count() int { return c.count }

func (c *InsertAxis) Describe() string {
	return fmt.Sprintf("insert %d %s at %d", c.count, c.axis, c.at)
}

// DeleteAxis removes lines and the cells on them, retaining both for undo.
type DeleteAxis struct {
	dims         *grid.Dimensions
	store        *cells.Store
	axis         grid.Axis
	at           int
	count        int
	removedSizes []int
	removedCells []cells.Entry
}

// NewDeleteAxis builds a delete of lines [at, at+count). The header line and
// the last remaining data line cannot be deleted.
func NewDeleteAxis(dims *grid.Dimensions, store *cells.Store, axis grid.Axis, at, count int) (*DeleteAxis, error) {
	if count <= 0 {
		return nil, ErrNoChange
	}
	n := dims.Len(axis)
	if at < 1 || at+count > n || n-count < 2 {
		return nil, fmt.Errorf("delete %d %s at %d: %w", count, axis, at, ErrOutOfRange)
	}
	return &DeleteAxis{dims: dims, store: store, axis: axis, at: at, count: count}, nil
}

func (c *DeleteAxis) Forward() {
	c.removedCells = c.store.ShiftBack(c.axis, c.at, c.count)
	c.removedSizes = c.dims.Remove(c.axis, c.at, c.count)
}

func (c *DeleteAxis) Backward() {
	c.store.Shift(c.axis, c.at, c.count)
	c.store.Load(c.removedCells)
	c.dims.InsertSizes(c.axis, c.at, c.removedSizes)
}

// At returns the first deleted index.
func (c *DeleteAxis) At() int { return c.at }

// Count returns the number of deleted lines.
func (c *DeleteAxis) Count() int { return c.count }

func (c *DeleteAxis) Describe() string {
	return fmt.Sprintf("delete %d %s at %d", c.count, c.axis, c.at)
}

// ReplaceCells swaps the whole cell content, as a bulk import does.
type ReplaceCells struct {
	store  *cells.Store
	before []cells.Entry
	after  []cells.Entry
	label  string
}

// NewReplaceCells builds a replacement of every cell with after. label names
// the source in Describe. It returns ErrNoChange when the content is identical.
func NewReplaceCells(store *cells.Store, after []cells.Entry, label string) (*ReplaceCells, error) {
	next := cells.NewStore()
	next.Load(after)
	before := store.Entries()
	normalized := next.Entries()
	if slices.Equal(before, normalized) {
		return nil, ErrNoChange
	}
	return &ReplaceCells{store: store, before: before, after: normalized, label: label}, nil
}

func (c *ReplaceCells) Forward()  { c.store.Replace(c.after) }
func (c *ReplaceCells) Backward() { c.store.Replace(c.before) }

// Len returns the number of cells after the replacement.
func (c *ReplaceCells) Len() int { return len(c.after) }

func (c *ReplaceCells) Describe() string {
	if c.label == "" {
		return fmt.Sprintf("replace %d cells", len(c.after))
	}
	return fmt.Sprintf("import %s (%d cells)", c.label, len(c.after))
}
