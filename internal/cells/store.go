// Package cells holds the sparse cell value store.
//
// Only populated cells exist in the store. Absence means empty, and setting a
// cell to "" removes it. Shifting rows or columns touches populated cells only.
package cells

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/javiermolinar/gridline/internal/grid"
)

// ErrInvalidKey is returned by ParseKey for malformed keys.
var ErrInvalidKey = errors.New("invalid cell key")

// Key addresses one cell.
type Key struct {
	Col int
	Row int
}

// String returns the canonical "col,row" form.
func (k Key) String() string {
	return strconv.Itoa(k.Col) + "," + strconv.Itoa(k.Row)
}

// Along returns the key's index on the given axis.
func (k Key) Along(axis grid.Axis) int {
	if axis == grid.Columns {
		return k.Col
	}
	return k.Row
}

func (k Key) moved(axis grid.Axis, delta int) Key {
	if axis == grid.Columns {
		k.Col += delta
	} else {
		k.Row += delta
	}
	return k
}

// ParseKey parses the "col,row" form.
func ParseKey(s string) (Key, error) {
	colStr, rowStr, ok := strings.Cut(s, ",")
	if !ok {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil || col < 0 {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil || row < 0 {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return Key{Col: col, Row: row}, nil
}

// Entry is a populated cell.
type Entry struct {
	Key   Key
	Value string
}

// Store maps cell keys to values.
type Store struct {
	values map[Key]string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{values: make(map[Key]string)}
}

// Get returns the value at (col, row) and whether the cell is populated.
func (s *Store) Get(col, row int) (string, bool) {
	v, ok := s.values[Key{Col: col, Row: row}]
	return v, ok
}

// Value returns the value at (col, row), or "" when empty.
func (s *Store) Value(col, row int) string {
	return s.values[Key{Col: col, Row: row}]
}

// Set stores a value. An empty value deletes the cell.
func (s *Store) Set(col, row int, value string) {
	s.SetKey(Key{Col: col, Row: row}, value)
}

// SetKey is Set addressed by key.
func (s *Store) SetKey(k Key, value string) {
	if value == "" {
		delete(s.values, k)
		return
	}
	s.values[k] = value
}

// Delete removes the cell at (col, row).
func (s *Store) Delete(col, row int) {
	delete(s.values, Key{Col: col, Row: row})
}

// Len returns the number of populated cells.
func (s *Store) Len() int {
	return len(s.values)
}

// Clear removes every cell.
func (s *Store) Clear() {
	clear(s.values)
}

// Entries returns every populated cell ordered by row, then column.
func (s *Store) Entries() []Entry {
	out := make([]Entry, 0, len(s.values))
	for k, v := range s.values {
		out = append(out, Entry{Key: k, Value: v})
	}
	sortEntries(out)
	return out
}

// Replace clears the store and loads entries. Empty values are skipped.
func (s *Store) Replace(entries []Entry) {
	clear(s.values)
	s.Load(entries)
}

// Load sets every entry without clearing first.
func (s *Store) Load(entries []Entry) {
	for _, e := range entries {
		s.SetKey(e.Key, e.Value)
	}
}

// EntriesFrom returns the populated cells whose index on axis is >= pivot,
// ordered by row, then column.
func (s *Store) EntriesFrom(axis grid.Axis, pivot int) []Entry {
	var out []Entry
	for k, v := range s.values {
		if k.Along(axis) >= pivot {
			out = append(out, Entry{Key: k, Value: v})
		}
	}
	sortEntries(out)
	return out
}

// EntriesIn returns the populated cells inside the column and row ranges.
func (s *Store) EntriesIn(cols, rows grid.Range) []Entry {
	var out []Entry
	for k, v := range s.values {
		if cols.Contains(k.Col) && rows.Contains(k.Row) {
			out = append(out, Entry{Key: k, Value: v})
		}
	}
	sortEntries(out)
	return out
}

// Shift moves every cell with index >= at on axis forward by n.
func (s *Store) Shift(axis grid.Axis, at, n int) {
	if n <= 0 {
		return
	}
	moved := s.take(func(k Key) bool { return k.Along(axis) >= at })
	for _, e := range moved {
		s.values[e.Key.moved(axis, n)] = e.Value
	}
}

// ShiftBack is the inverse of Shift: cells in [at, at+n) on axis are removed
// and returned, and cells at or past at+n move back by n.
func (s *Store) ShiftBack(axis grid.Axis, at, n int) []Entry {
	if n <= 0 {
		return nil
	}
	var dropped []Entry
	moved := s.take(func(k Key) bool { return k.Along(axis) >= at })
	for _, e := range moved {
		if e.Key.Along(axis) < at+n {
			dropped = append(dropped, e)
			continue
		}
		s.values[e.Key.moved(axis, -n)] = e.Value
	}
	sortEntries(dropped)
	return dropped
}

// ShiftRows moves rows >= at down by n.
func (s *Store) ShiftRows(at, n int) { s.Shift(grid.Rows, at, n) }

// ShiftRowsBack undoes ShiftRows and returns the cells dropped from [at, at+n).
func (s *Store) ShiftRowsBack(at, n int) []Entry { return s.ShiftBack(grid.Rows, at, n) }

// ShiftCols moves columns >= at right by n.
func (s *Store) ShiftCols(at, n int) { s.Shift(grid.Columns, at, n) }

// ShiftColsBack undoes ShiftCols and returns the cells dropped from [at, at+n).
func (s *Store) ShiftColsBack(at, n int) []Entry { return s.ShiftBack(grid.Columns, at, n) }

// take removes and returns the entries whose key matches.
func (s *Store) take(match func(Key) bool) []Entry {
	var out []Entry
	for k, v := range s.values {
		if match(k) {
			out = append(out, Entry{Key: k, Value: v})
			delete(s.values, k)
		}
	}
	return out
}

func sortEntries(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(a.Key.Row, b.Key.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Key.Col, b.Key.Col)
	})
}
