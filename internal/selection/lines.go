package selection

import (
	"maps"
	"slices"

	"github.com/javiermolinar/gridline/internal/grid"
)

// LineSelector selects whole rows or columns from their header band.
type LineSelector struct {
	baseHandler
	geo      *geometry
	axis     grid.Axis
	selected map[int]struct{}
	base     map[int]struct{}
	anchor   int
	dragging bool
	moved    bool
}

func newLineSelector(geo *geometry, axis grid.Axis) *LineSelector {
	return &LineSelector{
		geo:      geo,
		axis:     axis,
		selected: make(map[int]struct{}),
	}
}

// Axis returns the axis whose lines are selected.
func (s *LineSelector) Axis() grid.Axis { return s.axis }

func (s *LineSelector) Kind() Kind {
	if s.axis == grid.Columns {
		return KindColumns
	}
	return KindRows
}

// HitTest passes inside the header band of the other axis, on any data line.
func (s *LineSelector) HitTest(ev PointerEvent) bool {
	band, ok := s.geo.lineAt(s.axis.Other(), ev.Pos.Along(s.axis.Other()))
	if !ok || band != 0 {
		return false
	}
	i, ok := s.geo.lineAt(s.axis, ev.Pos.Along(s.axis))
	return ok && i != 0
}

func (s *LineSelector) PointerDown(ev PointerEvent) {
	i := s.geo.dataLineAt(s.axis, ev.Pos.Along(s.axis))
	s.dragging = true
	s.moved = false
	switch {
	case ev.Mods.Has(ModShift) && len(s.selected) > 0:
		s.base = nil
		s.selectRange(s.anchor, i)
	case ev.Mods.Has(ModCtrl):
		if _, ok := s.selected[i]; ok {
			delete(s.selected, i)
		} else {
			s.selected[i] = struct{}{}
		}
		s.base = maps.Clone(s.selected)
		s.anchor = i
	default:
		s.base = nil
		clear(s.selected)
		s.selected[i] = struct{}{}
		s.anchor = i
	}
	s.geo.requestRepaint()
}

func (s *LineSelector) PointerMove(ev PointerEvent) {
	if !s.dragging {
		return
	}
	i := s.geo.dataLineAt(s.axis, ev.Pos.Along(s.axis))
	if i == s.anchor && !s.moved {
		return
	}
	s.moved = true
	s.selectRange(s.anchor, i)
	s.geo.ensureVisible(s.axis, i)
	s.geo.requestRepaint()
}

func (s *LineSelector) PointerUp(PointerEvent) {
	s.dragging = false
	s.base = nil
}

func (s *LineSelector) ClearSelection() {
	clear(s.selected)
	s.base = nil
	s.dragging = false
}

// Selected returns the selected indices in ascending order.
func (s *LineSelector) Selected() []int {
	return slices.Sorted(maps.Keys(s.selected))
}

// Contains reports whether line i is selected.
func (s *LineSelector) Contains(i int) bool {
	_, ok := s.selected[i]
	return ok
}

// Len returns the number of selected lines.
func (s *LineSelector) Len() int { return len(s.selected) }

// Span returns the smallest range covering every selected line.
func (s *LineSelector) Span() (grid.Range, bool) {
	if len(s.selected) == 0 {
		return grid.Range{}, false
	}
	lo, hi := -1, -1
	for i := range s.selected {
		if lo < 0 || i < lo {
			lo = i
		}
		if i > hi {
			hi = i
		}
	}
	return grid.Range{Start: lo, End: hi + 1}, true
}

// Select replaces the selection with the lines in r.
func (s *LineSelector) Select(r grid.Range) {
	clear(s.selected)
	for i := r.Start; i < r.End; i++ {
		if i > 0 && i < s.geo.dims.Len(s.axis) {
			s.selected[i] = struct{}{}
		}
	}
	s.anchor = r.Start
}

// Clamp drops selected lines that no longer exist.
func (s *LineSelector) Clamp() {
	n := s.geo.dims.Len(s.axis)
	for i := range s.selected {
		if i >= n {
			delete(s.selected, i)
		}
	}
}

func (s *LineSelector) selectRange(a, b int) {
	clear(s.selected)
	maps.Copy(s.selected, s.base)
	for i := min(a, b); i <= max(a, b); i++ {
		s.selected[i] = struct{}{}
	}
}
