// Package tui provides the terminal user interface for gridline.
package tui

import (
	"testing"

	"github.com/javiermolinar/gridline/internal/grid"
	"github.com/javiermolinar/gridline/internal/selection"
)

func TestToCanvas(t *testing.T) {
	m := newTestModel(t)
	tests := []struct {
		x, y int
		want selection.Point
	}{
		{1, 1, selection.Point{X: 7, Y: 14}},
		{11, 3, selection.Point{X: 87, Y: 44}},
		{0, 0, selection.Point{X: -1, Y: -1}},
	}
	for _, tt := range tests {
		if got := m.toCanvas(tt.x, tt.y); got != tt.want {
			t.Errorf("toCanvas(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBands_ScrolledMidLine(t *testing.T) {
	m := newTestModel(t)
	// Row 2 is half hidden under the header.
	m.session.Scroll(0, 45)

	want := m.session.Dimensions().VisibleRange(grid.Rows, 45+30, m.viewport().Height-30)
	if want != (grid.Range{Start: 2, End: 13}) {
		t.Fatalf("VisibleRange = %+v", want)
	}

	rows := m.bands(grid.Rows)
	if rows[0].Index != 0 || rows[0].Width != 2 {
		t.Errorf("header band = %+v, want index 0 width 2", rows[0])
	}
	var got []int
	for _, b := range rows[1:] {
		got = append(got, b.Index)
	}
	if len(got) != want.Len() {
		t.Fatalf("drawn rows = %v, want %d..%d", got, want.Start, want.End-1)
	}
	for i, idx := range got {
		if idx != want.Start+i {
			t.Errorf("band %d shows row %d, want %d", i+1, idx, want.Start+i)
		}
	}
	if first := rows[1]; first.Start != 2 || first.Width != 1 {
		t.Errorf("partial row band = %+v, want start 2 width 1", first)
	}
	if last := rows[len(rows)-1]; last.Start+last.Width != m.layoutCache.GridH {
		t.Errorf("last band = %+v, want it to end at %d", last, m.layoutCache.GridH)
	}
}

func TestBands_ScrolledAligned(t *testing.T) {
	m := newTestModel(t)
	m.session.Scroll(0, 60)

	// Row 2 sits entirely under the header, so the first data band is row 3.
	rows := m.bands(grid.Rows)
	if rows[0].Index != 0 {
		t.Errorf("first band shows row %d, want header", rows[0].Index)
	}
	if rows[1].Index != 3 || rows[1].Start != 2 {
		t.Errorf("first data band = %+v, want row 3 at line 2", rows[1])
	}
}

func TestBands(t *testing.T) {
	m := newTestModel(t)
	cols := m.bands(grid.Columns)
	if len(cols) < 2 {
		t.Fatalf("bands = %+v", cols)
	}
	if cols[0].Index != 0 || cols[0].Width != 10 {
		t.Errorf("header band = %+v, want width 10", cols[0])
	}
	if cols[1].Index != 1 || cols[1].Start != 10 || cols[1].Width != 10 {
		t.Errorf("column 1 band = %+v", cols[1])
	}

	rows := m.bands(grid.Rows)
	total := 0
	for _, r := range rows {
		total += r.Width
	}
	if total != m.layoutCache.GridH {
		t.Errorf("row bands cover %d lines, want %d", total, m.layoutCache.GridH)
	}
}
