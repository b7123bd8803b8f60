// Package session assembles one editable grid: its extent, line sizes, cell
// values, undo history, selection and cell editor.
package session

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/javiermolinar/gridline/internal/cells"
	"github.com/javiermolinar/gridline/internal/config"
	"github.com/javiermolinar/gridline/internal/grid"
	"github.com/javiermolinar/gridline/internal/history"
	"github.com/javiermolinar/gridline/internal/importer"
	"github.com/javiermolinar/gridline/internal/selection"
)

var (
	// ErrNotEditing is returned by editor operations when no edit is open.
	ErrNotEditing = errors.New("no edit in progress")
	// ErrNoTarget is returned when the selection gives an operation nothing to act on.
	ErrNoTarget = errors.New("selection has no target for this operation")
)

// Action says how a command reached the grid.
type Action int

const (
	ActionExecute Action = iota
	ActionUndo
	ActionRedo
)

func (a Action) String() string {
	switch a {
	case ActionExecute:
		return "execute"
	case ActionUndo:
		return "undo"
	case ActionRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// Observer is told about every command applied to the grid.
type Observer func(Action, history.Command)

// Options configures a Session.
type Options struct {
	Cols         int
	Rows         int
	Layout       grid.Layout
	ResizeGrab   int
	HistoryLimit int
	Repaint      selection.Repainter
}

// OptionsFromConfig maps the [grid] section onto session options.
func OptionsFromConfig(cfg *config.Config) Options {
	g := cfg.Grid
	return Options{
		Cols: g.Cols,
		Rows: g.Rows,
		Layout: grid.Layout{
			ColWidth:     g.ColWidth,
			RowHeight:    g.RowHeight,
			MinColWidth:  g.MinColWidth,
			MinRowHeight: g.MinRowHeight,
		},
		ResizeGrab:   g.ResizeGrab,
		HistoryLimit: g.HistoryLimit,
	}
}

// Session owns the grid state. It is not safe for concurrent use; the host
// drives it from a single event loop.
type Session struct {
	extent *grid.Extent
	dims   *grid.Dimensions
	store  *cells.Store
	stack  *history.Stack
	coord  *selection.Coordinator
	editor *Editor

	observers []Observer
}

// New builds an empty grid.
func New(opts Options) *Session {
	if opts.Layout == (grid.Layout{}) {
		opts.Layout = grid.DefaultLayout()
	}
	// One header line plus at least one data line per axis.
	opts.Cols = max(opts.Cols, 2)
	opts.Rows = max(opts.Rows, 2)
	s := &Session{
		extent: &grid.Extent{Cols: opts.Cols, Rows: opts.Rows},
		store:  cells.NewStore(),
		stack:  history.NewStack(opts.HistoryLimit),
	}
	s.dims = grid.NewDimensions(s.extent, opts.Layout)
	s.coord = selection.NewCoordinator(s.dims, s.stack, selection.Options{
		ResizeGrab: opts.ResizeGrab,
		Repaint:    opts.Repaint,
		OnCommit: func(cmd history.Command) {
			s.notify(ActionExecute, cmd)
		},
	})
	s.editor = &Editor{s: s}
	return s
}

// Extent returns the live line counts, headers included.
func (s *Session) Extent() grid.Extent { return *s.extent }

// Dimensions returns the line size registry.
func (s *Session) Dimensions() *grid.Dimensions { return s.dims }

// Store returns the cell values.
func (s *Session) Store() *cells.Store { return s.store }

// History returns the undo stack.
func (s *Session) History() *history.Stack { return s.stack }

// Selection returns the selection coordinator.
func (s *Session) Selection() *selection.Coordinator { return s.coord }

// Editor returns the cell editor.
func (s *Session) Editor() *Editor { return s.editor }

// Observe registers fn to be called for every executed, undone or redone command.
func (s *Session) Observe(fn Observer) {
	s.observers = append(s.observers, fn)
}

// SetViewport records the canvas size in logical pixels.
func (s *Session) SetViewport(v grid.Viewport) {
	s.coord.SetViewport(v)
}

// Scroll moves the viewport by (dx, dy) pixels, clamped to the content.
func (s *Session) Scroll(dx, dy int) {
	s.dims.ScrollBy(dx, dy)
	s.dims.ClampOffset(s.coord.Viewport())
}

// Execute applies cmd and records it for undo.
func (s *Session) Execute(cmd history.Command) {
	s.stack.Execute(cmd)
	s.notify(ActionExecute, cmd)
}

// Undo reverts the most recent command. An open edit is discarded first.
func (s *Session) Undo() bool {
	s.editor.Cancel()
	cmd := s.stack.NextUndo()
	if !s.stack.Undo() {
		return false
	}
	s.afterStructuralChange()
	s.notify(ActionUndo, cmd)
	return true
}

// Redo reapplies the most recently undone command.
func (s *Session) Redo() bool {
	s.editor.Cancel()
	cmd := s.stack.NextRedo()
	if !s.stack.Redo() {
		return false
	}
	s.afterStructuralChange()
	s.notify(ActionRedo, cmd)
	return true
}

// InsertLines inserts lines on axis where the selection says: before the
// first selected line, as many as are selected, or one line at index 1 when
// nothing is selected.
func (s *Session) InsertLines(axis grid.Axis) (*history.InsertAxis, error) {
	at, count, ok := s.coord.InsertTarget(axis)
	if !ok {
		return nil, fmt.Errorf("insert %s: %w", axis, ErrNoTarget)
	}
	cmd, err := history.NewInsertAxis(s.dims, s.store, axis, at, count)
	if err != nil {
		return nil, err
	}
	s.Execute(cmd)
	s.afterStructuralChange()
	return cmd, nil
}

// DeleteLines removes the span of lines on axis covered by the selection.
func (s *Session) DeleteLines(axis grid.Axis) (*history.DeleteAxis, error) {
	r, ok := s.coord.Target(axis)
	if !ok || r.Len() == 0 {
		return nil, fmt.Errorf("delete %s: %w", axis, ErrNoTarget)
	}
	cmd, err := history.NewDeleteAxis(s.dims, s.store, axis, r.Start, r.Len())
	if err != nil {
		return nil, err
	}
	s.Execute(cmd)
	s.afterStructuralChange()
	return cmd, nil
}

// ImportReport summarizes an applied import.
type ImportReport struct {
	Cells   int // cells now in the grid
	Dropped int // entries outside the grid extent
	Changed bool
}

// Import replaces every cell value with the imported entries as one undoable
// step. Entries that fall outside the grid are dropped and counted.
func (s *Session) Import(res *importer.Result) (ImportReport, error) {
	if res == nil {
		return ImportReport{}, fmt.Errorf("import: %w", importer.ErrInvalidImport)
	}
	s.editor.Cancel()

	kept := make([]cells.Entry, 0, len(res.Entries))
	var report ImportReport
	for _, e := range res.Entries {
		if e.Key.Col < 1 || e.Key.Row < 1 || e.Key.Col >= s.extent.Cols || e.Key.Row >= s.extent.Rows {
			report.Dropped++
			continue
		}
		kept = append(kept, e)
	}

	label := ""
	if res.Source != "" {
		label = filepath.Base(res.Source)
	}
	cmd, err := history.NewReplaceCells(s.store, kept, label)
	if errors.Is(err, history.ErrNoChange) {
		report.Cells = s.store.Len()
		return report, nil
	}
	if err != nil {
		return report, err
	}
	s.Execute(cmd)
	report.Cells = cmd.Len()
	report.Changed = true
	return report, nil
}

// SelectionText renders the selected block as tab-separated lines. A
// whole-line selection spans up to the last populated cell on those lines.
func (s *Session) SelectionText() (string, error) {
	cols, rows, ok := s.selectionBlock()
	if !ok {
		return "", fmt.Errorf("copy: %w", ErrNoTarget)
	}

	var b strings.Builder
	for row := rows.Start; row < rows.End; row++ {
		if row > rows.Start {
			b.WriteByte('\n')
		}
		for col := cols.Start; col < cols.End; col++ {
			if col > cols.Start {
				b.WriteByte('\t')
			}
			b.WriteString(tsvField(s.store.Value(col, row)))
		}
	}
	return b.String(), nil
}

func (s *Session) selectionBlock() (cols, rows grid.Range, ok bool) {
	switch s.coord.ActiveKind() {
	case selection.KindCell:
		st, ok := s.coord.Cell()
		if !ok {
			return cols, rows, false
		}
		r := st.Range()
		return r.Lines(grid.Columns), r.Lines(grid.Rows), true
	case selection.KindRows:
		rows, ok = s.coord.Target(grid.Rows)
		if !ok {
			return cols, rows, false
		}
		all := grid.Range{Start: 1, End: s.extent.Cols}
		return s.populatedSpan(grid.Columns, all, rows), rows, true
	case selection.KindColumns:
		cols, ok = s.coord.Target(grid.Columns)
		if !ok {
			return cols, rows, false
		}
		all := grid.Range{Start: 1, End: s.extent.Rows}
		return cols, s.populatedSpan(grid.Rows, cols, all), true
	}
	return cols, rows, false
}

// populatedSpan returns [1, last populated index + 1) on axis among the
// cells inside the given column and row ranges.
func (s *Session) populatedSpan(axis grid.Axis, cols, rows grid.Range) grid.Range {
	last := 0
	for _, e := range s.store.EntriesIn(cols, rows) {
		last = max(last, e.Key.Along(axis))
	}
	return grid.Range{Start: 1, End: last + 1}
}

func tsvField(v string) string {
	return strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ").Replace(v)
}

func (s *Session) afterStructuralChange() {
	s.coord.Clamp()
	s.dims.ClampOffset(s.coord.Viewport())
}

func (s *Session) notify(action Action, cmd history.Command) {
	for _, fn := range s.observers {
		fn(action, cmd)
	}
}
