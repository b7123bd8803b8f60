package tui

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/gridline/internal/cells"
	"github.com/javiermolinar/gridline/internal/grid"
	"github.com/javiermolinar/gridline/internal/selection"
	"github.com/javiermolinar/gridline/internal/tui/input"
	"github.com/javiermolinar/gridline/internal/tui/view"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	showModal := m.mode == ModeModal && m.modalType != ModalNone
	modal := ""
	if showModal {
		modal = m.renderModal()
	}
	return view.ViewState{
		Width:        m.width,
		Height:       m.height,
		MinWidth:     minAppWidth,
		MinHeight:    minAppHeight,
		BaseContent:  m.renderAppContent(),
		ModalContent: modal,
		ShowModal:    showModal,
		Overlay:      NewOverlayModel(m.styles.ModalBgColor),
	}
}

func (m Model) renderAppContent() string {
	layout := m.layoutCache
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return ""
	}

	title := layout.TitleStyle.Render(m.titleText(layout.InnerW))
	gridBox := view.RenderGrid(m.gridViewState(layout))
	footerBox := view.RenderFooter(m.footerViewState(layout))

	content := lipgloss.JoinVertical(lipgloss.Left, title, gridBox, footerBox)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) titleText(width int) string {
	meta := []string{}
	if m.importMeta != nil && m.importMeta.Source != "" {
		meta = append(meta, filepath.Base(m.importMeta.Source))
	}
	if label := m.selectionLabel(); label != "" {
		meta = append(meta, label)
	}
	if m.loading {
		meta = append(meta, "loading...")
	}
	title := "gridline"
	if len(meta) > 0 {
		title += m.styles.TitleMetaStyle.Render("  " + strings.Join(meta, " · "))
	}
	return view.FitCell(title, width, lipgloss.Left)
}

// selectionLabel names the active selection, e.g. "B3", "B3:D5" or "rows 4-6".
func (m Model) selectionLabel() string {
	coord := m.session.Selection()
	switch coord.ActiveKind() {
	case selection.KindCell:
		st, ok := coord.Cell()
		if !ok {
			return ""
		}
		if !st.Ranged() {
			return st.Anchor.Name()
		}
		r := st.Range()
		return cells.Key{Col: r.MinCol, Row: r.MinRow}.Name() + ":" + cells.Key{Col: r.MaxCol, Row: r.MaxRow}.Name()
	case selection.KindRows:
		if span, ok := coord.Target(grid.Rows); ok {
			return view.FormatSpan("row", "rows", span.Start, span.End, strconv.Itoa)
		}
	case selection.KindColumns:
		if span, ok := coord.Target(grid.Columns); ok {
			return view.FormatSpan("column", "columns", span.Start, span.End, cells.ColumnName)
		}
	}
	return ""
}

func (m Model) gridViewState(layout LayoutCache) view.GridViewState {
	state := view.GridViewState{
		Width:      layout.GridW,
		Height:     layout.GridH,
		Cols:       m.bands(grid.Columns),
		Rows:       m.bands(grid.Rows),
		Cell:       m.cellView,
		Rule:       m.styles.RuleStyle,
		HeaderRule: m.styles.HeaderRuleStyle,
		Filler:     m.styles.CellStyle,
		GuideStyle: m.styles.GuideStyle,
	}
	if axis, targets, ok := m.session.Selection().ResizeTargets(); ok {
		guide := 0
		for i := range targets {
			guide = max(guide, i)
		}
		if axis == grid.Columns {
			state.GuideCol = guide
		} else {
			state.GuideRow = guide
		}
	}
	return state
}

// cellView returns the text and style of one grid cell for this frame.
func (m Model) cellView(col, row int) view.CellView {
	coord := m.session.Selection()
	s := m.styles

	switch {
	case col == 0 && row == 0:
		return view.CellView{Style: s.CornerStyle}
	case row == 0:
		style := s.HeaderStyle
		if coord.IsHeaderHighlighted(grid.Columns, col) {
			style = s.HeaderActiveStyle
		}
		return view.CellView{Text: cells.ColumnName(col), Style: style, Align: lipgloss.Center}
	case col == 0:
		style := s.HeaderStyle
		if coord.IsHeaderHighlighted(grid.Rows, row) {
			style = s.HeaderActiveStyle
		}
		return view.CellView{Text: strconv.Itoa(row), Style: style, Align: lipgloss.Right}
	}

	if key, ok := m.session.Editor().Key(); ok && m.mode == ModeEdit && key == (cells.Key{Col: col, Row: row}) {
		return view.CellView{Text: m.editor.View(), Style: s.EditStyle}
	}

	value := m.session.Store().Value(col, row)
	cv := view.CellView{Text: value, Style: s.CellStyle, Align: alignFor(value)}
	if !coord.IsCellSelected(col, row) {
		return cv
	}
	cv.Style = s.SelectedStyle
	if st, ok := coord.Cell(); ok {
		switch {
		case st.Anchor == (cells.Key{Col: col, Row: row}):
			cv.Style = s.CursorStyle
		case st.Ranged():
			cv.Style = s.RangeStyle
		}
	}
	return cv
}

// alignFor right-aligns numbers and left-aligns everything else.
func alignFor(value string) lipgloss.Position {
	if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
		return lipgloss.Right
	}
	return lipgloss.Left
}

func (m Model) footerViewState(layout LayoutCache) view.FooterModel {
	statusStyle := layout.StatusAuxStyle
	if m.statusError {
		statusStyle = layout.ErrorAuxStyle
	}

	return view.FooterModel{
		InnerW:      layout.InnerW,
		FooterH:     layout.FooterH,
		FullFooter:  layout.FullFooter,
		Stats:       m.gridStats(),
		Prompt:      view.PromptState{Value: m.prompt.Value(), Cursor: m.promptCursor()},
		PromptWidth: layout.PromptContentWidth,
		ShowPrompt:  m.mode != ModeModal,
		PromptFocus: m.mode == ModePrompt,
		StatusText:  m.statusText(layout.InnerW),
		HelpText:    m.helpText(),
		StatsStyle:  layout.StatsBarStyle,
		StatsParts: view.StatsStyles{
			Accent:    m.styles.StatsAccentStyle,
			Separator: m.styles.StatsBarStyle,
		},
		StatusStyle:      statusStyle,
		HelpStyle:        layout.HelpAuxStyle,
		PromptStyle:      layout.PromptStyle,
		PromptFocusStyle: layout.PromptFocusedStyle,
		Bg:               m.styles.colorBg,
	}
}

func (m Model) gridStats() view.GridStats {
	ext := m.session.Extent()
	stats := view.GridStats{
		Cells:     m.session.Store().Len(),
		Cols:      ext.Cols - 1,
		Rows:      ext.Rows - 1,
		Selection: m.selectionLabel(),
		Filled:    m.selectionFilled(),
		Visible:   m.visibleLabel(),
	}
	if next := m.session.History().NextUndo(); next != nil {
		stats.Undo = next.Describe()
	}
	if next := m.session.History().NextRedo(); next != nil {
		stats.Redo = next.Describe()
	}
	return stats
}

// selectionFilled counts the populated cells covered by the selection.
func (m Model) selectionFilled() int {
	coord := m.session.Selection()
	ext := m.session.Extent()
	cols := grid.Range{Start: 1, End: ext.Cols}
	rows := grid.Range{Start: 1, End: ext.Rows}
	switch coord.ActiveKind() {
	case selection.KindCell:
		st, ok := coord.Cell()
		if !ok {
			return 0
		}
		r := st.Range()
		cols, rows = r.Lines(grid.Columns), r.Lines(grid.Rows)
	case selection.KindRows:
		span, ok := coord.Target(grid.Rows)
		if !ok {
			return 0
		}
		rows = span
	case selection.KindColumns:
		span, ok := coord.Target(grid.Columns)
		if !ok {
			return 0
		}
		cols = span
	default:
		return 0
	}
	return len(m.session.Store().EntriesIn(cols, rows))
}

// visibleLabel names the data block currently drawn.
func (m Model) visibleLabel() string {
	cols, ok := drawnSpan(m.bands(grid.Columns))
	if !ok {
		return ""
	}
	rows, ok := drawnSpan(m.bands(grid.Rows))
	if !ok {
		return ""
	}
	first := cells.Key{Col: cols.Start, Row: rows.Start}
	last := cells.Key{Col: cols.End - 1, Row: rows.End - 1}
	return first.Name() + ":" + last.Name()
}

// drawnSpan returns the data lines covered by bands, skipping the header.
func drawnSpan(bands []view.Band) (grid.Range, bool) {
	var r grid.Range
	for _, b := range bands {
		if b.Index == 0 {
			continue
		}
		if r.Start == 0 {
			r.Start = b.Index
		}
		r.End = b.Index + 1
	}
	return r, r.Start > 0
}

// statusText shows the status message, or command suggestions while the
// prompt is open.
func (m Model) statusText(width int) string {
	if m.statusMsg != "" {
		return m.statusMsg
	}
	if m.mode == ModePrompt {
		matches := input.PromptMatchingCommands(m.prompt.Value(), input.Commands)
		usages := make([]string, 0, len(matches))
		for _, c := range matches {
			usages = append(usages, c.Usage)
		}
		return view.SuggestionLine(usages, width)
	}
	return ""
}

func (m Model) helpText() string {
	switch m.mode {
	case ModeEdit:
		return "enter/tab: commit · esc: cancel"
	case ModePrompt:
		return "enter: run · tab: complete · esc: close"
	case ModeModal:
		return "esc: close"
	}
	switch m.hover {
	case selection.CursorColResize:
		return "drag to resize the column"
	case selection.CursorRowResize:
		return "drag to resize the row"
	}
	return "arrows: move · enter: edit · : command · ctrl+z/ctrl+r: undo/redo · F1: help · ctrl+c: quit"
}
