package tui

import (
	"path/filepath"
	"strconv"

	"github.com/javiermolinar/gridline/internal/cells"
	"github.com/javiermolinar/gridline/internal/grid"
	"github.com/javiermolinar/gridline/internal/tui/view"
)

var helpSections = []view.HelpSection{
	{
		Title: "Selection",
		Bindings: [][2]string{
			{"arrows", "Move the selection"},
			{"shift+arrows", "Extend the block"},
			{"home/end", "First or last column"},
			{"ctrl+home/end", "First or last cell"},
			{"pgup/pgdown", "Move by a page"},
			{"click/drag", "Select cells, or headers for lines"},
			{"drag edge", "Resize in the header band"},
			{"esc", "Cancel a drag or clear"},
		},
	},
	{
		Title: "Editing",
		Bindings: [][2]string{
			{"enter/F2", "Edit the selected cell"},
			{"type", "Replace the cell value"},
			{"tab/enter", "Commit and move"},
			{"delete", "Clear the cell"},
			{"ctrl+z/ctrl+r", "Undo or redo"},
			{"ctrl+y", "Copy the selection"},
		},
	},
	{
		Title: "Commands",
		Bindings: [][2]string{
			{":", "Open the command prompt"},
			{"F1", "Toggle this help"},
			{"ctrl+c", "Quit"},
		},
	},
}

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalHelp:
		return m.renderHelpModal()
	case ModalConfirmDelete:
		return m.renderConfirmDeleteModal()
	case ModalImportSummary:
		return m.renderImportSummaryModal()
	default:
		return ""
	}
}

func (m Model) renderHelpModal() string {
	body := view.RenderHelpBody(helpSections, m.styles.ModalStyleSet().HelpStyles())
	footer := view.HelpFooter(m.styles.ModalStyles())
	return view.RenderModalFrame("Keys", body, footer, m.styles.ModalStyles())
}

// renderConfirmDeleteModal renders the delete confirmation modal.
func (m Model) renderConfirmDeleteModal() string {
	p := m.pending
	name := strconv.Itoa
	singular, plural := "row", "rows"
	if p.axis == grid.Columns {
		name = cells.ColumnName
		singular, plural = "column", "columns"
	}
	model := view.ConfirmDeleteModel{
		Lines: view.FormatSpan(singular, plural, p.span.Start, p.span.End, name),
		Cells: p.cells,
	}
	body := view.RenderConfirmDeleteBody(model, m.styles.ModalStyleSet().ConfirmDeleteStyles())
	footer := view.ConfirmDeleteFooter(m.styles.ModalStyles())
	return view.RenderModalFrame("Confirm Delete", body, footer, m.styles.ModalStyles())
}

// renderImportSummaryModal renders what the last import loaded.
func (m Model) renderImportSummaryModal() string {
	if m.importMeta == nil || m.lastImport == nil {
		return ""
	}
	res, report := m.importMeta, m.lastImport
	model := view.ImportSummaryModel{
		Source:  filepath.Base(res.Source),
		Format:  string(res.Format),
		Records: res.Records(),
		Cells:   report.Cells,
		Dropped: report.Dropped,
		Headers: res.Headers,
	}
	body := view.RenderImportSummaryBody(model, m.styles.ModalStyleSet().ImportSummaryStyles())
	footer := view.ImportSummaryFooter(report.Dropped > 0, m.styles.ModalStyles())
	return view.RenderModalFrame("Import", body, footer, m.styles.ModalStyles())
}
