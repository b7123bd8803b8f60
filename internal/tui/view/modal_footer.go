// Package view provides rendering helpers for the TUI.
package view

// HelpFooter renders the footer for the help modal.
func HelpFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, "[Esc/F1] Close")
}

// ConfirmDeleteFooter renders the footer for the confirm delete modal.
func ConfirmDeleteFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, "[y/Enter] Delete", "[n/Esc] Cancel")
}

// ImportSummaryFooter renders the footer for the import summary modal.
func ImportSummaryFooter(dropped bool, styles ModalStyles) string {
	if dropped {
		return RenderModalButtonsCompact(styles, "[Enter] OK", "[u] Undo import")
	}
	return RenderModalButtons(styles, "[Enter] OK")
}
