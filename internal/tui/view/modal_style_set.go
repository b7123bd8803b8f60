// Package view provides rendering helpers for the TUI.
package view

import "github.com/charmbracelet/lipgloss"

// ModalStyleSet groups modal styles to reduce call-site verbosity.
type ModalStyleSet struct {
	BodyStyle         lipgloss.Style
	MetaStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	LabelStyle        lipgloss.Style
	WarningStyle      lipgloss.Style
}

// HelpStyles returns the modal styles needed for the help screen.
func (s ModalStyleSet) HelpStyles() HelpStyles {
	return HelpStyles{
		SectionTitleStyle: s.SectionTitleStyle,
		LabelStyle:        s.LabelStyle,
		BodyStyle:         s.BodyStyle,
	}
}

// ConfirmDeleteStyles returns the modal styles needed for delete confirmation.
func (s ModalStyleSet) ConfirmDeleteStyles() ConfirmDeleteStyles {
	return ConfirmDeleteStyles{
		BodyStyle: s.BodyStyle,
		MetaStyle: s.MetaStyle,
	}
}

// ImportSummaryStyles returns the modal styles needed for import summaries.
func (s ModalStyleSet) ImportSummaryStyles() ImportSummaryStyles {
	return ImportSummaryStyles{
		BodyStyle:    s.BodyStyle,
		LabelStyle:   s.LabelStyle,
		WarningStyle: s.WarningStyle,
	}
}
