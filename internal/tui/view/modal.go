// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles needed to render modal frames and buttons.
type ModalStyles struct {
	ModalHeaderStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalStyle             lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalBodyStyle         lipgloss.Style
}

// RenderModalFrame renders a modal with the provided title, body, and footer.
func RenderModalFrame(title, body, footer string, styles ModalStyles) string {
	sections := []string{styles.ModalHeaderStyle.Render(styles.ModalTitleStyle.Render(title))}
	if body != "" {
		sections = append(sections, body)
	}
	if footer != "" {
		sections = append(sections, styles.ModalFooterStyle.Render(footer))
	}
	return styles.ModalStyle.Render(strings.Join(sections, "\n\n"))
}

// RenderModalButtons renders a row of modal buttons with the first one active.
func RenderModalButtons(styles ModalStyles, labels ...string) string {
	return renderButtons(styles, styles.ModalButtonStyle, styles.ModalButtonActiveStyle, labels)
}

// RenderModalButtonsCompact renders buttons with reduced horizontal padding.
func RenderModalButtonsCompact(styles ModalStyles, labels ...string) string {
	return renderButtons(styles,
		styles.ModalButtonStyle.Padding(0, 1),
		styles.ModalButtonActiveStyle.Padding(0, 1),
		labels)
}

func renderButtons(styles ModalStyles, button, active lipgloss.Style, labels []string) string {
	parts := make([]string, len(labels))
	for i, label := range labels {
		style := button
		if i == 0 {
			style = active
		}
		parts[i] = style.Render(label)
	}
	return strings.Join(parts, styles.ModalBodyStyle.Render(" "))
}
