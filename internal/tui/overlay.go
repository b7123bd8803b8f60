package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/gridline/internal/tui/view"
)

// OverlayModel draws a modal box centered over the app.
type OverlayModel struct {
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay with the modal background color.
func NewOverlayModel(bg lipgloss.Color) OverlayModel {
	return OverlayModel{bgColor: bg}
}

// Render draws content on top of base.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if width <= 0 || height <= 0 || content == "" {
		return base
	}
	return view.RenderOverlay(base, content, width, height, o.bgColor)
}
