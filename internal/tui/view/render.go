// Package view provides view composition helpers for the TUI.
package view

import "fmt"

// OverlayRenderer renders modal overlays on top of base content.
type OverlayRenderer interface {
	Render(base string, width, height int, content string) string
}

// ViewState contains pre-rendered content and overlay metadata.
type ViewState struct {
	Width        int
	Height       int
	MinWidth     int
	MinHeight    int
	BaseContent  string
	ModalContent string
	ShowModal    bool
	Overlay      OverlayRenderer
}

// Render composes the final view output. Before the first window size
// arrives it renders a placeholder, and below the minimum size a notice.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		return "Loading..."
	}
	if state.Width < state.MinWidth || state.Height < state.MinHeight {
		return fmt.Sprintf("Terminal too small (%dx%d), need %dx%d",
			state.Width, state.Height, state.MinWidth, state.MinHeight)
	}

	if state.ShowModal && state.Overlay != nil {
		return state.Overlay.Render(state.BaseContent, state.Width, state.Height, state.ModalContent)
	}
	return state.BaseContent
}
