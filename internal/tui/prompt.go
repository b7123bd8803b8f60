package tui

// promptCursor is drawn after the prompt text while the prompt has focus.
// Command suggestions go to the status line.
func (m Model) promptCursor() string {
	if m.mode != ModePrompt {
		return ""
	}
	return "█"
}
