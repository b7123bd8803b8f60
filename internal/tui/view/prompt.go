package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const (
	promptPrefix       = "> "
	suggestionSep      = "  |  "
	suggestionOverflow = "…"
)

// PromptState captures prompt input state for rendering.
type PromptState struct {
	Value  string
	Cursor string
}

// PromptLine renders the single prompt input line. Text that does not fit
// scrolls left so the cursor stays at the right edge.
func PromptLine(state PromptState, contentWidth int) string {
	if contentWidth <= 0 {
		return ""
	}
	avail := contentWidth - runewidth.StringWidth(promptPrefix)
	if avail <= 0 {
		return runewidth.Truncate(promptPrefix, contentWidth, "")
	}
	return promptPrefix + tailToWidth(state.Value+state.Cursor, avail)
}

// tailToWidth keeps the longest suffix of s that fits width columns.
func tailToWidth(s string, width int) string {
	runes := []rune(s)
	used := 0
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > width {
			break
		}
		used += w
		start--
	}
	return string(runes[start:])
}

// SuggestionLine joins command usages for the status line, dropping the ones
// that no longer fit width and marking the cut.
func SuggestionLine(usages []string, width int) string {
	line := strings.Join(usages, suggestionSep)
	if width <= 0 || ansi.StringWidth(line) <= width {
		return line
	}
	var b strings.Builder
	for i, u := range usages {
		next := u
		if i > 0 {
			next = suggestionSep + u
		}
		if ansi.StringWidth(b.String()+next+suggestionSep+suggestionOverflow) > width {
			break
		}
		b.WriteString(next)
	}
	if b.Len() == 0 {
		return ansi.Truncate(line, width, suggestionOverflow)
	}
	return b.String() + suggestionSep + suggestionOverflow
}

// RenderPrompt renders the prompt box around line. An empty line keeps the
// box height while the prompt is hidden.
func RenderPrompt(width int, style lipgloss.Style, line string) string {
	frameW, _ := style.GetFrameSize()
	style = style.Width(max(0, width-frameW))
	return style.Render(line)
}
