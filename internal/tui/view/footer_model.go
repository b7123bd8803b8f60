package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterModel contains content and styles for rendering the footer. The full
// footer stacks stats, prompt, status and help; the compact one keeps status
// and help only.
type FooterModel struct {
	InnerW     int
	FooterH    int
	FullFooter bool

	Stats       GridStats
	Prompt      PromptState
	PromptWidth int
	ShowPrompt  bool
	PromptFocus bool
	StatusText  string
	HelpText    string

	StatsStyle       lipgloss.Style
	StatsParts       StatsStyles
	StatusStyle      lipgloss.Style
	HelpStyle        lipgloss.Style
	PromptStyle      lipgloss.Style
	PromptFocusStyle lipgloss.Style
	Bg               lipgloss.Color
}

// RenderFooter renders the footer bottom-aligned in its box.
func RenderFooter(model FooterModel) string {
	if model.FooterH <= 0 {
		return ""
	}

	statusLine := footerLine(model.InnerW, model.StatusStyle, model.StatusText)
	helpLine := footerLine(model.InnerW, model.HelpStyle, model.HelpText)
	if !model.FullFooter {
		return PlaceBox(model.InnerW, model.FooterH, lipgloss.Bottom, statusLine+"\n"+helpLine, model.Bg)
	}

	statsLine := footerLine(model.InnerW, model.StatsStyle, StatsText(model.Stats, model.StatsParts))

	promptStyle := model.PromptStyle
	if model.PromptFocus {
		promptStyle = model.PromptFocusStyle
	}
	promptText := ""
	if model.ShowPrompt {
		promptText = PromptLine(model.Prompt, model.PromptWidth)
	}
	promptBox := RenderPrompt(model.InnerW, promptStyle, promptText)

	content := statsLine + "\n" + promptBox + "\n" + statusLine + "\n" + helpLine
	return PlaceBox(model.InnerW, model.FooterH, lipgloss.Bottom, content, model.Bg)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := max(0, width-frameW)
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}
