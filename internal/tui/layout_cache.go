package tui

import "github.com/charmbracelet/lipgloss"

const (
	titleHeight = 1
	// footerCompact holds the status and help lines.
	footerCompact = 2
	// footerFull adds the stats line and a one-line prompt box.
	footerFull          = 6
	footerFullMinHeight = 20

	minAppWidth  = 24
	minAppHeight = 8
)

// LayoutCache stores layout dimensions and styles derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	// Grid area in terminal cells. GridLeft and GridTop are relative to the
	// terminal origin.
	GridLeft int
	GridTop  int
	GridW    int
	GridH    int

	FooterH    int
	FullFooter bool

	TitleStyle         lipgloss.Style
	StatsBarStyle      lipgloss.Style
	StatusAuxStyle     lipgloss.Style
	ErrorAuxStyle      lipgloss.Style
	HelpAuxStyle       lipgloss.Style
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	PromptContentWidth int
}

func promptContentWidth(styles *Styles, innerW int) int {
	promptFrameW, _ := styles.PromptStyle.GetFrameSize()
	return max(0, innerW-promptFrameW)
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	styles := m.styles
	appH, appV := styles.AppStyle.GetFrameSize()
	innerW := max(0, width-appH)
	innerH := max(0, height-appV)

	footerH := footerCompact
	full := innerH >= footerFullMinHeight
	if full {
		footerH = footerFull
	}

	gridH := max(2, innerH-titleHeight-footerH)

	lineStyle := lipgloss.NewStyle().Width(innerW).Background(styles.colorBg)
	promptWidth := promptContentWidth(styles, innerW)

	return LayoutCache{
		InnerW:             innerW,
		InnerH:             innerH,
		GridLeft:           styles.AppStyle.GetPaddingLeft(),
		GridTop:            styles.AppStyle.GetPaddingTop() + titleHeight,
		GridW:              innerW,
		GridH:              gridH,
		FooterH:            footerH,
		FullFooter:         full,
		TitleStyle:         styles.TitleStyle.Width(innerW),
		StatsBarStyle:      styles.StatsBarStyle.Width(innerW),
		StatusAuxStyle:     styles.StatusStyle.Inherit(lineStyle),
		ErrorAuxStyle:      styles.ErrorStyle.Inherit(lineStyle),
		HelpAuxStyle:       styles.HelpStyle.Inherit(lineStyle),
		PromptStyle:        styles.PromptStyle.Width(promptWidth),
		PromptFocusedStyle: styles.PromptFocusedStyle.Width(promptWidth),
		PromptContentWidth: promptWidth,
	}
}
