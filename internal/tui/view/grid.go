package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Band is a run of terminal cells that all show the same grid line.
type Band struct {
	Index int
	Start int
	Width int
}

// SpanBand converts the pixel span [start, end) of line index into the run of
// terminal cells that show it. Cell n stands for pixel (n+1)*px-1; cells at or
// past limit are cut off. It reports false when no cell shows the line.
func SpanBand(index, start, end, px, limit int) (Band, bool) {
	if px <= 0 || end <= start {
		return Band{}, false
	}
	first := cellAtOrAfter(start, px)
	last := min(cellAtOrAfter(end, px), limit)
	if last <= first {
		return Band{}, false
	}
	return Band{Index: index, Start: first, Width: last - first}, true
}

// cellAtOrAfter returns the first terminal cell whose pixel is at or past pos.
func cellAtOrAfter(pos, px int) int {
	return max(0, (pos+px)/px-1)
}

// CellView is the text and style of one drawn grid cell.
type CellView struct {
	Text  string
	Style lipgloss.Style
	Align lipgloss.Position
}

// GridViewState holds everything RenderGrid needs for one frame.
type GridViewState struct {
	Width  int
	Height int
	Cols   []Band
	Rows   []Band
	Cell   func(col, row int) CellView

	// Rule is drawn in the last terminal column of every column band.
	// HeaderRule replaces it on the header row.
	Rule       lipgloss.Style
	HeaderRule lipgloss.Style
	RuleGlyph  string
	Filler     lipgloss.Style

	// GuideCol and GuideRow mark the far edge of a line being resized.
	// Zero means no guide.
	GuideCol   int
	GuideRow   int
	GuideStyle lipgloss.Style
}

// RenderGrid draws the visible bands. A row band spanning several terminal
// lines shows its text on the first one.
func RenderGrid(state GridViewState) string {
	if state.Width <= 0 || state.Height <= 0 {
		return ""
	}
	glyph := state.RuleGlyph
	if glyph == "" {
		glyph = "│"
	}

	used := 0
	for _, c := range state.Cols {
		used = max(used, c.Start+c.Width)
	}
	fill := ""
	if rest := state.Width - used; rest > 0 {
		fill = state.Filler.Render(strings.Repeat(" ", rest))
	}

	ruleText := state.Rule.Render(glyph)
	headerRuleText := state.HeaderRule.Render(glyph)

	lines := make([]string, 0, state.Height)
	var b strings.Builder
	for _, r := range state.Rows {
		for k := 0; k < r.Width && len(lines) < state.Height; k++ {
			guideLine := r.Index == state.GuideRow && state.GuideRow > 0 && k == r.Width-1
			b.Reset()
			for _, c := range state.Cols {
				cv := state.Cell(c.Index, r.Index)
				text := ""
				if k == 0 {
					text = cv.Text
				}
				rule := ruleText
				if r.Index == 0 {
					rule = headerRuleText
				}
				b.WriteString(renderBandCell(state, cv, c, text, rule, guideLine))
			}
			b.WriteString(fill)
			lines = append(lines, b.String())
		}
	}
	blank := state.Filler.Render(strings.Repeat(" ", state.Width))
	for len(lines) < state.Height {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

func renderBandCell(state GridViewState, cv CellView, c Band, text, rule string, guideLine bool) string {
	if guideLine {
		return state.GuideStyle.Render(strings.Repeat("─", c.Width))
	}
	body := c.Width
	if c.Width >= 2 {
		body--
	}
	out := cv.Style.Render(FitCell(text, body, cv.Align))
	if c.Width < 2 {
		return out
	}
	if c.Index == state.GuideCol && state.GuideCol > 0 {
		return out + state.GuideStyle.Render("┃")
	}
	return out + rule
}

// FitCell flattens text to a single line and truncates or pads it to exactly
// width terminal cells. Styled text keeps its escape sequences.
func FitCell(text string, width int, align lipgloss.Position) string {
	if width <= 0 {
		return ""
	}
	text = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(text)
	if ansi.StringWidth(text) > width {
		tail := "…"
		if width == 1 {
			tail = ""
		}
		text = ansi.Truncate(text, width, tail)
	}
	pad := width - ansi.StringWidth(text)
	if pad <= 0 {
		return text
	}
	left := int(float64(pad) * float64(align))
	left = max(0, min(left, pad))
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}
