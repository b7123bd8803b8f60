package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceBox renders content in a lipgloss.Place box with background fill.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(
		w,
		h,
		lipgloss.Left,
		vAlign,
		content,
		lipgloss.WithWhitespaceBackground(bg),
	)
	return PadLinesWithBackground(placed, w, h, bg)
}

// PadLinesWithBackground pads content to width/height with a background color.
// Lines wider than width are left alone.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	pad := lipgloss.NewStyle().Background(bg)
	for i, line := range lines {
		if w := lipgloss.Width(line); w < width {
			lines[i] = line + pad.Render(strings.Repeat(" ", width-w))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderOverlay centers box over base, which is padded to width x height.
// The box keeps its background across resets emitted by nested styles.
func RenderOverlay(base, box string, width, height int, boxBg lipgloss.Color) string {
	boxLines := strings.Split(box, "\n")
	boxW := 0
	for _, line := range boxLines {
		boxW = max(boxW, lipgloss.Width(line))
	}
	if boxW == 0 || len(boxLines) == 0 {
		return base
	}
	boxW = min(boxW, width)

	top := max(0, (height-len(boxLines))/2)
	left := max(0, (width-boxW)/2)
	bgSeq := BackgroundSeq(boxBg)
	fill := lipgloss.NewStyle().Background(boxBg)

	baseLines := strings.Split(PadLinesWithBackground(base, width, height, ""), "\n")
	for i, line := range boxLines {
		row := top + i
		if row >= len(baseLines) {
			break
		}
		w := lipgloss.Width(line)
		switch {
		case w > boxW:
			line = ansi.Cut(line, 0, boxW)
		case w < boxW:
			line += fill.Render(strings.Repeat(" ", boxW-w))
		}
		line = reapplyBackground(line, bgSeq) + ansi.ResetStyle

		under := baseLines[row]
		baseLines[row] = ansi.Cut(under, 0, left) + line + ansi.Cut(under, left+boxW, width)
	}
	return strings.Join(baseLines, "\n")
}

// BackgroundSeq returns the escape sequence that sets bg, or "" for no color.
func BackgroundSeq(bg lipgloss.Color) string {
	if bg == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
}

func reapplyBackground(line, bgSeq string) string {
	if bgSeq == "" {
		return line
	}
	for _, reset := range []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"} {
		line = strings.ReplaceAll(line, reset, reset+bgSeq)
	}
	return line
}
