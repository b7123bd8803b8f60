// Package tui provides the terminal user interface for gridline.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/gridline/internal/tui/theme"
	"github.com/javiermolinar/gridline/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHeader    lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color

	// Title bar
	TitleStyle     lipgloss.Style
	TitleMetaStyle lipgloss.Style

	// Grid body
	CellStyle     lipgloss.Style
	SelectedStyle lipgloss.Style
	RangeStyle    lipgloss.Style
	CursorStyle   lipgloss.Style
	EditStyle     lipgloss.Style

	// Sticky headers
	CornerStyle       lipgloss.Style
	HeaderStyle       lipgloss.Style
	HeaderActiveStyle lipgloss.Style

	// Column rules and the resize guide
	RuleStyle       lipgloss.Style
	HeaderRuleStyle lipgloss.Style
	GuideStyle      lipgloss.Style

	// Footer
	StatsBarStyle      lipgloss.Style
	StatsAccentStyle   lipgloss.Style
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	StatusStyle        lipgloss.Style
	ErrorStyle         lipgloss.Style
	HelpStyle          lipgloss.Style

	// Edit input
	InputTextStyle   lipgloss.Style
	InputCursorStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalSectionTitleStyle lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalWarningStyle      lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHeader = palette.BgHeader
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorWarning = palette.Warning

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.TitleMetaStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.CellStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.SelectedStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnSelection).
		Background(palette.BgSelection)

	// Cells of a multi-cell block other than the focus.
	s.RangeStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnSelection).
		Background(palette.BgRange)

	s.CursorStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnCursor).
		Background(palette.Cursor).
		Bold(true)

	s.EditStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgSelection).
		Underline(true)

	s.CornerStyle = lipgloss.NewStyle().
		Background(s.colorBgHeader)

	s.HeaderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBgHeader)

	s.HeaderActiveStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(palette.BgHeaderActive).
		Bold(true)

	s.RuleStyle = lipgloss.NewStyle().
		Foreground(palette.GridLine).
		Background(s.colorBg)

	s.HeaderRuleStyle = lipgloss.NewStyle().
		Foreground(palette.GridLine).
		Background(s.colorBgHeader)

	s.GuideStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.StatsBarStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.StatsAccentStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Bold(true)

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBgHeader).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		BorderBackground(s.colorBg).
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true).
		Padding(0, 1)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Bold(true)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.InputTextStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgSelection)

	s.InputCursorStyle = lipgloss.NewStyle().
		Foreground(palette.Cursor)

	s.ModalBgColor = s.colorBgHeader
	modalBg := s.ModalBgColor

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Background(modalBg).
		Foreground(s.colorFg).
		Padding(1, 2).
		Width(56).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg).
		Background(modalBg).
		Align(lipgloss.Center)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(modalBg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(modalBg)

	s.ModalSectionTitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(modalBg).
		Bold(true)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(modalBg).
		Bold(true).
		Width(16)

	s.ModalWarningStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(modalBg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBgSelection).
		Padding(0, 2)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent).
		Bold(true).
		Padding(0, 2)

	// App container - a single column of padding on each side
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingLeft(1).
		PaddingRight(1)

	return s
}

// ModalStyles returns the frame and button styles for view.RenderModalFrame.
func (s *Styles) ModalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       s.ModalHeaderStyle,
		ModalTitleStyle:        s.ModalTitleStyle,
		ModalFooterStyle:       s.ModalFooterStyle,
		ModalStyle:             s.ModalStyle,
		ModalButtonStyle:       s.ModalButtonStyle,
		ModalButtonActiveStyle: s.ModalButtonActiveStyle,
		ModalBodyStyle:         s.ModalBodyStyle,
	}
}

// ModalStyleSet returns the body styles shared by all modals.
func (s *Styles) ModalStyleSet() view.ModalStyleSet {
	return view.ModalStyleSet{
		BodyStyle:         s.ModalBodyStyle,
		MetaStyle:         s.ModalMetaStyle,
		SectionTitleStyle: s.ModalSectionTitleStyle,
		LabelStyle:        s.ModalLabelStyle,
		WarningStyle:      s.ModalWarningStyle,
	}
}
