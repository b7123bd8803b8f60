package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gridline/internal/grid"
	"github.com/javiermolinar/gridline/internal/selection"
)

// wheelRows is how many default-height rows one wheel notch scrolls.
const wheelRows = 3

// handleMouseMsg routes pointer input to the selection coordinator.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	LogMouse(msg)

	// Modals and the prompt own the keyboard; pointer input is ignored.
	if m.mode == ModeModal || m.mode == ModePrompt {
		return m, nil
	}

	coord := m.session.Selection()
	ev := selection.PointerEvent{
		Pos:  m.toCanvas(msg.X, msg.Y),
		Mods: mouseModifiers(msg),
	}

	if tea.MouseEvent(msg).IsWheel() {
		m.scrollWheel(msg)
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.inGrid(msg.X, msg.Y) {
			return m, nil
		}
		if m.mode == ModeEdit {
			// Clicking away commits the open edit.
			if err := m.commitEdit(0, 0); err != nil {
				m.setError(err)
			}
		}
		coord.PointerDown(ev)
	case tea.MouseActionMotion:
		if coord.State() != selection.Idle {
			coord.PointerMove(ev)
			return m, nil
		}
		if !m.inGrid(msg.X, msg.Y) {
			m.hover = selection.CursorDefault
			return m, nil
		}
		m.hover = coord.Cursor(ev)
	case tea.MouseActionRelease:
		if coord.State() != selection.Idle {
			coord.PointerUp(ev)
		}
	}
	return m, nil
}

func (m *Model) scrollWheel(msg tea.MouseMsg) {
	dims := m.session.Dimensions()
	dx := dims.DefaultSize(grid.Columns)
	dy := wheelRows * dims.DefaultSize(grid.Rows)

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Shift {
			m.session.Scroll(-dx, 0)
		} else {
			m.session.Scroll(0, -dy)
		}
	case tea.MouseButtonWheelDown:
		if msg.Shift {
			m.session.Scroll(dx, 0)
		} else {
			m.session.Scroll(0, dy)
		}
	case tea.MouseButtonWheelLeft:
		m.session.Scroll(-dx, 0)
	case tea.MouseButtonWheelRight:
		m.session.Scroll(dx, 0)
	}
}

func mouseModifiers(msg tea.MouseMsg) selection.Modifiers {
	var mods selection.Modifiers
	if msg.Shift {
		mods |= selection.ModShift
	}
	if msg.Ctrl {
		mods |= selection.ModCtrl
	}
	if msg.Alt {
		mods |= selection.ModAlt
	}
	return mods
}
