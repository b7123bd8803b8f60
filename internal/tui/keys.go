package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gridline/internal/cells"
	"github.com/javiermolinar/gridline/internal/grid"
	"github.com/javiermolinar/gridline/internal/selection"
	"github.com/javiermolinar/gridline/internal/session"
	"github.com/javiermolinar/gridline/internal/tui/commands"
	"github.com/javiermolinar/gridline/internal/tui/input"
	"github.com/javiermolinar/gridline/internal/tui/view"
)

var navigationKeys = map[string]selection.Key{
	"up":     selection.KeyUp,
	"down":   selection.KeyDown,
	"left":   selection.KeyLeft,
	"right":  selection.KeyRight,
	"home":   selection.KeyHome,
	"end":    selection.KeyEnd,
	"pgup":   selection.KeyPageUp,
	"pgdown": selection.KeyPageDown,
}

// splitKey separates modifier prefixes from a key name, so "ctrl+shift+up"
// yields "up" with ModCtrl|ModShift.
func splitKey(s string) (string, selection.Modifiers) {
	var mods selection.Modifiers
	for {
		switch {
		case strings.HasPrefix(s, "ctrl+") && len(s) > len("ctrl+"):
			mods |= selection.ModCtrl
			s = s[len("ctrl+"):]
		case strings.HasPrefix(s, "shift+") && len(s) > len("shift+"):
			mods |= selection.ModShift
			s = s[len("shift+"):]
		case strings.HasPrefix(s, "alt+") && len(s) > len("alt+"):
			mods |= selection.ModAlt
			s = s[len("alt+"):]
		default:
			return s, mods
		}
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Log keystroke
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// Mode-specific handling
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	case ModeEdit:
		return m.handleEditKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	coord := m.session.Selection()
	key := msg.String()

	name, mods := splitKey(key)
	if nav, ok := navigationKeys[name]; ok {
		coord.HandleKey(nav, mods)
		return m, nil
	}

	switch key {
	case "esc":
		// Esc first aborts a drag, then drops the selection.
		if !coord.Cancel() {
			coord.ClearSelection()
		}
		return m, nil

	case ":":
		return m.openPrompt("")

	case "f1":
		LogModeChange(m.mode, ModeModal, "help")
		m.mode = ModeModal
		m.modalType = ModalHelp
		return m, nil

	case "enter", "f2":
		text, err := m.session.Editor().Begin()
		if err != nil {
			return m, m.statusFor(err)
		}
		return m.openEditor(text)

	case "delete", "backspace":
		return m.clearCell()

	case "ctrl+z":
		return m.undo()
	case "ctrl+r", "ctrl+shift+z":
		return m.redo()

	case "ctrl+y":
		return m.copySelection()

	case "ctrl+q":
		return m, tea.Quit
	}

	// Typing over a selected cell replaces its value.
	if text, ok := typedText(msg); ok {
		if err := m.session.Editor().BeginWith(text); err != nil {
			return m, m.statusFor(err)
		}
		return m.openEditor(text)
	}
	return m, nil
}

// typedText returns the text a printable key inserts.
func typedText(msg tea.KeyMsg) (string, bool) {
	if msg.Alt || msg.Paste {
		return "", false
	}
	switch msg.Type {
	case tea.KeyRunes:
		return string(msg.Runes), len(msg.Runes) > 0
	case tea.KeySpace:
		return " ", true
	}
	return "", false
}

func (m Model) openEditor(text string) (tea.Model, tea.Cmd) {
	LogModeChange(m.mode, ModeEdit, "edit")
	m.mode = ModeEdit
	if key, ok := m.session.Editor().Key(); ok {
		// One cell for the rule and one for the cursor.
		cols := m.session.Dimensions().Size(grid.Columns, key.Col) / m.pxPerCol
		m.editor.Width = max(1, cols-2)
	}
	m.editor.SetValue(text)
	m.editor.CursorEnd()
	m.editor.Focus()
	return m, textinput.Blink
}

// handleEditKeys handles keys while a cell edit is open.
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.session.Editor().Cancel()
		m.closeEditor("edit_cancelled")
		return m, nil
	case "enter":
		return m.commitAndMove(0, 1)
	case "shift+enter":
		return m.commitAndMove(0, -1)
	case "tab":
		return m.commitAndMove(1, 0)
	case "shift+tab":
		return m.commitAndMove(-1, 0)
	case "up":
		return m.commitAndMove(0, -1)
	case "down":
		return m.commitAndMove(0, 1)
	case "ctrl+z":
		// Undo drops the open edit first.
		m.closeEditor("undo")
		return m.undo()
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if err := m.session.Editor().SetText(m.editor.Value()); err != nil {
		LogError("edit_sync", err)
	}
	return m, cmd
}

func (m Model) commitAndMove(dx, dy int) (tea.Model, tea.Cmd) {
	if err := m.commitEdit(dx, dy); err != nil {
		m.setError(err)
	}
	return m, nil
}

// commitEdit stores the pending text and selects the cell (dx, dy) away.
func (m *Model) commitEdit(dx, dy int) error {
	ed := m.session.Editor()
	if err := ed.SetText(m.editor.Value()); err != nil {
		m.closeEditor("edit_lost")
		return err
	}
	_, err := ed.CommitAndMove(dx, dy)
	m.closeEditor("edit_committed")
	return err
}

func (m *Model) closeEditor(reason string) {
	LogModeChange(m.mode, ModeNormal, reason)
	m.mode = ModeNormal
	m.editor.Blur()
	m.editor.SetValue("")
}

// clearCell empties the selected cell as one undoable edit.
func (m Model) clearCell() (tea.Model, tea.Cmd) {
	ed := m.session.Editor()
	if err := ed.BeginWith(""); err != nil {
		return m, m.statusFor(err)
	}
	if _, err := ed.Commit(); err != nil {
		m.setError(err)
	}
	return m, nil
}

func (m Model) undo() (tea.Model, tea.Cmd) {
	next := m.session.History().NextUndo()
	if !m.session.Undo() {
		return m, commands.Status("Nothing to undo")
	}
	return m, commands.Status("Undid " + next.Describe())
}

func (m Model) redo() (tea.Model, tea.Cmd) {
	next := m.session.History().NextRedo()
	if !m.session.Redo() {
		return m, commands.Status("Nothing to redo")
	}
	return m, commands.Status("Redid " + next.Describe())
}

func (m Model) copySelection() (tea.Model, tea.Cmd) {
	text, err := m.session.SelectionText()
	if err != nil {
		return m, m.statusFor(err)
	}
	return m, commands.CopyToClipboard(text)
}

// statusFor reports a selection that gives an operation nothing to act on as
// a hint rather than an error.
func (m Model) statusFor(err error) tea.Cmd {
	if errors.Is(err, session.ErrNoTarget) {
		return commands.Status("Select a cell first")
	}
	return func() tea.Msg { return commands.ErrMsg{Err: err} }
}

func (m Model) openPrompt(value string) (tea.Model, tea.Cmd) {
	LogModeChange(m.mode, ModePrompt, "prompt")
	m.mode = ModePrompt
	m.prompt.SetValue(value)
	m.prompt.CursorEnd()
	m.prompt.Focus()
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
	return m, textinput.Blink
}

func (m *Model) closePrompt() {
	LogModeChange(m.mode, ModeNormal, "prompt_closed")
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.SetValue("")
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
}

// handlePromptKeys handles keys in prompt mode.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil

	case "enter":
		value := m.prompt.Value()
		m.closePrompt()
		return m.handlePromptSubmit(value)

	case "tab":
		if completion, ok := input.PromptAutocomplete(m.prompt.Value(), input.Commands); ok {
			m.prompt.SetValue(completion)
			m.prompt.CursorEnd()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// handlePromptSubmit runs a submitted prompt line.
func (m Model) handlePromptSubmit(value string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(value) == "" {
		return m, nil
	}
	cmd, err := input.ParsePrompt(value)
	if err != nil {
		m.setError(err)
		return m, nil
	}

	switch cmd.Verb {
	case input.VerbLoad:
		m.loading = true
		m.statusMsg = "Loading " + cmd.Path + "..."
		m.statusError = false
		return m, commands.LoadFile(cmd.Path, cmd.Options)

	case input.VerbInsert:
		ins, err := m.session.InsertLines(cmd.Axis)
		if err != nil {
			return m, m.statusFor(err)
		}
		return m, commands.Status("Inserted " + view.FormatCount(ins.Count(), axisNoun(cmd.Axis)))

	case input.VerbDelete:
		return m.requestDelete(cmd.Axis)

	case input.VerbGoto:
		ext := m.session.Extent()
		if cmd.Col >= ext.Cols || cmd.Row >= ext.Rows {
			m.setError(fmt.Errorf("%w: %s is outside the grid", input.ErrUsage, cells.Key{Col: cmd.Col, Row: cmd.Row}.Name()))
			return m, nil
		}
		coord := m.session.Selection()
		coord.SelectCell(cmd.Col, cmd.Row)
		coord.EnsureCellVisible(cmd.Col, cmd.Row)
		return m, nil

	case input.VerbUndo:
		return m.undo()
	case input.VerbRedo:
		return m.redo()
	case input.VerbQuit:
		return m, tea.Quit
	}
	return m, nil
}

// requestDelete deletes the selected lines, asking first when they hold data.
func (m Model) requestDelete(axis grid.Axis) (tea.Model, tea.Cmd) {
	span, ok := m.session.Selection().Target(axis)
	if !ok || span.Len() == 0 {
		return m, m.statusFor(session.ErrNoTarget)
	}

	all := grid.Range{Start: 1, End: m.session.Extent().Len(axis)}
	cols, rows := span, all
	if axis == grid.Rows {
		cols, rows = all, span
	}
	populated := len(m.session.Store().EntriesIn(cols, rows))
	if populated == 0 {
		return m.deleteLines(axis)
	}

	m.pending = pendingDelete{axis: axis, span: span, cells: populated}
	LogModeChange(m.mode, ModeModal, "confirm_delete")
	m.mode = ModeModal
	m.modalType = ModalConfirmDelete
	return m, nil
}

func (m Model) deleteLines(axis grid.Axis) (tea.Model, tea.Cmd) {
	del, err := m.session.DeleteLines(axis)
	if err != nil {
		if errors.Is(err, session.ErrNoTarget) {
			return m, m.statusFor(err)
		}
		m.setError(err)
		return m, nil
	}
	return m, commands.Status("Deleted " + view.FormatCount(del.Count(), axisNoun(axis)))
}

func axisNoun(axis grid.Axis) string {
	if axis == grid.Columns {
		return "column"
	}
	return "row"
}

// handleModalKeys handles keys in modal mode.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	case ModalImportSummary:
		return m.handleImportSummaryKeys(msg)
	default:
		switch msg.String() {
		case "esc", "f1", "?", "q", "enter":
			m.closeModal("modal_closed")
		}
	}
	return m, nil
}

func (m *Model) closeModal(reason string) {
	LogModeChange(m.mode, ModeNormal, reason)
	m.mode = ModeNormal
	m.modalType = ModalNone
}

// handleConfirmDeleteKeys handles keys in the confirm delete modal.
func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.pending = pendingDelete{}
		m.closeModal("delete_cancelled")
		return m, nil

	case "enter", "y":
		axis := m.pending.axis
		m.pending = pendingDelete{}
		m.closeModal("delete_confirmed")
		return m.deleteLines(axis)
	}
	return m, nil
}

// handleImportSummaryKeys handles keys in the import summary modal.
func (m Model) handleImportSummaryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.closeModal("import_acknowledged")
		return m, nil
	case "u":
		if m.lastImport == nil || m.lastImport.Dropped == 0 {
			return m, nil
		}
		m.closeModal("import_undone")
		m.lastImport, m.importMeta = nil, nil
		return m.undo()
	}
	return m, nil
}
