package tui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gridline/internal/tui/commands"
	"github.com/javiermolinar/gridline/internal/tui/view"
)

const (
	statusTTL = 3 * time.Second
	errorTTL  = 5 * time.Second
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutCache = m.buildLayoutCache(m.width, m.height)
		m.session.SetViewport(m.viewport())
		return m, nil

	case commands.ImportedMsg:
		m.loading = false
		return m.applyImport(msg)

	case commands.CopiedMsg:
		return m, commands.Status("Copied " + view.FormatCount(msg.Lines, "line"))

	case commands.ErrMsg:
		m.loading = false
		m.setError(msg.Err)
		return m, commands.ClearStatusAfter(errorTTL)

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusError = false
		m.statusTime = time.Now().Add(statusTTL)
		return m, commands.ClearStatusAfter(statusTTL)

	case commands.ClearStatusMsg:
		if !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusError = false
		}
		return m, nil
	}

	// Cursor blink and other component messages
	switch m.mode {
	case ModePrompt:
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		cmds = append(cmds, cmd)
	case ModeEdit:
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// applyImport replaces the grid contents with an import result.
func (m Model) applyImport(msg commands.ImportedMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeEdit {
		m.closeEditor("import")
	}
	report, err := m.session.Import(msg.Result)
	LogImport(msg.Result, report, err)
	if err != nil {
		m.setError(err)
		return m, commands.ClearStatusAfter(errorTTL)
	}
	if !report.Changed {
		return m, commands.Status("No changes: " + filepath.Base(msg.Result.Source) + " matches the grid")
	}

	m.lastImport = &report
	m.importMeta = msg.Result
	if m.mode == ModePrompt {
		m.closePrompt()
	}
	LogModeChange(m.mode, ModeModal, "import_summary")
	m.mode = ModeModal
	m.modalType = ModalImportSummary
	m.statusMsg = ""
	return m, nil
}

// setError shows err in the status line.
func (m *Model) setError(err error) {
	LogError("update", err)
	m.err = err
	m.statusMsg = fmt.Sprintf("Error: %v", err)
	m.statusError = true
	m.statusTime = time.Now().Add(errorTTL)
}
