// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gridline/internal/importer"
)

// loadTimeout bounds a single import.
const loadTimeout = 2 * time.Minute

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// ImportedMsg is sent when an import source has been parsed.
type ImportedMsg struct {
	Result *importer.Result
}

// CopiedMsg is sent after the selection was written to the clipboard.
type CopiedMsg struct {
	Lines int
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadFile parses an import source off the update loop.
func LoadFile(path string, opts importer.Options) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		res, err := importer.LoadFile(ctx, path, opts)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading %s: %w", path, err)}
		}
		return ImportedMsg{Result: res}
	}
}

// CopyToClipboard writes TSV text to the system clipboard.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying selection: %w", err)}
		}
		return CopiedMsg{Lines: countLines(text)}
	}
}

// Status returns a command that emits a status message.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := 1
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			n++
		}
	}
	return n
}
