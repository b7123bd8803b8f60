package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gridline/internal/history"
	"github.com/javiermolinar/gridline/internal/importer"
	"github.com/javiermolinar/gridline/internal/session"
)

// DebugLogger logs keystrokes, pointer events and grid commands to a file.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "gridline-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		file:    f,
		enabled: true,
	}

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": DebugLogPath,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

func debugEnabled() bool {
	return debugLog != nil && debugLog.enabled
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if !debugEnabled() {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key":  msg.String(),
		"type": int(msg.Type),
	})
}

// LogMouse logs presses and releases. Motion is too chatty to record.
func LogMouse(msg tea.MouseMsg) {
	if !debugEnabled() || msg.Action == tea.MouseActionMotion {
		return
	}
	debugLog.log("MOUSE", map[string]any{
		"event": msg.String(),
		"x":     msg.X,
		"y":     msg.Y,
	})
}

// LogCommand logs a command applied to the grid.
func LogCommand(action session.Action, cmd history.Command) {
	if !debugEnabled() || cmd == nil {
		return
	}
	debugLog.log("COMMAND", map[string]any{
		"action":  action.String(),
		"command": cmd.Describe(),
	})
}

// LogImport logs the outcome of an import.
func LogImport(res *importer.Result, report session.ImportReport, err error) {
	if !debugEnabled() {
		return
	}
	data := map[string]any{
		"cells":   report.Cells,
		"dropped": report.Dropped,
		"changed": report.Changed,
	}
	if res != nil {
		data["source"] = res.Source
		data["format"] = string(res.Format)
	}
	if err != nil {
		data["error"] = err.Error()
	}
	debugLog.log("IMPORT", data)
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	if !debugEnabled() {
		return
	}
	debugLog.log("MODE_CHANGE", map[string]any{
		"from":   from.String(),
		"to":     to.String(),
		"reason": reason,
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if !debugEnabled() || err == nil {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeEdit:
		return "Edit"
	case ModePrompt:
		return "Prompt"
	case ModeModal:
		return "Modal"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}
