// Package tui provides the terminal user interface for gridline.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gridline/internal/config"
	"github.com/javiermolinar/gridline/internal/grid"
	"github.com/javiermolinar/gridline/internal/history"
	"github.com/javiermolinar/gridline/internal/importer"
	"github.com/javiermolinar/gridline/internal/selection"
	"github.com/javiermolinar/gridline/internal/session"
	"github.com/javiermolinar/gridline/internal/tui/commands"
	"github.com/javiermolinar/gridline/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEdit        // In-place cell edit; nothing is stored until commit
	ModePrompt
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalHelp
	ModalConfirmDelete
	ModalImportSummary
)

// pendingDelete is a delete waiting for confirmation.
type pendingDelete struct {
	axis  grid.Axis
	span  grid.Range
	cells int
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config  *config.Config
	session *session.Session

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	mode       Mode
	modalType  ModalType
	hover      selection.Cursor
	pxPerCol   int
	pxPerLine  int
	loading    bool
	loadPath   string
	loadOpts   importer.Options
	lastImport *session.ImportReport
	importMeta *importer.Result
	pending    pendingDelete

	// Components
	prompt textinput.Model
	editor textinput.Model

	// Terminal dimensions and layout
	width       int
	height      int
	layoutCache LayoutCache

	// Messages
	statusMsg   string    // Temporary status/error message
	statusError bool      // statusMsg reports a failure
	statusTime  time.Time // When to clear message

	// Error state
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithLoad imports path as soon as the program starts.
func WithLoad(path string, opts importer.Options) ModelOption {
	return func(m *Model) {
		m.loadPath = path
		m.loadOpts = opts
	}
}

// WithSession replaces the session built from the config.
func WithSession(s *session.Session) ModelOption {
	return func(m *Model) {
		m.session = s
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	prompt := textinput.New()
	prompt.Placeholder = "load data.json, insert rows, goto B12 ..."
	prompt.Prompt = ""

	editor := textinput.New()
	editor.Prompt = ""
	editor.CharLimit = 4096

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}

	// Create styles from theme
	styles := NewStyles(t)

	editor.TextStyle = styles.InputTextStyle
	editor.Cursor.Style = styles.InputCursorStyle
	editor.Cursor.TextStyle = styles.InputTextStyle

	sessOpts := session.OptionsFromConfig(cfg)
	sessOpts.ResizeGrab = cfg.UI.ResizeGrab

	m := &Model{
		config:    cfg,
		theme:     t,
		styles:    styles,
		mode:      ModeNormal,
		prompt:    prompt,
		editor:    editor,
		pxPerCol:  max(1, cfg.UI.PxPerCol),
		pxPerLine: max(1, cfg.UI.PxPerLine),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.session == nil {
		m.session = session.New(sessOpts)
	}
	if m.session.Selection().ActiveKind() == selection.KindNone {
		m.session.Selection().SelectCell(1, 1)
	}
	m.session.Observe(func(a session.Action, cmd history.Command) {
		LogCommand(a, cmd)
	})
	m.layoutCache = m.buildLayoutCache(0, 0)

	return m
}

// Session returns the grid session driven by the model.
func (m Model) Session() *session.Session {
	return m.session
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.loadPath == "" {
		return nil
	}
	return commands.LoadFile(m.loadPath, m.loadOpts)
}

// Run starts the TUI.
func Run(cfg *config.Config, opts ...ModelOption) error {
	return RunWithDebug(cfg, false, opts...)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, debug bool, opts ...ModelOption) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(cfg, opts...)
	if model.loadPath != "" {
		model.loading = true
	}
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
