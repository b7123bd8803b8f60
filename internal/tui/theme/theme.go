// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// hasDarkBackground is replaced in tests.
var hasDarkBackground = termenv.HasDarkBackground

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHeader    string `toml:"bg_header"`    // Sticky header row and column
	BgSelection string `toml:"bg_selection"` // Selected cells and lines
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Header labels, hints
	Accent      string `toml:"accent"`       // Title, highlighted headers, borders
	Cursor      string `toml:"cursor"`       // Focused cell
	Warning     string `toml:"warning"`      // Resize guide, errors
	GridLine    string `toml:"grid_line"`    // Column separators
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// "auto" picks mocha or latte from the terminal background.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)
	if name == "auto" {
		name = "latte"
		if hasDarkBackground() {
			name = "mocha"
		}
	}

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		// Fallback to mocha
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

func (t *Theme) applyDefaults() {
	if t.BgHeader == "" {
		t.BgHeader = t.Bg
	}
	if t.BgSelection == "" {
		t.BgSelection = t.Accent
	}
	if t.FgMuted == "" {
		t.FgMuted = t.Fg
	}
	if t.Cursor == "" {
		t.Cursor = t.Accent
	}
	if t.Warning == "" {
		t.Warning = t.Accent
	}
	if t.GridLine == "" {
		t.GridLine = t.BgHeader
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "latte", "auto"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
