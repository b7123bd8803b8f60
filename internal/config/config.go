// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Grid GridConfig `toml:"grid"`
	UI   UIConfig   `toml:"ui"`
}

// GridConfig holds the grid extent and layout. Sizes are logical pixels.
type GridConfig struct {
	Rows         int `toml:"rows"`           // including the header row
	Cols         int `toml:"cols"`           // including the header column
	ColWidth     int `toml:"col_width"`      // default column width
	RowHeight    int `toml:"row_height"`     // default row height
	MinColWidth  int `toml:"min_col_width"`  // resize floor for columns
	MinRowHeight int `toml:"min_row_height"` // resize floor for rows
	ResizeGrab   int `toml:"resize_grab"`    // boundary grab distance
	HistoryLimit int `toml:"history_limit"`  // 0 keeps every undo step
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme      string `toml:"theme"`       // "mocha", "latte", "auto"
	PxPerCol   int    `toml:"px_per_col"`  // logical pixels per terminal column
	PxPerLine  int    `toml:"px_per_line"` // logical pixels per terminal line
	ResizeGrab int    `toml:"resize_grab"` // grab distance used by the TUI
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Rows:         100000,
			Cols:         5000,
			ColWidth:     80,
			RowHeight:    30,
			MinColWidth:  60,
			MinRowHeight: 20,
			ResizeGrab:   8,
			HistoryLimit: 0,
		},
		UI: UIConfig{
			Theme:      "mocha",
			PxPerCol:   8,
			PxPerLine:  15,
			ResizeGrab: 4,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "gridline", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{"GRIDLINE_ROWS", &cfg.Grid.Rows},
		{"GRIDLINE_COLS", &cfg.Grid.Cols},
		{"GRIDLINE_HISTORY_LIMIT", &cfg.Grid.HistoryLimit},
	}
	for _, o := range ints {
		v := os.Getenv(o.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parsing %s: %w", o.name, err)
		}
		*o.dst = n
	}

	if v := os.Getenv("GRIDLINE_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	g := c.Grid
	if g.Rows < 2 {
		return fmt.Errorf("rows must be at least 2 (header plus one data row), got %d", g.Rows)
	}
	if g.Cols < 2 {
		return fmt.Errorf("cols must be at least 2 (header plus one data column), got %d", g.Cols)
	}
	if g.MinColWidth <= 0 || g.MinRowHeight <= 0 {
		return errors.New("min_col_width and min_row_height must be positive")
	}
	if g.ColWidth < g.MinColWidth {
		return fmt.Errorf("col_width %d is below min_col_width %d", g.ColWidth, g.MinColWidth)
	}
	if g.RowHeight < g.MinRowHeight {
		return fmt.Errorf("row_height %d is below min_row_height %d", g.RowHeight, g.MinRowHeight)
	}
	if g.ResizeGrab <= 0 {
		return errors.New("grid resize_grab must be positive")
	}
	if g.HistoryLimit < 0 {
		return errors.New("history_limit must not be negative")
	}

	if !isValidTheme(c.UI.Theme) {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}
	if c.UI.PxPerCol <= 0 || c.UI.PxPerLine <= 0 {
		return errors.New("px_per_col and px_per_line must be positive")
	}
	if c.UI.ResizeGrab <= 0 {
		return errors.New("ui resize_grab must be positive")
	}
	return nil
}

var validThemes = map[string]bool{
	"mocha": true,
	"latte": true,
	"auto":  true,
}

func isValidTheme(name string) bool {
	return validThemes[strings.ToLower(name)]
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
