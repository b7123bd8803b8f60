package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Grid.Rows != 100000 {
		t.Errorf("expected rows 100000, got %d", cfg.Grid.Rows)
	}
	if cfg.Grid.Cols != 5000 {
		t.Errorf("expected cols 5000, got %d", cfg.Grid.Cols)
	}
	if cfg.Grid.ColWidth != 80 || cfg.Grid.RowHeight != 30 {
		t.Errorf("expected 80x30 default lines, got %dx%d", cfg.Grid.ColWidth, cfg.Grid.RowHeight)
	}
	if cfg.Grid.MinColWidth != 60 || cfg.Grid.MinRowHeight != 20 {
		t.Errorf("expected minimums 60/20, got %d/%d", cfg.Grid.MinColWidth, cfg.Grid.MinRowHeight)
	}
	if cfg.Grid.ResizeGrab != 8 {
		t.Errorf("expected grid resize_grab 8, got %d", cfg.Grid.ResizeGrab)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Grid.Rows != Default().Grid.Rows {
		t.Errorf("expected default rows, got %d", cfg.Grid.Rows)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[grid]
rows = 500
cols = 40
col_width = 100
history_limit = 50

[ui]
theme = "latte"
px_per_col = 10
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Grid.Rows != 500 || cfg.Grid.Cols != 40 {
		t.Errorf("expected 40x500 grid, got %dx%d", cfg.Grid.Cols, cfg.Grid.Rows)
	}
	if cfg.Grid.ColWidth != 100 {
		t.Errorf("expected col_width 100, got %d", cfg.Grid.ColWidth)
	}
	if cfg.Grid.HistoryLimit != 50 {
		t.Errorf("expected history_limit 50, got %d", cfg.Grid.HistoryLimit)
	}
	// Keys missing from the file keep their defaults
	if cfg.Grid.RowHeight != 30 {
		t.Errorf("expected default row_height 30, got %d", cfg.Grid.RowHeight)
	}
	if cfg.UI.Theme != "latte" || cfg.UI.PxPerCol != 10 || cfg.UI.PxPerLine != 15 {
		t.Errorf("unexpected ui config: %+v", cfg.UI)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[grid\nrows = "), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[grid]
rows = 500
cols = 40
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("GRIDLINE_ROWS", "1000")
	t.Setenv("GRIDLINE_THEME", "auto")
	t.Setenv("GRIDLINE_HISTORY_LIMIT", " 25 ")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.Grid.Rows != 1000 {
		t.Errorf("expected rows 1000 from env, got %d", cfg.Grid.Rows)
	}
	// File value should be kept when no env override
	if cfg.Grid.Cols != 40 {
		t.Errorf("expected cols 40 from file, got %d", cfg.Grid.Cols)
	}
	if cfg.UI.Theme != "auto" {
		t.Errorf("expected theme auto from env, got %s", cfg.UI.Theme)
	}
	if cfg.Grid.HistoryLimit != 25 {
		t.Errorf("expected history_limit 25 from env, got %d", cfg.Grid.HistoryLimit)
	}
}

func TestLoadFrom_BadEnvValue(t *testing.T) {
	t.Setenv("GRIDLINE_COLS", "many")

	if _, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml")); err == nil {
		t.Error("expected error for non-numeric GRIDLINE_COLS")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"single row", func(c *Config) { c.Grid.Rows = 1 }},
		{"single column", func(c *Config) { c.Grid.Cols = 1 }},
		{"zero min width", func(c *Config) { c.Grid.MinColWidth = 0 }},
		{"width below min", func(c *Config) { c.Grid.ColWidth = 50 }},
		{"height below min", func(c *Config) { c.Grid.RowHeight = 10 }},
		{"no grab", func(c *Config) { c.Grid.ResizeGrab = 0 }},
		{"negative history", func(c *Config) { c.Grid.HistoryLimit = -1 }},
		{"unknown theme", func(c *Config) { c.UI.Theme = "neon" }},
		{"zero px per col", func(c *Config) { c.UI.PxPerCol = 0 }},
		{"zero ui grab", func(c *Config) { c.UI.ResizeGrab = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidate_ThemeCaseInsensitive(t *testing.T) {
	cfg := Default()
	cfg.UI.Theme = "Latte"

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.Grid.Rows = 250
	cfg.Grid.MinColWidth = 40
	cfg.UI.Theme = "latte"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Grid.Rows != 250 {
		t.Errorf("expected rows 250, got %d", loaded.Grid.Rows)
	}
	if loaded.Grid.MinColWidth != 40 {
		t.Errorf("expected min_col_width 40, got %d", loaded.Grid.MinColWidth)
	}
	if loaded.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", loaded.UI.Theme)
	}
}
