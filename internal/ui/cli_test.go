package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/gridline/internal/config"
	"github.com/javiermolinar/gridline/internal/importer"
)

const peopleJSON = `[{"name":"Ada","age":36},{"name":"Grace","age":45}]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	DisableColor()
	t.Cleanup(EnableColor)

	var out bytes.Buffer
	app.root.SetOut(&out)
	app.root.SetErr(&out)
	app.root.SetArgs(args)
	err := app.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, NewApp(config.Default()), "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	want := "gridline " + Version + " (commit: " + Commit + ")\n"
	if out != want {
		t.Errorf("version output = %q, want %q", out, want)
	}
}

func TestNewAppNilConfig(t *testing.T) {
	app := NewApp(nil)
	if app.config == nil || app.config.Grid.Rows != config.Default().Grid.Rows {
		t.Error("NewApp(nil) should fall back to the default config")
	}
}

func TestRootFlags(t *testing.T) {
	app := NewApp(config.Default())
	if err := app.root.ParseFlags([]string{"--load", "data.xlsx", "--sheet", "Q3", "--limit", "10", "--debug"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if app.loadPath != "data.xlsx" {
		t.Errorf("loadPath = %q", app.loadPath)
	}
	want := importer.Options{Sheet: "Q3", Limit: 10}
	if app.loadOpts != want {
		t.Errorf("loadOpts = %+v, want %+v", app.loadOpts, want)
	}
	if !app.debug {
		t.Error("--debug not set")
	}
	if got := len(app.modelOptions()); got != 1 {
		t.Errorf("modelOptions() returned %d options, want 1", got)
	}

	if got := NewApp(config.Default()).modelOptions(); got != nil {
		t.Errorf("modelOptions() without --load = %v, want nil", got)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	app := NewApp(config.Default())
	for _, name := range []string{"version", "config", "inspect"} {
		cmd, _, err := app.root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not found: %v", name, err)
		}
	}
}

func TestInspectCmd(t *testing.T) {
	path := writeFile(t, "people.json", peopleJSON)

	out, err := execute(t, NewApp(config.Default()), "inspect", path)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	for _, want := range []string{
		"=== people.json ===",
		"Format:  json",
		"Columns: 2  |  Records: 2  |  Cells: 6",
		"Range:   A1:B3",
		"Preview (2 of 2 records):",
		"1 | name  | age",
		"3 | Grace | 45",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInspectLimitAndPreview(t *testing.T) {
	path := writeFile(t, "people.json", peopleJSON)

	out, err := execute(t, NewApp(config.Default()), "inspect", path, "--limit", "1", "--preview", "0")
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if !strings.Contains(out, "Records: 1") {
		t.Errorf("--limit not applied:\n%s", out)
	}
	if strings.Contains(out, "Preview") {
		t.Errorf("--preview 0 should skip the preview:\n%s", out)
	}
}

func TestInspectErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		want string
	}{
		{"unsupported extension", "notes.txt", "hello", "unsupported import format"},
		{"malformed json", "bad.json", "[{", "invalid import data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.body)
			_, err := execute(t, NewApp(config.Default()), "inspect", path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestPreviewLinesElidesColumns(t *testing.T) {
	DisableColor()
	defer EnableColor()

	res, err := importer.JSON([]byte(peopleJSON), 0)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	lines := previewLines(res, 2, 10)
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %q", len(lines), lines)
	}
	if lines[0] != "  | A     +1" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "1 | name" {
		t.Errorf("first row = %q", lines[1])
	}
}

func TestPreviewLinesTruncatesWideValues(t *testing.T) {
	DisableColor()
	defer EnableColor()

	res, err := importer.JSON([]byte(`[{"note":"a value that is far too long for one preview column"}]`), 0)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	lines := previewLines(res, 1, 80)
	got := strings.TrimPrefix(lines[2], "2 | ")
	if !strings.HasSuffix(got, "…") || len([]rune(got)) != maxPreviewColWidth {
		t.Errorf("truncated value = %q", got)
	}
}
