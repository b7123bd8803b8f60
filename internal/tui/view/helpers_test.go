package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderOverlayCenters(t *testing.T) {
	base := strings.Repeat("..........\n", 4) + ".........."
	out := RenderOverlay(base, "ab\ncd", 10, 5, "")

	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("lines = %d, want 5", len(lines))
	}
	want := []string{
		"..........",
		"....ab....",
		"....cd....",
		"..........",
		"..........",
	}
	for i := range want {
		if got := ansi.Strip(lines[i]); got != want[i] {
			t.Errorf("line %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestRenderOverlayEmptyBox(t *testing.T) {
	if got := RenderOverlay("base", "", 10, 2, ""); got != "base" {
		t.Errorf("RenderOverlay() = %q, want base untouched", got)
	}
}

func TestBackgroundSeq(t *testing.T) {
	if BackgroundSeq("") != "" {
		t.Error("empty color should have no sequence")
	}
	if seq := BackgroundSeq("#ff0000"); !strings.HasPrefix(seq, "\x1b[") {
		t.Errorf("BackgroundSeq() = %q, want an escape sequence", seq)
	}
	if got := reapplyBackground("a\x1b[0mb", "X"); got != "a\x1b[0mXb" && got != "a\x1b[mXb" {
		t.Errorf("reapplyBackground() = %q", got)
	}
}
