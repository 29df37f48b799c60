package msgcat

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaults(t *testing.T) {
	cat, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := cat.Render("report.capture", map[string]any{"Square": "a3", "Kind": "Pawn"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "a3 (Capture Pawn)" {
		t.Fatalf("Render = %q", got)
	}
	if _, err := cat.Render("report.missing", nil); err == nil {
		t.Fatalf("unknown key should error")
	}
}

func TestRenderOrFallback(t *testing.T) {
	cat, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := cat.RenderOr("report.missing", nil, "fallback"); got != "fallback" {
		t.Fatalf("RenderOr = %q", got)
	}
}

func TestOverrideDir(t *testing.T) {
	dir := t.TempDir()
	override := "report:\n  promotion: \"promotes at {{.Move}}\"\n"
	if err := os.WriteFile(filepath.Join(dir, "override.yaml"), []byte(override), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	cat, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := cat.Render("report.promotion", map[string]any{"Move": "a8"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "promotes at a8" {
		t.Fatalf("Render = %q", got)
	}
	// untouched keys keep the embedded default
	if got := cat.RenderOr("report.moves_header", nil, ""); got != "***** AVAILABLE MOVES *****" {
		t.Fatalf("moves_header = %q", got)
	}
}
