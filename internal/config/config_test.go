// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/annotate/tool"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if s.Tool() != tool.Pen {
		t.Errorf("Tool() = %v, want pen", s.Tool())
	}
	for _, k := range tool.Kinds() {
		if got, want := s.Style(k), tool.DefaultStyle(k); got != want {
			t.Errorf("Style(%v) = %+v, want %+v", k, got, want)
		}
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "annotate.yaml", `
tool: rect
tools:
  rect:
    size: 4
    color: "#00ff00"
    fill: fill
  marker:
    foreground: "#000"
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Tool() != tool.Rect {
		t.Errorf("Tool() = %v, want rect", s.Tool())
	}
	rect := s.Style(tool.Rect)
	if rect.Size != 4 || rect.Color != (gg.RGBA{G: 1, A: 1}) || rect.Fill != tool.Fill {
		t.Errorf("Style(rect) = %+v", rect)
	}
	marker := s.Style(tool.Marker)
	if marker.ForegroundColor != (gg.RGBA{A: 1}) {
		t.Errorf("marker foreground = %+v, want black", marker.ForegroundColor)
	}
	if marker.Color != tool.DefaultStyle(tool.Marker).Color {
		t.Errorf("marker color = %+v, want default", marker.Color)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "annotate.json", `{"tool": "arrow", "tools": {"arrow": {"size": 2}}}`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Tool() != tool.Arrow || s.Style(tool.Arrow).Size != 2 {
		t.Errorf("Tool() = %v, size = %v", s.Tool(), s.Style(tool.Arrow).Size)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ANNOTATE_TOOL", "ellipse")
	t.Setenv("ANNOTATE_TOOLS_PEN_SIZE", "7")

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Tool() != tool.Ellipse {
		t.Errorf("Tool() = %v, want ellipse", s.Tool())
	}
	if got := s.Style(tool.Pen).Size; got != 7 {
		t.Errorf("pen size = %v, want 7", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown tool", "tool: brush\n"},
		{"unknown tool section", "tools:\n  brush:\n    size: 2\n"},
		{"bad color", "tools:\n  pen:\n    color: \"#zzz\"\n"},
		{"bad fill", "tools:\n  rect:\n    fill: striped\n"},
		{"negative size", "tools:\n  line:\n    size: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "annotate.yaml", tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Load() succeeded")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) succeeded")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    gg.RGBA
		wantErr bool
	}{
		{"#ff0000", gg.RGBA{R: 1, A: 1}, false},
		{"00f", gg.RGBA{B: 1, A: 1}, false},
		{"#ffffff00", gg.RGBA{R: 1, G: 1, B: 1}, false},
		{"#12345", gg.RGBA{}, true},
		{"#gggggg", gg.RGBA{}, true},
		{"", gg.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, %v; want %+v", tt.in, got, err, tt.want)
		}
	}
}

func TestFormatColorRoundTrip(t *testing.T) {
	for _, c := range []gg.RGBA{gg.Red, gg.White, gg.Yellow, {R: 0.2, G: 0.4, B: 0.6, A: 0.8}} {
		got, err := ParseColor(FormatColor(c))
		if err != nil {
			t.Fatalf("ParseColor(FormatColor(%+v)) error = %v", c, err)
		}
		if FormatColor(got) != FormatColor(c) {
			t.Errorf("round trip of %+v gave %+v", c, got)
		}
	}
}

func TestFromSettingsRoundTrip(t *testing.T) {
	s := tool.NewSettings()
	s.SetTool(tool.Marker)
	s.SetColor(tool.Marker, gg.Blue)
	s.SetFill(tool.Rect, tool.Fill)

	f := FromSettings(s)
	got, err := f.Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	if got.Tool() != tool.Marker {
		t.Errorf("Tool() = %v, want marker", got.Tool())
	}
	for _, k := range tool.Kinds() {
		if got.Style(k) != s.Style(k) {
			t.Errorf("Style(%v) = %+v, want %+v", k, got.Style(k), s.Style(k))
		}
	}
}
