// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/annotate"
	"github.com/gogpu/annotate/internal/config"
)

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() {
		annotate.SetLogger(nil)
		resetFlags(rootCmd)
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// resetFlags restores every flag of cmd and its subcommands to its default
// so one test's flags do not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			var vals []string
			if def := strings.Trim(f.DefValue, "[]"); def != "" {
				vals = strings.Split(def, ",")
			}
			_ = sv.Replace(vals)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	writeSolidPNG(t, path, w, h, color.RGBA{255, 255, 255, 255})
}

func writeSolidPNG(t *testing.T, path string, w, h int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	gestures := filepath.Join(dir, "gestures.yaml")
	writePNG(t, in, 60, 40)
	err := os.WriteFile(gestures, []byte(`
steps:
  - tool: rect
  - drag: [[10, 10], [50, 30]]
`), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	stdout, stderr, err := executeCommand(t, "render", "-i", in, "-s", gestures, "-o", out, "--log-level", "debug")
	if err != nil {
		t.Fatalf("render failed: %v, stderr: %s", err, stderr)
	}
	if !strings.Contains(stdout, "wrote "+out+" (60x40, 1 items)") {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "scene reset") {
		t.Errorf("debug log missing scene reset: %s", stderr)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 60, 40) {
		t.Fatalf("output bounds = %v", img.Bounds())
	}
	// The default rectangle style is a red outline.
	r, g, _, _ := img.At(30, 10).RGBA()
	if r < 0xc000 || g > 0x4000 {
		t.Errorf("pixel on the outline = %v, want red", img.At(30, 10))
	}
	if c := color.RGBAModel.Convert(img.At(30, 20)).(color.RGBA); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel inside the outline = %v, want white", c)
	}
}

func TestRenderStamp(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	stamp := filepath.Join(dir, "stamp.png")
	out := filepath.Join(dir, "out.png")
	writePNG(t, in, 60, 40)
	writeSolidPNG(t, stamp, 10, 10, color.RGBA{B: 255, A: 255})

	stdout, stderr, err := executeCommand(t, "render", "-i", in, "--stamp", stamp, "--stamp-at", "40,20", "-o", out)
	if err != nil {
		t.Fatalf("render failed: %v, stderr: %s", err, stderr)
	}
	if !strings.Contains(stdout, "1 items") {
		t.Errorf("stdout = %q", stdout)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if r, _, b, _ := img.At(45, 25).RGBA(); b < 0xc000 || r > 0x4000 {
		t.Errorf("pixel on the stamp = %v, want blue", img.At(45, 25))
	}
	if c := color.RGBAModel.Convert(img.At(20, 10)).(color.RGBA); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel outside the stamp = %v, want white", c)
	}

	if _, _, err := executeCommand(t, "render", "-i", in, "--stamp", stamp, "--stamp-at", "1", "-o", out); err == nil {
		t.Error("--stamp-at with one value accepted")
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := executeCommand(t, "render", "-i", filepath.Join(dir, "missing.png"), "-s", ""); err == nil {
		t.Error("render of a missing image succeeded")
	}
	if _, _, err := executeCommand(t, "render", "-i", filepath.Join(dir, "x.png"), "--log-level", "loud"); err == nil {
		t.Error("invalid log level accepted")
	}
}

func TestConfig(t *testing.T) {
	t.Setenv("ANNOTATE_TOOL", "arrow")

	stdout, _, err := executeCommand(t, "config", "--log-level", "warn")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	var f config.File
	if err := yaml.Unmarshal([]byte(stdout), &f); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, stdout)
	}
	if f.Tool != "arrow" {
		t.Errorf("tool = %q, want arrow", f.Tool)
	}
	if got := f.Tools["highlighter"].Color; got != "#ffff00ff" {
		t.Errorf("highlighter color = %q, want #ffff00ff", got)
	}
}
