// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
)

type dot struct {
	x, y float64
	err  error
}

func (d dot) Render(dc *gg.Context) error {
	if d.err != nil {
		return d.err
	}
	dc.SetFillBrush(gg.Solid(gg.Blue))
	dc.DrawRectangle(d.x, d.y, 4, 4)
	return dc.Fill()
}

func TestRenderWithoutBackground(t *testing.T) {
	c := New()
	if _, err := c.Render(); !errors.Is(err, ErrNoBackground) {
		t.Errorf("Render() error = %v, want ErrNoBackground", err)
	}
	c.SetBackground(image.NewRGBA(image.Rect(0, 0, 0, 10)))
	if !c.Empty() {
		t.Error("zero-width background accepted")
	}
}

func TestRenderComposesLayers(t *testing.T) {
	bg := image.NewRGBA(image.Rect(0, 0, 20, 20))
	white := color.RGBA{255, 255, 255, 255}
	for i := 0; i < len(bg.Pix); i += 4 {
		copy(bg.Pix[i:], []uint8{white.R, white.G, white.B, white.A})
	}
	c := New()
	c.SetBackground(bg)

	img, err := c.Render(Layers[dot]{{x: 2, y: 2}, {x: 12, y: 12}})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 20, 20) {
		t.Fatalf("Bounds() = %v", img.Bounds())
	}
	tests := []struct {
		x, y int
		blue bool
	}{
		{4, 4, true},
		{14, 14, true},
		{9, 9, false},
	}
	for _, tt := range tests {
		r, _, b, _ := img.At(tt.x, tt.y).RGBA()
		if got := b > 0xf000 && r < 0x1000; got != tt.blue {
			t.Errorf("pixel (%d,%d) blue = %v, want %v", tt.x, tt.y, got, tt.blue)
		}
	}
	if bg.RGBAAt(4, 4) != white {
		t.Error("Render modified the background")
	}
}

func TestRenderWrapsLayerError(t *testing.T) {
	boom := errors.New("boom")
	c := New()
	c.SetBackground(image.NewRGBA(image.Rect(0, 0, 8, 8)))
	_, err := c.Render(dot{}, dot{err: boom})
	if !errors.Is(err, boom) {
		t.Errorf("Render() error = %v, want wrapped boom", err)
	}
}

func TestBoundsOrigin(t *testing.T) {
	c := New()
	c.SetBackground(image.NewRGBA(image.Rect(5, 5, 25, 15)))
	if got := c.Bounds(); got != image.Rect(0, 0, 20, 10) {
		t.Errorf("Bounds() = %v, want 20x10 at origin", got)
	}
}
