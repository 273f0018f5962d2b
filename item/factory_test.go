// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package item

import (
	"image"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/annotate/tool"
)

func TestFactoryPropertiesFromConfiguration(t *testing.T) {
	settings := tool.NewSettings()
	settings.SetSize(tool.Line, 13)
	settings.SetColor(tool.Line, gg.Magenta)
	settings.SetForegroundColor(tool.Marker, gg.Cyan)
	settings.SetFill(tool.Rect, tool.NoFill)
	f := NewFactory(settings)

	if got := f.Properties(tool.Line).Size; got != 13 {
		t.Errorf("Line size = %v, want 13", got)
	}
	if got := f.Properties(tool.Line).Color; got != gg.Magenta {
		t.Errorf("Line color = %v, want magenta", got)
	}
	if got := f.Properties(tool.Marker).ForegroundColor; got != gg.Cyan {
		t.Errorf("Marker foreground = %v, want cyan", got)
	}
	if got := f.Properties(tool.Rect).Fill; got != tool.NoFill {
		t.Errorf("Rect fill = %v, want nofill", got)
	}
}

func TestFactoryForcesFill(t *testing.T) {
	settings := tool.NewSettings()
	for _, k := range tool.Kinds() {
		settings.SetFill(k, tool.NoFill)
	}
	f := NewFactory(settings)

	tests := []struct {
		kind tool.Kind
		want tool.FillType
	}{
		{tool.Marker, tool.Fill},
		{tool.Arrow, tool.Fill},
		{tool.Rect, tool.NoFill},
		{tool.Ellipse, tool.NoFill},
	}
	for _, tt := range tests {
		it := f.CreateItem(gg.Pt(0, 0), tt.kind)
		if got := it.Properties().Fill; got != tt.want {
			t.Errorf("%v item fill = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestFactoryPropertiesAreSnapshots(t *testing.T) {
	settings := tool.NewSettings()
	settings.SetSize(tool.Pen, 4)
	f := NewFactory(settings)
	it := f.CreateItem(gg.Pt(1, 1), tool.Pen)

	settings.SetSize(tool.Pen, 40)
	settings.SetColor(tool.Pen, gg.Blue)

	if got := it.Properties().Size; got != 4 {
		t.Errorf("item size followed configuration: got %v, want 4", got)
	}
	if got := it.Properties().Color; got != tool.DefaultStyle(tool.Pen).Color {
		t.Errorf("item color followed configuration: got %v", got)
	}
}

func TestFactoryCreateItemVariants(t *testing.T) {
	f := NewFactory(tool.NewSettings())
	pos := gg.Pt(3, 4)

	for _, k := range []tool.Kind{tool.Pen, tool.Highlighter} {
		if _, ok := f.CreateItem(pos, k).(*Path); !ok {
			t.Errorf("CreateItem(%v) is not a *Path", k)
		}
	}
	for _, k := range []tool.Kind{tool.Rect, tool.Ellipse, tool.Line, tool.Arrow} {
		if _, ok := f.CreateItem(pos, k).(*Shape); !ok {
			t.Errorf("CreateItem(%v) is not a *Shape", k)
		}
	}
	if _, ok := f.CreateItem(pos, tool.Marker).(*Marker); !ok {
		t.Error("CreateItem(marker) is not a *Marker")
	}
	for _, k := range []tool.Kind{tool.Select, tool.Text, tool.Image} {
		if it := f.CreateItem(pos, k); it != nil {
			t.Errorf("CreateItem(%v) = %T, want nil", k, it)
		}
	}
}

func TestFactoryCreateTextAndImage(t *testing.T) {
	settings := tool.NewSettings()
	settings.SetColor(tool.Text, gg.Blue)
	f := NewFactory(settings)

	txt := f.CreateText(gg.Pt(5, 5), "hello")
	if !txt.Finished() || txt.Content() != "hello" || txt.Kind() != tool.Text {
		t.Errorf("CreateText = %+v", txt)
	}
	if txt.Properties().Color != gg.Blue {
		t.Errorf("text color = %v, want blue", txt.Properties().Color)
	}

	img := f.CreateImage(gg.Pt(5, 5), image.NewRGBA(image.Rect(0, 0, 8, 4)))
	if !img.Finished() || img.Bounds().Max != gg.Pt(13, 9) {
		t.Errorf("CreateImage bounds = %v, finished = %v", img.Bounds(), img.Finished())
	}
	if f.NextNumber() != 1 {
		t.Errorf("NextNumber() = %d, want 1", f.NextNumber())
	}
}

func TestFactoryItemsHaveDistinctIDs(t *testing.T) {
	f := NewFactory(tool.NewSettings())
	a := f.CreateItem(gg.Pt(0, 0), tool.Rect)
	b := f.CreateItem(gg.Pt(0, 0), tool.Rect)
	if a.ID() == b.ID() {
		t.Errorf("items share ID %v", a.ID())
	}
}

func TestFactoryMarkerNumbering(t *testing.T) {
	f := NewFactory(tool.NewSettings())
	for want := 1; want <= 3; want++ {
		m := f.CreateItem(gg.Pt(0, 0), tool.Marker).(*Marker)
		if m.Number() != want {
			t.Errorf("marker number = %d, want %d", m.Number(), want)
		}
	}
	// Other tools do not consume numbers.
	f.CreateItem(gg.Pt(0, 0), tool.Rect)
	if got := f.NextNumber(); got != 4 {
		t.Errorf("NextNumber() = %d, want 4", got)
	}

	f.Reset()
	if m := f.CreateItem(gg.Pt(0, 0), tool.Marker).(*Marker); m.Number() != 1 {
		t.Errorf("after Reset marker number = %d, want 1", m.Number())
	}
}
