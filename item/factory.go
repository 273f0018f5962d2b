// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package item

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/annotate/tool"
)

// Factory creates items styled from a tool configuration provider and
// numbers markers sequentially.
type Factory struct {
	provider   tool.Provider
	nextNumber int
}

// NewFactory returns a factory reading styles from p.
func NewFactory(p tool.Provider) *Factory {
	return &Factory{provider: p, nextNumber: 1}
}

// Properties snapshots the configured style of k. Markers and arrows are
// always filled so they stay legible whatever the configured fill mode.
func (f *Factory) Properties(k tool.Kind) Properties {
	st := f.provider.Style(k)
	props := Properties{
		Size:            st.Size,
		Color:           st.Color,
		ForegroundColor: st.ForegroundColor,
		Fill:            st.Fill,
	}
	if k == tool.Marker || k == tool.Arrow {
		props.Fill = tool.Fill
	}
	return props
}

// CreateItem returns a new item of kind k starting at pos. The item is not
// added anywhere. It returns nil for tools that do not draw and for Text,
// which needs its content up front; see CreateText.
func (f *Factory) CreateItem(pos gg.Point, k tool.Kind) Item {
	props := f.Properties(k)
	switch k {
	case tool.Pen, tool.Highlighter:
		return NewPath(k, pos, props)
	case tool.Rect, tool.Ellipse, tool.Line, tool.Arrow:
		return NewShape(k, pos, props)
	case tool.Marker:
		m := NewMarker(pos, props, f.nextNumber)
		f.nextNumber++
		return m
	default:
		return nil
	}
}

// CreateText returns a finished text item showing s at pos.
func (f *Factory) CreateText(pos gg.Point, s string) *Text {
	t := NewText(pos, f.Properties(tool.Text), s)
	t.Finish()
	return t
}

// CreateImage returns a finished image item showing img at its natural
// size with the top-left corner at pos.
func (f *Factory) CreateImage(pos gg.Point, img image.Image) *Image {
	i := NewImage(pos, img)
	i.Finish()
	return i
}

// NextNumber returns the number the next marker will get.
func (f *Factory) NextNumber() int {
	return f.nextNumber
}

// Reset restarts marker numbering at 1.
func (f *Factory) Reset() {
	f.nextNumber = 1
}
