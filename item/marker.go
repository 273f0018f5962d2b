// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package item

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/annotate/tool"
)

// minMarkerRadius keeps badges legible at tiny sizes.
const minMarkerRadius = 8.0

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

// defaultFont returns the shared font used for badge numbers and text
// items.
func defaultFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// Marker is a filled circular badge showing a sequence number.
// Markers move but have no resize handles.
type Marker struct {
	base
	number int
}

var _ Item = (*Marker)(nil)

// NewMarker places badge number n centred on pos.
func NewMarker(pos gg.Point, props Properties, n int) *Marker {
	return &Marker{base: newBase(tool.Marker, props, pos), number: n}
}

// Number returns the badge's sequence number.
func (m *Marker) Number() int {
	return m.number
}

// Center returns the centre of the badge.
func (m *Marker) Center() gg.Point {
	return m.points[0]
}

// Radius returns the badge radius derived from the size property.
func (m *Marker) Radius() float64 {
	return max(m.props.Size*2+4, minMarkerRadius)
}

// AddPoint ignores pos; a badge is complete once placed.
func (m *Marker) AddPoint(gg.Point, bool) bool {
	return false
}

// Bounds returns the square enclosing the badge.
func (m *Marker) Bounds() gg.Rect {
	r := m.Radius()
	c := m.points[0]
	return gg.Rect{Min: gg.Pt(c.X-r, c.Y-r), Max: gg.Pt(c.X+r, c.Y+r)}
}

// Position returns the top-left corner of Bounds.
func (m *Marker) Position() gg.Point {
	return m.Bounds().Min
}

// SetPosition moves the badge so its bounds start at pos.
func (m *Marker) SetPosition(pos gg.Point) {
	m.points[0] = m.points[0].Add(pos.Sub(m.Position()))
}

// HandleCount returns 0.
func (m *Marker) HandleCount() int { return 0 }

// PointAt returns the zero Point; markers have no handles.
func (m *Marker) PointAt(int) gg.Point { return gg.Point{} }

// SetPointAt does nothing; markers have no handles.
func (m *Marker) SetPointAt(_ gg.Point, handle int) int { return handle }

// Contains reports whether p lies within the badge.
func (m *Marker) Contains(p gg.Point) bool {
	return p.Distance(m.points[0]) <= m.Radius()+HitTolerance
}

// Render draws the badge disc in Color and the number in ForegroundColor.
func (m *Marker) Render(dc *gg.Context) error {
	c, r := m.points[0], m.Radius()
	dc.SetFillBrush(gg.Solid(m.props.Color))
	dc.DrawCircle(c.X, c.Y, r)
	if m.filled() {
		if err := dc.Fill(); err != nil {
			return err
		}
	} else {
		dc.SetLineWidth(max(m.props.Size/2, 1))
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	src, err := defaultFont()
	if err != nil {
		return fmt.Errorf("item: marker font: %w", err)
	}
	dc.SetFont(src.Face(r))
	dc.SetFillBrush(gg.Solid(m.props.ForegroundColor))
	dc.DrawStringAnchored(strconv.Itoa(m.number), c.X, c.Y, 0.5, 0.5)
	return nil
}
