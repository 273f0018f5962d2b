// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package item

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/annotate/internal/geom"
	"github.com/gogpu/annotate/tool"
)

const (
	minTextSize = 12.0
	textPadding = 2.0
)

// Text is a label of one or more lines with its top-left corner at the
// item position. Like markers, text moves but has no resize handles; the
// font size follows the size property.
type Text struct {
	base
	content string
	face    text.Face
}

var _ Item = (*Text)(nil)

// NewText places s with its top-left corner at pos. Lines are separated
// by '\n'.
func NewText(pos gg.Point, props Properties, s string) *Text {
	return &Text{base: newBase(tool.Text, props, pos), content: s}
}

// Content returns the label.
func (t *Text) Content() string {
	return t.content
}

// FontSize returns the font size derived from the size property.
func (t *Text) FontSize() float64 {
	return max(t.props.Size*4, minTextSize)
}

func (t *Text) fontFace() (text.Face, error) {
	if t.face != nil {
		return t.face, nil
	}
	src, err := defaultFont()
	if err != nil {
		return nil, err
	}
	t.face = src.Face(t.FontSize())
	return t.face, nil
}

// extent returns the size of the text block without padding.
func (t *Text) extent() (w, h float64) {
	face, err := t.fontFace()
	if err != nil {
		return 0, t.FontSize()
	}
	lines := strings.Split(t.content, "\n")
	for _, l := range lines {
		w = max(w, face.Advance(l))
	}
	return w, float64(len(lines)) * face.Metrics().LineHeight()
}

// AddPoint ignores pos; text is complete once placed.
func (t *Text) AddPoint(gg.Point, bool) bool {
	return false
}

// Bounds returns the padded box around the text.
func (t *Text) Bounds() gg.Rect {
	w, h := t.extent()
	origin := t.points[0]
	return gg.Rect{Min: origin, Max: origin.Add(gg.Pt(w+2*textPadding, h+2*textPadding))}
}

// Position returns the top-left corner of Bounds.
func (t *Text) Position() gg.Point {
	return t.points[0]
}

// SetPosition moves the label so its bounds start at pos.
func (t *Text) SetPosition(pos gg.Point) {
	t.points[0] = pos
}

// HandleCount returns 0.
func (t *Text) HandleCount() int { return 0 }

// PointAt returns the zero Point; text has no handles.
func (t *Text) PointAt(int) gg.Point { return gg.Point{} }

// SetPointAt does nothing; text has no handles.
func (t *Text) SetPointAt(_ gg.Point, handle int) int { return handle }

// Contains reports whether p lies within the text box.
func (t *Text) Contains(p gg.Point) bool {
	return geom.Inflate(t.Bounds(), HitTolerance).Contains(p)
}

// Render draws the text in Color. With Fill set, the box behind it is
// painted in ForegroundColor first.
func (t *Text) Render(dc *gg.Context) error {
	r := t.Bounds()
	if t.filled() {
		dc.SetFillBrush(gg.Solid(t.props.ForegroundColor))
		dc.DrawRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	face, err := t.fontFace()
	if err != nil {
		return fmt.Errorf("item: text font: %w", err)
	}
	m := face.Metrics()
	dc.SetFont(face)
	dc.SetFillBrush(gg.Solid(t.props.Color))
	x := r.Min.X + textPadding
	baseline := r.Min.Y + textPadding + m.Ascent
	for i, l := range strings.Split(t.content, "\n") {
		dc.DrawString(l, x, baseline+float64(i)*m.LineHeight())
	}
	return nil
}
