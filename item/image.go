// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package item

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/annotate/internal/geom"
	"github.com/gogpu/annotate/tool"
)

// Image is a picture pasted onto the scene. It is scaled into the
// rectangle spanned by its two points and resizes through the eight
// rectangle handles.
type Image struct {
	base
	src image.Image
	buf *gg.ImageBuf
}

var _ Item = (*Image)(nil)

// NewImage places img at its natural size with the top-left corner at pos.
func NewImage(pos gg.Point, img image.Image) *Image {
	b := img.Bounds()
	end := pos.Add(gg.Pt(float64(b.Dx()), float64(b.Dy())))
	return &Image{
		base: newBase(tool.Image, Properties{}, pos, end),
		src:  img,
		buf:  gg.ImageBufFromImage(img),
	}
}

// Source returns the pasted picture.
func (i *Image) Source() image.Image {
	return i.src
}

// AddPoint ignores pos; a pasted image is complete once placed.
func (i *Image) AddPoint(gg.Point, bool) bool {
	return false
}

// Bounds returns the rectangle the picture is drawn into.
func (i *Image) Bounds() gg.Rect {
	return gg.NewRect(i.points[0], i.points[1])
}

// Position returns the top-left corner of Bounds.
func (i *Image) Position() gg.Point {
	return i.Bounds().Min
}

// SetPosition translates the picture.
func (i *Image) SetPosition(pos gg.Point) {
	geom.Translate(i.points, pos.Sub(i.Position()))
}

// HandleCount returns geom.RectHandleCount.
func (i *Image) HandleCount() int {
	return geom.RectHandleCount
}

// PointAt returns the position of a handle.
func (i *Image) PointAt(handle int) gg.Point {
	if handle < 0 || handle >= geom.RectHandleCount {
		return gg.Point{}
	}
	return geom.RectHandles(i.Bounds())[handle]
}

// SetPointAt drags a handle to p. The picture is never mirrored.
func (i *Image) SetPointAt(p gg.Point, handle int) int {
	r, next, ok := geom.MoveRectHandle(i.Bounds(), handle, p)
	if !ok {
		return handle
	}
	r = gg.NewRect(r.Min, r.Max)
	i.points[0], i.points[1] = r.Min, r.Max
	return next
}

// Contains reports whether p lies on the picture.
func (i *Image) Contains(p gg.Point) bool {
	return i.Bounds().Contains(p)
}

// Render draws the picture scaled to Bounds. A picture squashed below one
// pixel is skipped.
func (i *Image) Render(dc *gg.Context) error {
	r := i.Bounds()
	if r.Width() < 1 || r.Height() < 1 {
		return nil
	}
	dc.DrawImageEx(i.buf, gg.DrawImageOptions{
		X:         r.Min.X,
		Y:         r.Min.Y,
		DstWidth:  r.Width(),
		DstHeight: r.Height(),
	})
	return nil
}
