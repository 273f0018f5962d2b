// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package item

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/annotate/internal/geom"
	"github.com/gogpu/annotate/tool"
)

// highlighterOpacity scales the alpha of highlighter strokes.
const highlighterOpacity = 0.5

// snapStep is the angle constrained points snap to.
const snapStep = math.Pi / 4

// Path is a freehand stroke through an ordered list of points.
// It backs the Pen and Highlighter tools.
type Path struct {
	base
}

var _ Item = (*Path)(nil)

// NewPath starts a stroke of the given kind at start.
func NewPath(kind tool.Kind, start gg.Point, props Properties) *Path {
	return &Path{base: newBase(kind, props, start)}
}

// AddPoint appends pos to the stroke. With extend set, the last segment is
// replaced by a straight one snapped to a multiple of 45 degrees.
func (p *Path) AddPoint(pos gg.Point, extend bool) bool {
	if p.finished {
		return false
	}
	if !extend {
		p.points = append(p.points, pos)
		return true
	}
	n := len(p.points)
	if n == 1 {
		p.points = append(p.points, geom.SnapAngle(p.points[0], pos, snapStep))
		return true
	}
	p.points[n-1] = geom.SnapAngle(p.points[n-2], pos, snapStep)
	return true
}

// Len returns the number of points in the stroke.
func (p *Path) Len() int {
	return len(p.points)
}

// Bounds returns the bounding rectangle of the stroke's points.
func (p *Path) Bounds() gg.Rect {
	return geom.Bounds(p.points)
}

// Position returns the top-left corner of Bounds.
func (p *Path) Position() gg.Point {
	return p.Bounds().Min
}

// SetPosition translates the whole stroke.
func (p *Path) SetPosition(pos gg.Point) {
	geom.Translate(p.points, pos.Sub(p.Position()))
}

// HandleCount returns geom.RectHandleCount.
func (p *Path) HandleCount() int {
	return geom.RectHandleCount
}

// PointAt returns a handle on the stroke's bounding rectangle.
func (p *Path) PointAt(handle int) gg.Point {
	if handle < 0 || handle >= geom.RectHandleCount {
		return gg.Point{}
	}
	return geom.RectHandles(p.Bounds())[handle]
}

// SetPointAt drags a bounding-rectangle handle and rescales every point
// proportionally into the new bounds. A handle dragged across the opposite
// edge mirrors the stroke.
func (p *Path) SetPointAt(pt gg.Point, handle int) int {
	old := p.Bounds()
	r, next, ok := geom.MoveRectHandle(old, handle, pt)
	if !ok {
		return handle
	}
	geom.ScaleInto(p.points, old, r)
	return next
}

// Contains reports whether pt lies on the stroke.
func (p *Path) Contains(pt gg.Point) bool {
	return geom.PolylineDistance(pt, p.points, false) <= p.hitSlack()
}

// Render strokes the path with round caps and joins.
func (p *Path) Render(dc *gg.Context) error {
	c := p.props.Color
	if p.kind == tool.Highlighter {
		c.A *= highlighterOpacity
	}
	dc.SetFillBrush(gg.Solid(c))

	if len(p.points) == 1 {
		dc.DrawCircle(p.points[0].X, p.points[0].Y, p.props.Size/2)
		return dc.Fill()
	}

	dc.SetLineWidth(p.props.Size)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.MoveTo(p.points[0].X, p.points[0].Y)
	for _, pt := range p.points[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	return dc.Stroke()
}
