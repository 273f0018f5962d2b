// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package item

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/annotate/internal/geom"
	"github.com/gogpu/annotate/tool"
)

const (
	ellipseSegments = 64
	minArrowHead    = 12.0
)

// Shape is a primitive defined by two points: the corners of a rectangle or
// ellipse, or the ends of a line or arrow.
type Shape struct {
	base
}

var _ Item = (*Shape)(nil)

// NewShape starts a shape of the given kind with both points at start.
func NewShape(kind tool.Kind, start gg.Point, props Properties) *Shape {
	return &Shape{base: newBase(kind, props, start, start)}
}

// lineLike reports whether the shape is handled by its two end points
// rather than by its bounding rectangle.
func (s *Shape) lineLike() bool {
	return s.kind == tool.Line || s.kind == tool.Arrow
}

// Start returns the first defining point.
func (s *Shape) Start() gg.Point { return s.points[0] }

// End returns the second defining point.
func (s *Shape) End() gg.Point { return s.points[1] }

// AddPoint moves the end point to pos. With extend set, rectangles and
// ellipses become squares and circles, and lines snap to 45 degrees.
func (s *Shape) AddPoint(pos gg.Point, extend bool) bool {
	if s.finished {
		return false
	}
	if extend {
		if s.lineLike() {
			pos = geom.SnapAngle(s.points[0], pos, snapStep)
		} else {
			pos = geom.Square(s.points[0], pos)
		}
	}
	s.points[1] = pos
	return true
}

// Bounds returns the rectangle spanned by the two defining points.
func (s *Shape) Bounds() gg.Rect {
	return gg.NewRect(s.points[0], s.points[1])
}

// Position returns the top-left corner of Bounds.
func (s *Shape) Position() gg.Point {
	return s.Bounds().Min
}

// SetPosition translates both defining points.
func (s *Shape) SetPosition(pos gg.Point) {
	geom.Translate(s.points, pos.Sub(s.Position()))
}

// HandleCount returns 2 for lines and arrows and geom.RectHandleCount
// otherwise.
func (s *Shape) HandleCount() int {
	if s.lineLike() {
		return 2
	}
	return geom.RectHandleCount
}

// PointAt returns the position of a handle.
func (s *Shape) PointAt(handle int) gg.Point {
	if handle < 0 || handle >= s.HandleCount() {
		return gg.Point{}
	}
	if s.lineLike() {
		return s.points[handle]
	}
	return geom.RectHandles(s.Bounds())[handle]
}

// SetPointAt drags a handle to p. Rectangles and ellipses are normalized
// so the first point is the top-left corner afterwards.
func (s *Shape) SetPointAt(p gg.Point, handle int) int {
	if s.lineLike() {
		if handle == 0 || handle == 1 {
			s.points[handle] = p
		}
		return handle
	}
	r, next, ok := geom.MoveRectHandle(s.Bounds(), handle, p)
	if !ok {
		return handle
	}
	r = gg.NewRect(r.Min, r.Max)
	s.points[0], s.points[1] = r.Min, r.Max
	return next
}

// Contains reports whether p hits the shape. Filled rectangles and ellipses
// hit on their interior, everything else on its outline.
func (s *Shape) Contains(p gg.Point) bool {
	slack := s.hitSlack()
	switch s.kind {
	case tool.Line:
		return geom.SegmentDistance(p, s.points[0], s.points[1]) <= slack
	case tool.Arrow:
		if geom.SegmentDistance(p, s.points[0], s.points[1]) <= slack {
			return true
		}
		head, ok := s.arrowHead()
		return ok && s.outline(head).Contains(p)
	case tool.Ellipse:
		r := s.Bounds()
		if s.filled() && s.ellipsePath(r).Contains(p) {
			return true
		}
		return geom.PolylineDistance(p, geom.EllipsePoints(r, ellipseSegments), true) <= slack
	default:
		r := s.Bounds()
		if s.filled() && r.Contains(p) {
			return true
		}
		return geom.PolylineDistance(p, rectCorners(r), true) <= slack
	}
}

// Render draws the shape, filling it when the fill mode asks for it.
func (s *Shape) Render(dc *gg.Context) error {
	dc.SetFillBrush(gg.Solid(s.props.Color))
	dc.SetLineWidth(s.props.Size)
	dc.SetLineJoin(gg.LineJoinMiter)

	r := s.Bounds()
	switch s.kind {
	case tool.Line:
		dc.SetLineCap(gg.LineCapRound)
		dc.DrawLine(s.points[0].X, s.points[0].Y, s.points[1].X, s.points[1].Y)
		return dc.Stroke()
	case tool.Arrow:
		return s.renderArrow(dc)
	case tool.Ellipse:
		dc.DrawEllipse((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2, r.Width()/2, r.Height()/2)
	default:
		dc.DrawRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
	}
	if s.filled() {
		return dc.Fill()
	}
	return dc.Stroke()
}

func (s *Shape) renderArrow(dc *gg.Context) error {
	start, end := s.points[0], s.points[1]
	head, ok := s.arrowHead()
	if !ok {
		dc.DrawCircle(end.X, end.Y, s.props.Size/2)
		return dc.Fill()
	}

	// The shaft stops at the base of the head so a wide stroke does not
	// poke through the tip.
	base := head[1].Lerp(head[2], 0.5)
	dc.SetLineCap(gg.LineCapButt)
	dc.DrawLine(start.X, start.Y, base.X, base.Y)
	if err := dc.Stroke(); err != nil {
		return err
	}

	dc.MoveTo(head[0].X, head[0].Y)
	dc.LineTo(head[1].X, head[1].Y)
	dc.LineTo(head[2].X, head[2].Y)
	dc.ClosePath()
	if s.filled() {
		return dc.Fill()
	}
	return dc.Stroke()
}

// arrowHead returns the tip and the two base corners of the arrow head. It
// reports false for a zero-length arrow.
func (s *Shape) arrowHead() ([3]gg.Point, bool) {
	start, end := s.points[0], s.points[1]
	shaft := end.Sub(start)
	length := shaft.Length()
	if length == 0 {
		return [3]gg.Point{}, false
	}
	headLen := math.Min(math.Max(s.props.Size*4, minArrowHead), length)
	dir := shaft.Div(length)
	normal := gg.Pt(-dir.Y, dir.X).Mul(headLen / 2)
	base := end.Sub(dir.Mul(headLen))
	return [3]gg.Point{end, base.Add(normal), base.Sub(normal)}, true
}

func (s *Shape) outline(pts [3]gg.Point) *gg.Path {
	p := gg.NewPath()
	p.MoveTo(pts[0].X, pts[0].Y)
	p.LineTo(pts[1].X, pts[1].Y)
	p.LineTo(pts[2].X, pts[2].Y)
	p.Close()
	return p
}

func (s *Shape) ellipsePath(r gg.Rect) *gg.Path {
	p := gg.NewPath()
	p.Ellipse((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2, r.Width()/2, r.Height()/2)
	return p
}

func rectCorners(r gg.Rect) []gg.Point {
	return []gg.Point{
		r.Min,
		gg.Pt(r.Max.X, r.Min.Y),
		r.Max,
		gg.Pt(r.Min.X, r.Max.Y),
	}
}
