// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package geom holds the geometry helpers shared by items and the modifier:
// bounds, rectangle handles, angle snapping and distance queries.
package geom

import (
	"math"

	"github.com/gogpu/gg"
	"gonum.org/v1/gonum/floats"
)

// RectHandleCount is the number of handles on a rectangle: four corners and
// four edge midpoints, clockwise from the top-left corner.
const RectHandleCount = 8

// Bounds returns the axis-aligned bounding rectangle of pts.
// An empty slice yields the zero Rect.
func Bounds(pts []gg.Point) gg.Rect {
	if len(pts) == 0 {
		return gg.Rect{}
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return gg.Rect{
		Min: gg.Pt(floats.Min(xs), floats.Min(ys)),
		Max: gg.Pt(floats.Max(xs), floats.Max(ys)),
	}
}

// Inflate grows r by d on every side.
func Inflate(r gg.Rect, d float64) gg.Rect {
	return gg.Rect{
		Min: gg.Pt(r.Min.X-d, r.Min.Y-d),
		Max: gg.Pt(r.Max.X+d, r.Max.Y+d),
	}
}

// Intersects reports whether a and b overlap, touching edges included.
func Intersects(a, b gg.Rect) bool {
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y
}

// RectHandles returns the handle positions of r.
//
//	0 --- 1 --- 2
//	|           |
//	7           3
//	|           |
//	6 --- 5 --- 4
func RectHandles(r gg.Rect) []gg.Point {
	midX := (r.Min.X + r.Max.X) / 2
	midY := (r.Min.Y + r.Max.Y) / 2
	return []gg.Point{
		gg.Pt(r.Min.X, r.Min.Y),
		gg.Pt(midX, r.Min.Y),
		gg.Pt(r.Max.X, r.Min.Y),
		gg.Pt(r.Max.X, midY),
		gg.Pt(r.Max.X, r.Max.Y),
		gg.Pt(midX, r.Max.Y),
		gg.Pt(r.Min.X, r.Max.Y),
		gg.Pt(r.Min.X, midY),
	}
}

// MoveRectHandle returns r with the given handle dragged to p, and the
// handle that sits under p once the result is normalized. Dragging a handle
// across the opposite edge flips it, so 4 becomes 6 when the bottom-right
// corner passes the left edge. The returned rectangle is not normalized:
// Min exceeds Max on a flipped axis, which keeps the mirror for ScaleInto.
// It reports false for an unknown handle.
func MoveRectHandle(r gg.Rect, handle int, p gg.Point) (gg.Rect, int, bool) {
	minX, minY, maxX, maxY := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y
	switch handle {
	case 0:
		minX, minY = p.X, p.Y
	case 1:
		minY = p.Y
	case 2:
		maxX, minY = p.X, p.Y
	case 3:
		maxX = p.X
	case 4:
		maxX, maxY = p.X, p.Y
	case 5:
		maxY = p.Y
	case 6:
		minX, maxY = p.X, p.Y
	case 7:
		minX = p.X
	default:
		return r, handle, false
	}
	if minX > maxX {
		handle = flipX[handle]
	}
	if minY > maxY {
		handle = flipY[handle]
	}
	return gg.Rect{Min: gg.Pt(minX, minY), Max: gg.Pt(maxX, maxY)}, handle, true
}

// Handle mirrors across the vertical and horizontal centre lines.
var (
	flipX = [RectHandleCount]int{2, 1, 0, 7, 6, 5, 4, 3}
	flipY = [RectHandleCount]int{6, 5, 4, 3, 2, 1, 0, 7}
)

// ScaleInto maps every point from the rectangle from into the rectangle to,
// in place. to may be inverted on either axis, which mirrors the points. A
// degenerate axis of from is translated instead of scaled.
func ScaleInto(pts []gg.Point, from, to gg.Rect) {
	sx, sy := 1.0, 1.0
	if w := from.Width(); w != 0 {
		sx = to.Width() / w
	}
	if h := from.Height(); h != 0 {
		sy = to.Height() / h
	}
	for i, p := range pts {
		pts[i] = gg.Pt(
			to.Min.X+(p.X-from.Min.X)*sx,
			to.Min.Y+(p.Y-from.Min.Y)*sy,
		)
	}
}

// Translate moves every point by d, in place.
func Translate(pts []gg.Point, d gg.Point) {
	for i := range pts {
		pts[i] = pts[i].Add(d)
	}
}

// SnapAngle returns p rotated about origin onto the nearest multiple of
// step radians. The projected length is kept.
func SnapAngle(origin, p gg.Point, step float64) gg.Point {
	v := p.Sub(origin)
	if v.LengthSquared() == 0 || step <= 0 {
		return p
	}
	angle := math.Round(math.Atan2(v.Y, v.X)/step) * step
	dir := gg.Pt(math.Cos(angle), math.Sin(angle))
	return origin.Add(dir.Mul(v.Dot(dir)))
}

// Square returns the corner opposite origin of the largest square that p
// spans, keeping the drag direction.
func Square(origin, p gg.Point) gg.Point {
	dx, dy := p.X-origin.X, p.Y-origin.Y
	side := math.Max(math.Abs(dx), math.Abs(dy))
	return gg.Pt(origin.X+math.Copysign(side, dx), origin.Y+math.Copysign(side, dy))
}

// SegmentDistance returns the distance from p to the segment ab.
func SegmentDistance(p, a, b gg.Point) float64 {
	ab := b.Sub(a)
	l2 := ab.LengthSquared()
	if l2 == 0 {
		return p.Distance(a)
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/l2))
	return p.Distance(a.Lerp(b, t))
}

// PolylineDistance returns the distance from p to the polyline through pts,
// closing it back to the first point if closed is set. An empty polyline is
// infinitely far away.
func PolylineDistance(p gg.Point, pts []gg.Point, closed bool) float64 {
	switch len(pts) {
	case 0:
		return math.Inf(1)
	case 1:
		return p.Distance(pts[0])
	}
	d := math.Inf(1)
	for i := 1; i < len(pts); i++ {
		d = math.Min(d, SegmentDistance(p, pts[i-1], pts[i]))
	}
	if closed {
		d = math.Min(d, SegmentDistance(p, pts[len(pts)-1], pts[0]))
	}
	return d
}

// EllipsePoints approximates the ellipse inscribed in r with n points.
func EllipsePoints(r gg.Rect, n int) []gg.Point {
	cx, cy := (r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2
	rx, ry := r.Width()/2, r.Height()/2
	pts := make([]gg.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = gg.Pt(cx+rx*math.Cos(a), cy+ry*math.Sin(a))
	}
	return pts
}
