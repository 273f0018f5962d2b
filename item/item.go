// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package item defines annotation items and the factory that creates them.
//
// Every item implements [Item]. The variants are flat: [Path] for freehand
// strokes, [Shape] for rectangles, ellipses, lines and arrows, [Marker] for
// numbered badges, [Text] for labels and [Image] for pasted pictures. They
// share no behaviour beyond a small embedded struct holding identity,
// properties and points.
//
// An item is built in two phases. While it is being drawn only AddPoint may
// be called; Finish ends that phase and AddPoint is rejected afterwards.
//
// Items are not safe for concurrent use.
package item

import (
	"slices"

	"github.com/gogpu/gg"
	"github.com/google/uuid"

	"github.com/gogpu/annotate/tool"
)

// HitTolerance is the slack, in image pixels, added around strokes and
// outlines when hit-testing.
const HitTolerance = 4.0

// Item is an annotation drawn over the background image.
type Item interface {
	// ID returns the identity assigned at creation.
	ID() uuid.UUID

	// Kind returns the tool that created the item.
	Kind() tool.Kind

	// Properties returns the style snapshot taken at creation.
	Properties() Properties

	// AddPoint extends the item while it is being drawn. extend constrains
	// the new point (45 degree angles, squares). It reports whether the
	// point was taken; finished items reject every point.
	AddPoint(pos gg.Point, extend bool) bool

	// Finish ends the drawing phase.
	Finish()

	// Finished reports whether Finish has been called.
	Finished() bool

	// Position returns the top-left corner of Bounds.
	Position() gg.Point

	// SetPosition translates the item so that Position returns pos.
	SetPosition(pos gg.Point)

	// HandleCount returns the number of resize handles. It never changes.
	HandleCount() int

	// PointAt returns the position of a handle.
	PointAt(handle int) gg.Point

	// SetPointAt drags a handle to p and re-normalizes the geometry. It
	// returns the handle now at p, which differs from handle once the drag
	// crosses the opposite edge. Unknown handles are ignored and returned
	// unchanged.
	SetPointAt(p gg.Point, handle int) int

	// Bounds returns the geometric bounding rectangle, without stroke width.
	Bounds() gg.Rect

	// Contains reports whether p hits the item.
	Contains(p gg.Point) bool

	// Geometry returns a copy of the points that define the item.
	Geometry() Geometry

	// SetGeometry restores points previously returned by Geometry.
	SetGeometry(g Geometry)

	// Cursor returns the idle cursor decoration.
	Cursor() Cursor

	// SetCursor sets the idle cursor decoration.
	SetCursor(c Cursor)

	// Render draws the item.
	Render(dc *gg.Context) error
}

// Properties is the style an item was created with.
type Properties struct {
	Size            float64
	Color           gg.RGBA
	ForegroundColor gg.RGBA
	Fill            tool.FillType
}

// Geometry is a snapshot of the points defining an item.
type Geometry []gg.Point

// Equal reports whether g and other hold the same points.
func (g Geometry) Equal(other Geometry) bool {
	return slices.Equal(g, other)
}

// Cursor is the pointer shape a host should show over an item or handle.
type Cursor uint8

const (
	CursorNone       Cursor = iota // Host default
	CursorMovable                  // Item can be dragged
	CursorResizeNWSE               // Top-left or bottom-right handle
	CursorResizeNESW               // Top-right or bottom-left handle
	CursorResizeNS                 // Top or bottom edge handle
	CursorResizeWE                 // Left or right edge handle
	CursorResize                   // Line end point
)

// base holds the state every variant shares.
type base struct {
	id       uuid.UUID
	kind     tool.Kind
	props    Properties
	points   []gg.Point
	finished bool
	cursor   Cursor
}

func newBase(kind tool.Kind, props Properties, points ...gg.Point) base {
	return base{
		id:     uuid.New(),
		kind:   kind,
		props:  props,
		points: points,
	}
}

func (b *base) ID() uuid.UUID          { return b.id }
func (b *base) Kind() tool.Kind        { return b.kind }
func (b *base) Properties() Properties { return b.props }
func (b *base) Finish()                { b.finished = true }
func (b *base) Finished() bool         { return b.finished }
func (b *base) Cursor() Cursor         { return b.cursor }
func (b *base) SetCursor(c Cursor)     { b.cursor = c }

func (b *base) Geometry() Geometry {
	return slices.Clone(b.points)
}

func (b *base) SetGeometry(g Geometry) {
	b.points = slices.Clone(g)
}

// hitSlack is the distance from a stroke's centre line that still counts
// as a hit.
func (b *base) hitSlack() float64 {
	return b.props.Size/2 + HitTolerance
}

func (b *base) filled() bool {
	return b.props.Fill == tool.Fill
}
