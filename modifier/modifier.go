// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package modifier implements selection and interactive move/resize of
// annotation items.
//
// A Modifier is a small state machine driven by mouse events. Geometry is
// changed live while dragging; only the release turns the drag into a
// [command.Transform] for the undo stack, and only if something moved.
package modifier

import (
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/annotate/command"
	"github.com/gogpu/annotate/internal/geom"
	"github.com/gogpu/annotate/item"
)

// HandleSize is the side of a resize handle square in image pixels.
const HandleSize = 8.0

var (
	selectionColor = gg.Hex("#3daee9")
	handleFill     = gg.White
)

type state uint8

const (
	stateIdle state = iota
	stateMoving
	stateResizing
	stateSelecting
)

// Modifier tracks the selection and drives drags.
type Modifier struct {
	selected []item.Item
	mover    *Mover
	state    state

	// resize target
	resizeItem   item.Item
	resizeHandle int

	// geometry of the dragged items at press time
	before []command.Change

	// rubber band
	bandStart, bandEnd gg.Point

	onSelectionChanged func()
}

// Option configures a Modifier.
type Option func(*Modifier)

// WithSelectionChangedHandler registers fn to be called when the selection
// or its decoration changes.
func WithSelectionChangedHandler(fn func()) Option {
	return func(m *Modifier) { m.onSelectionChanged = fn }
}

// New creates an idle Modifier with an empty selection.
func New(opts ...Option) *Modifier {
	m := &Modifier{mover: NewMover()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// HandleMousePress starts a gesture at pos. items is the scene list in
// paint order. A handle of a selected item starts a resize; an item body
// selects it (added to the selection when additive) and starts a move; a
// miss clears the selection unless additive and starts a rubber band.
func (m *Modifier) HandleMousePress(pos gg.Point, items []item.Item, additive bool) {
	m.endDrag()

	if it, handle, ok := m.HandleAt(pos); ok {
		m.state = stateResizing
		m.resizeItem, m.resizeHandle = it, handle
		m.capture([]item.Item{it})
		return
	}

	hit := ItemAt(items, pos)
	if hit == nil {
		if !additive {
			m.ClearSelection()
		}
		m.state = stateSelecting
		m.bandStart, m.bandEnd = pos, pos
		return
	}

	m.selectItem(hit, additive)
	m.capture(m.selected)
	m.mover.SetOffset(pos, m.selected)
	m.state = stateMoving
}

// HandleMouseMove updates the drag in progress. Nothing is committed.
func (m *Modifier) HandleMouseMove(pos gg.Point) {
	switch m.state {
	case stateMoving:
		m.mover.MoveItems(pos)
	case stateResizing:
		m.resizeHandle = m.resizeItem.SetPointAt(pos, m.resizeHandle)
	case stateSelecting:
		m.bandEnd = pos
	}
}

// HandleMouseRelease ends the gesture. For a move or resize that changed
// any geometry it returns the command describing the edit; a drag that
// ended where it started returns false. A rubber band selects every item
// of items whose bounds it touches.
func (m *Modifier) HandleMouseRelease(items []item.Item) (command.Command, bool) {
	defer m.endDrag()

	switch m.state {
	case stateMoving, stateResizing:
		var changes []command.Change
		for _, ch := range m.before {
			after := ch.Item.Geometry()
			if !after.Equal(ch.Before) {
				ch.After = after
				changes = append(changes, ch)
			}
		}
		if len(changes) == 0 {
			return nil, false
		}
		return command.NewTransform(changes), true
	case stateSelecting:
		band := gg.NewRect(m.bandStart, m.bandEnd)
		if band.Width() == 0 && band.Height() == 0 {
			return nil, false
		}
		changed := false
		for _, it := range items {
			if !m.IsSelected(it) && geom.Intersects(it.Bounds(), band) {
				m.selected = append(m.selected, it)
				changed = true
			}
		}
		if changed {
			m.selectionChanged()
		}
	}
	return nil, false
}

// HandleSelectionAt selects the item under pos without starting a drag,
// as a context menu does before offering actions.
func (m *Modifier) HandleSelectionAt(pos gg.Point, items []item.Item, additive bool) {
	hit := ItemAt(items, pos)
	if hit == nil {
		if !additive {
			m.ClearSelection()
		}
		return
	}
	m.selectItem(hit, additive)
}

// ClearSelection deselects everything.
func (m *Modifier) ClearSelection() {
	if len(m.selected) == 0 {
		return
	}
	m.selected = nil
	m.selectionChanged()
}

// UpdateSelection drops selected items that are no longer in items and
// refreshes the decoration. It is called after undo and redo.
func (m *Modifier) UpdateSelection(items []item.Item) {
	m.selected = slices.DeleteFunc(m.selected, func(it item.Item) bool {
		return !slices.Contains(items, it)
	})
	m.selectionChanged()
}

// SelectedItems returns a copy of the selection. The order carries no
// meaning.
func (m *Modifier) SelectedItems() []item.Item {
	return slices.Clone(m.selected)
}

// IsSelected reports whether it is selected.
func (m *Modifier) IsSelected(it item.Item) bool {
	return slices.Contains(m.selected, it)
}

// IsDragging reports whether a gesture is in progress.
func (m *Modifier) IsDragging() bool {
	return m.state != stateIdle
}

// HandleAt returns the selected item and handle under pos.
func (m *Modifier) HandleAt(pos gg.Point) (item.Item, int, bool) {
	for i := len(m.selected) - 1; i >= 0; i-- {
		it := m.selected[i]
		for h := range it.HandleCount() {
			if handleRect(it.PointAt(h)).Contains(pos) {
				return it, h, true
			}
		}
	}
	return nil, 0, false
}

// Render draws the selection outline, the resize handles and the rubber
// band.
func (m *Modifier) Render(dc *gg.Context) error {
	dc.SetLineWidth(1)
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineJoin(gg.LineJoinMiter)

	for _, it := range m.selected {
		r := geom.Inflate(it.Bounds(), it.Properties().Size/2+2)
		dc.SetStrokeBrush(gg.Solid(selectionColor))
		dc.SetDash(4, 3)
		dc.DrawRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
		if err := dc.Stroke(); err != nil {
			return err
		}
		dc.ClearDash()

		for h := range it.HandleCount() {
			hr := handleRect(it.PointAt(h))
			dc.DrawRectangle(hr.Min.X, hr.Min.Y, hr.Width(), hr.Height())
			dc.SetFillBrush(gg.Solid(handleFill))
			if err := dc.FillPreserve(); err != nil {
				return err
			}
			dc.SetStrokeBrush(gg.Solid(selectionColor))
			if err := dc.Stroke(); err != nil {
				return err
			}
		}
	}

	if m.state == stateSelecting {
		band := gg.NewRect(m.bandStart, m.bandEnd)
		dc.SetStrokeBrush(gg.Solid(selectionColor))
		dc.SetDash(4, 3)
		dc.DrawRectangle(band.Min.X, band.Min.Y, band.Width(), band.Height())
		err := dc.Stroke()
		dc.ClearDash()
		return err
	}
	return nil
}

// ItemAt returns the topmost item of items hit by pos, or nil. Later items
// paint on top, so the list is searched backwards.
func ItemAt(items []item.Item, pos gg.Point) item.Item {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Contains(pos) {
			return items[i]
		}
	}
	return nil
}

// HandleCursor returns the resize cursor for a handle of an item with
// count handles.
func HandleCursor(count, handle int) item.Cursor {
	if count != geom.RectHandleCount {
		return item.CursorResize
	}
	switch handle {
	case 0, 4:
		return item.CursorResizeNWSE
	case 2, 6:
		return item.CursorResizeNESW
	case 1, 5:
		return item.CursorResizeNS
	default:
		return item.CursorResizeWE
	}
}

func (m *Modifier) selectItem(it item.Item, additive bool) {
	if m.IsSelected(it) {
		return
	}
	if additive {
		m.selected = append(m.selected, it)
	} else {
		m.selected = []item.Item{it}
	}
	m.selectionChanged()
}

func (m *Modifier) capture(items []item.Item) {
	m.before = m.before[:0]
	for _, it := range items {
		m.before = append(m.before, command.Change{Item: it, Before: it.Geometry()})
	}
}

// endDrag returns to idle. The mover must be empty between gestures.
func (m *Modifier) endDrag() {
	m.state = stateIdle
	m.resizeItem = nil
	m.before = nil
	m.mover.ClearOffset()
}

func (m *Modifier) selectionChanged() {
	if m.onSelectionChanged != nil {
		m.onSelectionChanged()
	}
}

func handleRect(center gg.Point) gg.Rect {
	const half = HandleSize / 2
	return gg.Rect{
		Min: gg.Pt(center.X-half, center.Y-half),
		Max: gg.Pt(center.X+half, center.Y+half),
	}
}
