// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package modifier

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/annotate/item"
)

// Mover drags several items rigidly. It remembers, for each item, the
// offset between the grab point and the item's position.
type Mover struct {
	offsets map[item.Item]gg.Point
}

// NewMover returns an empty Mover.
func NewMover() *Mover {
	return &Mover{offsets: make(map[item.Item]gg.Point)}
}

// SetOffset records pos - Position() for every item.
func (m *Mover) SetOffset(pos gg.Point, items []item.Item) {
	for _, it := range items {
		m.offsets[it] = pos.Sub(it.Position())
	}
}

// MoveItems places every recorded item at pos minus its offset.
func (m *Mover) MoveItems(pos gg.Point) {
	for it, off := range m.offsets {
		it.SetPosition(pos.Sub(off))
	}
}

// ClearOffset forgets all recorded items.
func (m *Mover) ClearOffset() {
	clear(m.offsets)
}

// Len returns the number of recorded items.
func (m *Mover) Len() int {
	return len(m.offsets)
}
