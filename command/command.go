// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package command provides the reversible edits applied to an annotation
// scene and the linear undo/redo stack that holds them.
//
// Commands never touch a scene directly; they go through [Target], which the
// scene controller implements. Once pushed, a command belongs to the
// [Stack] and is only ever applied or reverted by it.
package command

import (
	"fmt"
	"image"

	"github.com/gogpu/annotate/item"
)

// Kind identifies the type of a command.
type Kind uint8

const (
	KindAdd       Kind = iota // Insert one item
	KindDelete                // Remove items
	KindTransform             // Change item geometry
	KindCrop                  // Replace the background with a region of itself
	KindReorder               // Change paint order
)

var kindNames = [...]string{
	KindAdd:       "Add",
	KindDelete:    "Delete",
	KindTransform: "Transform",
	KindCrop:      "Crop",
	KindReorder:   "Reorder",
}

// String returns the command kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Command is a reversible edit.
type Command interface {
	// Kind returns the command type.
	Kind() Kind

	// Apply performs the edit. It is called on push and on redo.
	Apply()

	// Revert undoes the edit. It is called on undo.
	Revert()
}

// Target is the scene state commands mutate.
type Target interface {
	// Items returns the item list in paint order.
	Items() []item.Item

	// InsertItem inserts it at index, clamped to the list length.
	InsertItem(it item.Item, index int)

	// RemoveItem removes it and returns its former index, or -1.
	RemoveItem(it item.Item) int

	// SetItems replaces the whole list with a new ordering.
	SetItems(items []item.Item)

	// Background returns the current background image.
	Background() image.Image

	// SetBackground replaces the background image and the scene bounds.
	SetBackground(img image.Image)
}
