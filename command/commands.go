// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package command

import (
	"image"
	"slices"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/annotate/item"
)

// Add inserts one item on top of the scene.
type Add struct {
	target Target
	item   item.Item
}

// NewAdd returns a command adding it to t.
func NewAdd(t Target, it item.Item) *Add {
	return &Add{target: t, item: it}
}

func (c *Add) Kind() Kind { return KindAdd }

// Item returns the item the command adds.
func (c *Add) Item() item.Item { return c.item }

// Apply appends the item. The history is linear, so on redo the list is
// exactly as it was on the first apply.
func (c *Add) Apply() {
	c.target.InsertItem(c.item, len(c.target.Items()))
}

func (c *Add) Revert() {
	c.target.RemoveItem(c.item)
}

// Delete removes items and puts them back at their original indices.
type Delete struct {
	target  Target
	items   []item.Item
	removed []removal
}

type removal struct {
	item  item.Item
	index int
}

// NewDelete returns a command removing items from t.
func NewDelete(t Target, items []item.Item) *Delete {
	return &Delete{target: t, items: slices.Clone(items)}
}

func (c *Delete) Kind() Kind { return KindDelete }

// Items returns the items the command removes.
func (c *Delete) Items() []item.Item { return slices.Clone(c.items) }

// Apply records where each item sits, then removes them all.
func (c *Delete) Apply() {
	list := c.target.Items()
	c.removed = c.removed[:0]
	for _, it := range c.items {
		if i := slices.Index(list, it); i >= 0 {
			c.removed = append(c.removed, removal{item: it, index: i})
		}
	}
	slices.SortFunc(c.removed, func(a, b removal) int { return a.index - b.index })
	for _, r := range c.removed {
		c.target.RemoveItem(r.item)
	}
}

// Revert reinserts in ascending index order, which restores every index.
func (c *Delete) Revert() {
	for _, r := range c.removed {
		c.target.InsertItem(r.item, r.index)
	}
}

// Change is the geometry of one item before and after an edit.
type Change struct {
	Item   item.Item
	Before item.Geometry
	After  item.Geometry
}

// Transform changes the geometry of several items as one edit.
type Transform struct {
	changes []Change
}

// NewTransform returns a command applying changes. The geometries are
// copied.
func NewTransform(changes []Change) *Transform {
	cs := make([]Change, len(changes))
	for i, ch := range changes {
		cs[i] = Change{
			Item:   ch.Item,
			Before: slices.Clone(ch.Before),
			After:  slices.Clone(ch.After),
		}
	}
	return &Transform{changes: cs}
}

func (c *Transform) Kind() Kind { return KindTransform }

// Changes returns the per-item geometry changes.
func (c *Transform) Changes() []Change { return slices.Clone(c.changes) }

func (c *Transform) Apply() {
	for _, ch := range c.changes {
		ch.Item.SetGeometry(ch.After)
	}
}

func (c *Transform) Revert() {
	for _, ch := range c.changes {
		ch.Item.SetGeometry(ch.Before)
	}
}

// Crop replaces the background with one of its regions. Item coordinates
// are left as they are.
type Crop struct {
	target Target
	rect   image.Rectangle
	before image.Image
	after  image.Image
}

// NewCrop returns a command cropping the background of t to rect.
func NewCrop(t Target, rect image.Rectangle) *Crop {
	return &Crop{target: t, rect: rect}
}

func (c *Crop) Kind() Kind { return KindCrop }

// Rect returns the crop rectangle.
func (c *Crop) Rect() image.Rectangle { return c.rect }

// Apply crops the background. The cropped image is computed once and
// reused on redo.
func (c *Crop) Apply() {
	if c.after == nil {
		c.before = c.target.Background()
		if c.before == nil {
			return
		}
		c.after = CropImage(c.before, c.rect)
	}
	c.target.SetBackground(c.after)
}

func (c *Crop) Revert() {
	if c.before != nil {
		c.target.SetBackground(c.before)
	}
}

// CropImage copies the part of src inside r into a new image whose origin
// is (0, 0).
func CropImage(src image.Image, r image.Rectangle) *image.RGBA {
	r = r.Intersect(src.Bounds())
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.Copy(dst, image.Point{}, src, r, xdraw.Src, nil)
	return dst
}

// Reorder replaces the paint order.
type Reorder struct {
	target Target
	before []item.Item
	after  []item.Item
}

// NewReorder returns a command switching t from the before ordering to
// the after ordering.
func NewReorder(t Target, before, after []item.Item) *Reorder {
	return &Reorder{target: t, before: slices.Clone(before), after: slices.Clone(after)}
}

func (c *Reorder) Kind() Kind { return KindReorder }

// After returns the ordering the command applies.
func (c *Reorder) After() []item.Item { return slices.Clone(c.after) }

func (c *Reorder) Apply()  { c.target.SetItems(slices.Clone(c.after)) }
func (c *Reorder) Revert() { c.target.SetItems(slices.Clone(c.before)) }
