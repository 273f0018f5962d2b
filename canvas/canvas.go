// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas composes a background image and annotation layers into a
// raster image using gg.
package canvas

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// ErrNoBackground is returned by Render before a background is set.
var ErrNoBackground = errors.New("canvas: no background image")

// Drawable is anything that paints itself onto a gg context.
type Drawable interface {
	Render(dc *gg.Context) error
}

// Canvas holds the background image of a scene.
type Canvas struct {
	background image.Image
}

// New returns an empty canvas.
func New() *Canvas {
	return &Canvas{}
}

// SetBackground replaces the background. A nil image or one with an empty
// bounds rectangle empties the canvas. Images not anchored at the origin
// are copied so that scene and pixel coordinates agree.
func (c *Canvas) SetBackground(img image.Image) {
	switch {
	case img == nil || img.Bounds().Empty():
		img = nil
	case img.Bounds().Min != image.Point{}:
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)
		img = dst
	}
	c.background = img
}

// Background returns the background image, or nil.
func (c *Canvas) Background() image.Image {
	return c.background
}

// Empty reports whether there is no background.
func (c *Canvas) Empty() bool {
	return c.background == nil
}

// Bounds returns the scene rectangle. The origin is always (0, 0).
func (c *Canvas) Bounds() image.Rectangle {
	if c.background == nil {
		return image.Rectangle{}
	}
	return c.background.Bounds()
}

// Render paints layers over a copy of the background, in order. The
// background itself is not modified.
func (c *Canvas) Render(layers ...Drawable) (image.Image, error) {
	if c.background == nil {
		return nil, ErrNoBackground
	}
	dc := gg.NewContextForImage(c.background)
	defer func() {
		_ = dc.Close()
	}()

	for i, l := range layers {
		if err := l.Render(dc); err != nil {
			return nil, fmt.Errorf("canvas: layer %d: %w", i, err)
		}
	}
	return dc.Image(), nil
}

// Layers adapts a slice of drawables, such as the item list, to a single
// Drawable.
type Layers[T Drawable] []T

// Render paints every element in order.
func (ls Layers[T]) Render(dc *gg.Context) error {
	for _, l := range ls {
		if err := l.Render(dc); err != nil {
			return err
		}
	}
	return nil
}
