// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package annotate provides an interactive annotation layer over a raster
// image.
//
// # Overview
//
// An [Area] holds a background image and a list of annotation items (pen
// and highlighter strokes, rectangles, ellipses, lines, arrows, numbered
// markers, text labels and pasted pictures). The host feeds it pointer and key events; the Area creates,
// selects, moves, resizes, reorders and deletes items, recording every edit
// on a linear undo stack.
//
// # Quick Start
//
//	settings := tool.NewSettings()
//	area := annotate.NewArea(settings,
//	    annotate.WithImageChangedHandler(func() { dirty = true }),
//	)
//	area.LoadImage(img)
//
//	settings.SetTool(tool.Rect)
//	area.HandleMousePress(gg.Pt(10, 10), annotate.ButtonLeft)
//	area.HandleMouseMove(gg.Pt(80, 60), annotate.ButtonLeft)
//	area.HandleMouseRelease(annotate.ButtonLeft)
//
//	out, err := area.Image()
//
// # Architecture
//
// The module is organized into:
//   - tool: tool kinds and per-tool styles
//   - item: the item variants and the factory creating them
//   - command: undo stack and the Add, Delete, Transform, Crop and Reorder commands
//   - modifier: selection, move and resize
//   - arrange: paint order changes
//   - canvas: composition of the background and items with gg
//
// # Coordinate System
//
// Scene coordinates are image pixels with the origin at the top-left
// corner of the background. Items later in [Area.Items] paint on top.
//
// # Concurrency
//
// Nothing in this module is safe for concurrent use except [SetLogger] and
// [Logger].
package annotate
