// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tool describes annotation tools and the configuration they are
// drawn with.
//
// The configuration is consumed through [Provider], a read-only view that
// the item factory queries at creation time only. [Settings] is the
// in-memory implementation hosts mutate from their toolbars.
package tool

import (
	"fmt"
	"strings"
)

// Kind identifies an annotation tool.
type Kind uint8

const (
	Select      Kind = iota // Select and transform existing items
	Pen                     // Freehand stroke
	Highlighter             // Translucent freehand stroke
	Rect                    // Rectangle
	Ellipse                 // Ellipse
	Line                    // Straight line
	Arrow                   // Line with a filled head
	Marker                  // Sequentially numbered badge
	Text                    // Text label

	// Image marks pasted pictures. It creates no items from the pointer
	// and is not offered as a tool.
	Image
)

var kindNames = [...]string{
	Select:      "select",
	Pen:         "pen",
	Highlighter: "highlighter",
	Rect:        "rect",
	Ellipse:     "ellipse",
	Line:        "line",
	Arrow:       "arrow",
	Marker:      "marker",
	Text:        "text",
	Image:       "image",
}

// Kinds returns every selectable tool in declaration order.
func Kinds() []Kind {
	return []Kind{Select, Pen, Highlighter, Rect, Ellipse, Line, Arrow, Marker, Text}
}

// String returns the lower-case tool name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Draws reports whether the tool creates items.
func (k Kind) Draws() bool {
	return k > Select && k < Image
}

// ParseKind returns the tool named s. Matching is case-insensitive and
// only selectable tools are accepted.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return Select, fmt.Errorf("tool: unknown tool %q", s)
}

// FillType selects whether an item's interior is painted.
type FillType uint8

const (
	Fill   FillType = iota // Interior painted solid
	NoFill                 // Outline only
)

// String returns "fill" or "nofill".
func (f FillType) String() string {
	switch f {
	case Fill:
		return "fill"
	case NoFill:
		return "nofill"
	default:
		return fmt.Sprintf("FillType(%d)", f)
	}
}

// ParseFillType parses "fill" or "nofill" (also "no-fill", "none").
func ParseFillType(s string) (FillType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fill", "solid":
		return Fill, nil
	case "nofill", "no-fill", "none", "outline":
		return NoFill, nil
	}
	return Fill, fmt.Errorf("tool: unknown fill type %q", s)
}
