// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package script replays recorded gestures against an annotation Area.
//
// A script is a YAML document with a list of steps. Each step holds exactly
// one action:
//
//	steps:
//	  - tool: rect
//	  - drag: [[10, 10], [60, 40]]
//	  - tool: marker
//	  - click: [80, 20]
//	  - text: {at: [10, 60], value: "Step 1"}
//	  - tool: select
//	  - select: [10, 20]
//	  - arrange: back
//	  - keys: ctrl+z
//	  - redo: true
//	  - crop: [0, 0, 100, 80]
package script

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/annotate"
	"github.com/gogpu/annotate/arrange"
	"github.com/gogpu/annotate/tool"
)

var (
	// ErrEmpty is returned for a script without steps.
	ErrEmpty = errors.New("script: no steps")

	// ErrAction is returned for a step with no action or more than one.
	ErrAction = errors.New("script: step must hold exactly one action")
)

// Point is a scene position written as [x, y].
type Point struct {
	X, Y float64
}

// UnmarshalYAML decodes a two-element sequence.
func (p *Point) UnmarshalYAML(n *yaml.Node) error {
	var xy []float64
	if err := n.Decode(&xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return fmt.Errorf("line %d: point needs 2 coordinates, got %d", n.Line, len(xy))
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

func (p Point) pt() gg.Point { return gg.Pt(p.X, p.Y) }

// Label places a text item.
type Label struct {
	At    Point  `yaml:"at"`
	Value string `yaml:"value"`
}

// Step is one scripted action.
type Step struct {
	Tool    string  `yaml:"tool,omitempty"`
	Drag    []Point `yaml:"drag,omitempty"`
	Click   *Point  `yaml:"click,omitempty"`
	Text    *Label  `yaml:"text,omitempty"`
	Select  *Point  `yaml:"select,omitempty"`
	Keys    string  `yaml:"keys,omitempty"`
	Undo    bool    `yaml:"undo,omitempty"`
	Redo    bool    `yaml:"redo,omitempty"`
	Delete  bool    `yaml:"delete,omitempty"`
	Arrange string  `yaml:"arrange,omitempty"`
	Crop    []int   `yaml:"crop,omitempty"`
}

// Script is a parsed gesture script.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a script. Unknown keys are rejected.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("script: decode: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, ErrEmpty
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("script: step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func (st Step) validate() error {
	n := 0
	count := func(set bool) {
		if set {
			n++
		}
	}
	count(st.Tool != "")
	count(len(st.Drag) > 0)
	count(st.Click != nil)
	count(st.Text != nil)
	count(st.Select != nil)
	count(st.Keys != "")
	count(st.Undo)
	count(st.Redo)
	count(st.Delete)
	count(st.Arrange != "")
	count(len(st.Crop) > 0)
	if n != 1 {
		return ErrAction
	}

	switch {
	case st.Tool != "":
		_, err := tool.ParseKind(st.Tool)
		return err
	case len(st.Drag) == 1:
		return errors.New("drag needs at least 2 points")
	case st.Text != nil && strings.TrimSpace(st.Text.Value) == "":
		return errors.New("text needs a value")
	case st.Keys != "":
		_, err := parseKeys(st.Keys)
		return err
	case st.Arrange != "":
		_, err := arrange.ParseOp(st.Arrange)
		return err
	case len(st.Crop) > 0 && len(st.Crop) != 4:
		return fmt.Errorf("crop needs [x0, y0, x1, y1], got %d values", len(st.Crop))
	}
	return nil
}

// Run replays the script. Tool steps switch the active tool of settings,
// which must be the provider a was created with.
func (s *Script) Run(a *annotate.Area, settings *tool.Settings) error {
	for i, st := range s.Steps {
		if err := st.run(a, settings); err != nil {
			return fmt.Errorf("script: step %d: %w", i+1, err)
		}
	}
	return nil
}

func (st Step) run(a *annotate.Area, settings *tool.Settings) error {
	switch {
	case st.Tool != "":
		k, err := tool.ParseKind(st.Tool)
		if err != nil {
			return err
		}
		settings.SetTool(k)
	case len(st.Drag) > 0:
		a.HandleMousePress(st.Drag[0].pt(), annotate.ButtonLeft)
		for _, p := range st.Drag[1:] {
			a.HandleMouseMove(p.pt(), annotate.ButtonLeft)
		}
		a.HandleMouseRelease(annotate.ButtonLeft)
	case st.Click != nil:
		a.HandleMousePress(st.Click.pt(), annotate.ButtonLeft)
		a.HandleMouseRelease(annotate.ButtonLeft)
	case st.Text != nil:
		a.InsertTextItem(st.Text.At.pt(), st.Text.Value)
	case st.Select != nil:
		a.SelectAt(st.Select.pt())
	case st.Keys != "":
		keys, err := parseKeys(st.Keys)
		if err != nil {
			return err
		}
		for _, k := range keys {
			a.HandleKeyPress(k)
		}
		for i := len(keys) - 1; i >= 0; i-- {
			a.HandleKeyRelease(keys[i])
		}
	case st.Undo:
		a.Undo()
	case st.Redo:
		a.Redo()
	case st.Delete:
		a.DeleteSelectedItems()
	case st.Arrange != "":
		op, err := arrange.ParseOp(st.Arrange)
		if err != nil {
			return err
		}
		a.Arrange(op)
	case len(st.Crop) == 4:
		a.Crop(image.Rect(st.Crop[0], st.Crop[1], st.Crop[2], st.Crop[3]))
	default:
		return ErrAction
	}
	return nil
}

var keyNames = map[string]annotate.Key{
	"ctrl":    annotate.KeyControl,
	"control": annotate.KeyControl,
	"shift":   annotate.KeyShift,
	"delete":  annotate.KeyDelete,
	"del":     annotate.KeyDelete,
	"escape":  annotate.KeyEscape,
	"esc":     annotate.KeyEscape,
	"z":       annotate.KeyZ,
	"y":       annotate.KeyY,
}

// parseKeys splits a chord such as "ctrl+shift+z" into keys in press
// order.
func parseKeys(s string) ([]annotate.Key, error) {
	parts := strings.Split(strings.ToLower(s), "+")
	keys := make([]annotate.Key, 0, len(parts))
	for _, p := range parts {
		k, ok := keyNames[strings.TrimSpace(p)]
		if !ok {
			return nil, fmt.Errorf("unknown key %q in %q", p, s)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
