// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package arrange changes the paint order of selected items.
//
// Every operation keeps the relative order of the selected items among
// themselves and of the unselected items among themselves. A request that
// would not change the order yields no command.
package arrange

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/annotate/command"
	"github.com/gogpu/annotate/item"
)

// Op is a reordering operation.
type Op uint8

const (
	BringToFront Op = iota
	BringForward
	SendBackward
	SendToBack
)

var opNames = [...]string{
	BringToFront: "front",
	BringForward: "forward",
	SendBackward: "backward",
	SendToBack:   "back",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", o)
}

// ParseOp returns the operation named s.
func ParseOp(s string) (Op, error) {
	for i, name := range opNames {
		if strings.EqualFold(s, name) {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("arrange: unknown operation %q", s)
}

// Arranger computes reorder commands for one selection.
type Arranger struct {
	target   command.Target
	selected []item.Item
}

// New returns an Arranger moving selected within the item list of t.
func New(t command.Target, selected []item.Item) *Arranger {
	return &Arranger{target: t, selected: slices.Clone(selected)}
}

// BringToFront moves the selection to the top, selected items last.
func (a *Arranger) BringToFront() (command.Command, bool) {
	return a.reorder(func(list []item.Item) []item.Item {
		out := make([]item.Item, 0, len(list))
		out = append(out, a.filter(list, false)...)
		return append(out, a.filter(list, true)...)
	})
}

// SendToBack moves the selection to the bottom.
func (a *Arranger) SendToBack() (command.Command, bool) {
	return a.reorder(func(list []item.Item) []item.Item {
		out := make([]item.Item, 0, len(list))
		out = append(out, a.filter(list, true)...)
		return append(out, a.filter(list, false)...)
	})
}

// BringForward moves each selected item one step up, past its unselected
// neighbor. A selected item already on top stays there and blocks the
// selected items directly below it.
func (a *Arranger) BringForward() (command.Command, bool) {
	return a.reorder(func(list []item.Item) []item.Item {
		for i := len(list) - 2; i >= 0; i-- {
			if a.isSelected(list[i]) && !a.isSelected(list[i+1]) {
				list[i], list[i+1] = list[i+1], list[i]
			}
		}
		return list
	})
}

// SendBackward moves each selected item one step down.
func (a *Arranger) SendBackward() (command.Command, bool) {
	return a.reorder(func(list []item.Item) []item.Item {
		for i := 1; i < len(list); i++ {
			if a.isSelected(list[i]) && !a.isSelected(list[i-1]) {
				list[i], list[i-1] = list[i-1], list[i]
			}
		}
		return list
	})
}

// Apply runs op.
func (a *Arranger) Apply(op Op) (command.Command, bool) {
	switch op {
	case BringToFront:
		return a.BringToFront()
	case BringForward:
		return a.BringForward()
	case SendBackward:
		return a.SendBackward()
	case SendToBack:
		return a.SendToBack()
	}
	return nil, false
}

func (a *Arranger) reorder(fn func([]item.Item) []item.Item) (command.Command, bool) {
	if len(a.selected) == 0 {
		return nil, false
	}
	before := a.target.Items()
	after := fn(slices.Clone(before))
	if slices.Equal(before, after) {
		return nil, false
	}
	return command.NewReorder(a.target, before, after), true
}

func (a *Arranger) filter(list []item.Item, selected bool) []item.Item {
	var out []item.Item
	for _, it := range list {
		if a.isSelected(it) == selected {
			out = append(out, it)
		}
	}
	return out
}

func (a *Arranger) isSelected(it item.Item) bool {
	return slices.Contains(a.selected, it)
}
