// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package arrange

import (
	"image"
	"slices"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/annotate/command"
	"github.com/gogpu/annotate/item"
	"github.com/gogpu/annotate/tool"
)

type list struct{ items []item.Item }

func (l *list) Items() []item.Item             { return l.items }
func (l *list) InsertItem(it item.Item, i int) { l.items = slices.Insert(l.items, i, it) }
func (l *list) SetItems(items []item.Item)     { l.items = items }
func (l *list) Background() image.Image        { return nil }
func (l *list) SetBackground(image.Image)      {}
func (l *list) RemoveItem(it item.Item) int {
	i := slices.Index(l.items, it)
	if i >= 0 {
		l.items = slices.Delete(l.items, i, i+1)
	}
	return i
}

func markers(n int) []item.Item {
	out := make([]item.Item, n)
	for i := range out {
		out[i] = item.NewMarker(gg.Pt(float64(i*10), 0), item.Properties{Size: 3, Fill: tool.Fill}, i+1)
	}
	return out
}

func TestArrange(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		selected []int
		want     []int
	}{
		{"front", BringToFront, []int{0, 2}, []int{1, 3, 0, 2}},
		{"back", SendToBack, []int{1, 3}, []int{1, 3, 0, 2}},
		{"forward", BringForward, []int{0, 2}, []int{1, 0, 3, 2}},
		{"forward blocked on top", BringForward, []int{2, 3}, nil},
		{"forward below top", BringForward, []int{1, 3}, []int{0, 2, 1, 3}},
		{"backward", SendBackward, []int{1, 3}, []int{1, 0, 3, 2}},
		{"backward blocked at bottom", SendBackward, []int{0, 1}, nil},
		{"front already on top", BringToFront, []int{3}, nil},
		{"empty selection", BringToFront, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			all := markers(4)
			l := &list{items: slices.Clone(all)}
			var selected []item.Item
			for _, i := range tt.selected {
				selected = append(selected, all[i])
			}

			cmd, ok := New(l, selected).Apply(tt.op)

			if tt.want == nil {
				if ok {
					t.Fatalf("Apply(%v) returned a command for an unchanged order", tt.op)
				}
				return
			}
			if !ok {
				t.Fatalf("Apply(%v) returned no command", tt.op)
			}
			if cmd.Kind() != command.KindReorder {
				t.Fatalf("Kind() = %v, want Reorder", cmd.Kind())
			}
			if !slices.Equal(l.items, all) {
				t.Fatal("arranger changed the list before the command was applied")
			}

			st := command.NewStack()
			st.Push(cmd)
			want := make([]item.Item, len(tt.want))
			for i, j := range tt.want {
				want[i] = all[j]
			}
			if !slices.Equal(l.items, want) {
				t.Errorf("order = %v, want %v", indices(all, l.items), tt.want)
			}
			st.Undo()
			if !slices.Equal(l.items, all) {
				t.Errorf("order after undo = %v", indices(all, l.items))
			}
		})
	}
}

func TestParseOp(t *testing.T) {
	for _, op := range []Op{BringToFront, BringForward, SendBackward, SendToBack} {
		got, err := ParseOp(op.String())
		if err != nil || got != op {
			t.Errorf("ParseOp(%q) = %v, %v", op.String(), got, err)
		}
	}
	if _, err := ParseOp("sideways"); err == nil {
		t.Error("ParseOp(sideways) succeeded")
	}
}

func indices(all, order []item.Item) []int {
	out := make([]int, len(order))
	for i, it := range order {
		out[i] = slices.Index(all, it)
	}
	return out
}
