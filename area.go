// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package annotate

import (
	"image"
	"slices"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/annotate/arrange"
	"github.com/gogpu/annotate/canvas"
	"github.com/gogpu/annotate/command"
	"github.com/gogpu/annotate/item"
	"github.com/gogpu/annotate/modifier"
	"github.com/gogpu/annotate/tool"
)

// Area is the annotation scene of one image: the background, the items on
// top of it, the selection and the undo history. It turns pointer and key
// events into commands.
//
// An Area is not safe for concurrent use. Hosts showing several images
// create one Area per image.
type Area struct {
	provider tool.Provider
	canvas   *canvas.Canvas
	items    []item.Item

	// item under construction between press and release
	current item.Item

	factory  *item.Factory
	modifier *modifier.Modifier
	undo     *command.Stack
	keys     keyState

	onImageChanged     func()
	onSelectionChanged func()
	textInput          func(pos gg.Point) (string, bool)
}

// Option configures an Area.
type Option func(*Area)

// WithImageChangedHandler registers fn to be called whenever the scene
// content may have changed. Hosts use it to mark the document dirty and
// repaint.
func WithImageChangedHandler(fn func()) Option {
	return func(a *Area) { a.onImageChanged = fn }
}

// WithSelectionChangedHandler registers fn to be called when the selection
// decoration needs a repaint.
func WithSelectionChangedHandler(fn func()) Option {
	return func(a *Area) { a.onSelectionChanged = fn }
}

// WithTextInput registers fn to supply the content of a text item when the
// Text tool is pressed at pos. fn reports false to cancel. Without it the
// Text tool creates nothing from the pointer; InsertTextItem still works.
func WithTextInput(fn func(pos gg.Point) (string, bool)) Option {
	return func(a *Area) { a.textInput = fn }
}

// NewArea creates an empty Area that styles new items from p. If p also
// implements [tool.Notifier], the Area follows tool changes.
func NewArea(p tool.Provider, opts ...Option) *Area {
	a := &Area{
		provider: p,
		canvas:   canvas.New(),
		factory:  item.NewFactory(p),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.modifier = modifier.New(modifier.WithSelectionChangedHandler(a.selectionChanged))
	a.undo = command.NewStack(command.WithIndexChangedHandler(a.update))
	if n, ok := p.(tool.Notifier); ok {
		n.OnToolChanged(a.setItemDecorationForTool)
	}
	return a
}

// LoadImage starts a new session on img. Items, selection, undo history and
// marker numbering are reset. A nil or empty image is ignored and leaves
// the current session untouched.
func (a *Area) LoadImage(img image.Image) {
	if img == nil || img.Bounds().Empty() {
		Logger().Debug("annotate: ignoring empty image")
		return
	}

	for _, it := range slices.Clone(a.items) {
		a.RemoveAnnotationItem(it)
	}
	a.current = nil
	a.modifier.ClearSelection()
	a.undo.Clear()
	a.factory.Reset()
	a.canvas.SetBackground(img)

	b := a.canvas.Bounds()
	Logger().Info("annotate: scene reset", "width", b.Dx(), "height", b.Dy())
}

// Image renders the background and every item without selection
// decoration. The selection is cleared first.
func (a *Area) Image() (image.Image, error) {
	a.modifier.ClearSelection()
	return a.canvas.Render(canvas.Layers[item.Item](a.items))
}

// Render renders the live view: the scene plus the selection outline,
// handles and rubber band.
func (a *Area) Render() (image.Image, error) {
	return a.canvas.Render(canvas.Layers[item.Item](a.items), a.modifier)
}

// Bounds returns the scene rectangle, empty before the first LoadImage.
func (a *Area) Bounds() image.Rectangle {
	return a.canvas.Bounds()
}

// AddAnnotationItem puts it on top of the scene. It does not record a
// command; commands call it when applied.
func (a *Area) AddAnnotationItem(it item.Item) {
	a.insertItem(it, len(a.items))
}

// RemoveAnnotationItem takes it out of the scene and out of the selection.
// It does not record a command.
func (a *Area) RemoveAnnotationItem(it item.Item) {
	a.removeItem(it)
}

// InsertTextItem records a command adding a text item with content s at
// pos. Blank text is ignored.
func (a *Area) InsertTextItem(pos gg.Point, s string) {
	if strings.TrimSpace(s) == "" {
		Logger().Debug("annotate: ignoring blank text")
		return
	}
	a.modifier.ClearSelection()
	a.push(command.NewAdd(a.target(), a.factory.CreateText(pos, s)))
}

// InsertImageItem records a command adding img at its natural size with
// the top-left corner at pos. A nil or empty image is ignored.
func (a *Area) InsertImageItem(pos gg.Point, img image.Image) {
	if img == nil || img.Bounds().Empty() {
		Logger().Debug("annotate: ignoring empty image item")
		return
	}
	a.modifier.ClearSelection()
	a.push(command.NewAdd(a.target(), a.factory.CreateImage(pos, img)))
}

// Crop records a command cropping the background to r. The rectangle is
// clipped to the scene; an empty result is ignored.
func (a *Area) Crop(r image.Rectangle) {
	r = r.Intersect(a.canvas.Bounds())
	if r.Empty() {
		Logger().Debug("annotate: ignoring empty crop", "rect", r)
		return
	}
	a.push(command.NewCrop(a.target(), r))
	a.imageChanged()
}

// Items returns the items in paint order, bottom first.
func (a *Area) Items() []item.Item {
	return slices.Clone(a.items)
}

// SelectedItems returns the current selection.
func (a *Area) SelectedItems() []item.Item {
	return a.modifier.SelectedItems()
}

// ClearSelection deselects everything.
func (a *Area) ClearSelection() {
	a.modifier.ClearSelection()
}

// DeleteSelectedItems records a command removing the selection.
func (a *Area) DeleteSelectedItems() {
	selected := a.modifier.SelectedItems()
	if len(selected) == 0 {
		return
	}
	a.modifier.ClearSelection()
	a.push(command.NewDelete(a.target(), selected))
}

// Arrange reorders the selection and records the change. Nothing is
// recorded if the order stays the same.
func (a *Area) Arrange(op arrange.Op) {
	selected := a.modifier.SelectedItems()
	if len(selected) == 0 {
		return
	}
	if cmd, ok := arrange.New(a.target(), selected).Apply(op); ok {
		a.push(cmd)
	}
}

// SelectAt selects the item under pos the way a context menu does: the
// item joins the selection if Control is held, replaces it otherwise.
func (a *Area) SelectAt(pos gg.Point) {
	a.modifier.HandleSelectionAt(pos, a.items, a.keys.control)
}

// Undo reverts the last command. It reports false if there is none.
func (a *Area) Undo() bool {
	ok := a.undo.Undo()
	if ok {
		Logger().Debug("annotate: undo", "index", a.undo.Index())
	}
	return ok
}

// Redo reapplies the last undone command. It reports false if there is
// none.
func (a *Area) Redo() bool {
	ok := a.undo.Redo()
	if ok {
		Logger().Debug("annotate: redo", "index", a.undo.Index())
	}
	return ok
}

// CanUndo reports whether Undo would do anything.
func (a *Area) CanUndo() bool { return a.undo.CanUndo() }

// CanRedo reports whether Redo would do anything.
func (a *Area) CanRedo() bool { return a.undo.CanRedo() }

// CursorAt returns the cursor a host should show at pos: a resize cursor
// over a handle of a selected item, the item's decoration over an item,
// and [item.CursorNone] elsewhere.
func (a *Area) CursorAt(pos gg.Point) item.Cursor {
	if a.provider.Tool() != tool.Select {
		return item.CursorNone
	}
	if it, handle, ok := a.modifier.HandleAt(pos); ok {
		return modifier.HandleCursor(it.HandleCount(), handle)
	}
	if it := modifier.ItemAt(a.items, pos); it != nil {
		return it.Cursor()
	}
	return item.CursorNone
}

// HandleMousePress starts a gesture. With the Select tool the press goes
// to the selection modifier. The Text tool asks the text input for the
// content and adds the label at once. With any other drawing tool the selection is cleared
// and a new item is created and recorded at once, so a click without
// movement leaves a degenerate item that can be undone.
func (a *Area) HandleMousePress(pos gg.Point, button Button) {
	if button != ButtonLeft {
		return
	}
	k := a.provider.Tool()
	if k == tool.Select {
		a.modifier.HandleMousePress(pos, a.items, a.keys.control)
		return
	}

	if k == tool.Text {
		if a.textInput == nil {
			return
		}
		if s, ok := a.textInput(pos); ok {
			a.InsertTextItem(pos, s)
		}
		return
	}

	a.modifier.ClearSelection()
	it := a.factory.CreateItem(pos, k)
	if it == nil {
		return
	}
	a.current = it
	a.push(command.NewAdd(a.target(), it))
}

// HandleMouseMove continues a gesture. buttons is the set of held buttons
// combined with |; only a pure left drag has an effect.
func (a *Area) HandleMouseMove(pos gg.Point, buttons Button) {
	if buttons != ButtonLeft {
		return
	}
	if a.current != nil {
		a.current.AddPoint(pos, a.keys.control)
		return
	}
	a.modifier.HandleMouseMove(pos)
}

// HandleMouseRelease ends a gesture: the item under construction is
// finished, or the modifier's drag is recorded if it changed anything.
// The image-changed handler is always called, even when nothing changed.
func (a *Area) HandleMouseRelease(button Button) {
	if button == ButtonLeft {
		if a.current != nil {
			a.current.Finish()
			a.current = nil
		} else if cmd, ok := a.modifier.HandleMouseRelease(a.items); ok {
			a.push(cmd)
		}
	}
	a.imageChanged()
}

// HandleKeyPress tracks modifier keys and runs undo (Control+Z) and redo
// (Control+Shift+Z, Control+Y).
func (a *Area) HandleKeyPress(key Key) {
	a.run(a.keys.press(key))
}

// HandleKeyRelease tracks modifier keys. Releasing Delete deletes the
// selection and releasing Escape clears it.
func (a *Area) HandleKeyRelease(key Key) {
	a.run(a.keys.release(key))
}

func (a *Area) run(act action) {
	switch act {
	case actionUndo:
		a.Undo()
	case actionRedo:
		a.Redo()
	case actionDelete:
		a.DeleteSelectedItems()
	case actionClearSelection:
		a.modifier.ClearSelection()
	}
}

func (a *Area) push(cmd command.Command) {
	a.undo.Push(cmd)
	Logger().Debug("annotate: command", "kind", cmd.Kind(), "index", a.undo.Index())
}

// update runs after every history change.
func (a *Area) update() {
	a.modifier.UpdateSelection(a.items)
}

func (a *Area) setItemDecorationForTool(k tool.Kind) {
	a.modifier.ClearSelection()
	for _, it := range a.items {
		it.SetCursor(cursorForTool(k))
	}
}

func cursorForTool(k tool.Kind) item.Cursor {
	if k == tool.Select {
		return item.CursorMovable
	}
	return item.CursorNone
}

func (a *Area) insertItem(it item.Item, index int) {
	index = min(max(index, 0), len(a.items))
	it.SetCursor(cursorForTool(a.provider.Tool()))
	a.items = slices.Insert(a.items, index, it)
	a.imageChanged()
}

func (a *Area) removeItem(it item.Item) int {
	i := slices.Index(a.items, it)
	if i < 0 {
		return -1
	}
	a.items = slices.Delete(a.items, i, i+1)
	if it == a.current {
		a.current = nil
	}
	a.modifier.UpdateSelection(a.items)
	a.imageChanged()
	return i
}

func (a *Area) imageChanged() {
	if a.onImageChanged != nil {
		a.onImageChanged()
	}
}

func (a *Area) selectionChanged() {
	if a.onSelectionChanged != nil {
		a.onSelectionChanged()
	}
}

func (a *Area) target() command.Target {
	return (*target)(a)
}

// target exposes the item list and background to commands.
type target Area

func (t *target) Items() []item.Item { return (*Area)(t).Items() }

func (t *target) InsertItem(it item.Item, index int) {
	(*Area)(t).insertItem(it, index)
}

func (t *target) RemoveItem(it item.Item) int {
	return (*Area)(t).removeItem(it)
}

func (t *target) SetItems(items []item.Item) {
	t.items = items
	(*Area)(t).imageChanged()
}

func (t *target) Background() image.Image { return t.canvas.Background() }

func (t *target) SetBackground(img image.Image) {
	t.canvas.SetBackground(img)
	(*Area)(t).imageChanged()
}
