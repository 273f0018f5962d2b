// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package annotate

// Button identifies mouse buttons. Values are bit flags so a set of held
// buttons can be passed as one value, such as ButtonLeft|ButtonRight.
type Button uint8

const ButtonNone Button = 0

const (
	ButtonLeft Button = 1 << iota
	ButtonRight
	ButtonMiddle
)

// Key identifies a keyboard key the Area reacts to. Hosts translate their
// native key codes; other keys can be passed as KeyOther.
type Key uint8

const (
	KeyOther Key = iota
	KeyControl
	KeyShift
	KeyDelete
	KeyEscape
	KeyZ
	KeyY
)

// keyState tracks modifier keys between events.
type keyState struct {
	control bool
	shift   bool
}

// action is what a key event asks the Area to do.
type action uint8

const (
	actionNone action = iota
	actionUndo
	actionRedo
	actionDelete
	actionClearSelection
)

func (k *keyState) press(key Key) action {
	switch key {
	case KeyControl:
		k.control = true
	case KeyShift:
		k.shift = true
	case KeyZ:
		if k.control && k.shift {
			return actionRedo
		}
		if k.control {
			return actionUndo
		}
	case KeyY:
		if k.control {
			return actionRedo
		}
	}
	return actionNone
}

func (k *keyState) release(key Key) action {
	switch key {
	case KeyControl:
		k.control = false
	case KeyShift:
		k.shift = false
	case KeyDelete:
		return actionDelete
	case KeyEscape:
		return actionClearSelection
	}
	return actionNone
}
