// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package command

// Stack is a linear undo history.
//
// Commands before the index are applied; commands at or after it have been
// undone and can be redone until the next Push discards them.
type Stack struct {
	commands []Command
	index    int
	onChange func()
}

// StackOption configures a Stack.
type StackOption func(*Stack)

// WithIndexChangedHandler registers fn to be called whenever the applied
// state changes: on Push, a successful Undo or Redo, and Clear.
func WithIndexChangedHandler(fn func()) StackOption {
	return func(s *Stack) { s.onChange = fn }
}

// NewStack creates an empty stack.
func NewStack(opts ...StackOption) *Stack {
	s := &Stack{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Push applies c, drops every undone command and appends c.
func (s *Stack) Push(c Command) {
	c.Apply()
	clear(s.commands[s.index:])
	s.commands = append(s.commands[:s.index], c)
	s.index++
	s.changed()
}

// Undo reverts the last applied command. It reports false if there is none.
func (s *Stack) Undo() bool {
	if s.index == 0 {
		return false
	}
	s.index--
	s.commands[s.index].Revert()
	s.changed()
	return true
}

// Redo reapplies the next undone command. It reports false if there is none.
func (s *Stack) Redo() bool {
	if s.index >= len(s.commands) {
		return false
	}
	s.commands[s.index].Apply()
	s.index++
	s.changed()
	return true
}

// Clear drops the whole history.
func (s *Stack) Clear() {
	clear(s.commands)
	s.commands = s.commands[:0]
	s.index = 0
	s.changed()
}

// CanUndo reports whether Undo would do anything.
func (s *Stack) CanUndo() bool { return s.index > 0 }

// CanRedo reports whether Redo would do anything.
func (s *Stack) CanRedo() bool { return s.index < len(s.commands) }

// Index returns the number of applied commands.
func (s *Stack) Index() int { return s.index }

// Len returns the number of commands in the history, undone ones included.
func (s *Stack) Len() int { return len(s.commands) }

// Peek returns the last applied command, or nil.
func (s *Stack) Peek() Command {
	if s.index == 0 {
		return nil
	}
	return s.commands[s.index-1]
}

func (s *Stack) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}
