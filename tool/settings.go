// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tool

import "github.com/gogpu/gg"

// Style is the per-tool drawing configuration.
type Style struct {
	Size            float64
	Color           gg.RGBA
	ForegroundColor gg.RGBA
	Fill            FillType
}

// Provider is a read-only view of the current tool configuration.
type Provider interface {
	// Tool returns the active tool.
	Tool() Kind

	// Style returns the configured style of the given tool.
	Style(k Kind) Style
}

// Notifier is implemented by providers that announce tool changes.
type Notifier interface {
	// OnToolChanged registers fn to be called after the active tool changes.
	OnToolChanged(fn func(Kind))
}

// DefaultStyle returns the built-in style for k.
func DefaultStyle(k Kind) Style {
	s := Style{
		Size:            3,
		Color:           gg.Red,
		ForegroundColor: gg.White,
		Fill:            NoFill,
	}
	switch k {
	case Highlighter:
		s.Size = 10
		s.Color = gg.Yellow
	case Arrow:
		s.Fill = Fill
	case Marker:
		s.Size = 5
		s.Fill = Fill
	case Text:
		s.Size = 4
	}
	return s
}

// Settings is a mutable in-memory Provider.
//
// The zero value is not usable; create one with NewSettings.
type Settings struct {
	tool      Kind
	styles    map[Kind]Style
	listeners []func(Kind)
}

var (
	_ Provider = (*Settings)(nil)
	_ Notifier = (*Settings)(nil)
)

// NewSettings creates settings with every tool at its default style and
// the Pen tool active.
func NewSettings() *Settings {
	s := &Settings{
		tool:   Pen,
		styles: make(map[Kind]Style, len(kindNames)),
	}
	for _, k := range Kinds() {
		s.styles[k] = DefaultStyle(k)
	}
	return s
}

// Tool returns the active tool.
func (s *Settings) Tool() Kind {
	return s.tool
}

// SetTool activates k and notifies listeners if the tool changed.
func (s *Settings) SetTool(k Kind) {
	if s.tool == k {
		return
	}
	s.tool = k
	for _, fn := range s.listeners {
		fn(k)
	}
}

// OnToolChanged registers fn to be called after SetTool changes the tool.
func (s *Settings) OnToolChanged(fn func(Kind)) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

// Style returns the style configured for k.
func (s *Settings) Style(k Kind) Style {
	if st, ok := s.styles[k]; ok {
		return st
	}
	return DefaultStyle(k)
}

// SetStyle replaces the style of k.
func (s *Settings) SetStyle(k Kind, st Style) {
	s.styles[k] = st
}

// SetSize sets the stroke width or badge size of k.
func (s *Settings) SetSize(k Kind, size float64) {
	st := s.Style(k)
	st.Size = size
	s.styles[k] = st
}

// SetColor sets the primary color of k.
func (s *Settings) SetColor(k Kind, c gg.RGBA) {
	st := s.Style(k)
	st.Color = c
	s.styles[k] = st
}

// SetForegroundColor sets the secondary (text) color of k.
func (s *Settings) SetForegroundColor(k Kind, c gg.RGBA) {
	st := s.Style(k)
	st.ForegroundColor = c
	s.styles[k] = st
}

// SetFill sets the fill mode of k.
func (s *Settings) SetFill(k Kind, f FillType) {
	st := s.Style(k)
	st.Fill = f
	s.styles[k] = st
}
