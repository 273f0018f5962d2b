// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads tool settings from a file and the environment.
//
// A configuration file (YAML, JSON or TOML, chosen by extension) looks like:
//
//	tool: rect
//	tools:
//	  rect:
//	    size: 4
//	    color: "#00ff00"
//	    fill: nofill
//	  marker:
//	    color: "#0000ffcc"
//	    foreground: "#ffffff"
//
// Every key defaults to the built-in style. Environment variables prefixed
// with ANNOTATE_ override file values, for example ANNOTATE_TOOL=arrow or
// ANNOTATE_TOOLS_PEN_SIZE=6.
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/spf13/viper"

	"github.com/gogpu/annotate/tool"
)

// ErrInvalidColor is returned for colors that are not #RGB, #RGBA,
// #RRGGBB or #RRGGBBAA.
var ErrInvalidColor = errors.New("config: invalid color")

// File is the decoded configuration.
type File struct {
	Tool  string               `mapstructure:"tool" yaml:"tool"`
	Tools map[string]ToolStyle `mapstructure:"tools" yaml:"tools"`
}

// ToolStyle is the style of one tool as written in a file.
type ToolStyle struct {
	Size            float64 `mapstructure:"size" yaml:"size"`
	Color           string  `mapstructure:"color" yaml:"color"`
	ForegroundColor string  `mapstructure:"foreground" yaml:"foreground"`
	Fill            string  `mapstructure:"fill" yaml:"fill"`
}

// Load reads path and returns the resulting settings. An empty path loads
// only defaults and environment overrides.
func Load(path string) (*tool.Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("annotate")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return f.Settings()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tool", tool.Pen.String())
	for _, k := range tool.Kinds() {
		if !k.Draws() {
			continue
		}
		st := tool.DefaultStyle(k)
		prefix := "tools." + k.String() + "."
		v.SetDefault(prefix+"size", st.Size)
		v.SetDefault(prefix+"color", FormatColor(st.Color))
		v.SetDefault(prefix+"foreground", FormatColor(st.ForegroundColor))
		v.SetDefault(prefix+"fill", st.Fill.String())
	}
}

// FromSettings returns the file form of s, listing every drawing tool.
func FromSettings(s *tool.Settings) File {
	f := File{Tool: s.Tool().String(), Tools: make(map[string]ToolStyle)}
	for _, k := range tool.Kinds() {
		if !k.Draws() {
			continue
		}
		st := s.Style(k)
		f.Tools[k.String()] = ToolStyle{
			Size:            st.Size,
			Color:           FormatColor(st.Color),
			ForegroundColor: FormatColor(st.ForegroundColor),
			Fill:            st.Fill.String(),
		}
	}
	return f
}

// Settings validates f and converts it.
func (f *File) Settings() (*tool.Settings, error) {
	s := tool.NewSettings()
	active, err := tool.ParseKind(f.Tool)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	for name, ts := range f.Tools {
		k, err := tool.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("config: tools: %w", err)
		}
		st, err := ts.style(k)
		if err != nil {
			return nil, fmt.Errorf("config: tools.%s: %w", name, err)
		}
		s.SetStyle(k, st)
	}
	s.SetTool(active)
	return s, nil
}

func (ts ToolStyle) style(k tool.Kind) (tool.Style, error) {
	st := tool.DefaultStyle(k)
	if ts.Size < 0 {
		return st, fmt.Errorf("negative size %v", ts.Size)
	}
	if ts.Size > 0 {
		st.Size = ts.Size
	}

	var err error
	if ts.Color != "" {
		if st.Color, err = ParseColor(ts.Color); err != nil {
			return st, err
		}
	}
	if ts.ForegroundColor != "" {
		if st.ForegroundColor, err = ParseColor(ts.ForegroundColor); err != nil {
			return st, err
		}
	}
	if ts.Fill != "" {
		if st.Fill, err = tool.ParseFillType(ts.Fill); err != nil {
			return st, err
		}
	}
	return st, nil
}

// ParseColor parses a hex color with an optional leading '#'.
func ParseColor(s string) (gg.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return gg.Hex(h), nil
}

// FormatColor returns c as #RRGGBBAA.
func FormatColor(c gg.RGBA) string {
	b := func(f float64) uint8 {
		return uint8(math.Round(min(max(f, 0), 1) * 255))
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", b(c.R), b(c.G), b(c.B), b(c.A))
}
