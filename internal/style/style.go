// Package style turns tagged text segments into output, either with ANSI
// escape codes or as plain text.
package style

import (
	"strings"

	"github.com/fatih/color"
)

// Tag names the visual role of a piece of text, not its escape codes.
type Tag int

const (
	Plain Tag = iota
	Title
	Name
	Price
	Rule
	Alert
)

// Segment is a piece of text together with the role it plays.
type Segment struct {
	Text string
	Tag  Tag
}

// Renderer applies a style to a segment's text.
type Renderer interface {
	Apply(tag Tag, text string) string
}

// Render concatenates the segments using r.
func Render(r Renderer, segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(r.Apply(s.Tag, s.Text))
	}
	return b.String()
}

// Text joins the raw segment text without any styling.
func Text(segments []Segment) string {
	return Render(PlainRenderer{}, segments)
}

// PlainRenderer returns text untouched.
type PlainRenderer struct{}

func (PlainRenderer) Apply(_ Tag, text string) string { return text }

// ANSI renders segments with terminal escape codes. Colors are forced on
// because the output is written to an HTTP body, not a terminal.
type ANSI struct {
	colors map[Tag]*color.Color
}

func NewANSI() *ANSI {
	colors := map[Tag]*color.Color{
		Title: color.New(color.FgHiBlue),
		Name:  color.New(color.Bold),
		Price: color.New(color.FgCyan),
		Rule:  color.New(color.Faint),
		Alert: color.New(color.Bold, color.FgRed),
	}
	for _, c := range colors {
		c.EnableColor()
	}
	return &ANSI{colors: colors}
}

func (a *ANSI) Apply(tag Tag, text string) string {
	c, ok := a.colors[tag]
	if !ok || text == "" {
		return text
	}
	// Style each line on its own so a newline never sits inside an escape sequence.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = c.Sprint(line)
		}
	}
	return strings.Join(lines, "\n")
}

// For picks the ANSI renderer when enabled is true.
func For(enabled bool) Renderer {
	if enabled {
		return NewANSI()
	}
	return PlainRenderer{}
}

//   This project serves the daily menu of the TUM canteens as fixed-width text for terminals and scripts.
//   Mensa API Copyright (C) 2025 OpenSourceDUTH
//       This program is free software: you can redistribute it and/or modify
//       it under the terms of the GNU General Public License as published by
//       the Free Software Foundation, either version 3 of the License, or
//       (at your option) any later version.

//       This program is distributed in the hope that it will be useful,
//       but WITHOUT ANY WARRANTY; without even the implied warranty of
//       MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//       GNU General Public License for more details.

//       You should have received a copy of the GNU General Public License
//       along with this program.  If not, see <https://www.gnu.org/licenses/>.
