// Package heatmap draws survey grids as styled text and as PNG images.
//
// Text output uses the diagram format of the survey: '.' for an untouched
// cell, the count for 1 through 9 and '+' above that. Each cell also gets
// a StyleKey by count bucket; at render time the caller supplies a
// map[StyleKey]lipgloss.Style, or nil for plain text.
package heatmap

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StyleKey identifies a visual style.
type StyleKey int

const (
	StyleEmpty StyleKey = iota
	StyleSingle
	StyleOverlap
	StyleHot
	StyleTrace
	StyleCursor
	StyleAxis
)

// Cell is one glyph of a canvas.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Canvas is a W by H block of styled glyphs, stored row-major.
type Canvas struct {
	W, H  int
	cells []Cell
}

// NewCanvas returns a canvas filled with blanks in StyleEmpty.
func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	c := &Canvas{W: w, H: h, cells: make([]Cell, w*h)}
	c.Fill(' ', StyleEmpty)
	return c
}

// InBounds reports whether (x, y) is on the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.W && y >= 0 && y < c.H
}

// At returns the cell at (x, y); off-canvas reads return a zero Cell.
func (c *Canvas) At(x, y int) Cell {
	if !c.InBounds(x, y) {
		return Cell{}
	}
	return c.cells[y*c.W+x]
}

// Set writes one glyph. Off-canvas writes are ignored: the viewer paints
// whatever part of the survey falls inside its window.
func (c *Canvas) Set(x, y int, ch rune, style StyleKey) {
	if c.InBounds(x, y) {
		c.cells[y*c.W+x] = Cell{Ch: ch, Style: style}
	}
}

// SetStyle restyles a cell without changing its glyph.
func (c *Canvas) SetStyle(x, y int, style StyleKey) {
	if c.InBounds(x, y) {
		c.cells[y*c.W+x].Style = style
	}
}

// SetString writes s from (x, y) rightwards, clipping at the edge.
func (c *Canvas) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		c.Set(x+i, y, ch, style)
		i++
	}
}

// Fill resets every cell.
func (c *Canvas) Fill(ch rune, style StyleKey) {
	for i := range c.cells {
		c.cells[i] = Cell{Ch: ch, Style: style}
	}
}

// Render converts the canvas into a string, rows joined with "\n".
//
// Consecutive cells with the same StyleKey are merged into runs and
// rendered with a single Style.Render() call per run. A nil map, or a key
// missing from it, renders plain text.
func (c *Canvas) Render(styles map[StyleKey]lipgloss.Style) string {
	if c.W == 0 || c.H == 0 {
		return ""
	}

	lines := make([]string, c.H)
	chunk := make([]rune, 0, c.W)
	for y := 0; y < c.H; y++ {
		var sb strings.Builder
		row := c.cells[y*c.W : (y+1)*c.W]

		runStyle := row[0].Style
		chunk = chunk[:0]
		for x := 0; x <= c.W; x++ {
			// x == W flushes the last run
			if x == c.W || row[x].Style != runStyle {
				if s, ok := styles[runStyle]; ok {
					sb.WriteString(s.Render(string(chunk)))
				} else {
					sb.WriteString(string(chunk))
				}
				if x == c.W {
					break
				}
				chunk = chunk[:0]
				runStyle = row[x].Style
			}
			chunk = append(chunk, row[x].Ch)
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
