package heatmap

import (
	"image"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/wesen/vents/pkg/grid"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

var (
	colorBG      = c("#080e0b")
	colorEmpty   = c("#1a3a2a")
	colorSingle  = c("#00d4a0")
	colorOverlap = c("#ffcc00")
	colorHot     = c("#ff6600")
)

// Styles is the default palette, CRT green with warm overlaps.
var Styles = map[StyleKey]lipgloss.Style{
	StyleEmpty:   lipgloss.NewStyle().Foreground(colorEmpty).Background(colorBG),
	StyleSingle:  lipgloss.NewStyle().Foreground(colorSingle).Background(colorBG),
	StyleOverlap: lipgloss.NewStyle().Foreground(colorOverlap).Background(colorBG).Bold(true),
	StyleHot:     lipgloss.NewStyle().Foreground(colorHot).Background(colorBG).Bold(true),
	StyleTrace:   lipgloss.NewStyle().Foreground(c("#00ffee")).Background(c("#0a1a15")).Bold(true),
	StyleCursor:  lipgloss.NewStyle().Foreground(c("#080e0b")).Background(c("#00ffc8")).Bold(true),
	StyleAxis:    lipgloss.NewStyle().Foreground(c("#336655")).Background(colorBG),
}

// Glyph returns the diagram character for a count.
func Glyph[T grid.Number](v T) rune {
	switch {
	case v <= 0:
		return '.'
	case v > 9:
		return '+'
	default:
		return rune('0' + int(v))
	}
}

// StyleFor returns the style bucket for a count.
func StyleFor[T grid.Number](v T) StyleKey {
	switch {
	case v <= 0:
		return StyleEmpty
	case v == 1:
		return StyleSingle
	case v == 2:
		return StyleOverlap
	default:
		return StyleHot
	}
}

// Paint draws the part of g inside window onto a canvas the size of the
// window. Window coordinates are grid coordinates; parts of the window
// outside the grid stay blank.
func Paint[T grid.Number](g *grid.Grid[T], window image.Rectangle) *Canvas {
	cv := NewCanvas(window.Dx(), window.Dy())
	for cy := 0; cy < cv.H; cy++ {
		gy := window.Min.Y + cy
		if gy < 0 || gy >= g.LenY() {
			continue
		}
		row := g.Line(gy)
		for cx := 0; cx < cv.W; cx++ {
			gx := window.Min.X + cx
			if gx < 0 || gx >= g.LenX() {
				continue
			}
			v := row[gx]
			cv.Set(cx, cy, Glyph(v), StyleFor(v))
		}
	}
	return cv
}

// Bounds returns the rectangle covering all of g.
func Bounds[T grid.Number](g *grid.Grid[T]) image.Rectangle {
	return image.Rect(0, 0, g.LenX(), g.LenY())
}

// Text renders all of g. Pass nil styles for plain output.
func Text[T grid.Number](g *grid.Grid[T], styles map[StyleKey]lipgloss.Style) string {
	return Paint(g, Bounds(g)).Render(styles)
}
