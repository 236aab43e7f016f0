package ventui

import (
	"image"
	"strings"

	"charm.land/lipgloss/v2"
)

const (
	panelWidth  = 30
	minMapWidth = 16
)

// frame is the screen split: a toolbar row, a footer row, and between them
// the map with the side panel to its right. The panel and its one-column
// separator are dropped when the terminal is too narrow for both.
type frame struct {
	Toolbar, Footer, Map, Panel image.Rectangle
	Separator                   int
}

func newFrame(w, h int) frame {
	f := frame{
		Toolbar:   clampRect(image.Rect(0, 0, w, 1)),
		Footer:    clampRect(image.Rect(0, h-1, w, h)),
		Separator: -1,
	}
	mapW := w
	if w >= panelWidth+1+minMapWidth {
		mapW = w - panelWidth - 1
		f.Separator = mapW
		f.Panel = clampRect(image.Rect(mapW+1, 1, w, h-1))
	}
	f.Map = clampRect(image.Rect(0, 1, mapW, h-1))
	return f
}

// clampRect empties rectangles with no area.
func clampRect(r image.Rectangle) image.Rectangle {
	if r.Min.X < 0 || r.Min.Y < 0 || r.Dx() <= 0 || r.Dy() <= 0 {
		return image.Rectangle{}
	}
	return r
}

// fillLayer paints r with blanks in style.
func fillLayer(r image.Rectangle, style lipgloss.Style, id string) *lipgloss.Layer {
	if r.Empty() {
		return lipgloss.NewLayer("").ID(id)
	}
	rows := make([]string, r.Dy())
	for i := range rows {
		rows[i] = strings.Repeat(" ", r.Dx())
	}
	return lipgloss.NewLayer(style.Render(strings.Join(rows, "\n"))).
		X(r.Min.X).Y(r.Min.Y).Z(0).ID(id)
}

// barLayer renders a single-row bar across r, truncating content.
func barLayer(content string, r image.Rectangle, style lipgloss.Style, id string) *lipgloss.Layer {
	if r.Empty() {
		return lipgloss.NewLayer("").ID(id)
	}
	if runes := []rune(content); len(runes) > r.Dx() {
		content = string(runes[:r.Dx()])
	}
	return lipgloss.NewLayer(style.Width(r.Dx()).Render(content)).
		X(r.Min.X).Y(r.Min.Y).Z(1).ID(id)
}

// separatorLayer draws a vertical rule at column x.
func separatorLayer(x, y, height int, style lipgloss.Style) *lipgloss.Layer {
	rows := make([]string, max(height, 0))
	for i := range rows {
		rows[i] = "│"
	}
	return lipgloss.NewLayer(style.Render(strings.Join(rows, "\n"))).
		X(x).Y(y).Z(1).ID("separator")
}

// centerLayer places rendered content in the middle of a w by h screen.
func centerLayer(rendered string, w, h int, id string) *lipgloss.Layer {
	cx := max((w-lipgloss.Width(rendered))/2, 0)
	cy := max((h-lipgloss.Height(rendered))/2, 0)
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID(id)
}
