package ventui

import (
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/vents/internal/heatmap"
	"github.com/wesen/vents/pkg/raster"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// render composes every layer into the final screen string.
func (m Model) render() string {
	f := newFrame(m.Width, m.Height)

	layers := []*lipgloss.Layer{
		fillLayer(f.Toolbar, toolbarStyle, "toolbar-bg"),
		fillLayer(f.Map, mapBGStyle, "map-bg"),
		fillLayer(f.Footer, footerStyle, "footer-bg"),
		barLayer(m.toolbarText(), f.Toolbar, toolbarStyle, "toolbar"),
		barLayer(m.footerText(), f.Footer, footerStyle, "footer"),
		mapLayer(m, f.Map),
	}
	if m.Status != "" && !f.Footer.Empty() {
		status := " " + m.Status + " "
		x := max(f.Footer.Max.X-lipgloss.Width(status), 0)
		layers = append(layers,
			lipgloss.NewLayer(statusStyle.Render(status)).X(x).Y(f.Footer.Min.Y).Z(2).ID("status"))
	}
	if !f.Panel.Empty() {
		layers = append(layers,
			separatorLayer(f.Separator, f.Panel.Min.Y, f.Panel.Dy(), sepStyle),
			fillLayer(f.Panel, panelBGStyle, "panel-bg"),
			panelLayer(m, f.Panel),
		)
	}
	if m.GotoOpen {
		layers = append(layers, gotoLayer(m))
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)
	return canvas.Render()
}

func (m Model) toolbarText() string {
	return fmt.Sprintf(
		" VENTS  │  %s  │  straight %d  all %d  │  ←↑↓→ pan  [p]attern [g]oto [n]ext  │  [q]uit",
		m.patternName(), m.result.Straight, m.result.All,
	)
}

func (m Model) footerText() string {
	g := m.Grid()
	count := 0
	if g.InBounds(m.Cursor.X, m.Cursor.Y) {
		count = int(g.Get(m.Cursor.X, m.Cursor.Y))
	}
	return fmt.Sprintf(" Cursor: (%s)  Count: %d  Cam: (%d,%d)  Grid: %dx%d",
		m.Cursor, count, m.CamX, m.CamY, g.LenX(), g.LenY())
}

// mapLayer paints the visible window of the grid, the traced segment and
// the cursor.
func mapLayer(m Model, r image.Rectangle) *lipgloss.Layer {
	if r.Empty() {
		return lipgloss.NewLayer("").ID("map")
	}
	window := image.Rect(m.CamX, m.CamY, m.CamX+r.Dx(), m.CamY+r.Dy())
	cv := heatmap.Paint(m.Grid(), window)

	if m.Trace >= 0 && m.Trace < len(m.segments) {
		seg := m.segments[m.Trace]
		ch := raster.LineChar(seg)
		for p := range raster.Walk(seg) {
			cv.Set(p.X-m.CamX, p.Y-m.CamY, ch, heatmap.StyleTrace)
		}
	}
	cv.SetStyle(m.Cursor.X-m.CamX, m.Cursor.Y-m.CamY, heatmap.StyleCursor)

	return lipgloss.NewLayer(cv.Render(heatmap.Styles)).
		X(r.Min.X).Y(r.Min.Y).Z(1).ID("map")
}
