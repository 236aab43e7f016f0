package ventui

import (
	"fmt"
	"image"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wesen/vents/internal/heatmap"
)

// padLine right-pads an already styled line with the panel background.
func padLine(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += panelBGStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}

func stat(name string, v any) string {
	return panelNameStyle.Render(fmt.Sprintf("  %-11s", name)) +
		panelValStyle.Render(fmt.Sprint(v))
}

// panelLines returns the side panel rows, unpadded.
func (m Model) panelLines(width int) []string {
	st := m.stats
	rule := panelDimStyle.Render(strings.Repeat("─", max(width-2, 0)))
	lines := []string{
		panelTitleStyle.Render("SURVEY"),
		rule,
		stat("grid", fmt.Sprintf("%dx%d", st.LenX, st.LenY)),
		stat("segments", st.Segments),
		stat("vertical", st.Vertical),
		stat("horizontal", st.Horizontal),
		stat("diagonal", st.Diagonal),
	}
	if st.Skewed > 0 {
		lines = append(lines, stat("skewed", st.Skewed))
	}
	lines = append(lines,
		"",
		panelTitleStyle.Render("OVERLAPS"),
		rule,
		stat("straight", m.result.Straight),
		stat("all", m.result.All),
		stat("peak", fmt.Sprintf("%d at %s", st.Peak, st.Hottest)),
		"",
		panelTitleStyle.Render("LEGEND"),
		rule,
		"  "+legend(),
		"",
		panelTitleStyle.Render("KEYS"),
		rule,
		panelDimStyle.Render("  ←↑↓→ pan    hjkl cursor"),
		panelDimStyle.Render("  p    straight / all"),
		panelDimStyle.Render("  n N  trace segment"),
		panelDimStyle.Render("  g    goto   esc clear"),
		panelDimStyle.Render("  q    quit"),
	)
	return lines
}

// legend shows one sample glyph per count bucket.
func legend() string {
	var sb strings.Builder
	for _, v := range []int{0, 1, 2, 3} {
		st := heatmap.Styles[heatmap.StyleFor(v)]
		sb.WriteString(st.Render(string(heatmap.Glyph(v))))
		sb.WriteString(panelBGStyle.Render(" "))
	}
	sb.WriteString(panelDimStyle.Render("0 1 2 3+"))
	return sb.String()
}

// panelLayer renders the side panel into r, clipping rows that do not fit.
func panelLayer(m Model, r image.Rectangle) *lipgloss.Layer {
	lines := m.panelLines(r.Dx())
	if len(lines) > r.Dy() {
		lines = lines[:r.Dy()]
	}
	for i, l := range lines {
		lines[i] = padLine(panelBGStyle.Render(" ")+l, r.Dx())
	}
	return lipgloss.NewLayer(strings.Join(lines, "\n")).
		X(r.Min.X).Y(r.Min.Y).Z(1).ID("panel")
}
