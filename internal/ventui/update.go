package ventui

import (
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/vents/pkg/lattice"
)

const panStep = 3

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m = m.follow()

	case tea.KeyMsg:
		if m.GotoOpen {
			return m.handleGotoKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft {
			m = m.handleClick(msg.Mouse())
		}
	}

	return m, nil
}

// handleKeys processes keyboard input outside the goto prompt.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Camera panning
	case "up":
		m.CamY -= panStep
	case "down":
		m.CamY += panStep
	case "left":
		m.CamX -= panStep
	case "right":
		m.CamX += panStep

	// Cursor
	case "h":
		m = m.moveCursor(-1, 0)
	case "j":
		m = m.moveCursor(0, 1)
	case "k":
		m = m.moveCursor(0, -1)
	case "l":
		m = m.moveCursor(1, 0)

	case "p":
		m.ShowAll = !m.ShowAll
		m.Status = fmt.Sprintf("showing %s segments", m.patternName())

	case "n":
		m = m.traceStep(1)
	case "N":
		m = m.traceStep(-1)

	case "g":
		return m.openGoto()

	case "esc", "escape":
		m.Trace = -1
		m.Status = ""
	}

	return m, nil
}

// moveCursor shifts the cursor, stopping at the grid edge.
func (m Model) moveCursor(dx, dy int) Model {
	g := m.Grid()
	m.Cursor.X = min(max(m.Cursor.X+dx, 0), g.LenX()-1)
	m.Cursor.Y = min(max(m.Cursor.Y+dy, 0), g.LenY()-1)
	return m.follow()
}

// traceStep highlights the next or previous segment and moves the cursor
// to its start.
func (m Model) traceStep(dir int) Model {
	n := len(m.segments)
	if n == 0 {
		return m
	}
	switch {
	case m.Trace < 0 && dir > 0:
		m.Trace = 0
	case m.Trace < 0:
		m.Trace = n - 1
	default:
		m.Trace = ((m.Trace+dir)%n + n) % n
	}
	seg := m.segments[m.Trace]
	m.Cursor = seg.P0
	m.Status = fmt.Sprintf("segment %d/%d: %s (%s)", m.Trace+1, n, seg, seg.Shape())
	return m.follow()
}

// follow scrolls the camera until the cursor is inside the map.
func (m Model) follow() Model {
	r := newFrame(m.Width, m.Height).Map
	if r.Empty() {
		return m
	}
	if m.Cursor.X < m.CamX {
		m.CamX = m.Cursor.X
	} else if m.Cursor.X >= m.CamX+r.Dx() {
		m.CamX = m.Cursor.X - r.Dx() + 1
	}
	if m.Cursor.Y < m.CamY {
		m.CamY = m.Cursor.Y
	} else if m.Cursor.Y >= m.CamY+r.Dy() {
		m.CamY = m.Cursor.Y - r.Dy() + 1
	}
	return m
}

// handleClick moves the cursor to the clicked cell.
func (m Model) handleClick(mouse tea.Mouse) Model {
	r := newFrame(m.Width, m.Height).Map
	if !image.Pt(mouse.X, mouse.Y).In(r) {
		return m
	}
	p := lattice.Pt(mouse.X-r.Min.X+m.CamX, mouse.Y-r.Min.Y+m.CamY)
	if m.Grid().InBounds(p.X, p.Y) {
		m.Cursor = p
	}
	return m
}
