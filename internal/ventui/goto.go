package ventui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"

	"github.com/wesen/vents/pkg/lattice"
)

// openGoto opens the goto prompt seeded with the cursor position.
func (m Model) openGoto() (tea.Model, tea.Cmd) {
	m.GotoOpen = true
	m.Goto = textinput.New()
	m.Goto.Prompt = ""
	m.Goto.CharLimit = 24
	m.Goto.SetValue(m.Cursor.String())
	cmd := m.Goto.Focus()
	return m, cmd
}

// handleGotoKeys processes keys while the goto prompt is open.
func (m Model) handleGotoKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.GotoOpen = false
		m.Goto.Blur()
		return m, nil

	case "enter":
		m.GotoOpen = false
		m.Goto.Blur()
		p, err := lattice.ParsePoint(m.Goto.Value())
		if err != nil {
			m.Status = err.Error()
			return m, nil
		}
		g := m.Grid()
		if !g.InBounds(p.X, p.Y) {
			m.Status = fmt.Sprintf("%s is outside the %dx%d grid", p, g.LenX(), g.LenY())
			return m, nil
		}
		m.Cursor = p
		m.Status = ""
		return m.follow(), nil

	default:
		var cmd tea.Cmd
		m.Goto, cmd = m.Goto.Update(msg)
		return m, cmd
	}
}

// gotoLayer renders the open prompt as a centred modal.
func gotoLayer(m Model) *lipgloss.Layer {
	g := m.Grid()
	lines := []string{
		modalTitleStyle.Render("GOTO CELL"),
		"",
		modalLabelStyle.Render(fmt.Sprintf("x,y within %dx%d:", g.LenX(), g.LenY())),
		"  " + m.Goto.View(),
		"",
		modalHintStyle.Render("[enter] go  [esc] cancel"),
	}
	rendered := modalBoxStyle.Render(strings.Join(lines, "\n"))
	return centerLayer(rendered, m.Width, m.Height, "goto-modal")
}
