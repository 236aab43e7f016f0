package ventui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

var (
	colorBG      = c("#080e0b")
	colorChrome  = c("#0a1510")
	colorPanelBG = c("#1a2a20")

	toolbarStyle = lipgloss.NewStyle().
			Background(colorChrome).
			Foreground(c("#00ffc8")).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(c("#666666"))

	statusStyle = lipgloss.NewStyle().
			Foreground(c("#ffcc00"))

	mapBGStyle = lipgloss.NewStyle().
			Background(colorBG)

	sepStyle = lipgloss.NewStyle().
			Foreground(c("#1a4a3a")).
			Background(colorBG)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(colorPanelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c("#336655")).
			Background(colorPanelBG)

	panelNameStyle = lipgloss.NewStyle().
			Foreground(c("#ddaa44")).
			Background(colorPanelBG)

	panelValStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(colorPanelBG)

	panelBGStyle = lipgloss.NewStyle().
			Background(colorPanelBG)

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(colorChrome).
			Bold(true)

	modalLabelStyle = lipgloss.NewStyle().
			Foreground(c("#ddaa44")).
			Background(colorChrome)

	modalHintStyle = lipgloss.NewStyle().
			Foreground(c("#336655")).
			Background(colorChrome).
			Italic(true)

	modalBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c("#00d4a0")).
			Background(colorChrome).
			Width(34).
			Padding(1, 2)
)
