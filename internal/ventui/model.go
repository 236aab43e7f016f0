// Package ventui is an interactive terminal viewer for a finished survey.
//
// The map shows the overlap counts with the heatmap palette. The cursor
// reads single cells, the camera pans over grids larger than the terminal,
// and one segment at a time can be traced over the counts.
package ventui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"

	"github.com/wesen/vents/internal/survey"
	"github.com/wesen/vents/pkg/grid"
	"github.com/wesen/vents/pkg/lattice"
)

// Model is the viewer state.
type Model struct {
	Width, Height int
	CamX, CamY    int
	Cursor        lattice.Point

	// ShowAll selects the cumulative grid; otherwise only straight
	// segments are shown.
	ShowAll bool

	// Trace is the index of the highlighted segment, or -1.
	Trace int

	// Goto prompt
	GotoOpen bool
	Goto     textinput.Model

	Status string

	segments []lattice.Segment
	straight *grid.Grid[survey.Cell]
	all      *grid.Grid[survey.Cell]
	result   survey.Result
	stats    survey.Stats
}

// NewModel builds a viewer over s. Both passes of s must already have run;
// res is what they returned.
func NewModel(s *survey.Survey, res survey.Result) Model {
	g := s.Grid()
	return Model{
		ShowAll:  true,
		Trace:    -1,
		segments: s.Segments(),
		straight: survey.Count(s.Segments(), lattice.Straight, g.LenX(), g.LenY()),
		all:      g,
		result:   res,
		stats:    s.Stats(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Grid returns the grid currently on screen.
func (m Model) Grid() *grid.Grid[survey.Cell] {
	if m.ShowAll {
		return m.all
	}
	return m.straight
}

// patternName labels the grid on screen.
func (m Model) patternName() string {
	if m.ShowAll {
		return "ALL"
	}
	return "STRAIGHT"
}
