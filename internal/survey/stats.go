package survey

import (
	"github.com/wesen/vents/pkg/lattice"
)

// Stats summarises a segment list and the grid it produced.
type Stats struct {
	Segments   int                  `json:"segments"`
	ByKind     map[lattice.Kind]int `json:"-"`
	Vertical   int                  `json:"vertical"`
	Horizontal int                  `json:"horizontal"`
	Diagonal   int                  `json:"diagonal"`
	Skewed     int                  `json:"skewed"`
	LenX       int                  `json:"lenX"`
	LenY       int                  `json:"lenY"`
	Hottest    lattice.Point        `json:"-"`
	Peak       Cell                 `json:"peak"`
}

// Stats classifies the survey's segments and finds the most covered cell.
// The first cell in row-major order wins ties.
func (s *Survey) Stats() Stats {
	st := Stats{
		Segments: len(s.segments),
		ByKind:   make(map[lattice.Kind]int),
		LenX:     s.grid.LenX(),
		LenY:     s.grid.LenY(),
	}
	for _, seg := range s.segments {
		st.ByKind[seg.Shape()]++
	}
	st.Vertical = st.ByKind[lattice.Vertical]
	st.Horizontal = st.ByKind[lattice.Horizontal]
	st.Diagonal = st.ByKind[lattice.Diagonal]
	st.Skewed = st.ByKind[lattice.Skewed]

	for p, v := range s.grid.Cells() {
		if v > st.Peak {
			st.Peak, st.Hottest = v, p
		}
	}
	return st
}
