package raster

import (
	"iter"

	"github.com/wesen/vents/pkg/lattice"
)

// Walk yields the points of s from P0 to P1 inclusive. The walk is capped
// at s.Len() points, so a skewed segment ends early instead of running
// forever; its last point is then not P1.
func Walk(s lattice.Segment) iter.Seq[lattice.Point] {
	return func(yield func(lattice.Point) bool) {
		d := lattice.StepToward(s.P0, s.P1)
		p := s.P0
		for range s.Len() {
			if !yield(p) {
				return
			}
			if p == s.P1 {
				return
			}
			p = p.Add(d)
		}
	}
}

// Points returns the points of s from P0 to P1 inclusive.
func Points(s lattice.Segment) []lattice.Point {
	pts := make([]lattice.Point, 0, s.Len())
	for p := range Walk(s) {
		pts = append(pts, p)
	}
	return pts
}

// LineChar returns the box-drawing character for a segment running in
// direction s.P0 → s.P1.
func LineChar(s lattice.Segment) rune {
	dx := s.P1.X - s.P0.X
	dy := s.P1.Y - s.P0.Y
	switch {
	case dx == 0 && dy == 0:
		return '•'
	case dx == 0:
		return '│'
	case dy == 0:
		return '─'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}
