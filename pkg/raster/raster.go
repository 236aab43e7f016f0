// Package raster draws lattice segments into a grid by incrementing every
// cell the segment covers.
//
// Only vertical, horizontal and exact 45° diagonal segments are
// supported. A skewed segment never hits its far endpoint exactly, so it
// keeps stepping until it leaves the grid and the grid panics.
package raster

import (
	"github.com/wesen/vents/pkg/grid"
	"github.com/wesen/vents/pkg/lattice"
)

// Rasterize increments every cell on s by one if s belongs to the
// requested class: straight segments when diagonal is false, diagonal
// segments when it is true. It reports whether the grid was touched.
func Rasterize[T grid.Number](g *grid.Grid[T], s lattice.Segment, diagonal bool) bool {
	switch kind := s.Kind(); {
	case diagonal && kind == lattice.Diagonal:
		fillDiagonal(g, s.P0, s.P1)
	case !diagonal && kind == lattice.Vertical:
		fillColumn(g, s.P0, s.P1)
	case !diagonal && kind == lattice.Horizontal:
		fillRow(g, s.P0, s.P1)
	default:
		return false
	}
	return true
}

// RasterizeAll calls Rasterize for each segment and returns how many were
// drawn.
func RasterizeAll[T grid.Number](g *grid.Grid[T], segs []lattice.Segment, diagonal bool) int {
	n := 0
	for _, s := range segs {
		if Rasterize(g, s, diagonal) {
			n++
		}
	}
	return n
}

// Draw increments every cell on s regardless of its class, walking from
// P0 with a zero step on any fixed axis.
func Draw[T grid.Number](g *grid.Grid[T], s lattice.Segment) {
	d := lattice.StepToward(s.P0, s.P1)
	p := s.P0
	g.IncrementBy(p.X, p.Y, 1)
	for p != s.P1 {
		p = p.Add(d)
		g.IncrementBy(p.X, p.Y, 1)
	}
}

// fillColumn holds x at p0.X and covers y over [min, max].
func fillColumn[T grid.Number](g *grid.Grid[T], p0, p1 lattice.Point) {
	x := p0.X
	y0, y1 := minMax(p0.Y, p1.Y)
	for y := y0; y <= y1; y++ {
		g.IncrementBy(x, y, 1)
	}
}

// fillRow holds y at p0.Y and covers x over [min, max].
func fillRow[T grid.Number](g *grid.Grid[T], p0, p1 lattice.Point) {
	y := p0.Y
	x0, x1 := minMax(p0.X, p1.X)
	for x := x0; x <= x1; x++ {
		g.IncrementBy(x, y, 1)
	}
}

// fillDiagonal steps both axes by one from p0 and stops when the current
// point equals p1.
func fillDiagonal[T grid.Number](g *grid.Grid[T], p0, p1 lattice.Point) {
	dx := lattice.Step(p0.X, p1.X, 1)
	dy := lattice.Step(p0.Y, p1.Y, 1)

	x, y := p0.X, p0.Y
	g.IncrementBy(x, y, 1)
	for {
		x = lattice.Advance(x, dx)
		y = lattice.Advance(y, dy)
		g.IncrementBy(x, y, 1)
		if x == p1.X && y == p1.Y {
			break
		}
	}
}

func minMax(a, b int) (int, int) {
	return min(a, b), max(a, b)
}
