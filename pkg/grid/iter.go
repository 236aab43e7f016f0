package grid

import (
	"iter"

	"github.com/wesen/vents/pkg/lattice"
)

// All yields every cell in row-major order. The sequence is finite and
// may be ranged over any number of times.
func (g *Grid[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.flat {
			if !yield(v) {
				return
			}
		}
	}
}

// Cells yields every cell with its coordinate, row-major.
func (g *Grid[T]) Cells() iter.Seq2[lattice.Point, T] {
	return func(yield func(lattice.Point, T) bool) {
		for i, v := range g.flat {
			if !yield(lattice.Pt(i%g.lenX, i/g.lenX), v) {
				return
			}
		}
	}
}

// Rows yields each row index with its row view.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for y := 0; y < g.lenY; y++ {
			if !yield(y, g.Line(y)) {
				return
			}
		}
	}
}

// Inner yields the cells that are not within border cells of an edge,
// row-major.
func (g *Grid[T]) Inner(border int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for y := border; y < g.lenY-border; y++ {
			for _, v := range g.LineInner(y, border) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Count returns how many cells satisfy pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.flat {
		if pred(v) {
			n++
		}
	}
	return n
}

// Max returns the largest cell value, or the zero value for an empty grid.
func (g *Grid[T]) Max() T {
	var m T
	for i, v := range g.flat {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}

// NewBordered builds a grid of rows lenX cells wide, surrounded by a
// one-cell frame of border. cells are consumed row by row; an incomplete
// last row is padded with border.
func NewBordered[T Number](lenX int, border T, cells iter.Seq[T]) *Grid[T] {
	w := lenX + 2
	flat := make([]T, 0, 2*w)
	for range w { // top border
		flat = append(flat, border)
	}

	col := 0
	for v := range cells {
		if col == 0 {
			flat = append(flat, border) // left border
		}
		flat = append(flat, v)
		col++
		if col == lenX {
			flat = append(flat, border) // right border
			col = 0
		}
	}
	if col > 0 {
		for ; col < lenX; col++ {
			flat = append(flat, border)
		}
		flat = append(flat, border)
	}

	for range w { // bottom border
		flat = append(flat, border)
	}
	return FromSlice(w, len(flat)/w, flat)
}
