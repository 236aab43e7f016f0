// Package grid provides a dense two-dimensional grid of numeric cells
// stored in one flat, row-major slice.
//
// x selects the column and y the row: cell (x, y) lives at index
// y*LenX + x. Consecutive x values are adjacent in memory, rows are
// strided. The dimensions are fixed at construction.
//
// Addressing outside the grid panics with an *IndexError. Callers size
// the grid to cover every coordinate they will touch before accumulating.
package grid

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the cell constraint: any type with in-place addition.
type Number interface {
	constraints.Integer | constraints.Float
}

// ErrIndexOutOfBounds is wrapped by every *IndexError.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// IndexError is the panic value for an out-of-range access.
type IndexError struct {
	X, Y       int
	LenX, LenY int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("grid: (%d,%d) outside %dx%d", e.X, e.Y, e.LenX, e.LenY)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }

// Grid is a fixed-size 2D array of T.
type Grid[T Number] struct {
	flat       []T
	lenX, lenY int
}

// New creates a lenX by lenY grid with every cell set to init.
// Negative dimensions are treated as zero. It panics if lenX*lenY
// overflows int.
func New[T Number](lenX, lenY int, init T) *Grid[T] {
	lenX = max(lenX, 0)
	lenY = max(lenY, 0)
	if Overflows(lenX, lenY) {
		panic(fmt.Sprintf("grid: %dx%d cells overflow int", lenX, lenY))
	}
	g := &Grid[T]{flat: make([]T, lenX*lenY), lenX: lenX, lenY: lenY}
	if init != 0 {
		for i := range g.flat {
			g.flat[i] = init
		}
	}
	return g
}

// Overflows reports whether a lenX by lenY grid has more cells than an int
// can count. Both dimensions must be non-negative.
func Overflows(lenX, lenY int) bool {
	return lenY != 0 && lenX > math.MaxInt/lenY
}

// FromSlice wraps cells as a lenX by lenY grid without copying. Cells past
// lenX*lenY are discarded. It panics if cells is too short.
func FromSlice[T Number](lenX, lenY int, cells []T) *Grid[T] {
	if lenX < 0 || lenY < 0 || Overflows(lenX, lenY) || len(cells) < lenX*lenY {
		panic(fmt.Sprintf("grid: %d cells cannot fill %dx%d", len(cells), lenX, lenY))
	}
	n := lenX * lenY
	return &Grid[T]{flat: cells[:n:n], lenX: lenX, lenY: lenY}
}

// LenX returns the number of columns.
func (g *Grid[T]) LenX() int { return g.lenX }

// LenY returns the number of rows.
func (g *Grid[T]) LenY() int { return g.lenY }

// Size returns LenX * LenY.
func (g *Grid[T]) Size() int { return len(g.flat) }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.lenX && y >= 0 && y < g.lenY
}

// ── Single cells ──

// Get returns the value at (x, y). It panics if either index is out of
// bounds.
func (g *Grid[T]) Get(x, y int) T {
	return g.flat[g.index(x, y)]
}

// Ptr returns a pointer to the cell at (x, y) for in-place updates.
// It panics if either index is out of bounds.
func (g *Grid[T]) Ptr(x, y int) *T {
	return &g.flat[g.index(x, y)]
}

// Set overwrites the cell at (x, y).
func (g *Grid[T]) Set(x, y int, v T) {
	g.flat[g.index(x, y)] = v
}

// IncrementBy adds delta to the cell at (x, y).
func (g *Grid[T]) IncrementBy(x, y int, delta T) {
	g.flat[g.index(x, y)] += delta
}

// Wrap returns the value at (x mod LenX, y mod LenY). For a 10x10 grid,
// (10, 5) reads (0, 5) and (15, 15) reads (5, 5).
func (g *Grid[T]) Wrap(x, y int) T {
	return g.Get(mod(x, g.lenX), mod(y, g.lenY))
}

// WrapX wraps x only. It panics if y is out of bounds.
func (g *Grid[T]) WrapX(x, y int) T {
	return g.Get(mod(x, g.lenX), y)
}

// WrapY wraps y only. It panics if x is out of bounds.
func (g *Grid[T]) WrapY(x, y int) T {
	return g.Get(x, mod(y, g.lenY))
}

// ── Rows ──

// Line returns row y. The slice shares storage with the grid.
func (g *Grid[T]) Line(y int) []T {
	if y < 0 || y >= g.lenY {
		g.outOfBounds(0, y)
	}
	start := y * g.lenX
	return g.flat[start : start+g.lenX : start+g.lenX]
}

// LineInner returns row y without border cells on either side.
func (g *Grid[T]) LineInner(y, border int) []T {
	row := g.Line(y)
	if 2*border >= len(row) {
		return row[:0]
	}
	return row[border : len(row)-border]
}

// Reset sets every cell to v.
func (g *Grid[T]) Reset(v T) {
	for i := range g.flat {
		g.flat[i] = v
	}
}

// Clone returns an independent copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	flat := make([]T, len(g.flat))
	copy(flat, g.flat)
	return &Grid[T]{flat: flat, lenX: g.lenX, lenY: g.lenY}
}

// index maps (x, y) to the flat offset, panicking on out-of-range input.
// Without the per-axis check an x past the row end would silently read
// the next row.
func (g *Grid[T]) index(x, y int) int {
	if !g.InBounds(x, y) {
		g.outOfBounds(x, y)
	}
	return g.lenX*y + x
}

func (g *Grid[T]) outOfBounds(x, y int) {
	panic(&IndexError{X: x, Y: y, LenX: g.lenX, LenY: g.lenY})
}

// mod returns a non-negative modulus (Go's % can return negative for negative operands).
func mod(a, m int) int {
	if m == 0 {
		return a
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
