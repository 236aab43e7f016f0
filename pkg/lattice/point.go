// Package lattice provides the integer coordinate types shared by the
// grid and the rasterizer: points, directional steps, segments and the
// segment filters used to pick which segments get drawn.
//
// Coordinates are signed ints. Parsed coordinates lie in 0..MaxCoord, so
// stepping toward a smaller coordinate can never underflow and the grid
// covering any parsed input stays addressable.
package lattice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxCoord is the largest coordinate ParsePoint accepts.
const MaxCoord = 1<<16 - 1

// ErrBadPoint is returned by ParsePoint for a malformed "x,y" token.
var ErrBadPoint = errors.New("bad point")

// Point is a lattice coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// SameColumn reports whether p and q share an x coordinate.
func (p Point) SameColumn(q Point) bool {
	return p.X == q.X
}

// SameRow reports whether p and q share a y coordinate.
func (p Point) SameRow(q Point) bool {
	return p.Y == q.Y
}

// Eq reports whether p and q are the same lattice point.
func (p Point) Eq(q Point) bool {
	return p == q
}

// Add returns the vector p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// ParsePoint parses "x,y". Both components must be integers in
// 0..MaxCoord; surrounding whitespace is ignored.
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q has no comma", ErrBadPoint, s)
	}
	x, err := parseCoord(xs)
	if err != nil {
		return Point{}, fmt.Errorf("%w: x of %q: %v", ErrBadPoint, s, err)
	}
	y, err := parseCoord(ys)
	if err != nil {
		return Point{}, fmt.Errorf("%w: y of %q: %v", ErrBadPoint, s, err)
	}
	return Point{X: x, Y: y}, nil
}

func parseCoord(s string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
