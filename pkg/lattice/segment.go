package lattice

import (
	"errors"
	"fmt"
)

// ErrMalformedSegment marks a segment that is neither axis-aligned nor an
// exact 45° diagonal.
var ErrMalformedSegment = errors.New("malformed segment")

// Kind classifies a segment by the axes its endpoints share.
type Kind int

const (
	Vertical Kind = iota
	Horizontal
	Diagonal
	Skewed
)

var kindNames = map[Kind]string{
	Vertical:   "vertical",
	Horizontal: "horizontal",
	Diagonal:   "diagonal",
	Skewed:     "skewed",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Segment is a line between two lattice points, P0 and P1 inclusive.
type Segment struct {
	P0, P1 Point
}

// Seg is shorthand for Segment{P0: Pt(x0, y0), P1: Pt(x1, y1)}.
func Seg(x0, y0, x1, y1 int) Segment {
	return Segment{P0: Pt(x0, y0), P1: Pt(x1, y1)}
}

// Pairs groups a flat point sequence into segments: points 0 and 1 form
// the first segment, 2 and 3 the second, and so on. A trailing unpaired
// point is dropped.
func Pairs(points []Point) []Segment {
	segs := make([]Segment, 0, len(points)/2)
	for i := 0; i+1 < len(points); i += 2 {
		segs = append(segs, Segment{P0: points[i], P1: points[i+1]})
	}
	return segs
}

// Kind classifies s. Same column wins over same row, so a single-point
// segment is Vertical. Anything else is Diagonal; use Validate to tell a
// true 45° diagonal from a skewed line.
func (s Segment) Kind() Kind {
	switch {
	case s.P0.SameColumn(s.P1):
		return Vertical
	case s.P0.SameRow(s.P1):
		return Horizontal
	default:
		return Diagonal
	}
}

// Straight reports whether s is vertical or horizontal.
func (s Segment) Straight() bool {
	return s.P0.SameColumn(s.P1) || s.P0.SameRow(s.P1)
}

// Shape is like Kind but reports Skewed for non-45° diagonals.
func (s Segment) Shape() Kind {
	k := s.Kind()
	if k == Diagonal && abs(s.P1.X-s.P0.X) != abs(s.P1.Y-s.P0.Y) {
		return Skewed
	}
	return k
}

// Validate returns ErrMalformedSegment if s cannot be rasterized.
func (s Segment) Validate() error {
	if s.Shape() == Skewed {
		return fmt.Errorf("%w: %s", ErrMalformedSegment, s)
	}
	return nil
}

// Len returns the number of lattice points on s, endpoints included.
// For skewed segments this is the Chebyshev length plus one.
func (s Segment) Len() int {
	return max(abs(s.P1.X-s.P0.X), abs(s.P1.Y-s.P0.Y)) + 1
}

func (s Segment) String() string {
	return s.P0.String() + " -> " + s.P1.String()
}

// Bounds returns the grid dimensions needed to address every point: the
// largest x and y plus one. Empty input yields 0, 0.
func Bounds(points []Point) (lenX, lenY int) {
	if len(points) == 0 {
		return 0, 0
	}
	for _, p := range points {
		lenX = max(lenX, p.X)
		lenY = max(lenY, p.Y)
	}
	// +1 because coordinates start at 0
	return lenX + 1, lenY + 1
}

// SegmentBounds is Bounds over every endpoint of segs.
func SegmentBounds(segs []Segment) (lenX, lenY int) {
	pts := make([]Point, 0, 2*len(segs))
	for _, s := range segs {
		pts = append(pts, s.P0, s.P1)
	}
	return Bounds(pts)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
