// Package survey counts the lattice points where vent lines overlap.
//
// A Survey draws every segment into one grid in two passes. The straight
// pass draws vertical and horizontal segments; the diagonal pass then adds
// the diagonal segments on top of what the straight pass left behind. The
// grid is never cleared between passes, so the second count covers all
// segments, not diagonals alone.
package survey

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/wesen/vents/pkg/grid"
	"github.com/wesen/vents/pkg/lattice"
	"github.com/wesen/vents/pkg/raster"
)

// ErrNoSegments is returned by New for an empty survey.
var ErrNoSegments = errors.New("no segments")

// Cell is the counter type stored in the survey grid.
type Cell = uint16

// Result holds the overlap count after each pass.
type Result struct {
	Straight int `json:"straight"`
	All      int `json:"all"`
}

// Survey owns the grid and the segment list for one run.
type Survey struct {
	segments []lattice.Segment
	grid     *grid.Grid[Cell]
	log      *slog.Logger

	lenX, lenY int
	strict     bool
	cellLimit  int
}

// Option configures a Survey.
type Option func(*Survey)

// WithLogger sets the logger used to report pass progress.
func WithLogger(l *slog.Logger) Option {
	return func(s *Survey) { s.log = l }
}

// WithGrid fixes the grid dimensions instead of deriving them from the
// segment endpoints.
func WithGrid(lenX, lenY int) Option {
	return func(s *Survey) { s.lenX, s.lenY = lenX, lenY }
}

// WithStrict makes New reject skewed segments with
// lattice.ErrMalformedSegment.
func WithStrict(strict bool) Option {
	return func(s *Survey) { s.strict = strict }
}

// WithCellLimit caps the number of cells New may allocate. Zero means no
// limit.
func WithCellLimit(n int) Option {
	return func(s *Survey) { s.cellLimit = n }
}

// ErrTooLarge is returned when the grid would exceed the cell limit.
var ErrTooLarge = errors.New("grid too large")

// New sizes a grid to cover every endpoint of segments and returns a
// survey ready for its passes.
func New(segments []lattice.Segment, opts ...Option) (*Survey, error) {
	if len(segments) == 0 {
		return nil, ErrNoSegments
	}
	s := &Survey{
		segments: segments,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(s)
	}

	if s.strict {
		for i, seg := range segments {
			if err := seg.Validate(); err != nil {
				return nil, fmt.Errorf("segment %d: %w", i+1, err)
			}
		}
	}

	bx, by := lattice.SegmentBounds(segments)
	if s.lenX == 0 && s.lenY == 0 {
		s.lenX, s.lenY = bx, by
	} else if bx > s.lenX || by > s.lenY {
		return nil, fmt.Errorf("%w: segments need %dx%d, grid is %dx%d",
			grid.ErrIndexOutOfBounds, bx, by, s.lenX, s.lenY)
	}
	if grid.Overflows(s.lenX, s.lenY) {
		return nil, fmt.Errorf("%w: %dx%d cells overflow int", ErrTooLarge, s.lenX, s.lenY)
	}
	if s.cellLimit > 0 && s.lenX*s.lenY > s.cellLimit {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrTooLarge, s.lenX, s.lenY, s.cellLimit)
	}

	s.grid = grid.New(s.lenX, s.lenY, Cell(0))
	s.log.Debug("survey grid allocated", "segments", len(segments), "lenX", s.lenX, "lenY", s.lenY)
	return s, nil
}

// StraightPass draws the vertical and horizontal segments and returns the
// number of cells covered more than once.
func (s *Survey) StraightPass() int {
	return s.pass("straight", false)
}

// DiagonalPass draws the diagonal segments into the same grid and returns
// the number of cells covered more than once by any segment drawn so far.
func (s *Survey) DiagonalPass() int {
	return s.pass("diagonal", true)
}

func (s *Survey) pass(name string, diagonal bool) int {
	drawn := raster.RasterizeAll(s.grid, s.segments, diagonal)
	n := Overlaps(s.grid)
	s.log.Debug("pass complete", "pass", name, "drawn", drawn, "overlaps", n)
	return n
}

// Run performs the straight pass followed by the diagonal pass.
func (s *Survey) Run() Result {
	straight := s.StraightPass()
	all := s.DiagonalPass()
	s.log.Info("survey complete", "straight", straight, "all", all)
	return Result{Straight: straight, All: all}
}

// Grid returns the survey grid. It reflects whichever passes have run.
func (s *Survey) Grid() *grid.Grid[Cell] {
	return s.grid
}

// Segments returns the segment list the survey draws.
func (s *Survey) Segments() []lattice.Segment {
	return s.segments
}

// Overlaps counts the cells of g holding a value greater than one.
func Overlaps[T grid.Number](g *grid.Grid[T]) int {
	return g.Count(func(v T) bool { return v > 1 })
}

// Run is a convenience wrapper: New followed by Survey.Run.
func Run(segments []lattice.Segment, opts ...Option) (Result, error) {
	s, err := New(segments, opts...)
	if err != nil {
		return Result{}, err
	}
	return s.Run(), nil
}

// Count draws the segments matching p into a fresh grid of the given size
// and returns it. Used for single-pattern views.
func Count(segments []lattice.Segment, p lattice.Pattern, lenX, lenY int) *grid.Grid[Cell] {
	g := grid.New(lenX, lenY, Cell(0))
	for _, seg := range p.Filter(segments) {
		raster.Draw(g, seg)
	}
	return g
}
