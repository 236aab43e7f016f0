package survey

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/wesen/vents/internal/ventsio"
	"github.com/wesen/vents/pkg/grid"
	"github.com/wesen/vents/pkg/lattice"
)

func canonical(t *testing.T) []lattice.Segment {
	t.Helper()
	segs, err := ventsio.ParseString(ventsio.Canonical)
	if err != nil {
		t.Fatalf("parse canonical example: %v", err)
	}
	return segs
}

func TestCanonicalOverlaps(t *testing.T) {
	s, err := New(canonical(t), WithGrid(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	if got := s.StraightPass(); got != 5 {
		t.Errorf("straight pass = %d, want 5", got)
	}
	if got := s.DiagonalPass(); got != 12 {
		t.Errorf("diagonal pass = %d, want 12", got)
	}
}

func TestRunDerivesGrid(t *testing.T) {
	res, err := Run(canonical(t))
	if err != nil {
		t.Fatal(err)
	}
	if res != (Result{Straight: 5, All: 12}) {
		t.Errorf("Run = %+v, want {5 12}", res)
	}
}

func TestPassesAccumulate(t *testing.T) {
	segs := canonical(t)

	// diagonals alone on a fresh grid give a different count than the
	// cumulative second pass
	fresh, err := New(segs)
	if err != nil {
		t.Fatal(err)
	}
	alone := fresh.DiagonalPass()
	if alone == 12 {
		t.Fatalf("diagonal-only count should differ from the cumulative 12, got %d", alone)
	}

	s, err := New(segs)
	if err != nil {
		t.Fatal(err)
	}
	s.StraightPass()
	before := s.Grid().Get(6, 4)
	s.DiagonalPass()
	if s.Grid().Get(6, 4) < before {
		t.Error("diagonal pass cleared straight-pass counts")
	}
	if s.Grid().Get(6, 4) != 3 {
		t.Errorf("cell (6,4) = %d, want 3", s.Grid().Get(6, 4))
	}
}

func TestEmptySurvey(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoSegments) {
		t.Errorf("expected ErrNoSegments, got %v", err)
	}
}

func TestGridTooSmall(t *testing.T) {
	_, err := New(canonical(t), WithGrid(5, 5))
	if !errors.Is(err, grid.ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestCellLimit(t *testing.T) {
	_, err := New(canonical(t), WithCellLimit(50))
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
	if _, err := New(canonical(t), WithCellLimit(100)); err != nil {
		t.Errorf("10x10 grid should fit in 100 cells: %v", err)
	}
}

func TestOverflowingGridTooLarge(t *testing.T) {
	tests := []struct {
		name string
		segs []lattice.Segment
		opts []Option
	}{
		{
			"past the limit",
			[]lattice.Segment{lattice.Seg(0, 0, math.MaxInt32, 0), lattice.Seg(0, 0, 0, math.MaxInt32)},
			[]Option{WithCellLimit(1 << 24)},
		},
		{
			"product overflows int",
			[]lattice.Segment{lattice.Seg(0, 0, math.MaxInt/2, 0), lattice.Seg(0, 0, 0, 2)},
			[]Option{WithCellLimit(1 << 24)},
		},
		{
			"product overflows int without a limit",
			[]lattice.Segment{lattice.Seg(0, 0, math.MaxInt/2, 0), lattice.Seg(0, 0, 0, 2)},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.segs, tt.opts...)
			if !errors.Is(err, ErrTooLarge) {
				t.Fatalf("expected ErrTooLarge, got %v", err)
			}
			if s != nil {
				t.Error("a rejected survey should be nil")
			}
		})
	}
}

func TestStrictRejectsSkewed(t *testing.T) {
	segs := append(canonical(t), lattice.Seg(0, 0, 3, 1))
	_, err := New(segs, WithStrict(true))
	if !errors.Is(err, lattice.ErrMalformedSegment) {
		t.Fatalf("expected ErrMalformedSegment, got %v", err)
	}
	if !strings.Contains(err.Error(), "segment 11") {
		t.Errorf("error should name the segment: %v", err)
	}
	if _, err := New(segs); err != nil {
		t.Errorf("non-strict survey should accept the list: %v", err)
	}
}

func TestLoggerReceivesPasses(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s, err := New(canonical(t), WithLogger(l))
	if err != nil {
		t.Fatal(err)
	}
	s.Run()
	out := buf.String()
	for _, want := range []string{"pass=straight", "pass=diagonal", "overlaps=12", "survey complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestStats(t *testing.T) {
	s, err := New(canonical(t))
	if err != nil {
		t.Fatal(err)
	}
	s.Run()
	st := s.Stats()
	if st.Segments != 10 {
		t.Errorf("Segments = %d, want 10", st.Segments)
	}
	if st.Vertical != 2 || st.Horizontal != 4 || st.Diagonal != 4 || st.Skewed != 0 {
		t.Errorf("kinds v=%d h=%d d=%d s=%d, want 2/4/4/0",
			st.Vertical, st.Horizontal, st.Diagonal, st.Skewed)
	}
	if st.Peak != 3 {
		t.Errorf("Peak = %d, want 3", st.Peak)
	}
	if st.Hottest != lattice.Pt(4, 4) {
		t.Errorf("Hottest = %v, want 4,4 (first 3 in row-major order)", st.Hottest)
	}
}

func TestCountPattern(t *testing.T) {
	segs := canonical(t)
	g := Count(segs, lattice.Straight, 10, 10)
	if Overlaps(g) != 5 {
		t.Errorf("straight-only overlaps = %d, want 5", Overlaps(g))
	}
	g = Count(segs, lattice.All, 10, 10)
	if Overlaps(g) != 12 {
		t.Errorf("all overlaps = %d, want 12", Overlaps(g))
	}
}

func BenchmarkCanonical(b *testing.B) {
	segs, _ := ventsio.ParseString(ventsio.Canonical)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Run(segs)
	}
}
