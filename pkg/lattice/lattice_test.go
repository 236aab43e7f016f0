package lattice

import (
	"errors"
	"testing"
)

// ── Point ──

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in   string
		want Point
	}{
		{"0,9", Pt(0, 9)},
		{"15,21", Pt(15, 21)},
		{" 3 , 4 ", Pt(3, 4)},
	}
	for _, tc := range tests {
		got, err := ParsePoint(tc.in)
		if err != nil {
			t.Fatalf("ParsePoint(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParsePoint(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParsePointErrors(t *testing.T) {
	for _, in := range []string{"", "3", "a,4", "4,b", "-1,2", "2,-7", ",", "65536,0", "0,4294967295"} {
		if _, err := ParsePoint(in); !errors.Is(err, ErrBadPoint) {
			t.Errorf("ParsePoint(%q): expected ErrBadPoint, got %v", in, err)
		}
	}
}

func TestParsePointMaxCoord(t *testing.T) {
	p, err := ParsePoint("65535,65535")
	if err != nil {
		t.Fatalf("ParsePoint at MaxCoord: %v", err)
	}
	if p != Pt(MaxCoord, MaxCoord) {
		t.Errorf("got %v, want %d,%d", p, MaxCoord, MaxCoord)
	}
	lenX, lenY := Bounds([]Point{p})
	if lenX != 1<<16 || lenY != 1<<16 {
		t.Errorf("Bounds = %dx%d, want 65536x65536", lenX, lenY)
	}
}

func TestPointAxes(t *testing.T) {
	p := Pt(2, 2)
	if !p.SameColumn(Pt(2, 1)) {
		t.Error("(2,2) and (2,1) should share a column")
	}
	if p.SameColumn(Pt(3, 2)) {
		t.Error("(2,2) and (3,2) should not share a column")
	}
	if !p.SameRow(Pt(3, 2)) {
		t.Error("(2,2) and (3,2) should share a row")
	}
	if !p.Eq(Pt(2, 2)) || p.Eq(Pt(2, 3)) {
		t.Error("Eq is not component-wise")
	}
	if p.String() != "2,2" {
		t.Errorf("String() = %q, want 2,2", p.String())
	}
}

// ── Step ──

func TestStep(t *testing.T) {
	tests := []struct {
		old, new, mag int
		want          int
	}{
		{0, 5, 1, 1},
		{5, 0, 1, -1},
		{3, 3, 1, -1}, // degenerate: subtracting step
		{3, 3, 0, 0},
		{0, 9, 2, 2},
	}
	for _, tc := range tests {
		got := Step(tc.old, tc.new, tc.mag)
		if got != tc.want {
			t.Errorf("Step(%d,%d,%d) = %d, want %d", tc.old, tc.new, tc.mag, got, tc.want)
		}
	}
}

func TestStepReachesTarget(t *testing.T) {
	for _, pair := range [][2]int{{0, 8}, {8, 0}, {5, 2}, {2, 5}} {
		old, target := pair[0], pair[1]
		d := Step(old, target, 1)
		x := old
		for n := 0; x != target; n++ {
			if n > 10 {
				t.Fatalf("stepping %d→%d never reached the target", old, target)
			}
			x = Advance(x, d)
			if x < 0 {
				t.Fatalf("stepping %d→%d went negative", old, target)
			}
		}
	}
}

func TestStepToward(t *testing.T) {
	tests := []struct {
		p, q Point
		want Point
	}{
		{Pt(0, 0), Pt(3, 3), Pt(1, 1)},
		{Pt(8, 0), Pt(0, 8), Pt(-1, 1)},
		{Pt(7, 0), Pt(7, 4), Pt(0, 1)},
		{Pt(9, 4), Pt(3, 4), Pt(-1, 0)},
		{Pt(1, 1), Pt(1, 1), Pt(0, 0)},
	}
	for _, tc := range tests {
		if got := StepToward(tc.p, tc.q); got != tc.want {
			t.Errorf("StepToward(%v,%v) = %v, want %v", tc.p, tc.q, got, tc.want)
		}
	}
}

// ── Segment ──

func TestPairs(t *testing.T) {
	pts := []Point{Pt(0, 9), Pt(5, 9), Pt(8, 0), Pt(0, 8), Pt(1, 1)}
	segs := Pairs(pts)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0] != Seg(0, 9, 5, 9) || segs[1] != Seg(8, 0, 0, 8) {
		t.Errorf("unexpected pairing: %v", segs)
	}
}

func TestSegmentKind(t *testing.T) {
	tests := []struct {
		s     Segment
		kind  Kind
		shape Kind
	}{
		{Seg(2, 2, 2, 1), Vertical, Vertical},
		{Seg(0, 9, 5, 9), Horizontal, Horizontal},
		{Seg(8, 0, 0, 8), Diagonal, Diagonal},
		{Seg(3, 3, 3, 3), Vertical, Vertical},
		{Seg(0, 0, 3, 1), Diagonal, Skewed},
	}
	for _, tc := range tests {
		if got := tc.s.Kind(); got != tc.kind {
			t.Errorf("%v.Kind() = %v, want %v", tc.s, got, tc.kind)
		}
		if got := tc.s.Shape(); got != tc.shape {
			t.Errorf("%v.Shape() = %v, want %v", tc.s, got, tc.shape)
		}
	}
}

func TestSegmentValidate(t *testing.T) {
	if err := Seg(5, 5, 8, 2).Validate(); err != nil {
		t.Errorf("45° diagonal should validate, got %v", err)
	}
	if err := Seg(0, 0, 3, 1).Validate(); !errors.Is(err, ErrMalformedSegment) {
		t.Errorf("skewed segment: expected ErrMalformedSegment, got %v", err)
	}
}

func TestSegmentLen(t *testing.T) {
	tests := []struct {
		s    Segment
		want int
	}{
		{Seg(0, 9, 5, 9), 6},
		{Seg(0, 0, 3, 3), 4},
		{Seg(7, 0, 7, 4), 5},
		{Seg(1, 1, 1, 1), 1},
	}
	for _, tc := range tests {
		if got := tc.s.Len(); got != tc.want {
			t.Errorf("%v.Len() = %d, want %d", tc.s, got, tc.want)
		}
	}
}

func TestBounds(t *testing.T) {
	lx, ly := Bounds([]Point{Pt(0, 9), Pt(5, 9), Pt(8, 0)})
	if lx != 9 || ly != 10 {
		t.Errorf("Bounds = %d,%d, want 9,10", lx, ly)
	}
	if lx, ly := Bounds(nil); lx != 0 || ly != 0 {
		t.Errorf("empty Bounds = %d,%d, want 0,0", lx, ly)
	}
	if lx, ly := SegmentBounds([]Segment{Seg(0, 0, 8, 8), Seg(9, 4, 3, 4)}); lx != 10 || ly != 9 {
		t.Errorf("SegmentBounds = %d,%d, want 10,9", lx, ly)
	}
}

// ── Pattern ──

func TestPatternMatch(t *testing.T) {
	h, v, d := Seg(0, 9, 5, 9), Seg(7, 0, 7, 4), Seg(6, 4, 2, 0)
	tests := []struct {
		p       Pattern
		h, v, d bool
	}{
		{All, true, true, true},
		{Straight, true, true, false},
		{HorizontalOnly, true, false, false},
		{VerticalOnly, false, true, false},
		{DiagonalOnly, false, false, true},
	}
	for _, tc := range tests {
		if tc.p.Match(h) != tc.h || tc.p.Match(v) != tc.v || tc.p.Match(d) != tc.d {
			t.Errorf("%v: match(h,v,d) = %v,%v,%v want %v,%v,%v", tc.p,
				tc.p.Match(h), tc.p.Match(v), tc.p.Match(d), tc.h, tc.v, tc.d)
		}
	}
}

func TestParsePattern(t *testing.T) {
	for i, name := range []string{"all", "straight", "horizontal", "vertical", "diagonal"} {
		p, err := ParsePattern(name)
		if err != nil || p != Pattern(i) {
			t.Errorf("ParsePattern(%q) = %v, %v", name, p, err)
		}
	}
	if p, err := ParsePattern(" Straight "); err != nil || p != Straight {
		t.Errorf("ParsePattern is not case-insensitive: %v, %v", p, err)
	}
	if _, err := ParsePattern("curvy"); err == nil {
		t.Error("expected error for unknown pattern")
	}
}
