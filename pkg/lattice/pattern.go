package lattice

import (
	"fmt"
	"strings"
)

// Pattern selects which segments a pass draws.
type Pattern int

const (
	All        Pattern = iota // every segment
	Straight                  // vertical or horizontal
	HorizontalOnly            // same row
	VerticalOnly              // same column
	DiagonalOnly              // neither same row nor same column
)

var patternNames = []string{"all", "straight", "horizontal", "vertical", "diagonal"}

func (p Pattern) String() string {
	if int(p) >= 0 && int(p) < len(patternNames) {
		return patternNames[p]
	}
	return fmt.Sprintf("Pattern(%d)", int(p))
}

// ParsePattern parses one of "all", "straight", "horizontal", "vertical"
// or "diagonal" (case-insensitive).
func ParsePattern(s string) (Pattern, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for i, name := range patternNames {
		if name == want {
			return Pattern(i), nil
		}
	}
	return All, fmt.Errorf("unknown pattern %q (want one of %s)", s, strings.Join(patternNames, ", "))
}

// Match reports whether s belongs to the pattern.
func (p Pattern) Match(s Segment) bool {
	switch p {
	case All:
		return true
	case Straight:
		return s.Straight()
	case HorizontalOnly:
		return s.P0.SameRow(s.P1)
	case VerticalOnly:
		return s.P0.SameColumn(s.P1)
	case DiagonalOnly:
		return !s.Straight()
	}
	return false
}

// Filter returns the segments of segs matching p, in order.
func (p Pattern) Filter(segs []Segment) []Segment {
	var out []Segment
	for _, s := range segs {
		if p.Match(s) {
			out = append(out, s)
		}
	}
	return out
}
