// Package ventsio reads vent line records of the form "x0,y0 -> x1,y1".
package ventsio

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wesen/vents/pkg/lattice"
)

// Arrow separates the two endpoints of a record.
const Arrow = "->"

// Canonical is the ten-line example survey. Its straight lines overlap at
// 5 points and all lines together at 12.
//
//go:embed testdata/example.txt
var Canonical string

// ParsePoints returns the endpoints of every record in r, two per record,
// in input order. A coordinate token that does not parse is dropped, which
// shifts the pairing of everything after it.
func ParsePoints(r io.Reader) ([]lattice.Point, error) {
	var pts []lattice.Point
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		for _, tok := range strings.Split(line, Arrow) {
			p, err := lattice.ParsePoint(tok)
			if err != nil {
				continue
			}
			pts = append(pts, p)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read vent lines: %w", err)
	}
	return pts, nil
}

// ParseSegments pairs the points of r into segments.
func ParseSegments(r io.Reader) ([]lattice.Segment, error) {
	pts, err := ParsePoints(r)
	if err != nil {
		return nil, err
	}
	return lattice.Pairs(pts), nil
}

// ParseString is ParseSegments over a string.
func ParseString(s string) ([]lattice.Segment, error) {
	return ParseSegments(strings.NewReader(s))
}

// ReadFile parses the vent lines stored at path.
func ReadFile(path string) ([]lattice.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vent lines: %w", err)
	}
	defer f.Close()
	return ParseSegments(f)
}

// Format writes segs back out one record per line.
func Format(w io.Writer, segs []lattice.Segment) error {
	bw := bufio.NewWriter(w)
	for _, s := range segs {
		if _, err := fmt.Fprintf(bw, "%s %s %s\n", s.P0, Arrow, s.P1); err != nil {
			return err
		}
	}
	return bw.Flush()
}
