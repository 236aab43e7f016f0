// Package segfilter selects segments with a JavaScript boolean expression
// evaluated by Goja.
//
// The expression sees x0, y0, x1, y1, kind ("vertical", "horizontal",
// "diagonal" or "skewed") and len (points covered), e.g.
//
//	x0 == x1 && len > 3
//	kind != "diagonal" || Math.max(x0, x1) < 500
package segfilter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dop251/goja"

	"github.com/wesen/vents/pkg/lattice"
)

// ErrFilter wraps compile and evaluation failures.
var ErrFilter = errors.New("segment filter")

// Filter is a compiled expression. It is not safe for concurrent use.
type Filter struct {
	src     string
	program *goja.Program
	runtime *goja.Runtime
}

// Compile parses expr. An empty expression yields a filter that matches
// every segment.
func Compile(expr string) (*Filter, error) {
	expr = strings.TrimSpace(expr)
	f := &Filter{src: expr}
	if expr == "" {
		return f, nil
	}
	p, err := goja.Compile("where", "("+expr+")", false)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrFilter, expr, err)
	}
	f.program = p
	f.runtime = goja.New()
	return f, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.src
}

// Match evaluates the expression for s.
func (f *Filter) Match(s lattice.Segment) (bool, error) {
	if f.program == nil {
		return true, nil
	}
	vars := map[string]any{
		"x0":   s.P0.X,
		"y0":   s.P0.Y,
		"x1":   s.P1.X,
		"y1":   s.P1.Y,
		"kind": s.Shape().String(),
		"len":  s.Len(),
	}
	for k, v := range vars {
		if err := f.runtime.Set(k, v); err != nil {
			return false, fmt.Errorf("%w: bind %s: %v", ErrFilter, k, err)
		}
	}
	val, err := f.runtime.RunProgram(f.program)
	if err != nil {
		return false, fmt.Errorf("%w: eval %q on %s: %v", ErrFilter, f.src, s, err)
	}
	return val.ToBoolean(), nil
}

// Apply returns the segments of segs that match, in order.
func (f *Filter) Apply(segs []lattice.Segment) ([]lattice.Segment, error) {
	if f.program == nil {
		return segs, nil
	}
	out := make([]lattice.Segment, 0, len(segs))
	for _, s := range segs {
		ok, err := f.Match(s)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, s)
		}
	}
	return out, nil
}
