package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wesen/vents/internal/segfilter"
	"github.com/wesen/vents/internal/survey"
	"github.com/wesen/vents/internal/ventsio"
	"github.com/wesen/vents/pkg/grid"
	"github.com/wesen/vents/pkg/lattice"
)

// errInput is returned when a command is given no input or two inputs.
var errInput = errors.New("need exactly one input")

// inputFlags are shared by every command that reads segments.
type inputFlags struct {
	example bool
	strict  bool
	where   string
	pattern string
}

func (f *inputFlags) register(cmd *cobra.Command, withPattern bool) {
	cmd.Flags().BoolVar(&f.example, "example", false, "Use the built-in example instead of a file")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Fail on segments that are neither straight nor 45° diagonal")
	cmd.Flags().StringVar(&f.where, "where", "", `JavaScript filter over x0, y0, x1, y1, kind and len, e.g. "kind == 'diagonal'"`)
	if withPattern {
		cmd.Flags().StringVarP(&f.pattern, "pattern", "p", "all", "Segments to draw: all, straight, horizontal, vertical or diagonal")
	}
}

// input is a loaded, filtered segment list.
type input struct {
	source   string
	segments []lattice.Segment
}

// load reads the segments named by args or the built-in example, and
// applies --where. Outside --strict, segments that are neither straight nor
// diagonal are dropped with a warning on stderr.
func (o *options) load(cmd *cobra.Command, f *inputFlags, args []string) (*input, error) {
	in := &input{}
	var err error
	switch {
	case f.example && len(args) > 0:
		return nil, fmt.Errorf("%w: got both --example and %s", errInput, args[0])
	case !f.example && len(args) == 0:
		return nil, fmt.Errorf("%w: pass an input file or --example", errInput)
	case f.example:
		in.source = "example"
		in.segments, err = ventsio.ParseString(ventsio.Canonical)
	default:
		in.source, err = o.cfg.Resolve(args[0])
		if err != nil {
			return nil, err
		}
		in.segments, err = ventsio.ReadFile(in.source)
	}
	if err != nil {
		return nil, err
	}
	o.log.Debug("segments loaded", "source", in.source, "segments", len(in.segments))

	if f.where != "" {
		flt, err := segfilter.Compile(f.where)
		if err != nil {
			return nil, err
		}
		in.segments, err = flt.Apply(in.segments)
		if err != nil {
			return nil, err
		}
		o.log.Debug("segments filtered", "where", flt, "kept", len(in.segments))
	}

	if !f.strict {
		in.segments = dropSkewed(cmd.ErrOrStderr(), in.segments)
	}
	return in, nil
}

// dropSkewed removes skewed segments, warning about each one.
func dropSkewed(w io.Writer, segs []lattice.Segment) []lattice.Segment {
	kept := segs[:0:0]
	for i, s := range segs {
		if s.Shape() == lattice.Skewed {
			printWarning(w, fmt.Sprintf("skipping segment %d (%s): not straight or diagonal", i+1, s))
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

// newSurvey builds a survey over in using the global settings.
func (o *options) newSurvey(f *inputFlags, in *input) (*survey.Survey, error) {
	return survey.New(in.segments,
		survey.WithLogger(o.log),
		survey.WithStrict(f.strict),
		survey.WithCellLimit(o.cfg.CellLimit),
	)
}

// patternGrid returns the grid for --pattern. All runs both passes of s;
// any other pattern is drawn into a fresh grid of the same size.
func patternGrid(s *survey.Survey, pattern string) (*grid.Grid[survey.Cell], error) {
	p, err := lattice.ParsePattern(pattern)
	if err != nil {
		return nil, err
	}
	if p == lattice.All {
		s.Run()
		return s.Grid(), nil
	}
	g := s.Grid()
	return survey.Count(s.Segments(), p, g.LenX(), g.LenY()), nil
}
