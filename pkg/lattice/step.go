package lattice

// Step returns the signed increment that moves a coordinate from old
// toward new by magnitude per application: +magnitude when new > old,
// -magnitude otherwise.
//
// old == new yields -magnitude. Callers that hold an axis fixed pass a
// magnitude of 0 instead of relying on the degenerate case.
func Step(old, new, magnitude int) int {
	if new > old {
		return magnitude
	}
	return -magnitude
}

// Advance applies step to coord once.
func Advance(coord, step int) int {
	return coord + step
}

// StepToward returns the per-axis step from p toward q: magnitude 1 on a
// moving axis, 0 on an axis where p and q agree.
func StepToward(p, q Point) Point {
	var d Point
	if !p.SameColumn(q) {
		d.X = Step(p.X, q.X, 1)
	}
	if !p.SameRow(q) {
		d.Y = Step(p.Y, q.Y, 1)
	}
	return d
}
