package combat

import "math"

// Position is an integer grid coordinate.
type Position struct{ X, Y int }

func (a Position) Add(b Position) Position { return Position{a.X + b.X, a.Y + b.Y} }
func (a Position) Sub(b Position) Position { return Position{a.X - b.X, a.Y - b.Y} }

// Distance is the Euclidean distance rounded to the nearest integer.
func (a Position) Distance(b Position) int {
	d := b.Sub(a)
	return int(math.Round(math.Hypot(float64(d.X), float64(d.Y))))
}

// StepTowards moves at most one cell on each axis, so it never overshoots.
func (a Position) StepTowards(target Position) Position {
	d := target.Sub(a)
	return Position{a.X + sign(d.X), a.Y + sign(d.Y)}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
