package geom

import "math"

func (s Slope) IsVertical() bool {
	return s.vertical
}

// The finite slope value. ok is false for vertical slopes.
func (s Slope) Value() (m float64, ok bool) {
	return s.m, !s.vertical
}

func (s Slope) Parallel(other Slope) bool {
	if s.vertical || other.vertical {
		return s.vertical == other.vertical
	}
	return s.m == other.m
}

func (s Slope) String() string {
	if s.vertical {
		return "vertical"
	}
	return formatFloat(s.m)
}

func SlopeBetween(a, b Point) Slope {
	if a.X == b.X {
		return Vertical()
	}
	return Finite((b.Y - a.Y) / (b.X - a.X))
}

// Build the edge from a to b in slope/intercept form. The only failure is a
// zero length edge, which has no direction at all.
func NewEdgeSegment(a, b Point) (EdgeSegment, error) {
	if a == b {
		return EdgeSegment{}, degeneratef(-1, "zero length edge at %s", a)
	}
	return makeEdge(a, b), nil
}

func makeEdge(a, b Point) EdgeSegment {
	slope := SlopeBetween(a, b)
	m, ok := slope.Value()
	if !ok {
		return EdgeSegment{Start: a, End: b, Slope: slope, Intercept: a.X}
	}
	return EdgeSegment{Start: a, End: b, Slope: slope, Intercept: a.Y - m*a.X}
}

func (e EdgeSegment) Line() OffsetLine {
	return OffsetLine{Slope: e.Slope, Intercept: e.Intercept}
}

func (e EdgeSegment) Midpoint() Point {
	return Midpoint(e.Start, e.End)
}

// Evaluate the line at x. Vertical lines have no single y for a given x, so ok
// is false for them.
func (l OffsetLine) YAt(x float64) (y float64, ok bool) {
	m, ok := l.Slope.Value()
	if !ok {
		return 0, false
	}
	return m*x + l.Intercept, true
}

// Shift the line's intercept by delta, keeping the slope.
func (l OffsetLine) Translate(delta float64) OffsetLine {
	return OffsetLine{Slope: l.Slope, Intercept: l.Intercept + delta}
}

// The intercept change which moves a line with this slope by half the
// thickness, measured perpendicular to the line. For slope m, theta is
// atan(1/m) and the intercept shift is (thickness/2)/sin(theta). Horizontal
// lines give 1/m = ±Inf, which atan handles, so only vertical lines need their
// own case: their "intercept" is an x position, shifted directly.
func InterceptDelta(slope Slope, thickness float64) float64 {
	m, ok := slope.Value()
	if !ok {
		return 0.5 * thickness
	}
	theta := math.Atan(1 / m)
	return (0.5 * thickness) / math.Sin(theta)
}

// Intersection of two lines. Parallel lines (including two vertical lines) have
// no intersection, which is reported as a DegenerateGeometryError.
func Intersect(a, b OffsetLine) (Point, error) {
	if a.Slope.Parallel(b.Slope) {
		return Point{}, degeneratef(-1, "parallel lines (slope %s) do not intersect", a.Slope)
	}
	return intersectUnchecked(a, b), nil
}

// Intersection without the parallel check. Parallel finite lines divide by
// zero and produce non-finite coordinates.
func intersectUnchecked(a, b OffsetLine) Point {
	ma, aFinite := a.Slope.Value()
	mb, bFinite := b.Slope.Value()
	switch {
	case !aFinite && !bFinite:
		// Both vertical. There's no sensible answer, so propagate NaN.
		return Point{math.NaN(), math.NaN()}
	case !aFinite:
		return Point{a.Intercept, mb*a.Intercept + b.Intercept}
	case !bFinite:
		return Point{b.Intercept, ma*b.Intercept + a.Intercept}
	}
	x := (b.Intercept - a.Intercept) / (ma - mb)
	y := ma*x + a.Intercept
	return Point{x, y}
}
