package geom

type Point struct {
	X float64
	Y float64
}

// A line's slope is either a finite number or vertical. Vertical lines can't be
// written in slope/intercept form, so every operation has to handle them on
// their own instead of letting an infinite slope leak into the arithmetic.
type Slope struct {
	m        float64
	vertical bool
}

func Finite(m float64) Slope {
	return Slope{m: m}
}

func Vertical() Slope {
	return Slope{vertical: true}
}

// A base edge of a path. Intercept is the y intercept, or the x position for
// vertical edges. The endpoints are kept so that the edge's midpoint can be
// found later.
type EdgeSegment struct {
	Start     Point
	End       Point
	Slope     Slope
	Intercept float64
}

// A translated copy of an edge's line. It deliberately has no endpoints: after
// translation, the original endpoints no longer lie on it.
type OffsetLine struct {
	Slope     Slope
	Intercept float64
}

// Output of a single offsetting pass. The line sequences are indexed 1:1 with
// the edges of the base path.
type Result struct {
	ExpandedLines   []OffsetLine
	ContractedLines []OffsetLine
	Expanded        ClosedPath
	Contracted      ClosedPath
}
