package geom

import "github.com/pkg/errors"

// Depth of the three notches cut into the M, in model units.
const DefaultNotchDepth = 0.4

// The M frame outline: a trapezoid with a notch in the middle of the top edge
// and two notches in the bottom edge. Y grows downward, matching the surface
// it's drawn on.
func NewMGlyph(notch float64) (ClosedPath, error) {
	var (
		topLeft     = Point{-4, -2}
		topRight    = Point{4, -2}
		bottomRight = Point{6, 2}
		bottomLeft  = Point{-6, 2}

		topNotchCenter = Point{0, -2 + notch}
		topNotchLeft   = Point{0 - notch, -2}
		topNotchRight  = Point{0 + notch, -2}

		leftNotchCenter = Point{-2, 2 - notch}
		leftNotchLeft   = Point{-2 - notch, 2}
		leftNotchRight  = Point{-2 + notch, 2}

		rightNotchCenter = Point{2, 2 - notch}
		rightNotchLeft   = Point{2 - notch, 2}
		rightNotchRight  = Point{2 + notch, 2}
	)
	if !(notch > 0 && notch < 2) {
		return ClosedPath{}, errors.Errorf("notch depth %v out of range (0, 2)", notch)
	}
	return NewClosedPath([]Point{
		topLeft, topNotchLeft, topNotchCenter, topNotchRight, topRight,
		bottomRight, rightNotchRight, rightNotchCenter, rightNotchLeft,
		leftNotchRight, leftNotchCenter, leftNotchLeft, bottomLeft,
		topLeft,
	})
}

// NewMGlyph for a notch depth known to be valid. Panics otherwise.
func MGlyph(notch float64) ClosedPath {
	path, err := NewMGlyph(notch)
	if err != nil {
		panic(err)
	}
	return path
}

func Glyph() ClosedPath {
	return MGlyph(DefaultNotchDepth)
}
