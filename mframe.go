// Offsetting for the M frame glyph, and for any other simple polygon whose
// consecutive edges aren't parallel.
//
// A path is offset by moving each edge's line half the thickness outward (for
// the expanded outline) or inward (for the contracted one) and intersecting
// consecutive lines to find the new vertices. The corners are mitered; there
// are no round or bevel joins.
//
// Most users want Offset. The geom package has the pieces, and render draws
// the result.
package mframe

import "github.com/osuushi/mframe/geom"

type Point = geom.Point

// Offset a closed polygon by half the thickness on each side. The points may
// or may not repeat the first point at the end. Both results always do.
//
// An error is returned when consecutive edges are parallel (the offset lines
// never meet) or the points don't form a polygon.
func Offset(points []Point, thickness float64) (expanded, contracted []Point, err error) {
	base, err := geom.NewClosedPath(points)
	if err != nil {
		return nil, nil, err
	}
	result, err := geom.Offset(base, thickness)
	if err != nil {
		return nil, nil, err
	}
	return result.Expanded.Points(), result.Contracted.Points(), nil
}

// The M frame outline, closed.
func Glyph() []Point {
	return geom.Glyph().Points()
}
