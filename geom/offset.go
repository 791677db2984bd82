package geom

type Options struct {
	// Keep going when consecutive offset lines are parallel, letting the
	// division by zero put non-finite coordinates into the output instead of
	// returning a DegenerateGeometryError.
	AllowNonFinite bool
}

// Offset the base path outward and inward by half the thickness. Every edge of
// the result is parallel to the corresponding base edge.
//
// The thickness isn't validated. Large values can invert or self-intersect the
// contracted path. A negative thickness behaves like its absolute value, since
// both candidate lines are classified anyway.
func Offset(base ClosedPath, thickness float64) (Result, error) {
	return OffsetWithOptions(base, thickness, Options{})
}

func OffsetWithOptions(base ClosedPath, thickness float64, opts Options) (result Result, err error) {
	defer func() {
		recoveredErr := HandleOffsetPanicRecover(recover())
		if recoveredErr != nil {
			result = Result{}
			err = recoveredErr
		}
	}()
	if base.Len() < 2 {
		return Result{}, ErrTooFewVertices
	}

	result.ExpandedLines, result.ContractedLines = offsetLines(base, thickness)
	result.Expanded = pathFromLines(result.ExpandedLines, opts)
	result.Contracted = pathFromLines(result.ContractedLines, opts)
	return result, nil
}

// Translate every edge both ways and sort the two candidates into expanded and
// contracted sequences, in edge order.
func offsetLines(base ClosedPath, thickness float64) (expanded, contracted []OffsetLine) {
	edges := base.Edges()
	expanded = make([]OffsetLine, len(edges))
	contracted = make([]OffsetLine, len(edges))
	for i, edge := range edges {
		a, b := CandidateLines(edge, thickness)
		expanded[i], contracted[i] = ClassifyCandidates(edge, a, b, base)
	}
	return expanded, contracted
}

// The two lines parallel to the edge at half the thickness on either side. Which
// one is outside the polygon isn't known yet.
func CandidateLines(edge EdgeSegment, thickness float64) (a, b OffsetLine) {
	line := edge.Line()
	delta := InterceptDelta(edge.Slope, thickness)
	return line.Translate(delta), line.Translate(-delta)
}

// Decide which candidate is outward. We probe candidate a across from the
// middle of the edge: if that point is outside the base path, a is the expanded
// line.
func ClassifyCandidates(edge EdgeSegment, a, b OffsetLine, base ClosedPath) (expanded, contracted OffsetLine) {
	if base.ContainsPointByEvenOdd(probePoint(edge, a)) {
		return b, a
	}
	return a, b
}

// The point on line that sits across from the midpoint of edge: same x for
// sloped edges, same y for vertical ones.
func probePoint(edge EdgeSegment, line OffsetLine) Point {
	mid := edge.Midpoint()
	y, ok := line.YAt(mid.X)
	if !ok {
		return Point{line.Intercept, mid.Y}
	}
	return Point{mid.X, y}
}

// Rebuild a closed path from a sequence of edge lines by intersecting each line
// with the next one, wrapping from the last back to the first.
func PathFromLines(lines []OffsetLine) (path ClosedPath, err error) {
	defer func() {
		recoveredErr := HandleOffsetPanicRecover(recover())
		if recoveredErr != nil {
			path = ClosedPath{}
			err = recoveredErr
		}
	}()
	return pathFromLines(lines, Options{}), nil
}

func pathFromLines(lines []OffsetLine, opts Options) ClosedPath {
	vertices := make([]Point, len(lines))
	for i, line := range lines {
		nextIndex := CircularIndex(i+1, len(lines))
		next := lines[nextIndex]
		if !opts.AllowNonFinite && line.Slope.Parallel(next.Slope) {
			throwDegenerate(i, "offset lines %d and %d are parallel (slope %s)", i, nextIndex, line.Slope)
		}
		vertex := intersectUnchecked(line, next)
		if !opts.AllowNonFinite && !vertex.IsFinite() {
			throwDegenerate(i, "intersection %s is not finite", vertex)
		}
		vertices[i] = vertex
	}
	return closedPathFrom(vertices)
}
