package geom

import (
	"math"

	"github.com/pkg/errors"
)

// A closed loop of vertices. Only the n distinct vertices are stored, and
// every edge iteration wraps from the last vertex back to the first
// explicitly. Points gives the conventional form where the first vertex is
// repeated at the end.
//
// A ClosedPath is never modified after construction; every method that
// "changes" it returns a new one.
type ClosedPath struct {
	vertices []Point
}

var ErrTooFewVertices = errors.New("a closed path needs at least 2 distinct vertices")

// Build a closed path. The input may or may not repeat its first vertex at the
// end; either way the result is the same. Consecutive vertices must differ,
// since a zero length edge has no direction to offset along.
func NewClosedPath(points []Point) (ClosedPath, error) {
	vertices := append([]Point(nil), points...)
	if len(vertices) > 1 && vertices[0] == vertices[len(vertices)-1] {
		vertices = vertices[:len(vertices)-1]
	}
	if len(vertices) < 2 {
		return ClosedPath{}, errors.Wrapf(ErrTooFewVertices, "got %d", len(vertices))
	}
	for i, vertex := range vertices {
		next := vertices[CircularIndex(i+1, len(vertices))]
		if vertex == next {
			return ClosedPath{}, degeneratef(i, "repeated vertex %s", vertex)
		}
	}
	return ClosedPath{vertices}, nil
}

// Like NewClosedPath, but panics on invalid input. Meant for hand written
// constant shapes.
func MustClosedPath(points ...Point) ClosedPath {
	path, err := NewClosedPath(points)
	if err != nil {
		panic(err)
	}
	return path
}

// Computed paths skip validation: offset vertices may legitimately coincide or
// be non-finite, and that has to be reported rather than rejected.
func closedPathFrom(vertices []Point) ClosedPath {
	return ClosedPath{vertices}
}

// Number of distinct vertices, which is also the number of edges.
func (path ClosedPath) Len() int {
	return len(path.vertices)
}

// Vertex at a circular index.
func (path ClosedPath) Vertex(i int) Point {
	return path.vertices[CircularIndex(i, len(path.vertices))]
}

func (path ClosedPath) Vertices() []Point {
	return append([]Point(nil), path.vertices...)
}

// The vertices with the first one repeated at the end, ready to be drawn as a
// polyline.
func (path ClosedPath) Points() []Point {
	if len(path.vertices) == 0 {
		return nil
	}
	points := make([]Point, 0, len(path.vertices)+1)
	points = append(points, path.vertices...)
	return append(points, path.vertices[0])
}

func (path ClosedPath) Edge(i int) EdgeSegment {
	return makeEdge(path.Vertex(i), path.Vertex(i+1))
}

// One edge per consecutive pair of vertices, including the wraparound edge.
func (path ClosedPath) Edges() []EdgeSegment {
	edges := make([]EdgeSegment, len(path.vertices))
	for i := range path.vertices {
		edges[i] = path.Edge(i)
	}
	return edges
}

// Even-odd point-in-polygon.
func (path ClosedPath) ContainsPointByEvenOdd(p Point) bool {
	return path.CrossingCount(p)%2 == 1
}

// Number of edges crossed by a ray from p toward +X.
func (path ClosedPath) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range path.vertices {
		nextVertex := path.vertices[CircularIndex(i+1, len(path.vertices))]
		if rayCrosses(p, vertex, nextVertex) {
			crossingCount++
		}
	}
	return crossingCount
}

// Ray casting (pnpoly). vs is treated as implicitly closed, so a repeated
// closing vertex is harmless: it only adds a zero length edge, which no ray
// crosses.
func IsPointInside(p Point, vs []Point) bool {
	inside := false
	for i, j := 0, len(vs)-1; i < len(vs); j, i = i, i+1 {
		if rayCrosses(p, vs[i], vs[j]) {
			inside = !inside
		}
	}
	return inside
}

// Does a horizontal ray from p toward +X cross the edge between vi and vj? The
// strict inequalities are the standard pnpoly convention for points on the
// boundary.
func rayCrosses(p, vi, vj Point) bool {
	return (vi.Y > p.Y) != (vj.Y > p.Y) &&
		p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X
}

func (path ClosedPath) Reverse() ClosedPath {
	reversed := make([]Point, 0, len(path.vertices))
	for i := len(path.vertices) - 1; i >= 0; i-- {
		reversed = append(reversed, path.vertices[i])
	}
	return ClosedPath{reversed}
}

// Same polygon, starting from vertex k.
func (path ClosedPath) Rotate(k int) ClosedPath {
	rotated := make([]Point, len(path.vertices))
	for i := range path.vertices {
		rotated[i] = path.Vertex(i + k)
	}
	return ClosedPath{rotated}
}

// Shoelace formula. Positive when the vertices wind counterclockwise in a Y up
// coordinate system.
func (path ClosedPath) SignedArea() float64 {
	var sum float64
	for i, vertex := range path.vertices {
		next := path.Vertex(i + 1)
		sum += vertex.X*next.Y - next.X*vertex.Y
	}
	return sum / 2
}

func (path ClosedPath) Area() float64 {
	return math.Abs(path.SignedArea())
}

func (path ClosedPath) IsFinite() bool {
	for _, vertex := range path.vertices {
		if !vertex.IsFinite() {
			return false
		}
	}
	return true
}

// Tolerance based comparison, vertex by vertex from the same starting index.
func (path ClosedPath) Equal(other ClosedPath) bool {
	if len(path.vertices) != len(other.vertices) {
		return false
	}
	for i, vertex := range path.vertices {
		if !vertex.Equal(other.vertices[i]) {
			return false
		}
	}
	return true
}

// Axis aligned bounding box.
func (path ClosedPath) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range path.vertices {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}
