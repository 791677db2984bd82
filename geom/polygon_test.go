package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClosedPath(t *testing.T) {
	open := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	closed := append(append([]Point(nil), open...), Point{0, 0})

	t.Run("without closing vertex", func(t *testing.T) {
		path, err := NewClosedPath(open)
		require.NoError(t, err)
		assert.Equal(t, 4, path.Len())
		assert.Equal(t, closed, path.Points())
		assert.Equal(t, open, path.Vertices())
	})

	t.Run("with closing vertex", func(t *testing.T) {
		path, err := NewClosedPath(closed)
		require.NoError(t, err)
		assert.Equal(t, 4, path.Len())
		assert.Equal(t, closed, path.Points())
	})

	t.Run("too few vertices", func(t *testing.T) {
		_, err := NewClosedPath([]Point{{1, 1}, {1, 1}})
		assert.ErrorIs(t, err, ErrTooFewVertices)
		_, err = NewClosedPath(nil)
		assert.ErrorIs(t, err, ErrTooFewVertices)
	})

	t.Run("repeated vertex", func(t *testing.T) {
		_, err := NewClosedPath([]Point{{0, 0}, {4, 0}, {4, 0}, {0, 4}})
		assert.True(t, IsDegenerate(err))
	})

	t.Run("input is copied", func(t *testing.T) {
		points := append([]Point(nil), open...)
		path, err := NewClosedPath(points)
		require.NoError(t, err)
		points[0] = Point{-1, -1}
		assert.Equal(t, Point{0, 0}, path.Vertex(0))
	})
}

func TestClosedPathEdges(t *testing.T) {
	path := LoadFixture("square")
	edges := path.Edges()
	require.Len(t, edges, 4)
	// The wraparound edge runs from the last vertex back to the first.
	assert.Equal(t, Point{0, 4}, edges[3].Start)
	assert.Equal(t, Point{0, 0}, edges[3].End)
	assert.True(t, edges[1].Slope.IsVertical())
	assert.True(t, edges[3].Slope.IsVertical())
}

func TestIsPointInside(t *testing.T) {
	square := LoadFixture("square")
	cases := []struct {
		name   string
		point  Point
		inside bool
	}{
		{"center", Point{2, 2}, true},
		{"near corner", Point{0.01, 3.99}, true},
		{"left", Point{-1, 2}, false},
		{"right", Point{5, 2}, false},
		{"above", Point{2, -1}, false},
		{"below", Point{2, 5}, false},
		{"diagonal outside", Point{5, 5}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.inside, square.ContainsPointByEvenOdd(c.point))
			// The slice form works with and without the repeated vertex.
			assert.Equal(t, c.inside, IsPointInside(c.point, square.Points()))
			assert.Equal(t, c.inside, IsPointInside(c.point, square.Vertices()))
		})
	}
}

func TestIsPointInsideNotches(t *testing.T) {
	m := LoadFixture("m")
	assert.True(t, m.ContainsPointByEvenOdd(Point{0, 0}))
	// Inside the notches, which are cut out of the shape.
	assert.False(t, m.ContainsPointByEvenOdd(Point{0, -1.9}))
	assert.False(t, m.ContainsPointByEvenOdd(Point{-2, 1.9}))
	assert.False(t, m.ContainsPointByEvenOdd(Point{2, 1.9}))
	// Beside the slanted sides.
	assert.True(t, m.ContainsPointByEvenOdd(Point{5, 1.5}))
	assert.False(t, m.ContainsPointByEvenOdd(Point{5, -1.5}))
}

func TestIsPointInsideIgnoresStartingVertex(t *testing.T) {
	for _, name := range []string{"square", "diamond", "m"} {
		t.Run(name, func(t *testing.T) {
			path := LoadFixture(name)
			min, max := path.Bounds()
			for k := 1; k < path.Len(); k++ {
				rotated := path.Rotate(k)
				assert.Equal(t, path.Vertex(k), rotated.Vertex(0))
				forEachSample(min, max, func(p Point) {
					assert.Equal(t, IsPointInside(p, path.Points()), IsPointInside(p, rotated.Points()), "point %v", p)
				})
			}
		})
	}
}

func TestCrossingCount(t *testing.T) {
	m := LoadFixture("m")
	// A ray from the left of the bottom notches crosses the two sides of each
	// notch plus the right slanted side.
	assert.Equal(t, 5, m.CrossingCount(Point{-5, 1.9}))
	assert.Equal(t, 0, m.CrossingCount(Point{7, 0}))
}

func TestSignedArea(t *testing.T) {
	square := LoadFixture("square")
	assert.InDelta(t, 16, square.SignedArea(), Tolerance)
	assert.InDelta(t, -16, square.Reverse().SignedArea(), Tolerance)
	assert.InDelta(t, 16, square.Reverse().Area(), Tolerance)

	diamond := LoadFixture("diamond")
	assert.InDelta(t, 8, diamond.Area(), Tolerance)

	// Trapezoid of area 40 minus three notches of area notch^2 each.
	m := LoadFixture("m")
	assert.InDelta(t, 40-3*0.16, m.Area(), Tolerance)
}

func TestReverse(t *testing.T) {
	square := LoadFixture("square")
	reversed := square.Reverse()
	assert.Equal(t, []Point{{0, 4}, {4, 4}, {4, 0}, {0, 0}}, reversed.Vertices())
	assert.True(t, reversed.Reverse().Equal(square))
}

func TestBounds(t *testing.T) {
	min, max := LoadFixture("m").Bounds()
	assert.Equal(t, Point{-6, -2}, min)
	assert.Equal(t, Point{6, 2}, max)
}

// Helpers

// Call fn on a grid of points covering the box, padded by 10%.
func forEachSample(min, max Point, fn func(p Point)) {
	xPadding := (max.X - min.X) * 0.1
	yPadding := (max.Y - min.Y) * 0.1
	min.X -= xPadding
	min.Y -= yPadding
	max.X += xPadding
	max.Y += yPadding

	// Odd divisor so the grid doesn't line up with round fixture coordinates.
	step := (max.X - min.X) / 47
	if yStep := (max.Y - min.Y) / 47; yStep > step {
		step = yStep
	}
	for y := min.Y; y <= max.Y; y += step {
		for x := min.X; x <= max.X; x += step {
			fn(Point{x, y})
		}
	}
}
