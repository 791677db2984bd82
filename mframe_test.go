package mframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/mframe/geom"
)

// Smoke test. The internals are already tested.
func TestOffset(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: 4},
		{X: 0, Y: 4},
	}

	expanded, contracted, err := Offset(points, 1)
	assert.NoError(t, err)
	assert.Len(t, expanded, 5)
	assert.Len(t, contracted, 5)
	assert.InDelta(t, -0.5, expanded[3].X, geom.Tolerance)
	assert.InDelta(t, 0.5, contracted[3].X, geom.Tolerance)
}

func TestOffsetGlyph(t *testing.T) {
	glyph := Glyph()
	require.Len(t, glyph, 14)
	expanded, contracted, err := Offset(glyph, 0.25)
	require.NoError(t, err)
	assert.Len(t, expanded, 14)
	assert.Len(t, contracted, 14)
}

func TestOffsetErrors(t *testing.T) {
	_, _, err := Offset([]Point{{X: 0, Y: 0}}, 1)
	assert.Error(t, err)

	_, _, err = Offset([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}}, 1)
	assert.True(t, geom.IsDegenerate(err))
}
