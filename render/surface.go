// Package render draws a base path and its two offsets onto a Surface.
//
// A Surface is the drawing sink: something with scoped path drawing in its own
// pixel coordinates, like an HTML canvas. The Driver owns the model to pixel
// transform, so surfaces never see model units.
package render

import "image/color"

type Surface interface {
	// Size of the drawable area in pixels.
	Size() (width, height float64)
	// Erase a rectangle back to the background.
	ClearRect(x, y, width, height float64)
	// Start a new path, discarding any path that wasn't stroked.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	SetStrokeColor(c color.Color)
	// Stroke the current path with the current stroke color.
	Stroke()
}

// Model to pixel mapping: pixel = model*Scale + Center.
type Transform struct {
	Scale            float64
	CenterX, CenterY float64
}

func DefaultTransform() Transform {
	return Transform{Scale: 50, CenterX: 400, CenterY: 200}
}

func (t Transform) Apply(x, y float64) (px, py float64) {
	return x*t.Scale + t.CenterX, y*t.Scale + t.CenterY
}

// Stroke colors for the three paths.
type Style struct {
	Base, Expanded, Contracted color.Color
}

func DefaultStyle() Style {
	return Style{
		Base:       color.Black,
		Expanded:   color.RGBA{255, 0, 0, 255},
		Contracted: color.RGBA{0, 0, 255, 255},
	}
}
