// Package control models the thickness slider: the single input that drives
// recomputation. It knows nothing about windows or drawing; the viewer feeds
// it pointer positions and key presses and asks whether the value moved.
package control

import "math"

type Slider struct {
	Min, Max float64
	// Values snap to multiples of Step above Min. Zero disables snapping.
	Step float64

	// Track geometry in pixels: the slider spans [X, X+Width] horizontally.
	X, Width float64

	value   float64
	changed bool
}

// A slider over [0, 1] in steps of 0.01, starting at value.
func NewSlider(value, x, width float64) *Slider {
	s := &Slider{Min: 0, Max: 1, Step: 0.01, X: x, Width: width}
	s.value = s.clamp(value)
	s.changed = true
	return s
}

func (s *Slider) Value() float64 {
	return s.value
}

// Set the value, clamped and snapped. Only an actual change marks the slider
// as changed.
func (s *Slider) Set(v float64) {
	v = s.clamp(s.snap(v))
	if v != s.value {
		s.value = v
		s.changed = true
	}
}

// Set the value from a pointer x position on the track. Positions off either
// end of the track pin to the ends.
func (s *Slider) SetFromPointer(x float64) {
	if s.Width <= 0 {
		return
	}
	fraction := (x - s.X) / s.Width
	s.Set(s.Min + fraction*(s.Max-s.Min))
}

// Move by a number of steps (negative moves down).
func (s *Slider) Nudge(steps int) {
	step := s.Step
	if step == 0 {
		step = (s.Max - s.Min) / 100
	}
	s.Set(s.value + float64(steps)*step)
}

// Pixel x of the knob.
func (s *Slider) KnobX() float64 {
	if s.Max == s.Min {
		return s.X
	}
	return s.X + (s.value-s.Min)/(s.Max-s.Min)*s.Width
}

// Report whether the value changed since the last call, and clear the flag.
// A new slider reports a change once, so the first frame gets drawn.
func (s *Slider) Changed() bool {
	changed := s.changed
	s.changed = false
	return changed
}

func (s *Slider) clamp(v float64) float64 {
	return math.Max(s.Min, math.Min(s.Max, v))
}

func (s *Slider) snap(v float64) float64 {
	if s.Step <= 0 {
		return v
	}
	steps := math.Round((v - s.Min) / s.Step)
	// Round off the float noise that repeated multiplication adds, so that
	// 0.29 doesn't come out as 0.29000000000000004.
	return roundTo(s.Min+steps*s.Step, s.Step)
}

func roundTo(v, step float64) float64 {
	decimals := math.Max(0, math.Ceil(-math.Log10(step)))
	scale := math.Pow(10, decimals+3)
	return math.Round(v*scale) / scale
}
