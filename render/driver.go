package render

import (
	"image/color"

	"github.com/pkg/errors"

	"github.com/osuushi/mframe/geom"
	"github.com/osuushi/mframe/internal/config"
)

// The only state a render pass reads. The owner of the Driver keeps it and
// hands a copy to every Render call.
type Params struct {
	Thickness float64
}

type Driver struct {
	Base      geom.ClosedPath
	Style     Style
	Transform Transform
	Options   geom.Options
}

func NewDriver(base geom.ClosedPath) *Driver {
	return &Driver{
		Base:      base,
		Style:     DefaultStyle(),
		Transform: DefaultTransform(),
	}
}

// A driver for the configured glyph, colors and transform.
func Configure(cfg config.Config) *Driver {
	palette := cfg.Colors.Palette()
	d := NewDriver(cfg.Glyph())
	d.Style = Style{Base: palette.Base, Expanded: palette.Expanded, Contracted: palette.Contracted}
	d.Transform = Transform{Scale: cfg.Scale, CenterX: cfg.CenterX, CenterY: cfg.CenterY}
	return d
}

// Run one full pass: offset the base path, clear the surface and stroke the
// base, expanded and contracted paths in that order.
//
// If the offsetting fails, the surface still gets cleared and the base path
// drawn, and the error is returned.
func (d *Driver) Render(s Surface, p Params) (geom.Result, error) {
	Logger().Debug("render pass", "thickness", p.Thickness, "vertices", d.Base.Len())
	result, err := geom.OffsetWithOptions(d.Base, p.Thickness, d.Options)

	width, height := s.Size()
	s.ClearRect(0, 0, width, height)
	d.drawPath(s, d.Base.Points(), d.Style.Base)
	if err != nil {
		Logger().Warn("cannot offset base path", "thickness", p.Thickness, "err", err)
		return result, errors.Wrapf(err, "offsetting at thickness %v", p.Thickness)
	}

	d.drawPath(s, result.Expanded.Points(), d.Style.Expanded)
	d.drawPath(s, result.Contracted.Points(), d.Style.Contracted)
	return result, nil
}

// Paths already end on their first vertex, so no closing segment is added.
func (d *Driver) drawPath(s Surface, points []geom.Point, c color.Color) {
	if len(points) == 0 {
		return
	}
	s.BeginPath()
	for i, p := range points {
		x, y := d.Transform.Apply(p.X, p.Y)
		if i == 0 {
			s.MoveTo(x, y)
		} else {
			s.LineTo(x, y)
		}
	}
	s.SetStrokeColor(c)
	s.Stroke()
}
