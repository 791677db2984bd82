package render

import (
	"image"
	"image/color"
	"io"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// A raster Surface backed by a gg context.
type GGSurface struct {
	ctx         *gg.Context
	background  color.Color
	strokeColor color.Color
}

var _ Surface = (*GGSurface)(nil)

func NewGGSurface(width, height int, background color.Color, lineWidth float64) *GGSurface {
	ctx := gg.NewContext(width, height)
	ctx.SetLineWidth(lineWidth)
	s := &GGSurface{ctx: ctx, background: background, strokeColor: color.Black}
	s.ClearRect(0, 0, float64(width), float64(height))
	return s
}

func (s *GGSurface) Size() (width, height float64) {
	return float64(s.ctx.Width()), float64(s.ctx.Height())
}

// gg has no clear, so paint the background over the rectangle. Any path in
// progress is discarded.
func (s *GGSurface) ClearRect(x, y, width, height float64) {
	s.ctx.Push()
	s.ctx.ClearPath()
	s.ctx.SetColor(s.background)
	s.ctx.DrawRectangle(x, y, width, height)
	s.ctx.Fill()
	s.ctx.Pop()
}

func (s *GGSurface) BeginPath() {
	s.ctx.ClearPath()
}

func (s *GGSurface) MoveTo(x, y float64) {
	s.ctx.MoveTo(x, y)
}

func (s *GGSurface) LineTo(x, y float64) {
	s.ctx.LineTo(x, y)
}

func (s *GGSurface) SetStrokeColor(c color.Color) {
	s.strokeColor = c
}

// Like a canvas stroke, the path survives until the next BeginPath.
func (s *GGSurface) Stroke() {
	s.ctx.SetColor(s.strokeColor)
	s.ctx.StrokePreserve()
}

func (s *GGSurface) Image() image.Image {
	return s.ctx.Image()
}

func (s *GGSurface) SavePNG(path string) error {
	return errors.Wrap(s.ctx.SavePNG(path), "saving png")
}

func (s *GGSurface) EncodePNG(w io.Writer) error {
	return errors.Wrap(s.ctx.EncodePNG(w), "encoding png")
}

// Print the image inline in the terminal (iTerm only).
func (s *GGSurface) Imgcat(out *os.File) error {
	f, err := os.CreateTemp("", "mframe-*.png")
	if err != nil {
		return errors.Wrap(err, "creating preview file")
	}
	defer os.Remove(f.Name())
	err = s.ctx.EncodePNG(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrap(err, "writing preview file")
	}
	imgcat.CatFile(f.Name(), out)
	return nil
}
