package render

import (
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"
)

// A vector Surface backed by tdewolff/canvas, written out as SVG or PDF. One
// pixel maps to one canvas unit.
type CanvasSurface struct {
	c   *canvas.Canvas
	ctx *canvas.Context

	width, height float64
	background    color.Color
	lineWidth     float64
	strokeColor   color.Color
	path          *canvas.Path
}

var _ Surface = (*CanvasSurface)(nil)

func NewCanvasSurface(width, height float64, background color.Color, lineWidth float64) *CanvasSurface {
	s := &CanvasSurface{
		width:       width,
		height:      height,
		background:  background,
		lineWidth:   lineWidth,
		strokeColor: color.Black,
		path:        &canvas.Path{},
	}
	s.reset()
	return s
}

func (s *CanvasSurface) reset() {
	s.c = canvas.New(s.width, s.height)
	s.ctx = canvas.NewContext(s.c)
	// Top left origin with Y down, like the pixel space the driver works in.
	s.ctx.SetCoordSystem(canvas.CartesianIV)
	s.fillRect(0, 0, s.width, s.height)
}

func (s *CanvasSurface) Size() (width, height float64) {
	return s.width, s.height
}

// Clearing everything throws the drawn layers away, so repeated render passes
// don't pile up in the output. A partial clear paints the background over the
// rectangle.
func (s *CanvasSurface) ClearRect(x, y, width, height float64) {
	if x <= 0 && y <= 0 && x+width >= s.width && y+height >= s.height {
		s.reset()
		return
	}
	s.fillRect(x, y, width, height)
}

func (s *CanvasSurface) fillRect(x, y, width, height float64) {
	s.ctx.SetFillColor(s.background)
	s.ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
	s.ctx.DrawPath(x, y, canvas.Rectangle(width, height))
}

func (s *CanvasSurface) BeginPath() {
	s.path = &canvas.Path{}
}

func (s *CanvasSurface) MoveTo(x, y float64) {
	s.path.MoveTo(x, y)
}

func (s *CanvasSurface) LineTo(x, y float64) {
	s.path.LineTo(x, y)
}

func (s *CanvasSurface) SetStrokeColor(c color.Color) {
	s.strokeColor = c
}

func (s *CanvasSurface) Stroke() {
	s.ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	s.ctx.SetStrokeColor(s.strokeColor)
	s.ctx.SetStrokeWidth(s.lineWidth)
	s.ctx.DrawPath(0, 0, s.path)
}

func (s *CanvasSurface) WriteSVG(w io.Writer) error {
	r := svg.New(w, s.width, s.height, nil)
	s.c.RenderTo(r)
	return errors.Wrap(r.Close(), "writing svg")
}

func (s *CanvasSurface) WritePDF(w io.Writer) error {
	r := pdf.New(w, s.width, s.height, nil)
	s.c.RenderTo(r)
	return errors.Wrap(r.Close(), "writing pdf")
}

// Write to a .svg or .pdf file, picked by extension.
func (s *CanvasSurface) WriteFile(name string) error {
	var write func(io.Writer) error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".svg":
		write = s.WriteSVG
	case ".pdf":
		write = s.WritePDF
	default:
		return errors.Errorf("%s: canvas output must be .svg or .pdf", name)
	}

	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "closing output")
}
