package viewer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/osuushi/mframe/render"
)

type point struct {
	x, y float32
}

// render.Surface on top of an ebiten image. ebiten has no path stroking that
// matches a canvas polyline, so each path is stroked one segment at a time.
type imageSurface struct {
	img         *ebiten.Image
	background  color.Color
	lineWidth   float32
	strokeColor color.Color
	path        []point
}

var _ render.Surface = (*imageSurface)(nil)

func newImageSurface(img *ebiten.Image, background color.Color, lineWidth float64) *imageSurface {
	return &imageSurface{
		img:         img,
		background:  background,
		lineWidth:   float32(lineWidth),
		strokeColor: color.Black,
	}
}

func (s *imageSurface) Size() (width, height float64) {
	bounds := s.img.Bounds()
	return float64(bounds.Dx()), float64(bounds.Dy())
}

func (s *imageSurface) ClearRect(x, y, width, height float64) {
	w, h := s.Size()
	if x <= 0 && y <= 0 && x+width >= w && y+height >= h {
		s.img.Fill(s.background)
		return
	}
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(width), float32(height), s.background, false)
}

func (s *imageSurface) BeginPath() {
	s.path = s.path[:0]
}

func (s *imageSurface) MoveTo(x, y float64) {
	s.path = append(s.path, point{float32(x), float32(y)})
}

func (s *imageSurface) LineTo(x, y float64) {
	s.path = append(s.path, point{float32(x), float32(y)})
}

func (s *imageSurface) SetStrokeColor(c color.Color) {
	s.strokeColor = c
}

func (s *imageSurface) Stroke() {
	for i := 1; i < len(s.path); i++ {
		from, to := s.path[i-1], s.path[i]
		vector.StrokeLine(s.img, from.x, from.y, to.x, to.y, s.lineWidth, s.strokeColor, true)
	}
}
