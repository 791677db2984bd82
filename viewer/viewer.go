// Package viewer is the interactive front end: a window showing the glyph and
// its offsets, with a thickness slider underneath. Dragging the slider (or
// pressing the arrow keys) redraws the three paths.
package viewer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"github.com/osuushi/mframe/geom"
	"github.com/osuushi/mframe/internal/config"
	"github.com/osuushi/mframe/internal/control"
	"github.com/osuushi/mframe/render"
)

const (
	panelHeight  = 48
	trackLeft    = 150
	trackMargin  = 40
	knobRadius   = 8
	keyRepeatGap = 4
)

var (
	trackColor = color.RGBA{160, 160, 160, 255}
	knobColor  = color.RGBA{60, 60, 60, 255}
)

type Viewer struct {
	cfg     config.Config
	palette config.Palette
	driver  *render.Driver
	slider  *control.Slider

	// Owned here, updated from the slider, and handed by value to each pass.
	params render.Params

	frame    *ebiten.Image
	surface  *imageSurface
	dragging bool
	lastErr  error
}

func New(cfg config.Config, base geom.ClosedPath) *Viewer {
	driver := render.Configure(cfg)
	driver.Base = base
	trackWidth := float64(cfg.Width - trackLeft - trackMargin)
	return &Viewer{
		cfg:     cfg,
		palette: cfg.Colors.Palette(),
		driver:  driver,
		slider:  control.NewSlider(cfg.Thickness, trackLeft, trackWidth),
		params:  render.Params{Thickness: cfg.Thickness},
	}
}

// Open the window and block until it's closed.
func (v *Viewer) Run() error {
	ebiten.SetWindowSize(v.cfg.Width, v.cfg.Height+panelHeight)
	ebiten.SetWindowTitle("mframe")
	return errors.Wrap(ebiten.RunGame(v), "running viewer")
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	v.handlePointer()
	v.handleKeys()

	if v.slider.Changed() {
		v.params.Thickness = v.slider.Value()
		v.redraw()
	}
	return nil
}

func (v *Viewer) handlePointer() {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && y >= v.cfg.Height {
		v.dragging = true
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		v.dragging = false
	}
	if v.dragging {
		v.slider.SetFromPointer(float64(x))
	}
}

func (v *Viewer) handleKeys() {
	for key, steps := range map[ebiten.Key]int{ebiten.KeyArrowLeft: -1, ebiten.KeyArrowRight: 1} {
		d := inpututil.KeyPressDuration(key)
		if d == 1 || (d > 20 && d%keyRepeatGap == 0) {
			v.slider.Nudge(steps)
		}
	}
}

// Run a render pass into the offscreen frame. This only happens when the
// thickness changes; Draw just blits the last frame.
func (v *Viewer) redraw() {
	if v.frame == nil {
		v.frame = ebiten.NewImage(v.cfg.Width, v.cfg.Height)
		v.surface = newImageSurface(v.frame, v.palette.Background, v.cfg.LineWidth)
	}
	_, v.lastErr = v.driver.Render(v.surface, v.params)
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(v.palette.Background)
	if v.frame != nil {
		screen.DrawImage(v.frame, nil)
	}
	v.drawSlider(screen)
}

func (v *Viewer) drawSlider(screen *ebiten.Image) {
	y := float32(v.cfg.Height + panelHeight/2)
	left := float32(v.slider.X)
	right := float32(v.slider.X + v.slider.Width)
	vector.StrokeLine(screen, left, y, right, y, 4, trackColor, true)
	vector.DrawFilledCircle(screen, float32(v.slider.KnobX()), y, knobRadius, knobColor, true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("thickness %.2f", v.params.Thickness), 10, v.cfg.Height+panelHeight/2-8)
	if v.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, v.lastErr.Error(), 10, 10)
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cfg.Width, v.cfg.Height + panelHeight
}
