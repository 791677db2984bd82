// Package config holds the tunable values of a render: surface size, the
// model to pixel transform, colors and the starting thickness. Defaults match
// the classic 800x400 canvas; a YAML file can override any of them.
package config

import (
	"image/color"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/tdewolff/canvas"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/mframe/geom"
)

type Config struct {
	Thickness  float64 `yaml:"thickness"`
	NotchDepth float64 `yaml:"notch_depth"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Pixels per model unit, and where the model origin lands on the surface.
	Scale   float64 `yaml:"scale"`
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`

	LineWidth float64 `yaml:"line_width"`
	Colors    Colors  `yaml:"colors"`
}

// Colors are SVG color names ("red") or hex ("#ff0000", "#f00").
type Colors struct {
	Background string `yaml:"background"`
	Base       string `yaml:"base"`
	Expanded   string `yaml:"expanded"`
	Contracted string `yaml:"contracted"`
}

func Default() Config {
	return Config{
		Thickness:  0.25,
		NotchDepth: geom.DefaultNotchDepth,
		Width:      800,
		Height:     400,
		Scale:      50,
		CenterX:    400,
		CenterY:    200,
		LineWidth:  1,
		Colors: Colors{
			Background: "white",
			Base:       "black",
			Expanded:   "red",
			Contracted: "blue",
		},
	}
}

// Load the defaults overlaid with the YAML file at path. Keys missing from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, errors.Wrapf(cfg.Validate(), "config %s", path)
}

// Thickness is deliberately not checked: any value, including negative ones,
// is passed through to the offsetting as is.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("surface size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale %v must be positive", c.Scale)
	}
	if c.LineWidth <= 0 {
		return errors.Errorf("line width %v must be positive", c.LineWidth)
	}
	if _, err := geom.NewMGlyph(c.NotchDepth); err != nil {
		return err
	}
	for _, name := range []string{c.Colors.Background, c.Colors.Base, c.Colors.Expanded, c.Colors.Contracted} {
		if _, err := ParseColor(name); err != nil {
			return err
		}
	}
	return nil
}

func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if !isHexColor(s[1:]) {
			return color.RGBA{}, errors.Errorf("invalid hex color %q", s)
		}
		return canvas.Hex(s), nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, errors.Errorf("unknown color %q", s)
}

func isHexColor(digits string) bool {
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// Palette is Colors parsed. Call Validate first; unparseable colors come out
// as the zero (transparent) color.
type Palette struct {
	Background, Base, Expanded, Contracted color.RGBA
}

func (c Colors) Palette() Palette {
	parse := func(s string) color.RGBA {
		rgba, _ := ParseColor(s)
		return rgba
	}
	return Palette{
		Background: parse(c.Background),
		Base:       parse(c.Base),
		Expanded:   parse(c.Expanded),
		Contracted: parse(c.Contracted),
	}
}

func (c Config) Glyph() geom.ClosedPath {
	return geom.MGlyph(c.NotchDepth)
}
