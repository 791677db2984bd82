package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/osuushi/mframe/geom"
	"github.com/osuushi/mframe/internal/config"
	"github.com/osuushi/mframe/render"
)

// Draw one pass and write it to out. Degenerate geometry still produces a file
// (with only the base path in it), but the error is returned afterwards.
func runRender(w io.Writer, au aurora.Aurora, cfg config.Config, base geom.ClosedPath, out string, preview bool) error {
	driver := render.Configure(cfg)
	driver.Base = base
	params := render.Params{Thickness: cfg.Thickness}
	palette := cfg.Colors.Palette()

	var renderErr error
	switch ext := strings.ToLower(filepath.Ext(out)); ext {
	case ".png":
		surface := render.NewGGSurface(cfg.Width, cfg.Height, palette.Background, cfg.LineWidth)
		_, renderErr = driver.Render(surface, params)
		if err := surface.SavePNG(out); err != nil {
			return err
		}
		if preview {
			if err := surface.Imgcat(os.Stdout); err != nil {
				return err
			}
		}
	case ".svg", ".pdf":
		surface := render.NewCanvasSurface(float64(cfg.Width), float64(cfg.Height), palette.Background, cfg.LineWidth)
		_, renderErr = driver.Render(surface, params)
		if err := surface.WriteFile(out); err != nil {
			return err
		}
	default:
		return errors.Errorf("unsupported output format %q, want .png, .svg or .pdf", ext)
	}

	if renderErr != nil {
		fmt.Fprintln(w, au.Yellow(fmt.Sprintf("wrote %s with the base path only", out)))
		return renderErr
	}
	fmt.Fprintln(w, au.Green(fmt.Sprintf("wrote %s", out)), fmt.Sprintf("(thickness %v)", cfg.Thickness))
	return nil
}
