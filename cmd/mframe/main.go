// Command mframe draws the M frame glyph with its expanded and contracted
// outlines.
//
//	mframe render -t 0.4 -o m.svg      write a PNG, SVG or PDF
//	mframe inspect -t 0.4              print the offset vertices
//	mframe view                        open the interactive slider window
package main

import (
	"log/slog"
	"math"
	"os"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/mframe/geom"
	"github.com/osuushi/mframe/internal/config"
	"github.com/osuushi/mframe/pathfile"
	"github.com/osuushi/mframe/render"
	"github.com/osuushi/mframe/viewer"
)

var (
	app        = kingpin.New("mframe", "Offset the M frame glyph outward and inward.")
	configPath = app.Flag("config", "YAML file overriding the default sizes and colors.").ExistingFile()
	verbose    = app.Flag("verbose", "Log each render pass to stderr.").Short('v').Bool()
	noColor    = app.Flag("no-color", "Disable colored output.").Bool()

	renderCmd       = app.Command("render", "Render to a .png, .svg or .pdf file.")
	renderThickness = thicknessFlag(renderCmd)
	renderPath      = pathFlag(renderCmd)
	renderOut       = renderCmd.Flag("out", "Output file.").Short('o').Default("mframe.png").String()
	renderImgcat    = renderCmd.Flag("imgcat", "Also show PNG output in the terminal (iTerm only).").Bool()

	inspectCmd       = app.Command("inspect", "Print the base, expanded and contracted vertices.")
	inspectThickness = thicknessFlag(inspectCmd)
	inspectPath      = pathFlag(inspectCmd)
	inspectDump      = inspectCmd.Flag("dump", "Pretty print the whole offset result.").Bool()

	viewCmd       = app.Command("view", "Open an interactive window with a thickness slider.")
	viewThickness = thicknessFlag(viewCmd)
	viewPath      = pathFlag(viewCmd)
)

// NaN stands for "not given", so that any real number, negative ones
// included, can still be passed through.
func thicknessFlag(cmd *kingpin.CmdClause) *float64 {
	return cmd.Flag("thickness", "Stroke thickness in model units (default from config).").Short('t').Default("NaN").Float64()
}

func pathFlag(cmd *kingpin.CmdClause) *string {
	return cmd.Flag("path", "Base path file (.svg, .path or an \"x y\" point list) instead of the M glyph.").ExistingFile()
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	au := aurora.NewAurora(!*noColor)

	if *verbose {
		render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		app.FatalIfError(err, "")
	}

	switch command {
	case renderCmd.FullCommand():
		cfg.Thickness = thickness(cfg, *renderThickness)
		base, err := loadBase(cfg, *renderPath)
		app.FatalIfError(err, "")
		app.FatalIfError(runRender(os.Stdout, au, cfg, base, *renderOut, *renderImgcat), "render")

	case inspectCmd.FullCommand():
		cfg.Thickness = thickness(cfg, *inspectThickness)
		base, err := loadBase(cfg, *inspectPath)
		app.FatalIfError(err, "")
		app.FatalIfError(runInspect(os.Stdout, au, base, cfg.Thickness, *inspectDump), "inspect")

	case viewCmd.FullCommand():
		cfg.Thickness = thickness(cfg, *viewThickness)
		base, err := loadBase(cfg, *viewPath)
		app.FatalIfError(err, "")
		app.FatalIfError(viewer.New(cfg, base).Run(), "view")
	}
}

func thickness(cfg config.Config, flag float64) float64 {
	if math.IsNaN(flag) {
		return cfg.Thickness
	}
	return flag
}

func loadBase(cfg config.Config, path string) (geom.ClosedPath, error) {
	if path == "" {
		return cfg.Glyph(), nil
	}
	return pathfile.Load(path)
}
