package pathfile

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/mframe/geom"
)

// Read the first <polygon> element of an SVG document. Only the points
// attribute is looked at; transforms and units are ignored, so the coordinates
// are taken as model units.
func ReadSVG(r io.Reader) (geom.ClosedPath, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return geom.ClosedPath{}, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return geom.ClosedPath{}, errors.New("no polygon element found")
	}

	points, err := parseSVGPoints(polygons[0].Attributes["points"])
	if err != nil {
		return geom.ClosedPath{}, err
	}
	path, err := geom.NewClosedPath(points)
	return path, errors.Wrap(err, "svg polygon")
}

// The points attribute allows commas and whitespace interchangeably as
// separators, so "1,2 3,4" and "1 2, 3 4" are the same list.
func parseSVGPoints(attr string) ([]geom.Point, error) {
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in points %q", attr)
	}

	points := make([]geom.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points, nil
}
