package pathfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/mframe/geom"
)

// Read newline separated points in the form "x y", with each polygon separated
// by an extra newline. All polygons are returned in order.
func ReadPoints(r io.Reader) ([]geom.ClosedPath, error) {
	var paths []geom.ClosedPath
	var points []geom.Point
	flush := func() error {
		if len(points) == 0 {
			return nil
		}
		path, err := geom.NewClosedPath(points)
		if err != nil {
			return errors.Wrapf(err, "polygon %d", len(paths)+1)
		}
		paths = append(paths, path)
		points = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing polygon if any
	if err := flush(); err != nil {
		return nil, err
	}
	return paths, nil
}

func parsePoint(line string) (geom.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geom.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return geom.Point{X: x, Y: y}, nil
}
