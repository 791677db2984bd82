// Package pathfile loads base paths from disk.
//
// Three formats are understood, picked by file extension: SVG (.svg, the first
// polygon element), the text path format (.path, see ParseText), and anything
// else is read as a plain "x y" point list.
package pathfile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/mframe/geom"
)

// Load the first path in the named file.
func Load(name string) (geom.ClosedPath, error) {
	f, err := os.Open(name)
	if err != nil {
		return geom.ClosedPath{}, errors.Wrap(err, "opening path file")
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(name)) {
	case ".svg":
		path, err := ReadSVG(f)
		return path, errors.Wrap(err, name)
	case ".path":
		paths, err := ParseText(name, f)
		if err != nil {
			return geom.ClosedPath{}, err
		}
		return paths[0].Path, nil
	default:
		paths, err := ReadPoints(f)
		if err != nil {
			return geom.ClosedPath{}, errors.Wrap(err, name)
		}
		if len(paths) == 0 {
			return geom.ClosedPath{}, errors.Errorf("%s: no points", name)
		}
		return paths[0], nil
	}
}
