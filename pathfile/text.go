package pathfile

import (
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/osuushi/mframe/geom"
)

// The text path format. A file holds one or more named blocks of "x y"
// vertices; the comma between coordinates and a trailing semicolon are
// optional:
//
//	# the default glyph
//	path "m" {
//	  -4 -2
//	  -0.4, -2;
//	  ...
//	}

var (
	pathLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Number", Pattern: `[-+]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Punct", Pattern: `[{},;]`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(pathLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.Unquote("String"),
	)
)

type File struct {
	Paths []*Block `parser:"@@+"`
}

type Block struct {
	Pos      lexer.Position
	Name     string    `parser:"'path' @String"`
	Vertices []*Vertex `parser:"'{' @@* '}'"`
}

type Vertex struct {
	X float64 `parser:"@Number ','?"`
	Y float64 `parser:"@Number ';'?"`
}

// A closed path read from a file, with the name it was given there.
type NamedPath struct {
	Name string
	Path geom.ClosedPath
}

// Parse every path block in a text path file. filename is only used in error
// messages.
func ParseText(filename string, r io.Reader) ([]NamedPath, error) {
	file, err := fileParser.Parse(filename, r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing path file")
	}

	paths := make([]NamedPath, 0, len(file.Paths))
	for _, block := range file.Paths {
		points := make([]geom.Point, len(block.Vertices))
		for i, vertex := range block.Vertices {
			points[i] = geom.Point{X: vertex.X, Y: vertex.Y}
		}
		path, err := geom.NewClosedPath(points)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: path %q", block.Pos, block.Name)
		}
		paths = append(paths, NamedPath{Name: block.Name, Path: path})
	}
	return paths, nil
}

// Write paths in the text format. ParseText reads the output back unchanged.
func WriteText(w io.Writer, paths ...NamedPath) error {
	for i, named := range paths {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "path "+strconv.Quote(named.Name)+" {\n"); err != nil {
			return err
		}
		for _, p := range named.Path.Points() {
			line := "  " + formatFloat(p.X) + " " + formatFloat(p.Y) + "\n"
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "}\n"); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
