package pathfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/mframe/geom"
)

const squareText = `
# unit-ish square
path "square" {
  0 0
  4, 0;
  4 4
  0 4
}

path "triangle" {
  0 0
  1 0
  0 1
  0 0
}
`

func TestParseText(t *testing.T) {
	paths, err := ParseText("square.path", strings.NewReader(squareText))
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.Equal(t, "square", paths[0].Name)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}, paths[0].Path.Vertices())

	// The repeated closing vertex is dropped.
	assert.Equal(t, "triangle", paths[1].Name)
	assert.Equal(t, 3, paths[1].Path.Len())
}

func TestParseTextErrors(t *testing.T) {
	cases := map[string]string{
		"empty":           ``,
		"missing name":    `path { 0 0 1 1 }`,
		"odd coordinates": `path "x" { 0 0 1 }`,
		"unterminated":    `path "x" { 0 0 1 1`,
		"repeated vertex": `path "x" { 0 0 1 1 1 1 }`,
		"single vertex":   `path "x" { 0 0 }`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseText("bad.path", strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestWriteTextRoundTrip(t *testing.T) {
	glyph := geom.Glyph()
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, NamedPath{Name: "m", Path: glyph}, NamedPath{Name: "m again", Path: glyph.Reverse()}))

	paths, err := ParseText("m.path", &buf)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "m", paths[0].Name)
	assert.Equal(t, glyph.Vertices(), paths[0].Path.Vertices())
	assert.Equal(t, "m again", paths[1].Name)
	assert.Equal(t, glyph.Reverse().Vertices(), paths[1].Path.Vertices())
}

func TestReadSVG(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg">
  <rect x="0" y="0" width="1" height="1"/>
  <polygon points="0,0 4,0 4 4, 0 4"/>
  <polygon points="9,9 8,8 7,9"/>
</svg>`
	path, err := ReadSVG(strings.NewReader(svg))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}, path.Vertices())

	_, err = ReadSVG(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><rect/></svg>`))
	assert.Error(t, err)

	_, err = ReadSVG(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><polygon points="0,0 1"/></svg>`))
	assert.Error(t, err)
}

func TestReadPoints(t *testing.T) {
	input := "0 0\n4 0\n4 4\n0 4\n\n\n-1 -1\n1 -1\n0 1\n"
	paths, err := ReadPoints(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, 4, paths[0].Len())
	assert.Equal(t, 3, paths[1].Len())

	_, err = ReadPoints(strings.NewReader("0 0\n1\n"))
	assert.EqualError(t, err, `line 2: expected "x y", got "1"`)

	_, err = ReadPoints(strings.NewReader("0 0\nx 1\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		return p
	}

	t.Run("text", func(t *testing.T) {
		path, err := Load(write("square.path", squareText))
		require.NoError(t, err)
		assert.Equal(t, 4, path.Len())
	})

	t.Run("svg", func(t *testing.T) {
		path, err := Load(write("tri.SVG", `<svg xmlns="http://www.w3.org/2000/svg"><polygon points="0,0 1,0 0,1"/></svg>`))
		require.NoError(t, err)
		assert.Equal(t, 3, path.Len())
	})

	t.Run("points", func(t *testing.T) {
		path, err := Load(write("tri.txt", "0 0\n1 0\n0 1\n"))
		require.NoError(t, err)
		assert.Equal(t, 3, path.Len())
	})

	t.Run("no points", func(t *testing.T) {
		_, err := Load(write("empty.txt", "\n\n"))
		assert.Error(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.path"))
		assert.Error(t, err)
	})
}
