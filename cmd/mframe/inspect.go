package main

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"

	"github.com/osuushi/mframe/dbg"
	"github.com/osuushi/mframe/geom"
)

// Print one row per edge: its readable name, slope, and the expanded and
// contracted vertices where it meets the next edge.
func runInspect(w io.Writer, au aurora.Aurora, base geom.ClosedPath, thickness float64, dump bool) error {
	result, err := geom.Offset(base, thickness)
	if err != nil {
		fmt.Fprintln(w, au.Red(err.Error()))
		return err
	}

	fmt.Fprintf(w, "%s %v, %d edges\n", au.Bold("thickness"), thickness, base.Len())
	edges := base.Edges()
	for i := range edges {
		edge := &edges[i]
		fmt.Fprintf(w, "%3d %-24s slope %-22s %s -> %s  expanded %s  contracted %s\n",
			i,
			au.Cyan(dbg.Name(edge)),
			edge.Slope,
			edge.Start,
			edge.End,
			au.Red(result.Expanded.Vertex(i)),
			au.Blue(result.Contracted.Vertex(i)),
		)
	}
	fmt.Fprintf(w, "%s base %.6g  expanded %.6g  contracted %.6g\n",
		au.Bold("area"), base.Area(), result.Expanded.Area(), result.Contracted.Area())

	if dump {
		fmt.Fprintln(w, pretty.Sprint(result))
	}
	return nil
}
