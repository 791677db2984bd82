package geom

import (
	"fmt"

	"github.com/pkg/errors"
)

// Returned (never panicked out of the package) when the geometry can't produce
// a finite result: a zero length edge, or two consecutive offset lines that are
// parallel and so never intersect.
type DegenerateGeometryError struct {
	// Index of the offending edge, or -1 when the problem isn't tied to one edge.
	Edge   int
	Reason string
}

func (e *DegenerateGeometryError) Error() string {
	if e.Edge < 0 {
		return fmt.Sprintf("degenerate geometry: %s", e.Reason)
	}
	return fmt.Sprintf("degenerate geometry at edge %d: %s", e.Edge, e.Reason)
}

// Reports whether err, or anything it wraps, is a DegenerateGeometryError.
func IsDegenerate(err error) bool {
	_, ok := errors.Cause(err).(*DegenerateGeometryError)
	return ok
}

func degeneratef(edge int, format string, args ...interface{}) error {
	return errors.WithStack(&DegenerateGeometryError{Edge: edge, Reason: fmt.Sprintf(format, args...)})
}

// The offsetting passes are a few levels deep, and threading an edge index
// through every helper just to build an error message is noise. Helpers panic
// with a DegenerateGeometryError via throwDegenerate, and the exported entry
// points recover it into an ordinary error.
type thrownError struct {
	err error
}

func throwDegenerate(edge int, format string, args ...interface{}) {
	panic(thrownError{degeneratef(edge, format, args...)})
}

// Converts a recovered throwDegenerate panic into an error. Any other panic is
// re-raised, since it's a real bug.
func HandleOffsetPanicRecover(r interface{}) error {
	if r != nil {
		if thrown, ok := r.(thrownError); ok {
			return thrown.err
		}
		panic(r)
	}
	return nil
}
