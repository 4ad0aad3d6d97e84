package advanced

import "github.com/pkg/errors"

var (
	// ErrPrecondition means the caller broke a contract: an edge that isn't an
	// edge of the triangle, or an override of an adjacency that doesn't exist.
	ErrPrecondition = errors.New("precondition violated")

	// ErrCapacity means a DAG node was asked to take a fourth child. No supported
	// mutation does that.
	ErrCapacity = errors.New("dag node capacity exceeded")

	// ErrLookupFailure means navigation could not find a containing triangle. The
	// point is outside the mesh, or the exact predicates disagreed with each
	// other near a degenerate configuration.
	ErrLookupFailure = errors.New("point lookup failed")

	ErrDuplicatePoint = errors.New("point is already a vertex of the mesh")
	ErrDegenerate     = errors.New("degenerate triangle")
	ErrNotFlippable   = errors.New("triangles cannot be flipped")
)

// Threading errors up and down every adjacency repair would add a ton of noise
// to code whose failures are all caller bugs. Instead, we panic with a fault,
// and the public API recovers to convert it to an error.
type fault struct {
	error
}

// Panic with a fault wrapping kind.
func fatalf(kind error, format string, args ...interface{}) {
	panic(fault{errors.Wrapf(kind, format, args...)})
}

// HandlePanicRecover converts a recovered fault into an error. Anything that
// isn't a fault is a real panic and is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if f, ok := r.(fault); ok {
			return f.error
		}
		panic(r)
	}
	return nil
}
