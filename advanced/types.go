package advanced

import "fmt"

// Points are plain values. Two points are the same vertex iff their coordinates
// are exactly equal; no tolerance is applied anywhere in the structural code.
// Callers should never nudge a coordinate they handed to the mesh, since the
// mesh matches vertices by exact equality.
type Point struct {
	X float64
	Y float64
}

func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Handles into the arena. Triangles and nodes are never freed while the mesh
// is alive, so a handle stays valid for the mesh's lifetime.
type TriangleID int32
type NodeID int32

const (
	NoTriangle TriangleID = -1
	NoNode     NodeID     = -1
)

// Slots name the three vertex/neighbor positions of a triangle. The neighbor in
// slot A is across the edge opposite vertex A (the B-C edge), and so on.
const (
	SlotA = iota
	SlotB
	SlotC
)

type PointSet map[Point]struct{}

func (s PointSet) Add(p Point) {
	s[p] = struct{}{}
}

func (s PointSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}
