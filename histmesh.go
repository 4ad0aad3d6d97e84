// Incremental planar triangulation with fast point location for Go.
//
// Points are inserted one at a time. Each insertion replaces the triangle
// containing the point with smaller ones, and edge flips restore the Delaunay
// property. Every triangle ever created is kept in a history DAG, so finding
// the triangle that contains a point is a short walk from the root instead of
// a scan of the mesh.
//
// The advanced package exposes the engine itself: the arena, the adjacency
// functions and the DAG navigator.
package histmesh

import (
	"github.com/osuushi/histmesh/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type Mesh = advanced.Mesh
type Triangle = advanced.Triangle
type TriangleID = advanced.TriangleID
type Option = advanced.Option

const NoTriangle = advanced.NoTriangle

var (
	WithSeed             = advanced.WithSeed
	WithNondeterministic = advanced.WithNondeterministic
	WithoutLegalization  = advanced.WithoutLegalization
	WithPredicates       = advanced.WithPredicates
	WithTrace            = advanced.WithTrace
)

// Triangulate builds a Delaunay triangulation of points. The points are
// inserted in shuffled order, which is what gives point location its expected
// logarithmic depth; see WithSeed and WithNondeterministic. Duplicate points
// are skipped.
//
// Use InteriorTriangles on the result to get the triangles over the input
// points, and Locate or Interpolate to query it.
func Triangulate(points []Point, opts ...Option) (result *Mesh, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	mesh, err := advanced.BuildInitialTriangulation(points, opts...)
	if err != nil {
		return nil, err
	}

	shuffled := append([]Point(nil), points...)
	r := mesh.Rand()
	// Shuffle the points. This is what gives us expected O(log n) locate depth
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for _, p := range shuffled {
		if _, err := mesh.Insert(p); err != nil {
			if errors.Is(err, advanced.ErrDuplicatePoint) {
				continue
			}
			return nil, errors.Wrapf(err, "inserting %v", p)
		}
	}
	return mesh, nil
}

// NewMesh creates an empty mesh over the triangle a, b, c.
func NewMesh(a, b, c Point, opts ...Option) (*Mesh, error) {
	return advanced.NewMesh(a, b, c, opts...)
}

// ThirdVertex returns the vertex of t that is not on the edge (p1, p2).
func ThirdVertex(m *Mesh, t TriangleID, p1, p2 Point) (Point, bool) {
	return m.Triangle(t).ThirdVertex(p1, p2)
}

// AreAdjacent reports whether two triangles share an edge.
func AreAdjacent(m *Mesh, t1, t2 TriangleID) bool {
	return advanced.AreAdjacent(m.Arena(), t1, t2)
}

// NeighborAcrossEdge returns the triangle on the other side of the edge
// (p1, p2) of t.
func NeighborAcrossEdge(m *Mesh, t TriangleID, p1, p2 Point) (TriangleID, bool) {
	return advanced.NeighborAcrossEdge(m.Arena(), t, p1, p2)
}
