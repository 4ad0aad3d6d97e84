package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// A Mesh is an incrementally built triangulation together with the history DAG
// of every triangle it has ever contained. The arena owns all of it.
//
// Mutation is single threaded. Locate never mutates, so once you stop
// inserting and flipping, any number of goroutines may locate points
// concurrently.
type Mesh struct {
	arena *Arena
	root  NodeID
	cfg   config

	// Vertices inserted by the caller, in insertion order. The root triangle's
	// vertices are included when they were supplied by the caller.
	vertices []Point
	// Corners of the enclosing triangle when the mesh was bootstrapped from a
	// point cloud. They are not part of the caller's data.
	synthetic PointSet
}

// Multiple of the bounding box size used to place the enclosing triangle's
// corners. Bigger is safer for the Delaunay property near the hull, and costs
// precision in the in-circle test.
const superTriangleScale = 20

// NewMesh creates a mesh whose root is the triangle a, b, c. Only points inside
// it can be inserted. The vertices are reordered to wind counterclockwise if
// necessary.
func NewMesh(a, b, c Point, opts ...Option) (*Mesh, error) {
	m := newMesh(opts)
	orientation := m.cfg.predicates.Orient(a, b, c)
	if orientation == 0 || math.IsNaN(orientation) {
		return nil, errors.Wrapf(ErrDegenerate, "root triangle %v %v %v", a, b, c)
	}
	if orientation < 0 {
		b, c = c, b
	}
	m.setRoot(a, b, c)
	m.vertices = append(m.vertices, a, b, c)
	return m, nil
}

// BuildInitialTriangulation creates a mesh whose root triangle comfortably
// encloses every point in points. The points themselves are not inserted; they
// only size the root. Its corners are synthetic: InteriorTriangles leaves out
// anything touching them.
func BuildInitialTriangulation(points []Point, opts ...Option) (*Mesh, error) {
	if len(points) == 0 {
		return nil, errors.Wrap(ErrDegenerate, "cannot bound an empty point set")
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		if !isFinite(p) {
			return nil, errors.Wrapf(ErrPrecondition, "non-finite point %v", p)
		}
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	size := math.Max(maxX-minX, maxY-minY)
	if size == 0 {
		size = 1
	}
	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2

	a := Point{midX - superTriangleScale*size, midY - size}
	b := Point{midX + superTriangleScale*size, midY - size}
	c := Point{midX, midY + superTriangleScale*size}

	m := newMesh(opts)
	m.setRoot(a, b, c)
	m.synthetic = PointSet{}
	m.synthetic.Add(a)
	m.synthetic.Add(b)
	m.synthetic.Add(c)
	return m, nil
}

func newMesh(opts []Option) *Mesh {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Mesh{
		arena: NewArena(),
		root:  NoNode,
		cfg:   cfg,
	}
}

func (m *Mesh) setRoot(a, b, c Point) {
	t := m.arena.NewTriangle(a, b, c)
	m.root = m.arena.Triangle(t).Node
	m.tracef("root %s", m.ref(t))
}

func (m *Mesh) Root() NodeID {
	return m.root
}

func (m *Mesh) Arena() *Arena {
	return m.arena
}

func (m *Mesh) Predicates() Predicates {
	return m.cfg.predicates
}

func (m *Mesh) Triangle(id TriangleID) *Triangle {
	return m.arena.Triangle(id)
}

// Vertices returns the caller supplied vertices in insertion order.
func (m *Mesh) Vertices() []Point {
	return append([]Point(nil), m.vertices...)
}

// IsSynthetic reports whether p is a corner of the enclosing triangle created
// by BuildInitialTriangulation.
func (m *Mesh) IsSynthetic(p Point) bool {
	return m.synthetic.Contains(p)
}

// Locate finds the live triangle containing p.
func (m *Mesh) Locate(p Point) (TriangleID, error) {
	return Navigate(m.arena, m.cfg.predicates, m.root, p)
}

// LiveTriangles returns every live triangle, including those that touch the
// enclosing triangle's corners.
func (m *Mesh) LiveTriangles() []TriangleID {
	return m.arena.Live()
}

// InteriorTriangles returns the live triangles made only of caller supplied
// vertices.
func (m *Mesh) InteriorTriangles() []TriangleID {
	var result []TriangleID
	for _, id := range m.arena.Live() {
		if !m.touchesSynthetic(id) {
			result = append(result, id)
		}
	}
	return result
}

func (m *Mesh) touchesSynthetic(id TriangleID) bool {
	if len(m.synthetic) == 0 {
		return false
	}
	for _, v := range m.arena.Triangle(id).V {
		if m.synthetic.Contains(v) {
			return true
		}
	}
	return false
}

// Insert adds p to the mesh and returns the triangles created by the insertion
// that are still live once it is done.
//
// A point strictly inside a triangle splits it in three. A point on an edge
// splits the triangles on both sides of it in two (or just the one, on the
// hull). Unless legalization was disabled, edges opposite p are then flipped
// until every one of them is locally Delaunay.
//
// Every input is checked before the mesh is touched, so a returned error means
// the mesh is unchanged.
func (m *Mesh) Insert(p Point) (created []TriangleID, err error) {
	defer func() {
		recoveredErr := HandlePanicRecover(recover())
		if recoveredErr != nil {
			created = nil
			err = recoveredErr
		}
	}()

	if !isFinite(p) {
		return nil, errors.Wrapf(ErrPrecondition, "non-finite point %v", p)
	}

	t, err := m.Locate(p)
	if err != nil {
		return nil, err
	}
	tri := m.arena.Triangle(t)
	for _, v := range tri.V {
		if m.cfg.predicates.Equal(v, p) {
			return nil, errors.Wrapf(ErrDuplicatePoint, "%v", p)
		}
	}

	first := TriangleID(m.arena.TriangleCount())
	var news []TriangleID
	if slot := m.edgeSlotContaining(tri, p); slot >= 0 {
		news = m.splitOnEdge(t, slot, p)
	} else {
		news = m.splitInterior(t, p)
	}
	m.vertices = append(m.vertices, p)

	if m.cfg.legalize {
		m.legalize(news, p)
	}

	for id := first; int(id) < m.arena.TriangleCount(); id++ {
		if !m.arena.Triangle(id).Deleted() {
			created = append(created, id)
		}
	}
	return created, nil
}

// Slot of the edge of tri that p lies on, or -1 if p is strictly inside.
func (m *Mesh) edgeSlotContaining(tri *Triangle, p Point) int {
	for slot := range tri.V {
		a, b := tri.Edge(slot)
		if m.cfg.predicates.Orient(a, b, p) == 0 {
			return slot
		}
	}
	return -1
}

func (m *Mesh) splitInterior(t TriangleID, p Point) []TriangleID {
	ar := m.arena
	tri := ar.Triangle(t)
	a, b, c := tri.A(), tri.B(), tri.C()

	n1 := ar.NewTriangle(a, b, p)
	n2 := ar.NewTriangle(b, c, p)
	n3 := ar.NewTriangle(c, a, p)

	m.replace(t, n1, n2, n3)
	SetAfterSplit(ar, n1, n2, n3, t)
	m.tracef("split %s at %v into %s %s %s", m.ref(t), p, m.ref(n1), m.ref(n2), m.ref(n3))
	return []TriangleID{n1, n2, n3}
}

// p lies on the edge opposite slot of t. Both triangles sharing that edge are
// cut in two through p.
func (m *Mesh) splitOnEdge(t TriangleID, slot int, p Point) []TriangleID {
	ar := m.arena
	tri := ar.Triangle(t)
	apex := tri.V[slot]
	b, c := tri.Edge(slot)
	other := tri.N[slot]

	// The far apex is needed before anything is created, so a broken adjacency
	// faults while the mesh is still intact.
	var far Point
	if other != NoTriangle {
		var ok bool
		far, ok = ar.Triangle(other).ThirdVertex(b, c)
		if !ok {
			fatalf(ErrPrecondition, "neighbor %d of %d does not share edge %v-%v", other, t, b, c)
		}
	}

	n1 := ar.NewTriangle(apex, b, p)
	n2 := ar.NewTriangle(apex, p, c)
	m.replace(t, n1, n2)

	if other == NoTriangle {
		SetAfterPointOnEdge(ar, n1, n2, NoTriangle, NoTriangle, t, NoTriangle)
		m.tracef("split hull edge of %s at %v into %s %s", m.ref(t), p, m.ref(n1), m.ref(n2))
		return []TriangleID{n1, n2}
	}

	// The neighbor runs along the shared edge in the opposite direction
	n3 := ar.NewTriangle(far, c, p)
	n4 := ar.NewTriangle(far, p, b)
	m.replace(other, n3, n4)
	SetAfterPointOnEdge(ar, n1, n2, n3, n4, t, other)
	m.tracef("split edge of %s and %s at %v into %s %s %s %s",
		m.ref(t), m.ref(other), p,
		m.ref(n1), m.ref(n2), m.ref(n3), m.ref(n4))
	return []TriangleID{n1, n2, n3, n4}
}

// Retire father and hang the replacements under its node.
func (m *Mesh) replace(father TriangleID, children ...TriangleID) {
	ar := m.arena
	fatherTri := ar.Triangle(father)
	fatherTri.MarkDeleted()
	for _, child := range children {
		AddChild(ar, fatherTri.Node, ar.Triangle(child).Node)
	}
}

// Flip replaces the edge shared by t1 and t2 with the other diagonal of their
// quadrilateral. Both triangles must be live and adjacent, and the
// quadrilateral must be strictly convex.
func (m *Mesh) Flip(t1, t2 TriangleID) (n1, n2 TriangleID, err error) {
	defer func() {
		recoveredErr := HandlePanicRecover(recover())
		if recoveredErr != nil {
			n1, n2 = NoTriangle, NoTriangle
			err = recoveredErr
		}
	}()

	q, err := m.quad(t1, t2)
	if err != nil {
		return NoTriangle, NoTriangle, err
	}
	if !m.isConvex(q) {
		return NoTriangle, NoTriangle, errors.Wrapf(ErrNotFlippable, "%d and %d form a non-convex quadrilateral", t1, t2)
	}
	n1, n2 = m.flip(t1, t2, q)
	return n1, n2, nil
}

// The quadrilateral around an edge: apex is t1's vertex opposite the shared
// edge (b, c), in t1's winding, and far is t2's.
type quad struct {
	apex, b, c, far Point
}

func (m *Mesh) quad(t1, t2 TriangleID) (quad, error) {
	ar := m.arena
	tri1 := ar.Triangle(t1)
	tri2 := ar.Triangle(t2)
	if tri1.Deleted() || tri2.Deleted() {
		return quad{}, errors.Wrapf(ErrNotFlippable, "%d and %d must both be live", t1, t2)
	}
	slot, ok := sharedEdgeSlot(tri1, tri2)
	if !ok || tri1.N[slot] != t2 {
		return quad{}, errors.Wrapf(ErrNotFlippable, "%d and %d are not adjacent", t1, t2)
	}
	b, c := tri1.Edge(slot)
	far, _ := tri2.ThirdVertex(b, c)
	return quad{apex: tri1.V[slot], b: b, c: c, far: far}, nil
}

func (m *Mesh) isConvex(q quad) bool {
	pred := m.cfg.predicates
	return pred.Orient(q.apex, q.b, q.far) > 0 && pred.Orient(q.apex, q.far, q.c) > 0
}

func (m *Mesh) flip(t1, t2 TriangleID, q quad) (TriangleID, TriangleID) {
	ar := m.arena
	n1 := ar.NewTriangle(q.apex, q.b, q.far)
	n2 := ar.NewTriangle(q.apex, q.far, q.c)

	// Both new triangles cover parts of both old ones, so each old node gets
	// both of them as children.
	m.replace(t1, n1, n2)
	m.replace(t2, n1, n2)
	SetAfterFlip(ar, n1, n2, t1, t2)
	m.tracef("flip %s %s into %s %s", m.ref(t1), m.ref(t2), m.ref(n1), m.ref(n2))
	return n1, n2
}

// Lawson legalization around a freshly inserted point p. Each triangle on the
// stack has p as a vertex; the edge opposite p is flipped if the far vertex
// across it lies inside the triangle's circumcircle, and the two triangles the
// flip creates are checked in turn.
func (m *Mesh) legalize(start []TriangleID, p Point) {
	ar := m.arena
	pred := m.cfg.predicates
	stack := append([]TriangleID(nil), start...)
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		tri := ar.Triangle(t)
		if tri.Deleted() {
			continue
		}
		slot := tri.VertexSlot(p)
		if slot < 0 {
			continue
		}
		other := tri.N[slot]
		if other == NoTriangle {
			continue
		}
		b, c := tri.Edge(slot)
		far, ok := ar.Triangle(other).ThirdVertex(b, c)
		if !ok {
			fatalf(ErrPrecondition, "neighbor %d of %d does not share edge %v-%v", other, t, b, c)
		}
		if pred.InCircle(p, b, c, far) <= 0 {
			continue
		}

		q := quad{apex: p, b: b, c: c, far: far}
		// In exact arithmetic a far vertex inside the circumcircle always makes a
		// convex quadrilateral. Rounding can disagree, and a non-convex flip
		// would fold the mesh over itself.
		if !m.isConvex(q) {
			continue
		}
		n1, n2 := m.flip(t, other, q)
		stack = append(stack, n1, n2)
	}
}

// Interpolate evaluates the piecewise linear surface through value at p. The
// value function is called with the vertices of the triangle containing p.
// Points that fall in a triangle touching the enclosing triangle's corners are
// outside the data and report ErrLookupFailure.
func (m *Mesh) Interpolate(p Point, value func(Point) float64) (float64, error) {
	t, err := m.Locate(p)
	if err != nil {
		return 0, err
	}
	if m.touchesSynthetic(t) {
		return 0, errors.Wrapf(ErrLookupFailure, "%v is outside the hull of the data", p)
	}
	tri := m.arena.Triangle(t)
	wa, wb, wc := tri.Barycentric(p)
	return wa*value(tri.A()) + wb*value(tri.B()) + wc*value(tri.C()), nil
}

func isFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
