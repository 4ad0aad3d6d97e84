package advanced

import "math"

// A triangle of the mesh. Vertex order is significant: N[i] holds the neighbor
// across the edge opposite V[i]. Every triangle the mesh creates winds
// counterclockwise.
//
// The vertex set never changes after creation. When a triangle is replaced it
// is only marked deleted; it stays reachable through its DAG node so that
// historical lookups keep working.
type Triangle struct {
	V    [3]Point
	N    [3]TriangleID
	Node NodeID

	deleted bool
}

func (t *Triangle) A() Point { return t.V[SlotA] }
func (t *Triangle) B() Point { return t.V[SlotB] }
func (t *Triangle) C() Point { return t.V[SlotC] }

func (t *Triangle) NeighborA() TriangleID { return t.N[SlotA] }
func (t *Triangle) NeighborB() TriangleID { return t.N[SlotB] }
func (t *Triangle) NeighborC() TriangleID { return t.N[SlotC] }

func (t *Triangle) Neighbor(slot int) TriangleID {
	return t.N[slot]
}

// SetNeighbor is a plain assignment. Keeping both sides of an adjacency in
// agreement is the job of the adjacency functions, not of the triangle.
func (t *Triangle) SetNeighbor(slot int, neighbor TriangleID) {
	t.N[slot] = neighbor
}

func (t *Triangle) Deleted() bool {
	return t.deleted
}

// MarkDeleted retires the triangle. There is no way back.
func (t *Triangle) MarkDeleted() {
	t.deleted = true
}

// Is p one of the three vertices?
func (t *Triangle) HasVertex(p Point) bool {
	return t.VertexSlot(p) >= 0
}

// VertexSlot returns the slot holding p, or -1.
func (t *Triangle) VertexSlot(p Point) int {
	for i, v := range t.V {
		if v.Equal(p) {
			return i
		}
	}
	return -1
}

// SlotOf returns the slot of the vertex opposite the edge (p1, p2), which is
// also the neighbor slot for that edge. The points may be given in either
// order. ok is false if (p1, p2) is not an edge of this triangle.
func (t *Triangle) SlotOf(p1, p2 Point) (slot int, ok bool) {
	i := t.VertexSlot(p1)
	j := t.VertexSlot(p2)
	if i < 0 || j < 0 || i == j {
		return -1, false
	}
	// Slots are 0, 1, 2, so the remaining one is 3 - i - j
	return 3 - i - j, true
}

// ThirdVertex returns the vertex that is not p1 or p2. ok is false if the two
// points are not an edge of this triangle, which means the caller handed us the
// wrong triangle.
func (t *Triangle) ThirdVertex(p1, p2 Point) (Point, bool) {
	slot, ok := t.SlotOf(p1, p2)
	if !ok {
		return Point{}, false
	}
	return t.V[slot], true
}

// Edge returns the endpoints of the edge opposite slot, in counterclockwise
// order.
func (t *Triangle) Edge(slot int) (Point, Point) {
	return t.V[CircularIndex(slot+1, 3)], t.V[CircularIndex(slot+2, 3)]
}

// Equals is structural: the vertices must match slot by slot. The same three
// vertices listed in a different rotation are a different triangle as far as
// the history bookkeeping is concerned.
func (t *Triangle) Equals(other *Triangle) bool {
	return t.V[0].Equal(other.V[0]) && t.V[1].Equal(other.V[1]) && t.V[2].Equal(other.V[2])
}

// Positive for counterclockwise triangles.
func (t *Triangle) SignedArea() float64 {
	return orient(t.V[0], t.V[1], t.V[2]) / 2
}

func (t *Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

// Barycentric returns the weights of p relative to the three vertices. They
// sum to one, and are all non-negative iff p is inside or on the triangle.
func (t *Triangle) Barycentric(p Point) (wa, wb, wc float64) {
	total := orient(t.V[0], t.V[1], t.V[2])
	wa = orient(p, t.V[1], t.V[2]) / total
	wb = orient(t.V[0], p, t.V[2]) / total
	wc = 1 - wa - wb
	return wa, wb, wc
}
