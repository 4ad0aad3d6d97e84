package advanced

import (
	"github.com/pkg/errors"
)

// Validate performs sanity checks on the whole structure and returns the first
// problem found. The rules are:
//
// 1. Every node in the arena is reachable from the root, and the DAG has no
// cycles.
// 2. A node is a leaf exactly when its triangle is live, and triangle and node
// point at each other.
// 3. Every live triangle winds counterclockwise with non-zero area.
// 4. Every adjacency between live triangles is mutual, across the same edge,
// and never points at a deleted triangle.
//
// You normally shouldn't need this, but it's useful after feeding the mesh
// suspicious data.
func (m *Mesh) Validate() (err error) {
	defer func() {
		recoveredErr := HandlePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()

	ar := m.arena
	if err := CheckAcyclic(ar, m.root); err != nil {
		return err
	}

	reachable := 0
	for range IterateDag(ar, m.root) {
		reachable++
	}
	if reachable != ar.NodeCount() {
		return errors.Errorf("%d of %d dag nodes are unreachable from the root", ar.NodeCount()-reachable, ar.NodeCount())
	}

	for i := 0; i < ar.TriangleCount(); i++ {
		id := TriangleID(i)
		t := ar.Triangle(id)
		node := ar.Node(t.Node)
		if node.Triangle != id {
			return errors.Errorf("triangle %d and its node %d disagree", id, t.Node)
		}
		if node.IsLeaf() == t.Deleted() {
			return errors.Errorf("triangle %d: deleted=%v but node has %d children", id, t.Deleted(), node.Children.Len())
		}
		if t.Deleted() {
			continue
		}

		if t.SignedArea() <= 0 {
			return errors.Errorf("live triangle %d (%v %v %v) is not counterclockwise", id, t.A(), t.B(), t.C())
		}
		if err := m.validateNeighbors(id); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mesh) validateNeighbors(id TriangleID) error {
	ar := m.arena
	t := ar.Triangle(id)
	for slot, n := range t.N {
		if n == NoTriangle {
			continue
		}
		neighbor := ar.Triangle(n)
		if neighbor.Deleted() {
			return errors.Errorf("live triangle %d points at deleted triangle %d", id, n)
		}
		p1, p2 := t.Edge(slot)
		back, ok := NeighborAcrossEdge(ar, n, p1, p2)
		if !ok {
			return errors.Errorf("triangle %d claims %d across %v-%v, which is not an edge of it", id, n, p1, p2)
		}
		if back != id {
			return errors.Errorf("triangle %d points at %d, but %d points at %d", id, n, n, back)
		}
	}
	return nil
}
