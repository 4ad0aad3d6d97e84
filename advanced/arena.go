package advanced

// The arena owns every triangle and DAG node the mesh ever creates. Neighbor
// and child references are handles into it, which keeps the mutable mesh graph
// free of owning pointers. Records are individually allocated so a *Triangle
// obtained from the arena stays good while more records are appended.
type Arena struct {
	triangles []*Triangle
	nodes     []*DagNode
}

func NewArena() *Arena {
	return &Arena{}
}

// NewTriangle creates a triangle together with its DAG node. The new triangle
// has no neighbors; the adjacency functions wire it up.
func (ar *Arena) NewTriangle(a, b, c Point) TriangleID {
	id := TriangleID(len(ar.triangles))
	nodeID := NodeID(len(ar.nodes))
	ar.triangles = append(ar.triangles, &Triangle{
		V:    [3]Point{a, b, c},
		N:    [3]TriangleID{NoTriangle, NoTriangle, NoTriangle},
		Node: nodeID,
	})
	ar.nodes = append(ar.nodes, &DagNode{
		Triangle: id,
		Children: ChildList{NoNode, NoNode, NoNode},
	})
	return id
}

func (ar *Arena) Triangle(id TriangleID) *Triangle {
	if id < 0 || int(id) >= len(ar.triangles) {
		fatalf(ErrPrecondition, "no triangle with handle %d", id)
	}
	return ar.triangles[id]
}

func (ar *Arena) Node(id NodeID) *DagNode {
	if id < 0 || int(id) >= len(ar.nodes) {
		fatalf(ErrPrecondition, "no dag node with handle %d", id)
	}
	return ar.nodes[id]
}

// The triangle recorded by a node.
func (ar *Arena) TriangleOf(id NodeID) *Triangle {
	return ar.Triangle(ar.Node(id).Triangle)
}

func (ar *Arena) TriangleCount() int {
	return len(ar.triangles)
}

func (ar *Arena) NodeCount() int {
	return len(ar.nodes)
}

// Live returns the handles of every triangle that has not been deleted, in
// creation order.
func (ar *Arena) Live() []TriangleID {
	var result []TriangleID
	for i, t := range ar.triangles {
		if !t.deleted {
			result = append(result, TriangleID(i))
		}
	}
	return result
}
