package advanced

import "github.com/pkg/errors"

// The history DAG records, for every triangle ever created, the triangles that
// replaced it. A leaf node is a live triangle. An internal node is a deleted
// triangle, and the union of its children's triangles covers it, so a point
// inside a node's triangle is always inside at least one of its children's.
// Locating a point is then a walk from the root down to a leaf.
//
// Children are appended exactly once per structural event that consumes the
// node's triangle: three after a point splits it, two after a point lands on
// one of its edges, two after it takes part in a flip. Nothing ever needs a
// fourth.
type DagNode struct {
	Triangle TriangleID
	Children ChildList
}

func (n *DagNode) IsLeaf() bool {
	return n.Children.Len() == 0
}

// Fixed capacity list of child handles. Unused entries hold NoNode, and used
// entries are always packed at the front.
type ChildList [3]NodeID

func (cl *ChildList) Len() int {
	for i, child := range *cl {
		if child == NoNode {
			return i
		}
	}
	return len(*cl)
}

func (cl *ChildList) Slice() []NodeID {
	return append([]NodeID(nil), cl[:cl.Len()]...)
}

// Append a child. A fourth child is a fault.
func (cl *ChildList) Add(child NodeID) {
	for i, existing := range *cl {
		if existing == NoNode {
			(*cl)[i] = child
			return
		}
	}
	fatalf(ErrCapacity, "cannot add child %d to a full node", child)
}

// AddChild records child as one of the triangles that replaced father.
func AddChild(ar *Arena, father, child NodeID) {
	if father == child {
		fatalf(ErrPrecondition, "node %d cannot be its own child", father)
	}
	ar.Node(child) // validate the handle before touching the father
	ar.Node(father).Children.Add(child)
}

// PointInTriangle reports whether p is inside or on the boundary of the
// counterclockwise triangle a, b, c. Boundary points count as contained.
func PointInTriangle(pred Predicates, p, a, b, c Point) bool {
	return pred.Orient(a, b, p) >= 0 &&
		pred.Orient(b, c, p) >= 0 &&
		pred.Orient(c, a, p) >= 0
}

// Navigate descends from start to the leaf whose triangle contains p. Children
// are tried in order and the first one containing p wins, so a point on a
// shared edge resolves to the earlier child.
//
// If p is not in start's triangle, or at some level no child contains it, the
// result is ErrLookupFailure. That can only happen for points outside the mesh
// or when the predicates contradict themselves near a degeneracy.
func Navigate(ar *Arena, pred Predicates, start NodeID, p Point) (TriangleID, error) {
	node := ar.Node(start)
	t := ar.Triangle(node.Triangle)
	if !PointInTriangle(pred, p, t.V[0], t.V[1], t.V[2]) {
		return NoTriangle, errors.Wrapf(ErrLookupFailure, "%v is outside the search root", p)
	}

nodeLoop:
	for !node.IsLeaf() {
		for _, childID := range node.Children.Slice() {
			child := ar.Node(childID)
			ct := ar.Triangle(child.Triangle)
			if PointInTriangle(pred, p, ct.V[0], ct.V[1], ct.V[2]) {
				node = child
				continue nodeLoop
			}
		}
		return NoTriangle, errors.Wrapf(ErrLookupFailure, "no child of node %d contains %v", node.Triangle, p)
	}
	return node.Triangle, nil
}

// A node iterator lets you loop over the nodes reachable from a root exactly
// once. Traversal order is not defined. Behavior is also undefined if you
// modify the DAG during iteration.
type NodeIterator struct {
	ar    *Arena
	stack []NodeID
	seen  map[NodeID]struct{}
}

func NewNodeIterator(ar *Arena, root NodeID) *NodeIterator {
	return &NodeIterator{ar, []NodeID{root}, map[NodeID]struct{}{}}
}

// Next returns the next unvisited node, or NoNode when the walk is done.
func (iter *NodeIterator) Next() NodeID {
	for len(iter.stack) > 0 {
		id := iter.stack[len(iter.stack)-1]
		iter.stack = iter.stack[:len(iter.stack)-1]
		// Skip if we've seen the node before
		if _, ok := iter.seen[id]; ok {
			continue
		}
		iter.seen[id] = struct{}{}

		// Push the children onto the stack
		iter.stack = append(iter.stack, iter.ar.Node(id).Children.Slice()...)
		return id
	}
	return NoNode
}

// Create a channel using a goroutine to iterate over the DAG. This gives a
// nicer API for looping.
func (iter *NodeIterator) MakeChan() chan NodeID {
	ch := make(chan NodeID)
	go func() {
		for {
			id := iter.Next()
			if id == NoNode {
				break
			}
			ch <- id
		}
		close(ch)
	}()
	return ch
}

func IterateDag(ar *Arena, root NodeID) chan NodeID {
	return NewNodeIterator(ar, root).MakeChan()
}

// CheckAcyclic returns an error naming a node that can reach itself through
// its children, if there is one.
func CheckAcyclic(ar *Arena, root NodeID) error {
	const (
		unvisited = iota
		inProgress
		done
	)
	state := make(map[NodeID]int)

	var visit func(id NodeID) error
	visit = func(id NodeID) error {
		switch state[id] {
		case inProgress:
			return errors.Errorf("dag cycle through node %d", id)
		case done:
			return nil
		}
		state[id] = inProgress
		for _, child := range ar.Node(id).Children.Slice() {
			if err := visit(child); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}
	return visit(root)
}
