package advanced

// Adjacency repair. Every structural change of the mesh touches a handful of
// triangles directly, but the triangles around them still hold back-pointers to
// whatever was just deleted. All of that repair happens here, so that "every
// adjacency between live triangles is mutual" only has to hold in one place.
//
// None of these functions allocate or delete anything; they only rewrite
// neighbor slots.

// Link points the slot of t for the edge it shares with neighbor at neighbor.
// It's one-sided: neighbor is left untouched.
func Link(ar *Arena, t, neighbor TriangleID) {
	tri := ar.Triangle(t)
	slot, ok := sharedEdgeSlot(tri, ar.Triangle(neighbor))
	if !ok {
		fatalf(ErrPrecondition, "cannot link %d to %d: no shared edge", t, neighbor)
	}
	tri.SetNeighbor(slot, neighbor)
}

// Link both sides.
func linkMutual(ar *Arena, t1, t2 TriangleID) {
	Link(ar, t1, t2)
	Link(ar, t2, t1)
}

// SetAfterSplit wires up the three triangles that replaced a triangle split by
// an interior point. Each new triangle is linked to its two siblings across
// the edges through the new point, and takes over the external neighbor of
// the replaced triangle across the one edge it inherits.
func SetAfterSplit(ar *Arena, n1, n2, n3, replaced TriangleID) {
	news := []TriangleID{n1, n2, n3}
	linkSiblings(ar, news)
	for _, n := range news {
		inherit(ar, n, replaced)
	}
}

// SetAfterFlip wires up the two triangles produced by flipping the edge shared
// by old1 and old2. The new triangles are linked across the new diagonal, and
// each of the four outer neighbors is pointed at whichever new triangle now
// owns its edge.
func SetAfterFlip(ar *Arena, n1, n2, old1, old2 TriangleID) {
	linkMutual(ar, n1, n2)
	for _, n := range []TriangleID{n1, n2} {
		inherit(ar, n, old1)
		inherit(ar, n, old2)
	}
}

// SetAfterPointOnEdge wires up the triangles produced when a point lands
// exactly on the edge shared by father1 and father2. n1 and n2 replace father1,
// n3 and n4 replace father2. The new triangles are linked around the inserted
// point, and the up to four outer neighbors of the fathers are relinked.
//
// For a point on a hull edge there is no second father: pass NoTriangle for
// father2, n3 and n4.
func SetAfterPointOnEdge(ar *Arena, n1, n2, n3, n4, father1, father2 TriangleID) {
	var news []TriangleID
	for _, n := range []TriangleID{n1, n2, n3, n4} {
		if n != NoTriangle {
			news = append(news, n)
		}
	}
	linkSiblings(ar, news)
	for _, n := range news {
		inherit(ar, n, father1)
		if father2 != NoTriangle {
			inherit(ar, n, father2)
		}
	}
}

// AreAdjacent reports whether the triangles share exactly two vertices.
func AreAdjacent(ar *Arena, t1, t2 TriangleID) bool {
	_, ok := sharedEdgeSlot(ar.Triangle(t1), ar.Triangle(t2))
	return ok
}

// IsEdgeOf reports whether (p1, p2) is an edge of t, which is the same as
// saying that the slot opposite the remaining vertex represents it.
func IsEdgeOf(ar *Arena, t TriangleID, p1, p2 Point) bool {
	_, ok := ar.Triangle(t).SlotOf(p1, p2)
	return ok
}

// Override replaces oldNeighbor with newNeighbor in whichever slot of t holds
// it. It is a fault if oldNeighbor is not currently a neighbor of t.
func Override(ar *Arena, t, oldNeighbor, newNeighbor TriangleID) {
	tri := ar.Triangle(t)
	for slot, n := range tri.N {
		if n == oldNeighbor {
			tri.SetNeighbor(slot, newNeighbor)
			return
		}
	}
	fatalf(ErrPrecondition, "cannot override neighbor %d of %d: not a neighbor", oldNeighbor, t)
}

// NeighborAcrossEdge returns the neighbor of t across (p1, p2). ok is false if
// (p1, p2) is not an edge of t. A hull edge gives NoTriangle with ok true.
func NeighborAcrossEdge(ar *Arena, t TriangleID, p1, p2 Point) (TriangleID, bool) {
	tri := ar.Triangle(t)
	slot, ok := tri.SlotOf(p1, p2)
	if !ok {
		return NoTriangle, false
	}
	return tri.N[slot], true
}

// Link every adjacent pair among a group of freshly created triangles.
func linkSiblings(ar *Arena, news []TriangleID) {
	for i, a := range news {
		for _, b := range news[i+1:] {
			if AreAdjacent(ar, a, b) {
				linkMutual(ar, a, b)
			}
		}
	}
}

// For each edge that n has in common with father, n takes over father's
// neighbor across that edge, and the neighbor's back-pointer is moved from
// father to n.
func inherit(ar *Arena, n, father TriangleID) {
	tri := ar.Triangle(n)
	for slot := range tri.V {
		p1, p2 := tri.Edge(slot)
		outer, ok := NeighborAcrossEdge(ar, father, p1, p2)
		if !ok {
			continue
		}
		tri.SetNeighbor(slot, outer)
		if outer != NoTriangle {
			Override(ar, outer, father, n)
		}
	}
}

// Slot of a for the edge it shares with b.
func sharedEdgeSlot(a, b *Triangle) (int, bool) {
	shared := 0
	slot := -1
	for i, v := range a.V {
		if b.HasVertex(v) {
			shared++
		} else {
			slot = i
		}
	}
	if shared != 2 {
		return -1, false
	}
	return slot, true
}
