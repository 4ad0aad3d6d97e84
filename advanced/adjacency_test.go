package advanced

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run fn, converting a fault panic into an error.
func catchFault(fn func()) (err error) {
	defer func() {
		recoveredErr := HandlePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	fn()
	return nil
}

// The square (0,0) (4,0) (4,4) (0,4) cut along the P1-P3 diagonal, with an
// outer triangle hanging off each of its four sides.
type squareFixture struct {
	ar                 *Arena
	p                  [4]Point
	old1, old2         TriangleID
	e01, e12, e23, e30 TriangleID
}

func newSquareFixture() *squareFixture {
	f := &squareFixture{ar: NewArena()}
	f.p = [4]Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	p := f.p
	f.old1 = f.ar.NewTriangle(p[0], p[1], p[3])
	f.old2 = f.ar.NewTriangle(p[1], p[2], p[3])
	f.e01 = f.ar.NewTriangle(p[0], Point{2, -2}, p[1])
	f.e12 = f.ar.NewTriangle(p[1], Point{6, 2}, p[2])
	f.e23 = f.ar.NewTriangle(p[2], Point{2, 6}, p[3])
	f.e30 = f.ar.NewTriangle(p[3], Point{-2, 2}, p[0])

	linkMutual(f.ar, f.old1, f.old2)
	linkMutual(f.ar, f.old1, f.e01)
	linkMutual(f.ar, f.old1, f.e30)
	linkMutual(f.ar, f.old2, f.e12)
	linkMutual(f.ar, f.old2, f.e23)
	return f
}

func TestLink(t *testing.T) {
	f := newSquareFixture()
	ar := f.ar

	assert.Equal(t, f.old2, ar.Triangle(f.old1).NeighborA(), "old2 is across P1-P3, opposite P0")
	assert.Equal(t, f.old1, ar.Triangle(f.old2).NeighborB(), "old1 is across P1-P3, opposite P2")

	err := catchFault(func() { Link(ar, f.e01, f.e23) })
	assert.True(t, errors.Is(err, ErrPrecondition))
}

func TestAreAdjacent(t *testing.T) {
	f := newSquareFixture()
	assert.True(t, AreAdjacent(f.ar, f.old1, f.old2))
	assert.True(t, AreAdjacent(f.ar, f.old1, f.e01))
	assert.False(t, AreAdjacent(f.ar, f.old1, f.e12), "sharing one vertex is not an edge")
	assert.False(t, AreAdjacent(f.ar, f.e01, f.e23))
}

func TestIsEdgeOf(t *testing.T) {
	f := newSquareFixture()
	assert.True(t, IsEdgeOf(f.ar, f.old1, f.p[3], f.p[1]))
	assert.False(t, IsEdgeOf(f.ar, f.old1, f.p[0], f.p[2]))
	assert.False(t, IsEdgeOf(f.ar, f.old1, f.p[0], f.p[0]))
}

func TestNeighborAcrossEdge(t *testing.T) {
	f := newSquareFixture()

	n, ok := NeighborAcrossEdge(f.ar, f.old1, f.p[1], f.p[0])
	require.True(t, ok)
	assert.Equal(t, f.e01, n)

	n, ok = NeighborAcrossEdge(f.ar, f.e01, Point{2, -2}, f.p[0])
	require.True(t, ok)
	assert.Equal(t, NoTriangle, n, "outer edge has no neighbor")

	_, ok = NeighborAcrossEdge(f.ar, f.old1, f.p[0], f.p[2])
	assert.False(t, ok)
}

func TestOverride(t *testing.T) {
	f := newSquareFixture()
	Override(f.ar, f.e01, f.old1, f.old2)
	assert.Equal(t, f.old2, f.ar.Triangle(f.e01).NeighborB())

	err := catchFault(func() { Override(f.ar, f.e01, f.e23, f.old1) })
	assert.True(t, errors.Is(err, ErrPrecondition))
}

func TestSetAfterSplit(t *testing.T) {
	f := newSquareFixture()
	ar := f.ar
	p := f.p
	center := Point{1, 1}
	n1 := ar.NewTriangle(p[0], p[1], center)
	n2 := ar.NewTriangle(p[1], p[3], center)
	n3 := ar.NewTriangle(p[3], p[0], center)
	ar.Triangle(f.old1).MarkDeleted()

	SetAfterSplit(ar, n1, n2, n3, f.old1)

	// Internal edges through the new point
	assertMutual(t, ar, n1, n2, p[1], center)
	assertMutual(t, ar, n2, n3, p[3], center)
	assertMutual(t, ar, n3, n1, p[0], center)

	// Inherited outer edges
	assertMutual(t, ar, n1, f.e01, p[0], p[1])
	assertMutual(t, ar, n2, f.old2, p[1], p[3])
	assertMutual(t, ar, n3, f.e30, p[3], p[0])
}

func TestSetAfterFlip(t *testing.T) {
	f := newSquareFixture()
	ar := f.ar
	p := f.p
	n1 := ar.NewTriangle(p[0], p[1], p[2])
	n2 := ar.NewTriangle(p[0], p[2], p[3])
	ar.Triangle(f.old1).MarkDeleted()
	ar.Triangle(f.old2).MarkDeleted()

	SetAfterFlip(ar, n1, n2, f.old1, f.old2)

	assertMutual(t, ar, n1, n2, p[0], p[2])
	assertMutual(t, ar, n1, f.e01, p[0], p[1])
	assertMutual(t, ar, n1, f.e12, p[1], p[2])
	assertMutual(t, ar, n2, f.e23, p[2], p[3])
	assertMutual(t, ar, n2, f.e30, p[3], p[0])
}

func TestSetAfterPointOnEdge(t *testing.T) {
	f := newSquareFixture()
	ar := f.ar
	p := f.p
	mid := Point{2, 2} // on the P1-P3 diagonal
	n1 := ar.NewTriangle(p[0], p[1], mid)
	n2 := ar.NewTriangle(p[0], mid, p[3])
	n3 := ar.NewTriangle(p[2], p[3], mid)
	n4 := ar.NewTriangle(p[2], mid, p[1])
	ar.Triangle(f.old1).MarkDeleted()
	ar.Triangle(f.old2).MarkDeleted()

	SetAfterPointOnEdge(ar, n1, n2, n3, n4, f.old1, f.old2)

	assertMutual(t, ar, n1, n2, p[0], mid)
	assertMutual(t, ar, n2, n3, p[3], mid)
	assertMutual(t, ar, n3, n4, p[2], mid)
	assertMutual(t, ar, n4, n1, p[1], mid)

	assertMutual(t, ar, n1, f.e01, p[0], p[1])
	assertMutual(t, ar, n4, f.e12, p[1], p[2])
	assertMutual(t, ar, n3, f.e23, p[2], p[3])
	assertMutual(t, ar, n2, f.e30, p[3], p[0])
}

func TestSetAfterPointOnHullEdge(t *testing.T) {
	f := newSquareFixture()
	ar := f.ar
	p := f.p
	// (1,-1) lies on the outer edge P0-(2,-2) of e01
	mid := Point{1, -1}
	n1 := ar.NewTriangle(p[1], p[0], mid)
	n2 := ar.NewTriangle(p[1], mid, Point{2, -2})
	ar.Triangle(f.e01).MarkDeleted()

	SetAfterPointOnEdge(ar, n1, n2, NoTriangle, NoTriangle, f.e01, NoTriangle)

	assertMutual(t, ar, n1, n2, p[1], mid)
	assertMutual(t, ar, n1, f.old1, p[0], p[1])
	hull, ok := NeighborAcrossEdge(ar, n1, p[0], mid)
	require.True(t, ok)
	assert.Equal(t, NoTriangle, hull)
}

// Assert that a and b point at each other across the edge (p1, p2).
func assertMutual(t *testing.T, ar *Arena, a, b TriangleID, p1, p2 Point) {
	t.Helper()
	n, ok := NeighborAcrossEdge(ar, a, p1, p2)
	require.True(t, ok, "%v-%v is not an edge of %d", p1, p2, a)
	assert.Equal(t, b, n, "neighbor of %d across %v-%v", a, p1, p2)

	n, ok = NeighborAcrossEdge(ar, b, p1, p2)
	require.True(t, ok, "%v-%v is not an edge of %d", p1, p2, b)
	assert.Equal(t, a, n, "neighbor of %d across %v-%v", b, p1, p2)
}
