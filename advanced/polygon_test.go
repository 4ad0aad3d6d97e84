package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygon(t *testing.T) {
	square := Polygon{[]Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}

	t.Run("even odd", func(t *testing.T) {
		assert.True(t, square.ContainsPointByEvenOdd(Point{5, 5}))
		assert.True(t, square.ContainsPointByEvenOdd(Point{0.1, 9.9}))
		assert.False(t, square.ContainsPointByEvenOdd(Point{-1, 5}))
		assert.False(t, square.ContainsPointByEvenOdd(Point{11, 5}))
		assert.False(t, square.ContainsPointByEvenOdd(Point{5, 11}))
	})

	t.Run("signed area", func(t *testing.T) {
		assert.Equal(t, 100.0, square.SignedArea())
		assert.Equal(t, -100.0, square.Reverse().SignedArea())
	})

	t.Run("list with a hole", func(t *testing.T) {
		hole := Polygon{[]Point{{4, 4}, {6, 4}, {6, 6}, {4, 6}}}.Reverse()
		list := PolygonList{square, hole}
		assert.True(t, list.ContainsPointByEvenOdd(Point{2, 2}))
		assert.False(t, list.ContainsPointByEvenOdd(Point{5, 5}))
	})
}

func TestBoundary(t *testing.T) {
	t.Run("explicit root", func(t *testing.T) {
		mesh, err := NewMesh(Point{0, 0}, Point{10, 0}, Point{0, 10})
		require.NoError(t, err)
		_, err = mesh.Insert(Point{2, 2})
		require.NoError(t, err)

		boundary, err := mesh.Boundary()
		require.NoError(t, err)
		require.Len(t, boundary, 1)
		assert.Len(t, boundary[0].Points, 3)
		assert.Equal(t, 50.0, boundary[0].SignedArea())
	})

	t.Run("empty", func(t *testing.T) {
		mesh, err := BuildInitialTriangulation(loadFixture(t, "grid"))
		require.NoError(t, err)
		boundary, err := mesh.Boundary()
		require.NoError(t, err)
		assert.Empty(t, boundary)
	})

	for _, name := range []string{"scatter", "grid"} {
		t.Run(name, func(t *testing.T) {
			mesh := meshFromFixture(t, name)
			boundary, err := mesh.Boundary()
			require.NoError(t, err)
			require.NotEmpty(t, boundary)

			var area, boundaryArea float64
			for _, id := range mesh.InteriorTriangles() {
				tri := mesh.Triangle(id)
				area += tri.Area()
				centroid := Point{
					(tri.A().X + tri.B().X + tri.C().X) / 3,
					(tri.A().Y + tri.B().Y + tri.C().Y) / 3,
				}
				assert.True(t, boundary.ContainsPointByEvenOdd(centroid), "centroid %v of %s outside the boundary", centroid, mesh.DbgName(id))
			}
			for _, poly := range boundary {
				boundaryArea += poly.SignedArea()
			}
			assert.InDelta(t, area, boundaryArea, 1e-6)
		})
	}
}
