package advanced

import (
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureCollection(t *testing.T) {
	mesh, err := NewMesh(Point{0, 0}, Point{10, 0}, Point{0, 10})
	require.NoError(t, err)
	_, err = mesh.Insert(Point{2, 2})
	require.NoError(t, err)

	fc, err := mesh.FeatureCollection()
	require.NoError(t, err)
	data, err := fc.MarshalJSON()
	require.NoError(t, err)

	decoded, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, decoded.Features, 4)

	kinds := map[string]int{}
	for _, f := range decoded.Features {
		require.True(t, f.Geometry.IsPolygon())
		rings := f.Geometry.Polygon
		require.Len(t, rings, 1)
		assert.Equal(t, rings[0][0], rings[0][len(rings[0])-1], "rings must be closed")
		kind, err := f.PropertyString("kind")
		require.NoError(t, err)
		kinds[kind]++
	}
	assert.Equal(t, map[string]int{"triangle": 3, "boundary": 1}, kinds)

	first := decoded.Features[0]
	// Numbers come back from JSON as float64
	id, err := first.PropertyFloat64("id")
	require.NoError(t, err)
	assert.Len(t, first.Geometry.Polygon[0], 4)
	assert.False(t, mesh.Triangle(TriangleID(id)).Deleted())
}
