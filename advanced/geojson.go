package advanced

import (
	geojson "github.com/paulmach/go.geojson"
)

// FeatureCollection exports the interior triangles as GeoJSON polygons, in
// creation order, followed by the outline loops from Boundary. Every feature
// carries a "kind" property ("triangle" or "boundary"); triangles also carry
// their handle and their neighbors' handles, with -1 on the hull.
func (m *Mesh) FeatureCollection() (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	for _, id := range m.InteriorTriangles() {
		t := m.arena.Triangle(id)
		f := geojson.NewPolygonFeature([][][]float64{ring(t.V[:])})
		f.SetProperty("kind", "triangle")
		f.SetProperty("id", int(id))
		neighbors := make([]int, 0, 3)
		for _, n := range t.N {
			neighbors = append(neighbors, int(n))
		}
		f.SetProperty("neighbors", neighbors)
		fc.AddFeature(f)
	}

	boundary, err := m.Boundary()
	if err != nil {
		return nil, err
	}
	for _, poly := range boundary {
		f := geojson.NewPolygonFeature([][][]float64{ring(poly.Points)})
		f.SetProperty("kind", "boundary")
		fc.AddFeature(f)
	}
	return fc, nil
}

// GeoJSON rings repeat the first position at the end.
func ring(points []Point) [][]float64 {
	result := make([][]float64, 0, len(points)+1)
	for _, p := range points {
		result = append(result, []float64{p.X, p.Y})
	}
	if len(points) > 0 {
		result = append(result, []float64{points[0].X, points[0].Y})
	}
	return result
}
