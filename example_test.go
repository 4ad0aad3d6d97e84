package histmesh_test

import (
	"fmt"

	"github.com/osuushi/histmesh"
)

func ExampleTriangulate() {
	points := []histmesh.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}}
	mesh, err := histmesh.Triangulate(points)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(mesh.InteriorTriangles()))

	// Plane z = x + 2y, interpolated at a point inside the triangle
	z, err := mesh.Interpolate(histmesh.Point{X: 1, Y: 1}, func(p histmesh.Point) float64 {
		return p.X + 2*p.Y
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.3f\n", z)
	// Output:
	// 1
	// 3.000
}
