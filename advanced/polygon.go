package advanced

import "github.com/fogleman/gg"

type Polygon struct {
	Points []Point
}

type PolygonList []Polygon

// Even-odd point-in-polygon. This is provided primarily for cross checking
// Locate. A point exactly on the boundary may land either way.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (vertex.Y > p.Y) == (next.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(next.X-vertex.X)/(next.Y-vertex.Y)
		if p.X < x {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Signed area by the shoelace formula. Positive for counterclockwise loops.
func (poly Polygon) SignedArea() float64 {
	sum := 0.0
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// The even-odd rule over the whole list, so holes count as outside.
func (list PolygonList) ContainsPointByEvenOdd(p Point) bool {
	count := 0
	for _, poly := range list {
		count += poly.CrossingCount(p)
	}
	return count%2 == 1
}

// Boundary traces the outline of the interior triangles (those not touching the
// enclosing triangle's corners) as counterclockwise loops. There is usually
// exactly one loop, but a region pinched at a vertex comes back as several.
func (m *Mesh) Boundary() (list PolygonList, err error) {
	defer func() {
		recoveredErr := HandlePanicRecover(recover())
		if recoveredErr != nil {
			list = nil
			err = recoveredErr
		}
	}()

	interior := make(map[TriangleID]struct{})
	for _, id := range m.InteriorTriangles() {
		interior[id] = struct{}{}
	}

	// Directed boundary edges, start -> ends, in the CCW order of their triangle
	outgoing := make(map[Point][]Point)
	var starts []Point
	for _, id := range m.InteriorTriangles() {
		t := m.arena.Triangle(id)
		for slot := range t.V {
			if _, ok := interior[t.N[slot]]; ok {
				continue
			}
			from, to := t.Edge(slot)
			if len(outgoing[from]) == 0 {
				starts = append(starts, from)
			}
			outgoing[from] = append(outgoing[from], to)
		}
	}

	for _, start := range starts {
		for len(outgoing[start]) > 0 {
			var poly Polygon
			current := start
			for len(outgoing[current]) > 0 {
				ends := outgoing[current]
				next := ends[len(ends)-1]
				outgoing[current] = ends[:len(ends)-1]
				poly.Points = append(poly.Points, current)
				current = next
			}
			if !current.Equal(start) {
				fatalf(ErrPrecondition, "boundary loop from %v stopped at %v", start, current)
			}
			list = append(list, poly)
		}
	}
	return list, nil
}

// Stroke the boundary loops onto c.
func (list PolygonList) draw(c *gg.Context) {
	for _, poly := range list {
		if len(poly.Points) == 0 {
			continue
		}
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.Stroke()
}
