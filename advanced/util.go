package advanced

import "math"

// Predicates isolate every numeric decision the mesh makes. The default,
// ExactPredicates, compares floats exactly. Near-degenerate inputs (almost
// collinear points, points a hair off an edge) are classified by whatever the
// raw arithmetic says, and that is intentional: swap in TolerantPredicates with
// WithPredicates if your data needs slack.
type Predicates interface {
	// Equal reports whether two points are the same vertex.
	Equal(p, q Point) bool
	// Orient is positive when a, b, c wind counterclockwise, negative when
	// clockwise and zero when collinear.
	Orient(a, b, c Point) float64
	// InCircle is positive when d lies strictly inside the circumcircle of the
	// counterclockwise triangle a, b, c.
	InCircle(a, b, c, d Point) float64
}

type ExactPredicates struct{}

func (ExactPredicates) Equal(p, q Point) bool {
	return p.Equal(q)
}

func (ExactPredicates) Orient(a, b, c Point) float64 {
	return orient(a, b, c)
}

func (ExactPredicates) InCircle(a, b, c, d Point) float64 {
	return inCircle(a, b, c, d)
}

// TolerantPredicates snaps any result whose magnitude is below Epsilon to zero,
// and treats points closer than Epsilon on both axes as equal.
type TolerantPredicates struct {
	Epsilon float64
}

func (tp TolerantPredicates) Equal(p, q Point) bool {
	return math.Abs(p.X-q.X) < tp.Epsilon && math.Abs(p.Y-q.Y) < tp.Epsilon
}

func (tp TolerantPredicates) Orient(a, b, c Point) float64 {
	return tp.snap(orient(a, b, c))
}

func (tp TolerantPredicates) InCircle(a, b, c, d Point) float64 {
	return tp.snap(inCircle(a, b, c, d))
}

func (tp TolerantPredicates) snap(v float64) float64 {
	if math.Abs(v) < tp.Epsilon {
		return 0
	}
	return v
}

// Twice the signed area of a, b, c.
func orient(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Standard lifted determinant, with d translated to the origin to keep the
// magnitudes down.
func inCircle(a, b, c, d Point) float64 {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	return adx*(bdy*clift-blift*cdy) -
		ady*(bdx*clift-blift*cdx) +
		alift*(bdx*cdy-bdy*cdx)
}

// Often we want to treat the three slots of a triangle as a circular buffer.
// This gives the modular index, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
