package advanced

import (
	"io/ioutil"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the mesh, in pixels
const drawPadding = 20

// Render options for Draw.
type DrawStyle struct {
	// Pixels per unit
	Scale float64
	// Also draw the triangles fanning out to the enclosing triangle's corners.
	// Those corners are far away, so this zooms out a lot.
	Synthetic bool
	// Points to mark, typically located queries
	Marks []Point
}

func (style DrawStyle) withDefaults() DrawStyle {
	if style.Scale <= 0 {
		style.Scale = 1
	}
	return style
}

// NewContext creates a canvas sized for the mesh under style, with the origin
// at the bottom left.
func (m *Mesh) NewContext(style DrawStyle) *gg.Context {
	style = style.withDefaults()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, id := range m.trianglesToDraw(style) {
		for _, v := range m.arena.Triangle(id).V {
			minX = math.Min(minX, v.X)
			minY = math.Min(minY, v.Y)
			maxX = math.Max(maxX, v.X)
			maxY = math.Max(maxY, v.Y)
		}
	}
	if math.IsInf(minX, 1) { // nothing to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(style.Scale*(maxX-minX)) + drawPadding*2
	height := int(style.Scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	c.Scale(style.Scale, style.Scale)
	// Translate to min
	c.Translate(-minX, -minY)
	return c
}

// Draw fills and strokes the live triangles onto c, then marks the vertices and
// any requested points.
func (m *Mesh) Draw(c *gg.Context, style DrawStyle) {
	style = style.withDefaults()
	triangles := m.trianglesToDraw(style)
	// Line widths are in user units, so undo the scale
	unit := 1 / style.Scale

	for _, id := range triangles {
		m.pathTriangle(c, id)
		if m.touchesSynthetic(id) {
			c.SetRGBA(1, 1, 0, 0.2)
		} else {
			c.SetRGBA(0.3, 0.2, 1, 0.5)
		}
		c.Fill()
	}

	c.SetLineWidth(unit)
	c.SetRGB(0, 1, 0)
	for _, id := range triangles {
		m.pathTriangle(c, id)
		c.Stroke()
	}

	if boundary, err := m.Boundary(); err == nil {
		c.SetLineWidth(2 * unit)
		c.SetRGB(0, 1, 1)
		boundary.draw(c)
	}

	c.SetRGB(1, 1, 1)
	for _, v := range m.vertices {
		c.DrawCircle(v.X, v.Y, 2*unit)
		c.Fill()
	}

	c.SetRGB(1, 0, 0)
	for _, p := range style.Marks {
		c.DrawCircle(p.X, p.Y, 3*unit)
		c.Fill()
	}
}

// SavePNG renders the mesh to a PNG file.
func (m *Mesh) SavePNG(path string, style DrawStyle) error {
	c := m.NewContext(style)
	m.Draw(c, style)
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// DebugDraw renders the mesh and prints it to the terminal (iTerm only).
func (m *Mesh) DebugDraw(style DrawStyle) error {
	f, err := ioutil.TempFile("", "histmesh-*.png")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := m.SavePNG(path, style); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}

func (m *Mesh) trianglesToDraw(style DrawStyle) []TriangleID {
	if style.Synthetic {
		return m.LiveTriangles()
	}
	return m.InteriorTriangles()
}

func (m *Mesh) pathTriangle(c *gg.Context, id TriangleID) {
	t := m.arena.Triangle(id)
	c.MoveTo(t.A().X, t.A().Y)
	c.LineTo(t.B().X, t.B().Y)
	c.LineTo(t.C().X, t.C().Y)
	c.ClosePath()
}
