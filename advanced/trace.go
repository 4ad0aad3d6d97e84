package advanced

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/histmesh/internal/dbg"
)

type dbgKey struct {
	arena *Arena
	id    TriangleID
}

// Defers naming a triangle until it is actually printed, so that tracing costs
// nothing when it is off.
type triangleRef struct {
	m  *Mesh
	id TriangleID
}

func (r triangleRef) String() string {
	return r.m.DbgName(r.id)
}

func (m *Mesh) ref(id TriangleID) triangleRef {
	return triangleRef{m, id}
}

func (m *Mesh) tracef(format string, args ...interface{}) {
	if m.cfg.trace == nil {
		return
	}
	fmt.Fprintf(m.cfg.trace, format+"\n", args...)
}

// DbgName gives a triangle a readable name, colored by its state: synthetic
// triangles cyan, deleted ones red, live ones green.
func (m *Mesh) DbgName(id TriangleID) string {
	if id == NoTriangle {
		return dbg.Name(nil)
	}
	name := dbg.Name(dbgKey{m.arena, id})
	switch {
	case m.touchesSynthetic(id):
		name = aurora.Cyan(name).String()
	case m.arena.Triangle(id).Deleted():
		name = aurora.Red(name).String()
	default:
		name = aurora.Green(name).String()
	}
	return name
}

// Describe renders a triangle with its vertices and neighbors.
func (m *Mesh) Describe(id TriangleID) string {
	t := m.arena.Triangle(id)
	var neighbors []string
	for _, n := range t.N {
		neighbors = append(neighbors, m.DbgName(n))
	}
	return fmt.Sprintf("Triangle %s <A: %v, B: %v, C: %v> [%s]",
		m.DbgName(id),
		t.A(), t.B(), t.C(),
		strings.Join(neighbors, ", "),
	)
}
