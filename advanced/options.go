package advanced

import (
	"io"
	"math/rand"
	"time"
)

type config struct {
	seed       int64
	legalize   bool
	predicates Predicates
	trace      io.Writer
}

func defaultConfig() config {
	return config{
		legalize:   true,
		predicates: ExactPredicates{},
	}
}

// Option configures a Mesh.
type Option func(*config)

// By default, insertion order shuffling is pseudorandom, but deterministic.
// This is because predictable results are easier to debug. However, it raises
// the potential for adversarial inputs, which can push point location towards
// its linear worst case. If you are using untrusted input, use
// WithNondeterministic.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

func WithNondeterministic() Option {
	// TODO: Use a crypto/rand backed source here. A time based seed is hard to
	// exploit in practice, so this is low priority.
	return func(c *config) { c.seed = time.Now().UnixNano() }
}

// WithoutLegalization keeps the plain insertion triangulation: no edge flips
// are performed after a point is inserted, so the result is not Delaunay.
func WithoutLegalization() Option {
	return func(c *config) { c.legalize = false }
}

// WithPredicates replaces the exact geometric predicates.
func WithPredicates(p Predicates) Option {
	return func(c *config) { c.predicates = p }
}

// WithTrace writes a line for every structural change of the mesh to w.
func WithTrace(w io.Writer) Option {
	return func(c *config) { c.trace = w }
}

func (c *config) rand() *rand.Rand {
	return rand.New(rand.NewSource(c.seed))
}

// Rand returns a generator seeded from the mesh's configuration.
func (m *Mesh) Rand() *rand.Rand {
	return m.cfg.rand()
}
