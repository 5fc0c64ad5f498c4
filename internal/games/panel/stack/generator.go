package stack

import "math/rand/v2"

// Generator supplies tile kinds for freshly generated cells.
// Implementations must be deterministic for a given seed so boards can be
// replayed, and cloneable so a board can be snapshotted mid-game.
type Generator interface {
	// Kind picks a tile kind for the empty cell at (x, y).
	Kind(g *Grid, x, y int) Kind
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Clone returns an independent generator in the same state.
	Clone() Generator
}

// RandomGenerator picks uniformly random kinds, skipping any kind that
// would immediately complete a run of three with already placed neighbors.
type RandomGenerator struct {
	src   *rand.PCG
	rng   *rand.Rand
	kinds int
}

// NewRandomGenerator creates a generator over kinds tile kinds.
func NewRandomGenerator(seed int64, kinds int) *RandomGenerator {
	src := rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	return &RandomGenerator{
		src:   src,
		rng:   rand.New(src),
		kinds: kinds,
	}
}

// Intn returns a value in [0, n).
func (r *RandomGenerator) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// Kind picks a tile kind for (x, y).
func (r *RandomGenerator) Kind(g *Grid, x, y int) Kind {
	start := r.rng.IntN(r.kinds)
	for t := 0; t < r.kinds; t++ {
		k := Kind((start + t) % r.kinds)
		if !completesRun(g, x, y, k) {
			return k
		}
	}
	return Kind(start)
}

// Clone returns a copy sharing no state with r.
func (r *RandomGenerator) Clone() Generator {
	src := *r.src
	return &RandomGenerator{
		src:   &src,
		rng:   rand.New(&src),
		kinds: r.kinds,
	}
}

// completesRun reports whether placing k at (x, y) lines up three of a kind
// with the two cells to the left, the two below or the two above.
func completesRun(g *Grid, x, y int, k Kind) bool {
	same := func(cx, cy int) bool {
		c := g.At(cx, cy)
		return c != nil && c.Kind == k
	}
	switch {
	case same(x-1, y) && same(x-2, y):
		return true
	case same(x+1, y) && same(x+2, y):
		return true
	case same(x-1, y) && same(x+1, y):
		return true
	case same(x, y-1) && same(x, y-2):
		return true
	case same(x, y+1) && same(x, y+2):
		return true
	}
	return false
}
