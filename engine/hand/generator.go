package hand

import (
	"sync"
	"sync/atomic"

	"github.com/spaghettifunk/pointillist/engine/core"
	"github.com/spaghettifunk/pointillist/engine/math"
)

type entry struct {
	once sync.Once
	hand *Hand
	err  error
}

// Generator builds each handedness at most once and hands out the same
// immutable Hand afterwards. It is safe for concurrent use; the left and
// right hands can be built in parallel because each one draws from its own
// random stream.
type Generator struct {
	seed    uint64
	mu      sync.Mutex
	entries map[bool]*entry
	builds  atomic.Int64
}

func NewGenerator(seed uint64) *Generator {
	return &Generator{
		seed:    seed,
		entries: make(map[bool]*entry, 2),
	}
}

// Seed returns the base seed the per-hand streams are derived from.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Hand returns the hand for the given handedness, building it on first use.
func (g *Generator) Hand(isLeft bool) (*Hand, error) {
	g.mu.Lock()
	e, ok := g.entries[isLeft]
	if !ok {
		e = &entry{}
		g.entries[isLeft] = e
	}
	g.mu.Unlock()

	e.once.Do(func() {
		var stream uint64
		if isLeft {
			stream = 1
		}
		rng := math.NewRandom(math.DeriveSeed(g.seed, stream))
		e.hand, e.err = Build(rng, isLeft)
		g.builds.Add(1)
		if e.err != nil {
			core.LogError("hand generation failed (left=%t): %s", isLeft, e.err)
			return
		}
		core.LogDebug("generated %s hand: %d points", handedness(isLeft), e.hand.Len())
	})
	return e.hand, e.err
}

// Builds reports how many hands have actually been generated.
func (g *Generator) Builds() int {
	return int(g.builds.Load())
}

func handedness(isLeft bool) string {
	if isLeft {
		return "left"
	}
	return "right"
}
