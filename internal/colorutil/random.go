package colorutil

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// Generator produces uniformly distributed random colors. It is meant for
// sampling, not for anything security sensitive.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator returns a generator reading from src. A nil src selects a
// PCG source seeded from the runtime's random state.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{rng: rand.New(src)}
}

// RandomHex returns a color uniformly drawn from #000000-#ffffff.
func (g *Generator) RandomHex() string {
	g.mu.Lock()
	n := g.rng.IntN(1 << 24)
	g.mu.Unlock()
	return fmt.Sprintf("#%06x", n)
}

// RandomRGB returns independent uniform channels in [0,255]. Alpha keeps
// its default and is not flagged as present.
func (g *Generator) RandomRGB() RGBA {
	g.mu.Lock()
	defer g.mu.Unlock()
	return RGB(g.rng.IntN(256), g.rng.IntN(256), g.rng.IntN(256))
}

var defaultGenerator = NewGenerator(nil)

// RandomHex returns a random "#rrggbb" color from the shared generator.
func RandomHex() string {
	return defaultGenerator.RandomHex()
}

// RandomRGB returns a random opaque color from the shared generator.
func RandomRGB() RGBA {
	return defaultGenerator.RandomRGB()
}
