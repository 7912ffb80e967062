package game

import (
	"math/rand"
	"time"

	"github.com/samdwyer/guessanumber/internal/engine"
)

// Config holds game configuration options.
type Config struct {
	Policy engine.Policy

	// Seed for the jitter policy's random source. Used for reproducible games.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}

// newRand returns the random source shared by every session of one game.
func (c Config) newRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
