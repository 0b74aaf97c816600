package jumper

import "math/rand"

// Spawner picks the horizontal position of new platforms.
type Spawner interface {
	// SpawnX returns a left edge in [0, maxX].
	SpawnX(maxX float64) float64
}

// RandSpawner places platforms uniformly at random from a seeded source,
// so the same seed always produces the same level.
type RandSpawner struct {
	rng *rand.Rand
}

// NewRandSpawner creates a spawner seeded with seed.
func NewRandSpawner(seed int64) *RandSpawner {
	return &RandSpawner{rng: rand.New(rand.NewSource(seed))}
}

// Reseed restarts the sequence from seed.
func (r *RandSpawner) Reseed(seed int64) {
	r.rng = rand.New(rand.NewSource(seed))
}

// SpawnX implements Spawner.
func (r *RandSpawner) SpawnX(maxX float64) float64 {
	if maxX <= 0 {
		return 0
	}
	return r.rng.Float64() * maxX
}
