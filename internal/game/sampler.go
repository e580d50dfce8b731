package game

import "math/rand"

// Sampler picks one cell uniformly at random from a candidate set. ok is
// false when the set is empty. The reducer takes the sampler as an explicit
// argument so tests can substitute a deterministic one; there is no hidden
// global randomness in this package.
type Sampler interface {
	Pick(candidates []Cell) (cell Cell, ok bool)
}

// RandSampler is the production Sampler, backed by a seeded math/rand
// source for reproducible runs.
type RandSampler struct {
	rng *rand.Rand
}

// NewRandSampler creates a sampler from a seed.
func NewRandSampler(seed int64) *RandSampler {
	return &RandSampler{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a uniformly chosen candidate.
func (s *RandSampler) Pick(candidates []Cell) (Cell, bool) {
	if len(candidates) == 0 {
		return Cell{}, false
	}
	return candidates[s.rng.Intn(len(candidates))], true
}
