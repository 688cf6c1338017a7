package generator

import "git.lost.host/meutraa/drumveil/internal/game"

type Generator interface {
	Generate(difficulty game.Difficulty) (*game.Chart, error)
}

// Rand is the random source a generator draws from. *math/rand.Rand
// satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}
