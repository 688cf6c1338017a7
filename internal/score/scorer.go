package score

import (
	"time"

	"git.lost.host/meutraa/drumveil/internal/game"
)

type Scorer interface {
	// Find the note a hit on pitch lands on, if any
	ApplyInputToChart(chart *game.Chart, hits game.HitSet, pitch game.Pitch, clock time.Duration, tuning game.Tuning) (int, bool)

	// Points awarded for a hit that brings the combo to combo
	Points(combo int) int

	Accuracy(hits, attempts int) float64
}

// Result is what a finished session hands back to its host.
type Result struct {
	Score    int
	Combo    int
	Accuracy float64
}
