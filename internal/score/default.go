package score

import (
	"math"
	"time"

	"git.lost.host/meutraa/drumveil/internal/game"
)

const (
	BasePoints    = 10
	MaxMultiplier = 5
)

type DefaultScorer struct{}

// Distance is how far, in travel units, a note sits from the hit zone.
func (s *DefaultScorer) Distance(clock time.Duration, n *game.Note, tuning game.Tuning) float64 {
	return math.Abs(game.Position(clock, n.Time, tuning) - game.HitZoneX)
}

// ApplyInputToChart returns the earliest unhit note of pitch that is inside
// the hit window. It does not modify the chart or the hit set.
func (s *DefaultScorer) ApplyInputToChart(chart *game.Chart, hits game.HitSet, pitch game.Pitch, clock time.Duration, tuning game.Tuning) (int, bool) {
	lower := game.HitZoneX - tuning.HitTolerance
	for i := range chart.Notes {
		note := &chart.Notes[i]
		x := game.Position(clock, note.Time, tuning)
		if x < lower {
			// Notes are sorted, everything after this is further away
			break
		}
		if note.Pitch != pitch || hits.Has(i) {
			continue
		}
		if note.Pitch.Lane() == pitch.Lane() && s.Distance(clock, note, tuning) <= tuning.HitTolerance {
			return i, true
		}
	}
	return -1, false
}

func (s *DefaultScorer) Points(combo int) int {
	if combo > MaxMultiplier {
		combo = MaxMultiplier
	}
	if combo < 0 {
		combo = 0
	}
	return BasePoints * combo
}

// Accuracy is the percentage of attempts that hit, 0 before any attempt.
func (s *DefaultScorer) Accuracy(hits, attempts int) float64 {
	if attempts <= 0 {
		return 0
	}
	return float64(hits) / float64(attempts) * 100
}
