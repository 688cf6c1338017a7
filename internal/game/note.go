package game

import (
	"time"
)

type Note struct {
	Pitch      Pitch         // The drum voice, which also fixes the lane
	Time       time.Duration // The time the note should be hit, from session start
	Confidence float64       // Generation weight in [0, 1], not used for judgement
}

// HitSet holds the chart indices of notes that were judged as hit.
type HitSet map[int]struct{}

func (h HitSet) Has(i int) bool {
	_, ok := h[i]
	return ok
}

func (h HitSet) Add(i int) {
	h[i] = struct{}{}
}
