package game

import (
	"github.com/pkg/errors"
)

type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Tuning is the fixed set of parameters bound to a difficulty tier.
type Tuning struct {
	NoteSpeed    float64 // Travel units per second
	HitTolerance float64 // Half width of the hit window, in travel units
	NoteDensity  float64 // Scales every generation probability
}

var tunings = map[Difficulty]Tuning{
	Easy:   {NoteSpeed: 250, HitTolerance: 100, NoteDensity: 0.4},
	Medium: {NoteSpeed: 350, HitTolerance: 75, NoteDensity: 0.6},
	Hard:   {NoteSpeed: 450, HitTolerance: 50, NoteDensity: 0.8},
}

var DifficultyNames = map[Difficulty]string{
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
}

func (d Difficulty) Valid() bool {
	_, ok := tunings[d]
	return ok
}

// Tuning returns the parameters of the tier, or ErrInvalidDifficulty.
func (d Difficulty) Tuning() (Tuning, error) {
	t, ok := tunings[d]
	if !ok {
		return Tuning{}, errors.Wrapf(ErrInvalidDifficulty, "difficulty %d", int(d))
	}
	return t, nil
}

func (d Difficulty) String() string {
	if n, ok := DifficultyNames[d]; ok {
		return n
	}
	return "unknown"
}
