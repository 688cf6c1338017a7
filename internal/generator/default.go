package generator

import (
	"math/rand"
	"sort"
	"time"

	"git.lost.host/meutraa/drumveil/internal/game"
)

// Confidence weights attached to generated notes
const (
	seedConfidence   = 0.8
	kickConfidence   = 0.9
	snareConfidence  = 0.95
	hatConfidence    = 0.85
	fillConfidence   = 0.8
	strayConfidence  = 0.8
	seedSpacing      = 500 * time.Millisecond
	snareProbability = 0.7
)

type DefaultGenerator struct {
	Rand Rand
}

// New returns a generator with a fixed seed, so charts can be reproduced.
func New(seed int64) *DefaultGenerator {
	return &DefaultGenerator{Rand: rand.New(rand.NewSource(seed))}
}

func NewRandom() *DefaultGenerator {
	return New(time.Now().UnixNano())
}

func (g *DefaultGenerator) chance(p float64) bool {
	return g.Rand.Float64() < p
}

func (g *DefaultGenerator) Generate(difficulty game.Difficulty) (*game.Chart, error) {
	tuning, err := difficulty.Tuning()
	if nil != err {
		return nil, err
	}
	density := tuning.NoteDensity

	notes := make([]game.Note, 0, 2*game.MaxNotes)
	notes = g.scatter(notes, density)
	notes = g.grid(notes, density)

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Time < notes[j].Time
	})
	if len(notes) > game.MaxNotes {
		notes = notes[:game.MaxNotes]
	}

	return &game.Chart{
		Notes:      notes,
		Difficulty: difficulty,
	}, nil
}

// scatter drops at most one note per voice before the groove settles in. The
// i-th voice by note number lands at i*seedSpacing.
func (g *DefaultGenerator) scatter(notes []game.Note, density float64) []game.Note {
	for i, pitch := range game.VoicesByNote {
		if g.chance(0.3 * density) {
			notes = append(notes, game.Note{
				Pitch:      pitch,
				Time:       time.Duration(i) * seedSpacing,
				Confidence: seedConfidence,
			})
		}
	}
	return notes
}

// grid walks the chart in sixteenth steps. Every fourth step lands on a beat.
func (g *DefaultGenerator) grid(notes []game.Note, density float64) []game.Note {
	add := func(pitch game.Pitch, t time.Duration, confidence float64) {
		notes = append(notes, game.Note{Pitch: pitch, Time: t, Confidence: confidence})
	}

	for step := 0; ; step++ {
		cursor := time.Duration(step) * game.SixteenthLength
		if cursor >= game.ChartLength {
			break
		}

		if step%4 == 0 {
			beat := step / 4
			if g.chance(0.5 * density) {
				add(game.Kick, cursor, kickConfidence)
			}
			if beat%2 == 0 && g.chance(0.2*density) {
				add(game.Kick, cursor+game.BeatInterval/2, kickConfidence)
			}
			switch beat % game.BeatsPerMeasure {
			case 0, 2:
				if g.chance(snareProbability) {
					add(game.Snare, cursor, snareConfidence)
				}
			}
			if g.chance(0.6 * density) {
				add(game.ClosedHiHat, cursor, hatConfidence)
			}
			if g.chance(0.1 * density) {
				add(game.OpenHiHat, cursor, hatConfidence)
			}
			if g.chance(0.2 * density) {
				add(g.fill(), cursor, fillConfidence)
			}
		}

		if g.chance(0.3 * density) {
			add(game.ClosedHiHat, cursor+game.SixteenthLength, strayConfidence)
		}
		if g.chance(0.15 * density) {
			add(game.Kick, cursor+game.SixteenthLength, strayConfidence)
		}
	}
	return notes
}

// fill picks a tom or a cymbal, each pool with equal odds.
func (g *DefaultGenerator) fill() game.Pitch {
	if g.chance(0.5) {
		return game.Toms[g.Rand.Intn(len(game.Toms))]
	}
	return game.Cymbals[g.Rand.Intn(len(game.Cymbals))]
}
