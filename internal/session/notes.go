package session

import (
	"git.lost.host/meutraa/drumveil/internal/game"
)

func (s *Session) note(i int) (game.Note, bool) {
	if i < 0 || i >= len(s.chart.Notes) {
		return game.Note{}, false
	}
	return s.chart.Notes[i], true
}

// Position of note i at the current clock. Indices refer to the current
// Chart; one outside it gives 0.
func (s *Session) Position(i int) float64 {
	n, ok := s.note(i)
	if !ok {
		return 0
	}
	return game.Position(s.state.Clock, n.Time, s.tuning)
}

func (s *Session) IsHit(i int) bool {
	return s.state.Hits.Has(i)
}

func (s *Session) InHitZone(i int) bool {
	n, ok := s.note(i)
	if !ok {
		return false
	}
	return game.InZone(s.Position(i), n.Pitch.Lane(), n.Pitch, s.tuning)
}

// Missed is true for a note that left the hit window without being hit. It
// is only for display, a miss is never scored.
func (s *Session) Missed(i int) bool {
	if _, ok := s.note(i); !ok {
		return false
	}
	return game.Passed(s.Position(i), s.tuning) && !s.state.Hits.Has(i)
}

// Visible returns the indices of notes on the highway.
func (s *Session) Visible() []int {
	visible := []int{}
	for i := range s.chart.Notes {
		if game.Visible(s.Position(i)) {
			visible = append(visible, i)
		}
	}
	return visible
}

// Hint is the first note on the highway, the one to play next.
func (s *Session) Hint() (game.Note, bool) {
	for i := range s.chart.Notes {
		if game.Visible(s.Position(i)) {
			return s.chart.Notes[i], true
		}
	}
	return game.Note{}, false
}

// Nearby lists notes scheduled within NearbyWindow of the clock.
func (s *Session) Nearby() []game.Note {
	nearby := []game.Note{}
	for _, n := range s.chart.Notes {
		d := n.Time - s.state.Clock
		if d >= -NearbyWindow && d <= NearbyWindow {
			nearby = append(nearby, n)
		}
	}
	return nearby
}
