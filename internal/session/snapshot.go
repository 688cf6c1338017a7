package session

import (
	"time"

	"github.com/google/uuid"

	"git.lost.host/meutraa/drumveil/internal/game"
)

// Snapshot is the read side a presentation layer binds to.
type Snapshot struct {
	ID         uuid.UUID
	Difficulty game.Difficulty
	Clock      time.Duration
	Score      int
	Combo      int
	Attempts   int
	Successes  int
	Accuracy   float64
	Terminal   bool
	Feedback   string
	Flash      bool
	Notes      int
	Hit        int
}

func (s *Session) Snapshot() Snapshot {
	now := s.now()
	return Snapshot{
		ID:         s.id,
		Difficulty: s.state.Difficulty,
		Clock:      s.state.Clock,
		Score:      s.state.Score,
		Combo:      s.state.Combo,
		Attempts:   s.state.Attempts,
		Successes:  s.state.Successes,
		Accuracy:   s.Accuracy(),
		Terminal:   s.state.Terminal,
		Feedback:   s.feedback.value(now),
		Flash:      s.flash.active(now),
		Notes:      len(s.chart.Notes),
		Hit:        len(s.state.Hits),
	}
}
