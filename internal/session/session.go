// Package session runs one play of a chart: it advances the clock from frame
// timestamps, judges inputs against the hit window and keeps score.
//
// A Session is driven from a single goroutine. Tick and Input never block and
// are not safe for concurrent use.
package session

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"git.lost.host/meutraa/drumveil/internal/game"
	"git.lost.host/meutraa/drumveil/internal/generator"
	"git.lost.host/meutraa/drumveil/internal/score"
)

const (
	DebounceInterval = 100 * time.Millisecond
	MaxFrameDelta    = time.Second / 60
	CheckEvery       = 30 // ticks between end of chart checks
	NearbyWindow     = 500 * time.Millisecond
)

// State is everything a play mutates.
type State struct {
	Clock      time.Duration
	Hits       game.HitSet
	Score      int
	Combo      int
	Attempts   int
	Successes  int
	Difficulty game.Difficulty
	Terminal   bool
}

// Outcome of a single input
type Outcome int

const (
	Ignored Outcome = iota // debounced, or the session is over
	Hit
	Miss
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	}
	return "ignored"
}

type Session struct {
	id         uuid.UUID
	gen        generator.Generator
	scorer     score.Scorer
	now        func() time.Time
	rand       generator.Rand
	log        *slog.Logger
	comboBreak bool
	onComplete func(score.Result)

	chart  *game.Chart
	tuning game.Tuning
	state  State

	framed    bool
	lastFrame time.Duration
	ticks     int
	lastInput time.Time
	feedback  transient
	flash     transient
}

// New starts a session on a freshly generated chart.
func New(difficulty game.Difficulty, opts ...Option) (*Session, error) {
	s := &Session{
		id:     uuid.New(),
		scorer: &score.DefaultScorer{},
		now:    time.Now,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if nil == s.gen {
		s.gen = generator.NewRandom()
	}
	if nil == s.rand {
		s.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.log = s.log.With("session", s.id.String())

	if err := s.load(difficulty); nil != err {
		return nil, err
	}
	s.log.Info("session started", "difficulty", difficulty, "notes", len(s.chart.Notes))
	return s, nil
}

// load swaps in a new chart and zeroed state. Nothing changes on error.
func (s *Session) load(difficulty game.Difficulty) error {
	tuning, err := difficulty.Tuning()
	if nil != err {
		return err
	}
	chart, err := s.gen.Generate(difficulty)
	if nil != err {
		return errors.Wrap(err, "unable to generate chart")
	}

	s.chart = chart
	s.tuning = tuning
	s.state = State{Difficulty: difficulty, Hits: game.HitSet{}}
	s.ticks = 0
	s.feedback.clear()
	s.flash.clear()
	return nil
}

// Restart replays the current difficulty on a new chart.
func (s *Session) Restart() error {
	if err := s.load(s.state.Difficulty); nil != err {
		return err
	}
	s.log.Info("session restarted", "difficulty", s.state.Difficulty, "notes", len(s.chart.Notes))
	return nil
}

// ChangeDifficulty starts over on a new chart for difficulty. An unknown
// difficulty is rejected and leaves the session as it was.
func (s *Session) ChangeDifficulty(difficulty game.Difficulty) error {
	if err := s.load(difficulty); nil != err {
		return err
	}
	s.log.Info("difficulty changed", "difficulty", difficulty, "notes", len(s.chart.Notes))
	return nil
}

// Tick advances the clock to the frame timestamp. The first frame only sets
// the reference point, a backwards frame counts as no time, and no single
// frame moves the clock more than MaxFrameDelta.
func (s *Session) Tick(frame time.Duration) {
	if !s.framed {
		s.framed = true
		s.lastFrame = frame
	}
	dt := frame - s.lastFrame
	s.lastFrame = frame
	if dt < 0 {
		dt = 0
	} else if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}
	s.state.Clock += dt
	s.ticks++

	if s.ticks%CheckEvery != 0 || s.state.Terminal || !s.finished() {
		return
	}
	s.state.Terminal = true
	result := s.Result()
	s.log.Info("session complete",
		"score", result.Score,
		"combo", result.Combo,
		"accuracy", result.Accuracy,
		"hits", len(s.state.Hits),
		"notes", len(s.chart.Notes),
	)
	if nil != s.onComplete {
		s.onComplete(result)
	}
}

// finished reports whether every note has scrolled past the hit window.
func (s *Session) finished() bool {
	if len(s.chart.Notes) == 0 {
		return false
	}
	for i := range s.chart.Notes {
		if !game.Passed(s.Position(i), s.tuning) {
			return false
		}
	}
	return true
}

// Input judges a hit on pitch at the current clock.
func (s *Session) Input(pitch game.Pitch) Outcome {
	if s.state.Terminal {
		return Ignored
	}
	now := s.now()
	if !s.lastInput.IsZero() && now.Sub(s.lastInput) < DebounceInterval {
		return Ignored
	}
	s.lastInput = now
	s.state.Attempts++

	index, ok := s.scorer.ApplyInputToChart(s.chart, s.state.Hits, pitch, s.state.Clock, s.tuning)
	if !ok {
		if s.comboBreak {
			s.state.Combo = 0
		}
		s.log.Debug("input missed", "pitch", pitch, "clock", s.state.Clock)
		return Miss
	}

	s.state.Hits.Add(index)
	s.state.Combo++
	s.state.Score += s.scorer.Points(s.state.Combo)
	s.state.Successes++
	s.feedback.show(FeedbackMessages[s.rand.Intn(len(FeedbackMessages))], now, FeedbackDuration)
	s.flash.show("", now, FlashDuration)
	s.log.Debug("input hit", "pitch", pitch, "note", index, "clock", s.state.Clock, "combo", s.state.Combo)
	return Hit
}

func (s *Session) ID() uuid.UUID               { return s.id }
func (s *Session) Chart() *game.Chart          { return s.chart }
func (s *Session) Tuning() game.Tuning         { return s.tuning }
func (s *Session) Difficulty() game.Difficulty { return s.state.Difficulty }
func (s *Session) Clock() time.Duration        { return s.state.Clock }
func (s *Session) Score() int                  { return s.state.Score }
func (s *Session) Combo() int                  { return s.state.Combo }
func (s *Session) Attempts() int               { return s.state.Attempts }
func (s *Session) Successes() int              { return s.state.Successes }
func (s *Session) Terminal() bool              { return s.state.Terminal }

func (s *Session) Accuracy() float64 {
	return s.scorer.Accuracy(s.state.Successes, s.state.Attempts)
}

// Feedback is the message for the last hit, empty once it has expired.
func (s *Session) Feedback() string {
	return s.feedback.value(s.now())
}

func (s *Session) Flash() bool {
	return s.flash.active(s.now())
}

// State returns a copy of the current state.
func (s *Session) State() State {
	st := s.state
	st.Hits = make(game.HitSet, len(s.state.Hits))
	for i := range s.state.Hits {
		st.Hits.Add(i)
	}
	return st
}

func (s *Session) Result() score.Result {
	return score.Result{
		Score:    s.state.Score,
		Combo:    s.state.Combo,
		Accuracy: s.Accuracy(),
	}
}
