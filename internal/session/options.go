package session

import (
	"log/slog"
	"time"

	"git.lost.host/meutraa/drumveil/internal/generator"
	"git.lost.host/meutraa/drumveil/internal/score"
)

type Option func(*Session)

// WithGenerator sets where charts come from. Every start and restart asks it
// for a fresh chart.
func WithGenerator(g generator.Generator) Option {
	return func(s *Session) { s.gen = g }
}

func WithScorer(sc score.Scorer) Option {
	return func(s *Session) { s.scorer = sc }
}

// WithNow sets the wall clock used for input debouncing and feedback expiry.
func WithNow(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithRand sets the source used to pick feedback messages.
func WithRand(r generator.Rand) Option {
	return func(s *Session) { s.rand = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithComboBreak makes an input that hits nothing reset the combo.
func WithComboBreak(on bool) Option {
	return func(s *Session) { s.comboBreak = on }
}

// WithOnComplete registers a callback for the moment the session turns
// terminal. It runs on the goroutine calling Tick.
func WithOnComplete(fn func(score.Result)) Option {
	return func(s *Session) { s.onComplete = fn }
}
