package main

import (
	"log/slog"
	"time"

	"github.com/eiannone/keyboard"

	"git.lost.host/meutraa/drumveil/internal/achievement"
	"git.lost.host/meutraa/drumveil/internal/game"
	"git.lost.host/meutraa/drumveil/internal/generator"
	"git.lost.host/meutraa/drumveil/internal/input"
	"git.lost.host/meutraa/drumveil/internal/score"
	"git.lost.host/meutraa/drumveil/internal/session"
	"git.lost.host/meutraa/drumveil/internal/theme"
)

// Screen is where the program draws.
type Screen interface {
	Width() int
	Draw(line string) error
	Print(text string) error
}

type Program struct {
	Difficulty game.Difficulty
	Generator  generator.Generator
	Keys       input.KeyMap
	Theme      theme.Theme
	Log        *slog.Logger
	Out        Screen
	Options    []session.Option

	session *session.Session
	results []score.Result
}

func (p *Program) Init() error {
	opts := append([]session.Option{
		session.WithGenerator(p.Generator),
		session.WithLogger(p.Log),
		session.WithOnComplete(p.complete),
	}, p.Options...)

	s, err := session.New(p.Difficulty, opts...)
	if nil != err {
		return err
	}
	p.session = s
	return nil
}

func (p *Program) complete(result score.Result) {
	p.results = append(p.results, result)
	unlocked := achievement.Unlocked(result)
	for _, a := range unlocked {
		p.Log.Info("achievement unlocked", "session", p.session.ID().String(), "achievement", a.Name)
	}
	if err := p.Out.Print(p.Theme.RenderResult(result, unlocked)); nil != err {
		p.Log.Error("unable to print result", "err", err)
	}
}

// Frame applies the keys pressed since the last frame, in order, then moves
// the session to elapsed and redraws. It returns false to quit.
func (p *Program) Frame(keys <-chan keyboard.KeyEvent, elapsed time.Duration) bool {
drain:
	for {
		select {
		case ev, ok := <-keys:
			if !ok {
				return false
			}
			if nil != ev.Err {
				p.Log.Warn("keyboard error", "err", ev.Err)
				continue
			}
			if !p.Handle(p.Keys.Resolve(ev)) {
				return false
			}
		default:
			break drain
		}
	}

	p.session.Tick(elapsed)
	p.Render()
	return true
}

func (p *Program) Handle(cmd input.Command) bool {
	switch cmd.Action {
	case input.Quit:
		return false
	case input.Hit:
		p.session.Input(cmd.Pitch)
	case input.Restart:
		if err := p.session.Restart(); nil != err {
			p.Log.Error("unable to restart", "err", err)
		}
	case input.SetDifficulty:
		if err := p.session.ChangeDifficulty(cmd.Difficulty); nil != err {
			p.Log.Error("unable to change difficulty", "err", err)
		}
	}
	return true
}

func (p *Program) hint() string {
	note, ok := p.session.Hint()
	if !ok {
		return ""
	}
	key, ok := p.Keys.KeyFor(note.Pitch)
	if !ok {
		return ""
	}
	return p.Theme.RenderNote(note, input.KeyName(key))
}

func (p *Program) Render() {
	if p.session.Terminal() {
		return
	}
	line := p.Theme.RenderStatus(p.session.Snapshot(), p.hint(), p.Out.Width())
	if err := p.Out.Draw(line); nil != err {
		p.Log.Error("unable to draw", "err", err)
	}
}
