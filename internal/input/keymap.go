package input

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"

	"git.lost.host/meutraa/drumveil/internal/game"
)

type Action int

const (
	None Action = iota
	Hit
	Restart
	SetDifficulty
	Quit
)

// Command is a key event resolved against a KeyMap.
type Command struct {
	Action     Action
	Pitch      game.Pitch
	Difficulty game.Difficulty
}

// KeyMap binds printable keys to voices.
type KeyMap map[rune]game.Pitch

func DefaultKeyMap() KeyMap {
	return KeyMap{
		' ': game.Kick,
		'j': game.Snare,
		'k': game.ClosedHiHat,
		'l': game.OpenHiHat,
		'a': game.LowFloorTom,
		's': game.HighFloorTom,
		'd': game.LowMidTom,
		'f': game.MidTom,
		'g': game.HighMidTom,
		'h': game.HighTom,
		'q': game.Crash,
		'w': game.Ride,
		'e': game.China,
		'r': game.Splash,
		't': game.Crash2,
	}
}

func (m KeyMap) Resolve(ev keyboard.KeyEvent) Command {
	switch ev.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Command{Action: Quit}
	case keyboard.KeyCtrlR:
		return Command{Action: Restart}
	case keyboard.KeyF1:
		return Command{Action: SetDifficulty, Difficulty: game.Easy}
	case keyboard.KeyF2:
		return Command{Action: SetDifficulty, Difficulty: game.Medium}
	case keyboard.KeyF3:
		return Command{Action: SetDifficulty, Difficulty: game.Hard}
	case keyboard.KeySpace:
		ev.Rune = ' '
	}
	if pitch, ok := m[unicode.ToLower(ev.Rune)]; ok {
		return Command{Action: Hit, Pitch: pitch}
	}
	return Command{}
}

// KeyFor finds the key bound to pitch.
func (m KeyMap) KeyFor(pitch game.Pitch) (rune, bool) {
	for r, p := range m {
		if p == pitch {
			return r, true
		}
	}
	return 0, false
}

// Override rebinds voices, given as voice alias to key ("space" or a single
// character). The previous binding of each voice is dropped.
func (m KeyMap) Override(bindings map[string]string) error {
	for name, key := range bindings {
		pitch, ok := game.PitchByName(name)
		if !ok {
			return errors.Errorf("unknown voice %q", name)
		}
		r, err := parseKey(key)
		if nil != err {
			return errors.Wrapf(err, "voice %q", name)
		}
		if old, ok := m.KeyFor(pitch); ok {
			delete(m, old)
		}
		m[r] = pitch
	}
	return nil
}

func parseKey(key string) (rune, error) {
	if strings.EqualFold(key, "space") {
		return ' ', nil
	}
	if utf8.RuneCountInString(key) != 1 {
		return 0, errors.Errorf("key %q must be a single character", key)
	}
	r, _ := utf8.DecodeRuneInString(key)
	return unicode.ToLower(r), nil
}

// KeyName is how a key is shown to the player.
func KeyName(r rune) string {
	if r == ' ' {
		return "SPACE"
	}
	return strings.ToUpper(string(r))
}
