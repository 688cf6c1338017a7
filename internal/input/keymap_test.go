package input

import (
	"testing"

	"github.com/eiannone/keyboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lost.host/meutraa/drumveil/internal/game"
)

func TestDefaultKeyMapCoversEveryVoice(t *testing.T) {
	m := DefaultKeyMap()
	require.Len(t, m, game.VoiceCount)
	for _, p := range game.Voices {
		_, ok := m.KeyFor(p)
		assert.True(t, ok, "no key for %v", p)
	}
}

func TestResolve(t *testing.T) {
	m := DefaultKeyMap()
	tests := map[string]struct {
		ev       keyboard.KeyEvent
		expected Command
	}{
		"space":      {keyboard.KeyEvent{Key: keyboard.KeySpace}, Command{Action: Hit, Pitch: game.Kick}},
		"space rune": {keyboard.KeyEvent{Rune: ' '}, Command{Action: Hit, Pitch: game.Kick}},
		"snare":      {keyboard.KeyEvent{Rune: 'j'}, Command{Action: Hit, Pitch: game.Snare}},
		"upper case": {keyboard.KeyEvent{Rune: 'T'}, Command{Action: Hit, Pitch: game.Crash2}},
		"unbound":    {keyboard.KeyEvent{Rune: 'z'}, Command{}},
		"escape":     {keyboard.KeyEvent{Key: keyboard.KeyEsc}, Command{Action: Quit}},
		"ctrl-c":     {keyboard.KeyEvent{Key: keyboard.KeyCtrlC}, Command{Action: Quit}},
		"restart":    {keyboard.KeyEvent{Key: keyboard.KeyCtrlR}, Command{Action: Restart}},
		"easy":       {keyboard.KeyEvent{Key: keyboard.KeyF1}, Command{Action: SetDifficulty, Difficulty: game.Easy}},
		"hard":       {keyboard.KeyEvent{Key: keyboard.KeyF3}, Command{Action: SetDifficulty, Difficulty: game.Hard}},
	}
	for name, test := range tests {
		assert.Equal(t, test.expected, m.Resolve(test.ev), name)
	}
}

func TestOverride(t *testing.T) {
	m := DefaultKeyMap()
	require.NoError(t, m.Override(map[string]string{"kick": "b", "snare": "space"}))

	assert.Equal(t, Command{Action: Hit, Pitch: game.Kick}, m.Resolve(keyboard.KeyEvent{Rune: 'b'}))
	assert.Equal(t, Command{Action: Hit, Pitch: game.Snare}, m.Resolve(keyboard.KeyEvent{Key: keyboard.KeySpace}))
	assert.Equal(t, Command{}, m.Resolve(keyboard.KeyEvent{Rune: 'j'}))
	assert.Len(t, m, game.VoiceCount)
}

func TestOverrideRejectsBadBindings(t *testing.T) {
	assert.Error(t, DefaultKeyMap().Override(map[string]string{"cowbell": "c"}))
	assert.Error(t, DefaultKeyMap().Override(map[string]string{"kick": "ab"}))
	assert.Error(t, DefaultKeyMap().Override(map[string]string{"kick": ""}))
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, "SPACE", KeyName(' '))
	assert.Equal(t, "J", KeyName('j'))
}
