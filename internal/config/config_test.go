package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lost.host/meutraa/drumveil/internal/game"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drumveil.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, game.Easy, cfg.Difficulty)
	assert.Equal(t, DefaultFramePeriod, cfg.FramePeriod)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.Keys)
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{"-d", "3", "--frame-period", "8ms", "--seed", "42", "--log-level", "debug", "--log-file", "out.log"})
	require.NoError(t, err)
	assert.Equal(t, game.Hard, cfg.Difficulty)
	assert.Equal(t, 8*time.Millisecond, cfg.FramePeriod)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "out.log", cfg.LogFile)
}

func TestParseRejectsUnknownDifficulty(t *testing.T) {
	_, err := Parse([]string{"--difficulty", "4"})
	assert.ErrorIs(t, err, game.ErrInvalidDifficulty)
}

func TestParseRejectsUnknownLogLevel(t *testing.T) {
	_, err := Parse([]string{"--log-level", "loud"})
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	path := writeConfig(t, `
difficulty: 2
frame-period: 10ms
log-level: warn
keys:
  kick: b
  snare: space
`)
	cfg, err := Parse([]string{"--config", path})
	require.NoError(t, err)
	assert.Equal(t, game.Medium, cfg.Difficulty)
	assert.Equal(t, 10*time.Millisecond, cfg.FramePeriod)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, map[string]string{"kick": "b", "snare": "space"}, cfg.Keys)
}

func TestFlagsWinOverFile(t *testing.T) {
	path := writeConfig(t, "difficulty: 2\nlog-level: warn\n")
	cfg, err := Parse([]string{"-c", path, "-d", "1", "--log-level", "error"})
	require.NoError(t, err)
	assert.Equal(t, game.Easy, cfg.Difficulty)
	assert.Equal(t, slog.LevelError, cfg.LogLevel)
}

func TestLoadFile(t *testing.T) {
	f, err := LoadFile(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, &File{}, f)

	_, err = LoadFile(writeConfig(t, "tempo: 200\n"))
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
