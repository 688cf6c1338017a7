package theme

import (
	"github.com/charmbracelet/lipgloss"

	"git.lost.host/meutraa/drumveil/internal/achievement"
	"git.lost.host/meutraa/drumveil/internal/game"
	"git.lost.host/meutraa/drumveil/internal/score"
	"git.lost.host/meutraa/drumveil/internal/session"
)

type Theme interface {
	VoiceColor(pitch game.Pitch) lipgloss.Color
	RenderNote(note game.Note, key string) string
	RenderStatus(snap session.Snapshot, hint string, width int) string
	RenderResult(result score.Result, unlocked []achievement.Achievement) string
}
