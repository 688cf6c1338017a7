package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"git.lost.host/meutraa/drumveil/internal/achievement"
	"git.lost.host/meutraa/drumveil/internal/game"
	"git.lost.host/meutraa/drumveil/internal/score"
	"git.lost.host/meutraa/drumveil/internal/session"
)

type DefaultTheme struct{}

var (
	voiceColors = map[game.Pitch]lipgloss.Color{
		game.Kick:         "#FF3333",
		game.Snare:        "#B0B0B0",
		game.ClosedHiHat:  "#FFD700",
		game.OpenHiHat:    "#00FF00",
		game.LowFloorTom:  "#FF4500",
		game.HighFloorTom: "#FF8C00",
		game.LowMidTom:    "#FFA500",
		game.MidTom:       "#FF6347",
		game.HighMidTom:   "#FF7F50",
		game.HighTom:      "#FF69B4",
		game.Crash:        "#FFD700",
		game.Ride:         "#DAA520",
		game.China:        "#FFA500",
		game.Splash:       "#ADFF2F",
		game.Crash2:       "#FF4500",
	}
	white = lipgloss.Color("#FFFFFF")
	blood = lipgloss.Color("#FF3333")

	statStyle     = lipgloss.NewStyle().Foreground(white)
	feedbackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")).Bold(true)
	flashStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#555555"))
	titleStyle    = lipgloss.NewStyle().Foreground(blood).Bold(true)
	resultStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(blood).
			Padding(0, 2)
)

func (t *DefaultTheme) VoiceColor(pitch game.Pitch) lipgloss.Color {
	if c, ok := voiceColors[pitch]; ok {
		return c
	}
	return white
}

func (t *DefaultTheme) RenderNote(note game.Note, key string) string {
	return lipgloss.NewStyle().
		Foreground(t.VoiceColor(note.Pitch)).
		Render(fmt.Sprintf("%v (%v)", note.Pitch, key))
}

func (t *DefaultTheme) RenderStatus(snap session.Snapshot, hint string, width int) string {
	parts := []string{
		fmt.Sprintf("[%v]", snap.Difficulty),
		fmt.Sprintf("Score: %v", snap.Score),
		fmt.Sprintf("Combo: %vx", snap.Combo),
		fmt.Sprintf("Accuracy: %.2f%%", snap.Accuracy),
		fmt.Sprintf("%5.1fs", snap.Clock.Seconds()),
	}
	line := statStyle.Render(strings.Join(parts, "  "))
	if hint != "" {
		line += "  " + hint
	}
	if snap.Feedback != "" {
		line += "  " + feedbackStyle.Render(snap.Feedback)
	}
	if snap.Flash {
		line = flashStyle.Render(line)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

func (t *DefaultTheme) RenderResult(result score.Result, unlocked []achievement.Achievement) string {
	lines := []string{
		titleStyle.Render("Ritual Complete!"),
		fmt.Sprintf("Score: %v | Combo: %vx | Accuracy: %.2f%%", result.Score, result.Combo, result.Accuracy),
	}
	for _, a := range unlocked {
		lines = append(lines, fmt.Sprintf("Unlocked %v: %v", a.Name, a.Description))
	}
	lines = append(lines, "Ctrl-R to play again, F1-F3 to change difficulty, Esc to leave")
	return resultStyle.Render(strings.Join(lines, "\n"))
}
