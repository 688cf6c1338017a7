package game

import (
	"math"
	"time"
)

// Hit zone geometry, in travel units. Notes enter at StartX when the clock
// reaches their time and move right at the tier's note speed.
const (
	StartX      = 0.0
	HitZoneX    = 500.0
	VisibleMinX = -50.0
	VisibleMaxX = 600.0
)

// Position is the travel coordinate of a note at the given clock.
// Durations are multiplied before the division so whole-millisecond
// inputs land on exact coordinates.
func Position(clock, noteTime time.Duration, t Tuning) float64 {
	return StartX + float64(clock-noteTime)*t.NoteSpeed/float64(time.Second)
}

// InZone reports whether a note at x in the given lane can be hit by pitch.
// The window is closed on both ends; lanes must match exactly.
func InZone(x float64, lane int, pitch Pitch, t Tuning) bool {
	return math.Abs(x-HitZoneX) <= t.HitTolerance && lane == pitch.Lane()
}

// Passed reports whether a note at x has left the hit window for good.
func Passed(x float64, t Tuning) bool {
	return x > HitZoneX+t.HitTolerance
}

func Visible(x float64) bool {
	return x >= VisibleMinX && x <= VisibleMaxX
}
