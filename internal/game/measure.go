package game

import (
	"time"
)

const (
	BPM             = 160
	ChartLength     = 20 * time.Second
	BeatInterval    = time.Minute / BPM // 375ms
	SixteenthLength = BeatInterval / 4  // 93.75ms
	BeatsPerMeasure = 4
)
