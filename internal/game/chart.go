package game

import (
	"sort"
	"time"
)

// MaxNotes caps the length of a generated chart.
const MaxNotes = 200

type Chart struct {
	Notes      []Note
	Difficulty Difficulty
}

// Sorted reports whether the notes are in ascending time order.
func (c *Chart) Sorted() bool {
	return sort.SliceIsSorted(c.Notes, func(i, j int) bool {
		return c.Notes[i].Time < c.Notes[j].Time
	})
}

// Duration is the time of the last note.
func (c *Chart) Duration() time.Duration {
	if len(c.Notes) == 0 {
		return 0
	}
	return c.Notes[len(c.Notes)-1].Time
}

// NoteCounts tallies the chart per voice.
func (c *Chart) NoteCounts() map[Pitch]int {
	counts := make(map[Pitch]int, VoiceCount)
	for _, n := range c.Notes {
		counts[n.Pitch]++
	}
	return counts
}
