package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsCapMultiplier(t *testing.T) {
	scorer := DefaultScorer{}
	deltas := []int{}
	for combo := 1; combo <= 7; combo++ {
		deltas = append(deltas, scorer.Points(combo))
	}
	assert.Equal(t, []int{10, 20, 30, 40, 50, 50, 50}, deltas)
	assert.Equal(t, 0, scorer.Points(0))
}

func TestAccuracy(t *testing.T) {
	scorer := DefaultScorer{}
	assert.Equal(t, 0.0, scorer.Accuracy(0, 0))
	assert.Equal(t, 75.0, scorer.Accuracy(3, 4))
	assert.Equal(t, 100.0, scorer.Accuracy(4, 4))
	assert.Equal(t, 0.0, scorer.Accuracy(0, 9))
}
