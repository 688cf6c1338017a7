package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lost.host/meutraa/drumveil/internal/game"
	"git.lost.host/meutraa/drumveil/internal/testdata"
)

type hitTest struct {
	name     string
	pitch    game.Pitch
	clock    time.Duration
	hits     []int
	expected int
}

var hitTests = []hitTest{
	{"kick centred", game.Kick, 3 * time.Second, nil, 0},
	{"kick already hit", game.Kick, 3 * time.Second, []int{0}, -1},
	{"passed kick skipped", game.Kick, 4300 * time.Millisecond, nil, 3},
	{"next kick after hit", game.Kick, 4 * time.Second, []int{3}, 4},
	{"snare shares a time with kick", game.Snare, 3 * time.Second, nil, 1},
	{"snare too early", game.Snare, 3 * time.Second, []int{1}, -1},
	{"crash", game.Crash, 6 * time.Second, nil, 6},
	{"ride not in chart", game.Ride, 6 * time.Second, nil, -1},
	{"unknown pitch", game.Pitch(0), 3 * time.Second, nil, -1},
}

func TestApplyInputToChart(t *testing.T) {
	chart, err := testdata.GetChart()
	require.NoError(t, err)
	tuning, err := chart.Difficulty.Tuning()
	require.NoError(t, err)

	scorer := DefaultScorer{}
	for _, test := range hitTests {
		t.Run(test.name, func(t *testing.T) {
			hits := game.HitSet{}
			for _, i := range test.hits {
				hits.Add(i)
			}
			index, ok := scorer.ApplyInputToChart(chart, hits, test.pitch, test.clock, tuning)
			assert.Equal(t, test.expected, index)
			assert.Equal(t, test.expected >= 0, ok)
			assert.Len(t, hits, len(test.hits))
		})
	}
}

func TestApplyInputToChartWindowEdges(t *testing.T) {
	chart := &game.Chart{Difficulty: game.Easy, Notes: []game.Note{{Pitch: game.Kick}}}
	tuning, err := game.Easy.Tuning()
	require.NoError(t, err)

	scorer := DefaultScorer{}
	for clock, expected := range map[time.Duration]bool{
		1600*time.Millisecond - 1: false,
		1600 * time.Millisecond:   true,
		2 * time.Second:           true,
		2400 * time.Millisecond:   true,
		2400*time.Millisecond + 1: false,
	} {
		_, ok := scorer.ApplyInputToChart(chart, game.HitSet{}, game.Kick, clock, tuning)
		assert.Equal(t, expected, ok, "clock %v", clock)
	}
}

func TestDistance(t *testing.T) {
	scorer := DefaultScorer{}
	note := &game.Note{Pitch: game.Snare, Time: time.Second}
	tuning, err := game.Hard.Tuning()
	require.NoError(t, err)

	assert.Equal(t, 500.0, scorer.Distance(time.Second, note, tuning))
	assert.Equal(t, 50.0, scorer.Distance(2*time.Second, note, tuning))
	assert.Equal(t, 400.0, scorer.Distance(3*time.Second, note, tuning))

	// A note exactly the tolerance away is still hit
	chart := &game.Chart{Difficulty: game.Hard, Notes: []game.Note{*note}}
	index, ok := scorer.ApplyInputToChart(chart, game.HitSet{}, game.Snare, 2*time.Second, tuning)
	assert.True(t, ok)
	assert.Equal(t, 0, index)
	_, ok = scorer.ApplyInputToChart(chart, game.HitSet{}, game.Snare, 3*time.Second, tuning)
	assert.False(t, ok)
}

var result int

func BenchmarkApplyInputToChart(b *testing.B) {
	chart, err := testdata.GetChart()
	if nil != err {
		b.Fatal(err)
	}
	tuning, _ := chart.Difficulty.Tuning()
	scorer := DefaultScorer{}
	hits := game.HitSet{}
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		i, _ := scorer.ApplyInputToChart(chart, hits, game.Crash, 6*time.Second, tuning)
		result += i
	}
}
