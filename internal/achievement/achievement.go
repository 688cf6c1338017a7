package achievement

import (
	"git.lost.host/meutraa/drumveil/internal/score"
)

type Metric string

const (
	Combo    Metric = "combo"
	Score    Metric = "score"
	Accuracy Metric = "accuracy"
)

type Achievement struct {
	ID          int
	Name        string
	Description string
	Metric      Metric
	Required    float64
}

var All = []Achievement{
	{ID: 1, Name: "Combo King", Description: "Reach a 50x combo", Metric: Combo, Required: 50},
	{ID: 2, Name: "Score Master", Description: "Score 1000 points", Metric: Score, Required: 1000},
	{ID: 3, Name: "Precision Drummer", Description: "Finish with 90% accuracy", Metric: Accuracy, Required: 90},
}

func (a Achievement) Achieved(r score.Result) bool {
	switch a.Metric {
	case Combo:
		return float64(r.Combo) >= a.Required
	case Score:
		return float64(r.Score) >= a.Required
	case Accuracy:
		return r.Accuracy >= a.Required
	}
	return false
}

// Unlocked lists the achievements a result earns, in ID order.
func Unlocked(r score.Result) []Achievement {
	unlocked := []Achievement{}
	for _, a := range All {
		if a.Achieved(r) {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}
