// Package testdata holds a small hand written chart for judgement tests.
package testdata

import (
	_ "embed"
	"encoding/json"

	"github.com/pkg/errors"

	"git.lost.host/meutraa/drumveil/internal/game"
)

// Times are in nanoseconds
//
//go:embed easy.json
var easy []byte

// GetChart decodes a fresh copy of the easy chart on every call.
func GetChart() (*game.Chart, error) {
	var chart game.Chart
	if err := json.Unmarshal(easy, &chart); nil != err {
		return nil, errors.Wrap(err, "unable to decode chart")
	}
	if !chart.Sorted() {
		return nil, errors.New("chart is not sorted")
	}
	return &chart, nil
}
