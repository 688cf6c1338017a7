package input

import (
	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"
)

// Source is the terminal keyboard, in raw mode while open.
type Source struct {
	events <-chan keyboard.KeyEvent
}

func Open(buffer int) (*Source, error) {
	events, err := keyboard.GetKeys(buffer)
	if nil != err {
		return nil, errors.Wrap(err, "unable to open keyboard")
	}
	return &Source{events: events}, nil
}

func (s *Source) Events() <-chan keyboard.KeyEvent {
	return s.events
}

func (s *Source) Close() error {
	return keyboard.Close()
}
