package session

import (
	"time"
)

var FeedbackMessages = [...]string{
	"Perfect!", "Crushing!", "Nailed It!", "Epic Hit!", "Smashed!", "On Fire!", "Boom!", "Killer!",
}

const (
	FeedbackDuration = 300 * time.Millisecond
	FlashDuration    = 100 * time.Millisecond
)

// transient is a signal that expires on its own after ttl of wall time.
type transient struct {
	text  string
	at    time.Time
	ttl   time.Duration
	shown bool
}

func (t *transient) show(text string, at time.Time, ttl time.Duration) {
	t.text, t.at, t.ttl, t.shown = text, at, ttl, true
}

func (t *transient) clear() {
	*t = transient{}
}

func (t *transient) active(now time.Time) bool {
	return t.shown && now.Sub(t.at) < t.ttl
}

func (t *transient) value(now time.Time) string {
	if !t.active(now) {
		return ""
	}
	return t.text
}
