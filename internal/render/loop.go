package render

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// FrameLoop is the tick source for a session. It calls frame once per period
// with the time since the loop started.
type FrameLoop struct {
	Period time.Duration

	now func() time.Time
}

func NewFrameLoop(period time.Duration) *FrameLoop {
	return &FrameLoop{Period: period, now: time.Now}
}

// Run blocks until frame returns false or ctx is done. Cancelling ctx is how
// the owner of a session stops its ticks.
func (l *FrameLoop) Run(ctx context.Context, frame func(elapsed time.Duration) bool) error {
	if l.Period <= 0 {
		return errors.Errorf("frame period must be positive, got %v", l.Period)
	}
	now := l.now
	if nil == now {
		now = time.Now
	}

	ticker := time.NewTicker(l.Period)
	defer ticker.Stop()

	start := now()
	for {
		if err := ctx.Err(); nil != err {
			return err
		}
		if !frame(now().Sub(start)) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
