package hardware

import (
	"time"

	"github.com/jetsetilly/testdmg/hardware/spec"
)

type limiter struct {
	tick  *time.Ticker
	nudge chan bool
}

func newLimiter(spec spec.Spec) *limiter {
	// the ideal speed of the device
	d := time.Duration(float64(time.Second) / spec.RefreshRate())

	return &limiter{
		tick:  time.NewTicker(d),
		nudge: make(chan bool, 1),
	}
}

// Wait blocks until the next frame is due or until the limiter is nudged
func (l *limiter) Wait() {
	select {
	case <-l.tick.C:
	case <-l.nudge:
	}
}

// Nudge causes the current or next call to Wait() to return immediately
func (l *limiter) Nudge() {
	select {
	case l.nudge <- true:
	default:
	}
}

func (l *limiter) Stop() {
	l.tick.Stop()
}
