package animation

import (
	"sync/atomic"
	"time"
)

// Clock provides time for animations. The default implementation uses
// system time. Tests inject a fake clock via SetClock or per scheduler via
// WithClock to control timing deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type clockBox struct{ c Clock }

var clock atomic.Pointer[clockBox]

func init() {
	clock.Store(&clockBox{realClock{}})
}

// SetClock replaces the package-level clock used by LifeSpan factories and
// schedulers created without WithClock. Returns the previous clock so
// callers can restore it during cleanup. A nil clock restores system time.
func SetClock(c Clock) Clock {
	if c == nil {
		c = realClock{}
	}
	return clock.Swap(&clockBox{c}).c
}

// Now returns the current time from the package-level clock.
func Now() time.Time { return clock.Load().c.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return realClock{} }
