package animation

import "time"

// Tick is the timer event that triggers one batch of animation steps.
type Tick struct {
	// Time is when the timer fired.
	Time time.Time
	// Interval is the refresh interval of the firing timer.
	Interval time.Duration
	// Seq counts fires of this timer, starting at 1.
	Seq uint64
}

// Timer fires its callback periodically while running.
type Timer interface {
	Start()
	Stop()
	Running() bool
}

// TimerSource creates one Timer per refresh interval for a Scheduler.
type TimerSource interface {
	NewTimer(interval time.Duration, fire func(Tick)) Timer
}

// Dispatcher runs fn on the goroutine that owns UI state. Hosts with an
// event loop pass a function that posts fn to it.
type Dispatcher func(fn func())

func inline(fn func()) { fn() }
