package animation

import (
	"sync"
	"time"
)

// FrameTimers is a TimerSource driven by the host's frame loop.
//
// Nothing fires on its own: the host calls Step once per frame, and every
// running timer whose interval has elapsed since its last fire is fired on
// the caller's goroutine, in creation order. Because no goroutines are
// involved, FrameTimers is also the source used for deterministic tests.
type FrameTimers struct {
	mu     sync.Mutex
	clock  Clock
	timers []*frameTimer
}

// NewFrameTimers creates a frame-driven timer source. A nil clock uses the
// package-level clock.
func NewFrameTimers(c Clock) *FrameTimers {
	return &FrameTimers{clock: c}
}

type frameTimer struct {
	owner    *FrameTimers
	interval time.Duration
	fire     func(Tick)
	isActive bool
	last     time.Time
	seq      uint64
}

func (f *FrameTimers) now() time.Time {
	if f.clock != nil {
		return f.clock.Now()
	}
	return Now()
}

// NewTimer implements TimerSource.
func (f *FrameTimers) NewTimer(interval time.Duration, fire func(Tick)) Timer {
	return &frameTimer{owner: f, interval: interval, fire: fire}
}

// Start activates the timer. Its first fire is one interval from now.
func (t *frameTimer) Start() {
	f := t.owner
	now := f.now()
	f.mu.Lock()
	defer f.mu.Unlock()
	if t.isActive {
		return
	}
	t.isActive = true
	t.last = now
	f.timers = append(f.timers, t)
}

// Stop deactivates the timer.
func (t *frameTimer) Stop() {
	f := t.owner
	f.mu.Lock()
	defer f.mu.Unlock()
	if !t.isActive {
		return
	}
	t.isActive = false
	for i, other := range f.timers {
		if other == t {
			f.timers = append(f.timers[:i], f.timers[i+1:]...)
			break
		}
	}
}

// Running reports whether the timer is active.
func (t *frameTimer) Running() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	return t.isActive
}

// Step fires every due timer. It should be called once per frame.
func (f *FrameTimers) Step(now time.Time) {
	f.mu.Lock()
	if len(f.timers) == 0 {
		f.mu.Unlock()
		return
	}
	// Copy so callbacks can start and stop timers.
	var due []*frameTimer
	var ticks []Tick
	for _, t := range f.timers {
		if now.Sub(t.last) < t.interval {
			continue
		}
		t.last = now
		t.seq++
		due = append(due, t)
		ticks = append(ticks, Tick{Time: now, Interval: t.interval, Seq: t.seq})
	}
	f.mu.Unlock()

	for i, t := range due {
		if t.Running() && t.fire != nil {
			t.fire(ticks[i])
		}
	}
}

// StepNow calls Step with the source's clock.
func (f *FrameTimers) StepNow() {
	f.Step(f.now())
}

// Active reports whether any timer is running. Hosts use it to decide
// whether to keep scheduling frames.
func (f *FrameTimers) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers) > 0
}

// Len returns the number of running timers.
func (f *FrameTimers) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}
