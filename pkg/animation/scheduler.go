package animation

import (
	"slices"
	"sync"
	"time"

	arborerrors "github.com/go-drift/arbor/pkg/errors"
)

// Scheduler batches running animations by refresh interval and drives each
// batch from one shared timer.
//
// A timer exists for an interval exactly while at least one animation is
// registered on it: it is created and started on the first Add and stopped
// and discarded as soon as its batch empties. Ticks of all batches are
// serialized, so user callbacks never run concurrently even with
// WallTimers; registration may happen from any goroutine, including from
// inside a callback.
type Scheduler struct {
	mu     sync.Mutex
	groups map[time.Duration]*group

	runMu sync.Mutex

	clock  Clock
	timers TimerSource
	cache  VolatileCache
}

type group struct {
	interval   time.Duration
	timer      Timer
	animations []*RunningAnimation
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock sets the clock used to anchor and advance animations.
func WithClock(c Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

// WithTimerSource sets where per-interval timers come from. The default is
// NewWallTimers(nil).
func WithTimerSource(ts TimerSource) Option {
	return func(s *Scheduler) { s.timers = ts }
}

// WithVolatileCache installs the hook that discards per-frame render state
// before each batch.
func WithVolatileCache(c VolatileCache) Option {
	return func(s *Scheduler) { s.cache = c }
}

// NewScheduler creates an empty scheduler.
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{groups: make(map[time.Duration]*group)}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = clockFunc(Now)
	}
	if s.timers == nil {
		s.timers = NewWallTimers(nil)
	}
	return s
}

type clockFunc func() time.Time

func (f clockFunc) Now() time.Time { return f() }

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time { return s.clock.Now() }

// Add registers ra on the timer for its refresh interval, creating and
// starting that timer if needed.
func (s *Scheduler) Add(ra *RunningAnimation) {
	if ra == nil || ra.animation == nil {
		arborerrors.Report(&arborerrors.Error{
			Op:   "animation.Scheduler.Add",
			Kind: arborerrors.KindSchedule,
			Err:  arborerrors.ErrNilAnimation,
		})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	interval := ra.Interval()
	g, ok := s.groups[interval]
	if !ok {
		g = &group{interval: interval}
		g.timer = s.timers.NewTimer(interval, func(t Tick) { s.tick(g, t) })
		s.groups[interval] = g
	}
	g.animations = append(g.animations, ra)
	if !g.timer.Running() {
		g.timer.Start()
	}
}

// tick drives one batch. Volatile render state of every target is discarded
// before any animation of the batch runs.
func (s *Scheduler) tick(g *group, t Tick) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	s.mu.Lock()
	if s.groups[g.interval] != g {
		// Fire from a timer that was already torn down.
		s.mu.Unlock()
		return
	}
	if len(g.animations) == 0 {
		s.teardown(g)
		s.mu.Unlock()
		return
	}
	batch := slices.Clone(g.animations)
	s.mu.Unlock()

	if s.cache != nil {
		for _, ra := range batch {
			if target, ok := ra.liveTarget(); ok {
				guard("animation.VolatileCache.DiscardVolatile", func() { s.cache.DiscardVolatile(target) })
			}
		}
	}

	now := s.clock.Now()
	var finished []*RunningAnimation
	for _, ra := range batch {
		if !ra.Run(now, t) {
			finished = append(finished, ra)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(finished) > 0 {
		g.animations = slices.DeleteFunc(g.animations, func(ra *RunningAnimation) bool {
			return slices.Contains(finished, ra)
		})
	}
	if len(g.animations) == 0 && s.groups[g.interval] == g {
		s.teardown(g)
	}
}

// teardown stops g's timer and forgets g. Callers hold s.mu.
func (s *Scheduler) teardown(g *group) {
	g.timer.Stop()
	delete(s.groups, g.interval)
}

// Len returns the number of registered animations across all intervals.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, g := range s.groups {
		n += len(g.animations)
	}
	return n
}

// Intervals returns the refresh intervals that currently own a timer, in
// ascending order.
func (s *Scheduler) Intervals() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Duration, 0, len(s.groups))
	for interval := range s.groups {
		out = append(out, interval)
	}
	slices.Sort(out)
	return out
}

// Running reports whether a timer for interval is alive and running.
func (s *Scheduler) Running(interval time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[interval]
	return ok && g.timer.Running()
}

// Shutdown stops every timer and drops every animation without finishing
// them. The scheduler may be reused afterwards.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.groups {
		g.timer.Stop()
	}
	clear(s.groups)
}

var (
	defaultMu        sync.Mutex
	defaultScheduler *Scheduler
)

// Default returns the process-wide scheduler used by the package-level
// Animate functions, creating it on wall timers if none was set.
func Default() *Scheduler {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultScheduler == nil {
		defaultScheduler = NewScheduler()
	}
	return defaultScheduler
}

// SetDefault replaces the process-wide scheduler and returns the previous
// one, which may be nil.
func SetDefault(s *Scheduler) *Scheduler {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultScheduler
	defaultScheduler = s
	return prev
}
