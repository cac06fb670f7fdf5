package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/arbor/pkg/animation"
)

// DefaultFrame is the frame length used by PumpAndSettle.
const DefaultFrame = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: scheduler did not settle")

// SchedulerTester drives an animation.Scheduler deterministically. It wires
// the scheduler to a FakeClock and frame-driven timers, so nothing happens
// until the test pumps a frame.
type SchedulerTester struct {
	clock      *FakeClock
	prevClock  animation.Clock
	timers     *animation.FrameTimers
	scheduler  *animation.Scheduler
	dispatches []func()
}

// NewSchedulerTester creates a tester. Extra options are applied after the
// tester's clock and timer source. Call Cleanup when done, or use
// NewSchedulerTesterWithT instead.
func NewSchedulerTester(opts ...animation.Option) *SchedulerTester {
	clk := NewFakeClock()
	timers := animation.NewFrameTimers(clk)
	all := append([]animation.Option{
		animation.WithClock(clk),
		animation.WithTimerSource(timers),
	}, opts...)
	t := &SchedulerTester{
		clock:     clk,
		timers:    timers,
		scheduler: animation.NewScheduler(all...),
	}
	t.prevClock = animation.SetClock(clk)
	return t
}

// NewSchedulerTesterWithT creates a tester that auto-cleans up via
// t.Cleanup(). This is the recommended constructor for tests.
func NewSchedulerTesterWithT(t *testing.T, opts ...animation.Option) *SchedulerTester {
	tester := NewSchedulerTester(opts...)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup stops all timers and restores the package-level clock.
func (t *SchedulerTester) Cleanup() {
	t.scheduler.Shutdown()
	animation.SetClock(t.prevClock)
}

// Clock returns the fake clock.
func (t *SchedulerTester) Clock() *FakeClock { return t.clock }

// Scheduler returns the scheduler under test.
func (t *SchedulerTester) Scheduler() *animation.Scheduler { return t.scheduler }

// Timers returns the frame-driven timer source.
func (t *SchedulerTester) Timers() *animation.FrameTimers { return t.timers }

// Dispatch queues fn for the next frame. It satisfies animation.Dispatcher.
func (t *SchedulerTester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// Pump advances the clock by d and runs one frame: queued dispatches first,
// then every due timer.
func (t *SchedulerTester) Pump(d time.Duration) {
	t.clock.Advance(d)

	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}

	t.timers.Step(t.clock.Now())
}

// PumpFrames runs n frames of length frame.
func (t *SchedulerTester) PumpFrames(n int, frame time.Duration) {
	for range n {
		t.Pump(frame)
	}
}

// PumpAndSettle runs DefaultFrame frames until no timer is running or the
// timeout is reached.
func (t *SchedulerTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		if !t.needsWork() {
			return nil
		}
		t.Pump(DefaultFrame)
		elapsed += DefaultFrame
	}
	if !t.needsWork() {
		return nil
	}
	return ErrSettleTimeout
}

func (t *SchedulerTester) needsWork() bool {
	return t.timers.Active() || len(t.dispatches) > 0
}
