package animation

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Phase represents where a Controller is in its animation.
//
// The phase follows this state machine:
//
//	                Forward()
//	Dismissed ──────────────────► Completed
//	    ▲                              │
//	    │         Reverse()            │
//	    └──────────────────────────────┘
//
// While animating, the phase is PhaseForward or PhaseReverse.
type Phase int

const (
	// PhaseDismissed means the controller is stopped at the lower bound.
	PhaseDismissed Phase = iota
	// PhaseForward means the controller is moving toward the upper bound.
	PhaseForward
	// PhaseReverse means the controller is moving toward the lower bound.
	PhaseReverse
	// PhaseCompleted means the controller is stopped at the upper bound.
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseDismissed:
		return "dismissed"
	case PhaseForward:
		return "forward"
	case PhaseReverse:
		return "reverse"
	case PhaseCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Controller drives a single float value between LowerBound and UpperBound
// on a Scheduler. Each Forward, Reverse or AnimateTo call supersedes the
// previous run: the old run's condition sees a newer generation and stops.
//
// Controller methods and listeners run on the goroutine that ticks the
// scheduler and are not safe for concurrent use otherwise.
type Controller struct {
	// Value is the current value.
	Value float64

	// Duration is the length of a full run.
	Duration time.Duration

	// Curve transforms linear progress (optional).
	Curve func(float64) float64

	// LowerBound is the minimum value (default 0.0).
	LowerBound float64

	// UpperBound is the maximum value (default 1.0).
	UpperBound float64

	scheduler      *Scheduler
	phase          Phase
	generation     atomic.Uint64
	listeners      map[int]func()
	phaseListeners map[int]func(Phase)
	nextListenerID int
}

// NewController creates a controller on s with the given duration.
func NewController(s *Scheduler, duration time.Duration) *Controller {
	return &Controller{
		Duration:       duration,
		UpperBound:     1,
		Curve:          LinearCurve,
		scheduler:      s,
		phase:          PhaseDismissed,
		listeners:      make(map[int]func()),
		phaseListeners: make(map[int]func(Phase)),
	}
}

// Forward animates from the current value to the upper bound.
func (c *Controller) Forward() {
	c.animateTo(c.UpperBound, PhaseForward)
}

// Reverse animates from the current value to the lower bound.
func (c *Controller) Reverse() {
	c.animateTo(c.LowerBound, PhaseReverse)
}

// AnimateTo animates to a specific target value.
func (c *Controller) AnimateTo(target float64) {
	if target > c.Value {
		c.animateTo(target, PhaseForward)
	} else {
		c.animateTo(target, PhaseReverse)
	}
}

func (c *Controller) animateTo(target float64, direction Phase) {
	gen := c.generation.Add(1)
	start := c.Value
	c.setPhase(direction)

	if c.Duration <= 0 {
		c.Value = target
		c.notifyListeners()
		c.settle()
		return
	}

	current := func(Status) bool { return c.generation.Load() == gen }
	c.scheduler.Animate(NewLifeTime(c.Duration)).
		AsLongAs(current).
		ForIterations(1).
		Go(Funcs{
			OnRun: func(s Status) {
				if !current(s) {
					return
				}
				c.Value = start + (target-start)*s.Curve(c.Curve)
				c.notifyListeners()
			},
			OnFinish: func(s Status) {
				if current(s) {
					c.settle()
				}
			},
		})
}

func (c *Controller) settle() {
	if c.Value <= c.LowerBound {
		c.setPhase(PhaseDismissed)
	} else if c.Value >= c.UpperBound {
		c.setPhase(PhaseCompleted)
	}
}

// Stop stops the animation at the current value.
func (c *Controller) Stop() {
	c.generation.Add(1)
}

// Reset stops and immediately sets the value to the lower bound.
func (c *Controller) Reset() {
	c.Stop()
	c.Value = c.LowerBound
	c.setPhase(PhaseDismissed)
	c.notifyListeners()
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// IsAnimating reports whether a run is in progress.
func (c *Controller) IsAnimating() bool {
	return c.phase == PhaseForward || c.phase == PhaseReverse
}

// IsCompleted reports whether the controller finished at the upper bound.
func (c *Controller) IsCompleted() bool {
	return c.phase == PhaseCompleted
}

// IsDismissed reports whether the controller is at the lower bound.
func (c *Controller) IsDismissed() bool {
	return c.phase == PhaseDismissed
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddPhaseListener adds a callback that fires whenever the phase changes.
// Returns an unsubscribe function.
func (c *Controller) AddPhaseListener(fn func(Phase)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.phaseListeners[id] = fn
	return func() {
		delete(c.phaseListeners, id)
	}
}

func (c *Controller) setPhase(p Phase) {
	if c.phase == p {
		return
	}
	c.phase = p
	for _, listener := range c.phaseListeners {
		listener(p)
	}
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the controller and drops its listeners.
func (c *Controller) Dispose() {
	c.Stop()
	c.listeners = nil
	c.phaseListeners = nil
}
