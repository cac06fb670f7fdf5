package animation

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-drift/arbor/pkg/config"
)

// Errors returned by the fractional LifeTime constructors.
var (
	ErrInvalidUnit  = errors.New("animation: time unit must be positive")
	ErrNegativeTime = errors.New("animation: time amount must not be negative")
	ErrTimeOverflow = errors.New("animation: time amount exceeds the duration range")
)

// LifeTime is the delay, duration and refresh interval template of an
// animation, independent of when it starts. LifeTime is an immutable value;
// the With methods return modified copies. All three fields are
// non-negative.
type LifeTime struct {
	delay    time.Duration
	duration time.Duration
	interval time.Duration
}

// NewLifeTime returns a LifeTime of the given duration, no delay, and the
// configured default refresh interval.
func NewLifeTime(duration time.Duration) LifeTime {
	return DelayedLifeTime(0, duration)
}

// DelayedLifeTime returns a LifeTime that starts after delay and then runs
// for duration, using the configured default refresh interval.
func DelayedLifeTime(delay, duration time.Duration) LifeTime {
	return LifeTime{
		delay:    nonNegative(delay),
		duration: nonNegative(duration),
		interval: nonNegative(config.RefreshInterval()),
	}
}

// LifeTimeOf returns a LifeTime of amount units, e.g. LifeTimeOf(0.45,
// time.Second). Fractional amounts are converted through nanoseconds once,
// so no rounding drift accumulates.
func LifeTimeOf(amount float64, unit time.Duration) (LifeTime, error) {
	return DelayedLifeTimeOf(0, amount, unit)
}

// DelayedLifeTimeOf is LifeTimeOf with a delay expressed in the same unit.
func DelayedLifeTimeOf(delay, amount float64, unit time.Duration) (LifeTime, error) {
	d, err := toDuration(delay, unit)
	if err != nil {
		return LifeTime{}, err
	}
	dur, err := toDuration(amount, unit)
	if err != nil {
		return LifeTime{}, err
	}
	return DelayedLifeTime(d, dur), nil
}

func toDuration(amount float64, unit time.Duration) (time.Duration, error) {
	if unit <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidUnit, unit)
	}
	if amount < 0 || math.IsNaN(amount) {
		return 0, fmt.Errorf("%w: got %v", ErrNegativeTime, amount)
	}
	ns := math.Round(amount * float64(unit))
	if math.IsInf(amount, 0) || ns >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: got %v x %v", ErrTimeOverflow, amount, unit)
	}
	return time.Duration(ns), nil
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}

// Delay returns the time between scheduling and the first tick.
func (lt LifeTime) Delay() time.Duration { return lt.delay }

// Duration returns the length of one iteration.
func (lt LifeTime) Duration() time.Duration { return lt.duration }

// Interval returns the refresh interval, the time between ticks.
func (lt LifeTime) Interval() time.Duration { return lt.interval }

// DelayIn returns the delay as a whole number of unit.
func (lt LifeTime) DelayIn(unit time.Duration) int64 { return in(lt.delay, unit) }

// DurationIn returns the duration as a whole number of unit.
func (lt LifeTime) DurationIn(unit time.Duration) int64 { return in(lt.duration, unit) }

// IntervalIn returns the interval as a whole number of unit.
func (lt LifeTime) IntervalIn(unit time.Duration) int64 { return in(lt.interval, unit) }

// WithInterval returns a copy refreshing every interval.
func (lt LifeTime) WithInterval(interval time.Duration) LifeTime {
	lt.interval = nonNegative(interval)
	return lt
}

// StartingIn returns a copy whose first tick happens after delay.
func (lt LifeTime) StartingIn(delay time.Duration) LifeTime {
	lt.delay = nonNegative(delay)
	return lt
}

// WithDuration returns a copy with a different iteration length.
func (lt LifeTime) WithDuration(duration time.Duration) LifeTime {
	lt.duration = nonNegative(duration)
	return lt
}

func (lt LifeTime) String() string {
	return fmt.Sprintf("LifeTime[delay=%v, duration=%v, interval=%v]", lt.delay, lt.duration, lt.interval)
}

func in(d, unit time.Duration) int64 {
	if unit <= 0 {
		return 0
	}
	return int64(d / unit)
}
