package animation

import (
	"fmt"
	"time"
)

// LifeSpan is a LifeTime anchored to an absolute start time. It is
// immutable; only the factories read the clock.
type LifeSpan struct {
	lifeTime LifeTime
	start    time.Time
}

// StartingNow anchors lt so that it starts after its delay, measured from
// the package-level clock.
func StartingNow(lt LifeTime) LifeSpan {
	return StartingAt(lt, Now())
}

// StartingAt anchors lt as if it had been scheduled at now.
func StartingAt(lt LifeTime, now time.Time) LifeSpan {
	return LifeSpan{lifeTime: lt, start: now.Add(lt.delay)}
}

// EndingNow back-dates the start so that the span's first iteration ends
// at the current instant; the span is already expired.
func EndingNow(lt LifeTime) LifeSpan {
	return EndingAt(lt, Now())
}

// EndingAt back-dates the start so the first iteration ends at now.
func EndingAt(lt LifeTime, now time.Time) LifeSpan {
	return LifeSpan{lifeTime: lt, start: now.Add(-lt.duration)}
}

// LifeTime returns the template this span was built from.
func (ls LifeSpan) LifeTime() LifeTime { return ls.lifeTime }

// Start returns the absolute time of the first tick.
func (ls LifeSpan) Start() time.Time { return ls.start }

// StartIn returns the start time as a whole number of unit since the Unix
// epoch.
func (ls LifeSpan) StartIn(unit time.Duration) int64 {
	return in(time.Duration(ls.start.UnixNano()), unit)
}

// EndTime returns the end of the given iteration: start + duration*iteration.
func (ls LifeSpan) EndTime(iteration int) time.Time {
	return ls.start.Add(ls.lifeTime.duration * time.Duration(iteration))
}

// EndTimeIn returns EndTime(iteration) as a whole number of unit since the
// Unix epoch.
func (ls LifeSpan) EndTimeIn(unit time.Duration, iteration int) int64 {
	return in(time.Duration(ls.EndTime(iteration).UnixNano()), unit)
}

// IsExpired reports whether the first iteration has ended according to the
// package-level clock.
func (ls LifeSpan) IsExpired() bool {
	return ls.IsExpiredAt(Now())
}

// IsExpiredAt reports whether now >= start + duration.
func (ls LifeSpan) IsExpiredAt(now time.Time) bool {
	return !now.Before(ls.EndTime(1))
}

func (ls LifeSpan) String() string {
	return fmt.Sprintf("LifeSpan[start=%s, %v]", ls.start.Format(time.RFC3339Nano), ls.lifeTime)
}
