package animation

import (
	"fmt"
	"math"
	"time"

	"github.com/tanema/gween/ease"

	arborerrors "github.com/go-drift/arbor/pkg/errors"
)

// Status is an immutable snapshot of an animation's progress at one tick.
//
// Progress is already stride-applied, quantized to the nearest refresh step,
// and clamped to [0, 1]. The shaping methods (Pulse, FadeIn, Cycle, Slice,
// ...) derive other curves from it without changing the snapshot.
type Status struct {
	progress float64
	repeats  int
	end      bool
	stride   Stride
	span     LifeSpan
	tick     Tick
}

// StatusOf computes the in-flight status of span at now.
func StatusOf(span LifeSpan, stride Stride, tick Tick, now time.Time) Status {
	return newStatus(span, stride, tick, now, false)
}

// EndStatusOf computes the synthetic final tick of the given iteration. Its
// progress is exactly 1 for Progressive and 0 for Regressive.
func EndStatusOf(span LifeSpan, stride Stride, tick Tick, iteration int) Status {
	return newStatus(span, stride, tick, span.EndTime(iteration), true)
}

// StartStatusOf computes the status of the very first tick.
func StartStatusOf(span LifeSpan, stride Stride, tick Tick) Status {
	return newStatus(span, stride, tick, span.Start(), false)
}

func newStatus(span LifeSpan, stride Stride, tick Tick, now time.Time, end bool) Status {
	duration := span.lifeTime.duration
	interval := span.lifeTime.interval

	elapsed := now.Sub(span.start)
	if elapsed < 0 {
		elapsed = 0
	}

	var inCycle time.Duration
	if duration > 0 {
		inCycle = elapsed % duration
		if end && inCycle == 0 {
			inCycle = duration
		}
	}

	var repeats int
	switch {
	case duration > 0:
		repeats = int(elapsed / duration)
	case end:
		repeats = 1
	}

	var progress float64
	if duration <= 0 {
		if end {
			progress = 1
		}
	} else {
		progress = float64(inCycle) / float64(duration)
	}
	progress = stride.ApplyTo(progress)

	if interval > 0 {
		if steps := int64(duration / interval); steps > 0 {
			progress = math.Round(progress*float64(steps)) / float64(steps)
		}
	}

	return Status{
		progress: clamp01(progress),
		repeats:  repeats,
		end:      end,
		stride:   stride,
		span:     span,
		tick:     tick,
	}
}

// Progress returns the normalized progress in [0, 1].
func (s Status) Progress() float64 { return s.progress }

// ProgressBetween maps progress onto [start, end].
func (s Status) ProgressBetween(start, end float64) float64 {
	return start + (end-start)*s.progress
}

// Regress returns 1 - Progress().
func (s Status) Regress() float64 { return 1 - s.progress }

// RegressBetween maps Regress() onto [start, end].
func (s Status) RegressBetween(start, end float64) float64 {
	return start + (end-start)*s.Regress()
}

// Repeats returns how many full iterations had elapsed at this tick.
func (s Status) Repeats() int { return s.repeats }

// IsEnd reports whether this is the synthetic final tick of an iteration.
func (s Status) IsEnd() bool { return s.end }

// Stride returns the direction progress was computed with.
func (s Status) Stride() Stride { return s.stride }

// LifeSpan returns the span the status was computed from.
func (s Status) LifeSpan() LifeSpan { return s.span }

// Tick returns the timer event that triggered this status.
func (s Status) Tick() Tick { return s.tick }

// Pulse rises from 0 to 1 and back to 0 once per iteration: sin(pi*p).
func (s Status) Pulse() float64 {
	return math.Sin(math.Pi * s.progress)
}

// JumpIn is a concave entrance curve, fast at first then settling:
// sin(pi*p/2).
func (s Status) JumpIn() float64 {
	return math.Sin(math.Pi * s.progress / 2)
}

// JumpOut mirrors JumpIn for exits, falling from 1 to 0.
func (s Status) JumpOut() float64 {
	return math.Sin(math.Pi * (1 - s.progress) / 2)
}

// FadeIn is an S-curve from 0 to 1, eased at both ends.
func (s Status) FadeIn() float64 {
	return 0.5 * (1 + math.Sin(math.Pi*(s.progress-0.5)))
}

// FadeOut returns 1 - FadeIn().
func (s Status) FadeOut() float64 {
	return 1 - s.FadeIn()
}

// Cycle is a triangular wave: 0 at both ends of an iteration, 1 in the
// middle.
func (s Status) Cycle() float64 {
	return triangle(s.progress)
}

// CyclePlus is Cycle with its phase advanced by offset. A non-finite offset
// reads as the start of the wave.
func (s Status) CyclePlus(offset float64) float64 {
	return triangle(wrap01(s.progress + offset))
}

// CycleMinus is Cycle with its phase delayed by offset.
func (s Status) CycleMinus(offset float64) float64 {
	return triangle(wrap01(s.progress - offset))
}

// Curve applies an arbitrary easing function to progress.
func (s Status) Curve(curve func(float64) float64) float64 {
	if curve == nil {
		return s.progress
	}
	return curve(s.progress)
}

// Ease applies a gween easing function to progress.
func (s Status) Ease(fn ease.TweenFunc) float64 {
	if fn == nil {
		return s.progress
	}
	return float64(fn(float32(s.progress), 0, 1, 1))
}

// Slice returns a status whose progress covers only [from, to] of this one,
// stretched onto [0, 1]: below from it reads 0, above to it reads 1. Bounds
// outside [0, 1], inverted, or equal are reported and corrected by clamping
// and swapping; a NaN from reads as 0 and a NaN to as 1.
func (s Status) Slice(from, to float64) Status {
	if math.IsNaN(from) || math.IsNaN(to) || from < 0 || from > 1 || to < 0 || to > 1 || from >= to {
		arborerrors.Report(&arborerrors.Error{
			Op:         "animation.Status.Slice",
			Kind:       arborerrors.KindProgress,
			Err:        fmt.Errorf("%w: from=%v to=%v", arborerrors.ErrInvalidSlice, from, to),
			StackTrace: arborerrors.CaptureStack(),
		})
		if math.IsNaN(to) {
			to = 1
		}
		from, to = clamp01(from), clamp01(to)
		if from > to {
			from, to = to, from
		}
	}

	sliced := s
	switch {
	case s.progress >= to:
		sliced.progress = 1
	case s.progress <= from:
		sliced.progress = 0
	default:
		sliced.progress = (s.progress - from) / (to - from)
	}
	return sliced
}

func (s Status) String() string {
	return fmt.Sprintf("Status[progress=%.4f, repeats=%d, end=%t, %v]", s.progress, s.repeats, s.end, s.stride)
}

func triangle(p float64) float64 {
	return 1 - math.Abs(2*p-1)
}

func wrap01(p float64) float64 {
	p = math.Mod(p, 1)
	if p < 0 {
		p++
	}
	return clamp01(p)
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
