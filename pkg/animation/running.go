package animation

import "time"

// RunningAnimation is one scheduled run of an Animation: the target handle,
// the anchored LifeSpan, the Stride, the RunCondition, and the iteration
// counter of this particular run. The counter is the only field that
// changes after construction, and only from Run.
type RunningAnimation struct {
	target    Ref
	span      LifeSpan
	stride    Stride
	condition RunCondition
	animation Animation

	currentRepeat int
}

// NewRunningAnimation binds an animation to its schedule. target may be nil
// for animations that do not drive a widget; a nil condition means Once.
func NewRunningAnimation(target Ref, span LifeSpan, stride Stride, condition RunCondition, anim Animation) *RunningAnimation {
	if condition == nil {
		condition = Once()
	}
	return &RunningAnimation{
		target:    target,
		span:      span,
		stride:    stride,
		condition: condition,
		animation: anim,
	}
}

// LifeSpan returns the span this run was anchored to.
func (ra *RunningAnimation) LifeSpan() LifeSpan { return ra.span }

// Interval returns the refresh interval the run is scheduled on.
func (ra *RunningAnimation) Interval() time.Duration { return ra.span.lifeTime.interval }

// Repeat returns the iteration index observed at the last continuing tick.
func (ra *RunningAnimation) Repeat() int { return ra.currentRepeat }

// Run performs one tick at now and reports whether the animation should stay
// scheduled.
//
// Before the span starts nothing happens. When the run condition fails (or
// panics) the animation is run once more with the end status of the current
// iteration and then finished. If the target has been collected or disposed
// the animation is dropped without further calls.
func (ra *RunningAnimation) Run(now time.Time, tick Tick) bool {
	if now.Before(ra.span.start) {
		return true
	}

	status := StatusOf(ra.span, ra.stride, tick, now)
	keep := shouldContinue(ra.condition, status)

	var target Target
	if ra.target != nil {
		t, ok := ra.target.Get()
		if !ok {
			return false
		}
		target = t
	}

	if !keep {
		end := EndStatusOf(ra.span, ra.stride, tick, ra.currentRepeat)
		guard("animation.Animation.Run", func() { ra.animation.Run(end) })
		guard("animation.Animation.Finish", func() { ra.animation.Finish(end) })
		refresh(target)
		return false
	}

	ra.currentRepeat = status.Repeats()
	guard("animation.Animation.Run", func() { ra.animation.Run(status) })
	refresh(target)
	return true
}

func (ra *RunningAnimation) liveTarget() (Target, bool) {
	if ra.target == nil {
		return nil, false
	}
	return ra.target.Get()
}
