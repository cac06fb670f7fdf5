package animation

import arborerrors "github.com/go-drift/arbor/pkg/errors"

// Animator is an immutable builder for scheduling an Animation. Every
// configuration method returns a new Animator, so a partially configured
// builder can be reused.
//
//	animation.AnimateFor(animation.NewLifeTime(300*time.Millisecond), animation.Weak(button)).
//	    Until(func(s animation.Status) bool { return !button.Hovered() }).
//	    GoFunc(func(s animation.Status) { button.SetAlpha(s.FadeIn()) })
type Animator struct {
	scheduler *Scheduler
	lifeTime  LifeTime
	target    Ref
	stride    Stride
	condition RunCondition
}

// Animate returns a builder for a widget-less animation on s.
func (s *Scheduler) Animate(lt LifeTime) Animator {
	return Animator{scheduler: s, lifeTime: lt}
}

// AnimateFor returns a builder for an animation of target on s. A nil
// target behaves like Animate.
func (s *Scheduler) AnimateFor(lt LifeTime, target Ref) Animator {
	return Animator{scheduler: s, lifeTime: lt, target: target}
}

// Animate returns a builder on the Default scheduler.
func Animate(lt LifeTime) Animator {
	return Default().Animate(lt)
}

// AnimateFor returns a builder for target on the Default scheduler.
func AnimateFor(lt LifeTime, target Ref) Animator {
	return Default().AnimateFor(lt, target)
}

// LifeTime returns the configured template.
func (a Animator) LifeTime() LifeTime { return a.lifeTime }

// WithStride returns a builder whose progress runs in direction st.
func (a Animator) WithStride(st Stride) Animator {
	a.stride = st
	return a
}

// AsLongAs returns a builder that additionally requires cond to hold.
func (a Animator) AsLongAs(cond RunCondition) Animator {
	a.condition = a.condition.And(cond)
	return a
}

// Until returns a builder that stops once cond holds.
func (a Animator) Until(cond RunCondition) Animator {
	return a.AsLongAs(cond.Not())
}

// ForIterations returns a builder that stops after n full iterations.
func (a Animator) ForIterations(n int) Animator {
	return a.AsLongAs(Iterations(n))
}

// Go schedules anim. Without any condition the animation runs exactly one
// iteration.
func (a Animator) Go(anim Animation) {
	a.scheduler.Add(a.running(anim))
}

// GoFunc schedules fn as an Animation without a finish step.
func (a Animator) GoFunc(fn func(s Status)) {
	if fn == nil {
		a.Go(nil)
		return
	}
	a.Go(Func(fn))
}

// JumpToEnd runs anim once, synchronously, at the end state of its first
// iteration and then finishes it. Nothing is scheduled.
func (a Animator) JumpToEnd(anim Animation) {
	if anim == nil {
		arborerrors.Report(&arborerrors.Error{
			Op:   "animation.Animator.JumpToEnd",
			Kind: arborerrors.KindSchedule,
			Err:  arborerrors.ErrNilAnimation,
		})
		return
	}
	now := a.scheduler.Now()
	var target Target
	if a.target != nil {
		t, ok := a.target.Get()
		if !ok {
			return
		}
		target = t
	}
	span := EndingAt(a.lifeTime, now)
	end := EndStatusOf(span, a.stride, Tick{Time: now, Interval: a.lifeTime.interval}, 0)
	guard("animation.Animation.Run", func() { anim.Run(end) })
	guard("animation.Animation.Finish", func() { anim.Finish(end) })
	refresh(target)
}

func (a Animator) running(anim Animation) *RunningAnimation {
	if anim == nil {
		return nil
	}
	cond := a.condition
	if cond == nil {
		cond = Once()
	}
	span := StartingAt(a.lifeTime, a.scheduler.Now())
	return NewRunningAnimation(a.target, span, a.stride, cond, anim)
}
