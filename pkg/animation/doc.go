// Package animation schedules time-based, interruptible mutations of
// widgets and view models.
//
// # Core Components
//
//   - [LifeTime]: delay, duration and refresh interval of an animation.
//
//   - [LifeSpan]: a LifeTime anchored to an absolute start time.
//
//   - [Status]: the progress snapshot handed to an animation on every tick,
//     with shaping functions such as [Status.FadeIn], [Status.Pulse],
//     [Status.Cycle] and [Status.Slice].
//
//   - [Animation] and [RunCondition]: the user-supplied mutation and the
//     predicate that keeps it running.
//
//   - [Scheduler]: owns one timer per distinct refresh interval and ticks
//     every animation registered on it. Timers exist only while they have
//     work.
//
//   - [Animator]: the immutable builder used to schedule work.
//
// # Basic Usage
//
//	sched := animation.NewScheduler()
//	sched.AnimateFor(animation.NewLifeTime(300*time.Millisecond), animation.Weak(label)).
//	    GoFunc(func(s animation.Status) {
//	        label.SetOpacity(s.FadeIn())
//	    })
//
// Targets are held through a [Ref]. [Weak] never keeps a widget reachable:
// once it is garbage collected its animations end on their next tick.
//
// # Timers
//
// A Scheduler gets its timers from a [TimerSource]. [WallTimers] run on
// time.Ticker and hand every fire to a [Dispatcher]; [FrameTimers] are
// stepped by the host's frame loop and are fully deterministic.
//
// # Failures
//
// Panics in run conditions, animations, finish hooks and target callbacks
// are recovered and reported through package errors. A failing animation
// stops (if its condition failed) or loses that one tick; it never
// disturbs other animations.
package animation
