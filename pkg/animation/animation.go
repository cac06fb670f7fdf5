package animation

// Animation is the per-tick mutation of externally owned state, typically
// widget properties or a view model.
//
// Run is called on every tick while the animation continues, and once more
// with the end-of-iteration status when it stops. Finish is called after
// that final Run. Panics in either are recovered and reported; they never
// reach the scheduler.
type Animation interface {
	Run(s Status)
	Finish(s Status)
}

// Func adapts a plain function to an Animation without a finish step.
type Func func(s Status)

// Run calls f(s).
func (f Func) Run(s Status) {
	if f != nil {
		f(s)
	}
}

// Finish does nothing.
func (Func) Finish(Status) {}

// Funcs builds an Animation from optional run and finish functions.
type Funcs struct {
	OnRun    func(s Status)
	OnFinish func(s Status)
}

// Run calls OnRun if set.
func (f Funcs) Run(s Status) {
	if f.OnRun != nil {
		f.OnRun(s)
	}
}

// Finish calls OnFinish if set.
func (f Funcs) Finish(s Status) {
	if f.OnFinish != nil {
		f.OnFinish(s)
	}
}

// RunCondition decides whether an animation keeps receiving ticks. A
// condition that panics is treated as returning false.
type RunCondition func(s Status) bool

// Once continues only during the first iteration. It is the default
// condition of Animator.Go.
func Once() RunCondition {
	return Iterations(1)
}

// Iterations continues while fewer than n iterations have completed.
func Iterations(n int) RunCondition {
	return func(s Status) bool { return s.Repeats() < n }
}

// Forever never stops on its own; the animation ends only when its target
// goes away.
func Forever() RunCondition {
	return func(Status) bool { return true }
}

// And returns a condition that holds when both c and other hold. A nil
// receiver or argument is ignored.
func (c RunCondition) And(other RunCondition) RunCondition {
	switch {
	case c == nil:
		return other
	case other == nil:
		return c
	}
	return func(s Status) bool { return c(s) && other(s) }
}

// Not negates c.
func (c RunCondition) Not() RunCondition {
	if c == nil {
		return nil
	}
	return func(s Status) bool { return !c(s) }
}
