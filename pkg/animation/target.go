package animation

import "weak"

// Target is the widget an animation is attached to. After every tick the
// scheduler asks it to revalidate and repaint.
type Target interface {
	Revalidate()
	Repaint()
}

// Disposable is implemented by targets that know when they have been torn
// down. A disposed target ends its animations like a collected one.
type Disposable interface {
	Disposed() bool
}

// VolatileCache discards per-frame render state attached to a target. The
// scheduler calls it for every animated target of a timer batch before any
// animation of that batch runs.
type VolatileCache interface {
	DiscardVolatile(t Target)
}

// VolatileCacheFunc adapts a function to VolatileCache.
type VolatileCacheFunc func(t Target)

// DiscardVolatile calls f(t).
func (f VolatileCacheFunc) DiscardVolatile(t Target) { f(t) }

// Ref is a liveness-checkable handle to a Target. Get reports false once
// the target is gone, after which the animation is dropped.
type Ref interface {
	Get() (Target, bool)
}

type weakRef[T any, P interface {
	*T
	Target
}] struct {
	ptr weak.Pointer[T]
}

// Weak returns a Ref that does not keep p reachable. Once p has been
// garbage collected (or reports Disposed), Get returns false.
func Weak[T any, P interface {
	*T
	Target
}](p P) Ref {
	if p == nil {
		return nil
	}
	return weakRef[T, P]{ptr: weak.Make((*T)(p))}
}

func (r weakRef[T, P]) Get() (Target, bool) {
	v := r.ptr.Value()
	if v == nil {
		return nil, false
	}
	t := P(v)
	if d, ok := any(t).(Disposable); ok && d.Disposed() {
		return nil, false
	}
	return t, true
}

type strongRef struct{ t Target }

// Strong returns an owning Ref. The target stays reachable for as long as
// the animation runs; it is still dropped once it reports Disposed.
func Strong(t Target) Ref {
	if t == nil {
		return nil
	}
	return strongRef{t: t}
}

func (r strongRef) Get() (Target, bool) {
	if d, ok := r.t.(Disposable); ok && d.Disposed() {
		return nil, false
	}
	return r.t, true
}
