package testing

import "sync/atomic"

// FakeTarget is an animation.Target that counts refresh requests.
type FakeTarget struct {
	Name        string
	revalidates atomic.Int64
	repaints    atomic.Int64
	disposed    atomic.Bool
}

// NewFakeTarget returns a named target.
func NewFakeTarget(name string) *FakeTarget {
	return &FakeTarget{Name: name}
}

// Revalidate records a layout request.
func (f *FakeTarget) Revalidate() { f.revalidates.Add(1) }

// Repaint records a paint request.
func (f *FakeTarget) Repaint() { f.repaints.Add(1) }

// Dispose marks the target as torn down.
func (f *FakeTarget) Dispose() { f.disposed.Store(true) }

// Disposed reports whether Dispose was called.
func (f *FakeTarget) Disposed() bool { return f.disposed.Load() }

// Revalidates returns the number of Revalidate calls.
func (f *FakeTarget) Revalidates() int { return int(f.revalidates.Load()) }

// Repaints returns the number of Repaint calls.
func (f *FakeTarget) Repaints() int { return int(f.repaints.Load()) }
