package animation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/arbor/pkg/animation"
	arborerrors "github.com/go-drift/arbor/pkg/errors"
	arbortest "github.com/go-drift/arbor/pkg/testing"
)

func TestAnimatorIsImmutable(t *testing.T) {
	tester := arbortest.NewSchedulerTesterWithT(t)
	base := tester.Scheduler().Animate(lifeTime(100*time.Millisecond, frame))

	// Derived builders must leave base untouched.
	_ = base.AsLongAs(animation.Forever())
	_ = base.WithStride(animation.Regressive)

	var baseStrides []animation.Stride
	base.GoFunc(func(s animation.Status) { baseStrides = append(baseStrides, s.Stride()) })

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatalf("base builder picked up a derived condition: %v", err)
	}
	for _, st := range baseStrides {
		if st != animation.Progressive {
			t.Fatalf("base builder stride = %v, want Progressive", st)
		}
	}
	if base.LifeTime() != lifeTime(100*time.Millisecond, frame) {
		t.Error("LifeTime() should return the template unchanged")
	}
}

func TestAnimatorDefaultsToOneIteration(t *testing.T) {
	tester := arbortest.NewSchedulerTesterWithT(t)

	var last animation.Status
	finished := 0
	tester.Scheduler().Animate(lifeTime(100*time.Millisecond, 20*time.Millisecond)).Go(animation.Funcs{
		OnRun:    func(s animation.Status) { last = s },
		OnFinish: func(animation.Status) { finished++ },
	})

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if finished != 1 {
		t.Fatalf("finished = %d, want 1", finished)
	}
	if !last.IsEnd() || last.Progress() != 1 || last.Repeats() != 0 {
		t.Errorf("last status = %v, want end of first iteration", last)
	}
}

func TestAnimatorForIterations(t *testing.T) {
	tester := arbortest.NewSchedulerTesterWithT(t)

	var last animation.Status
	tester.Scheduler().Animate(lifeTime(100*time.Millisecond, 20*time.Millisecond)).
		ForIterations(3).
		GoFunc(func(s animation.Status) { last = s })

	tester.PumpFrames(14, 20*time.Millisecond) // 280ms
	if tester.Scheduler().Len() != 1 {
		t.Fatal("animation should still run in its third iteration")
	}
	if last.Repeats() != 2 {
		t.Errorf("repeats at 280ms = %d, want 2", last.Repeats())
	}

	tester.PumpFrames(1, 20*time.Millisecond) // 300ms
	if tester.Scheduler().Len() != 0 {
		t.Fatal("animation should stop after three iterations")
	}
	if !last.IsEnd() || last.Progress() != 1 || last.Repeats() != 2 {
		t.Errorf("final status = %v, want end of third iteration", last)
	}
}

func TestAnimatorComposesConditions(t *testing.T) {
	tests := []struct {
		name   string
		build  func(animation.Animator, *bool) animation.Animator
		frames int
		flip   int
		want   int
	}{
		{
			name: "until stops when predicate holds",
			build: func(a animation.Animator, flag *bool) animation.Animator {
				return a.Until(func(animation.Status) bool { return *flag })
			},
			frames: 10, flip: 3, want: 4,
		},
		{
			name: "as long as stops when predicate fails",
			build: func(a animation.Animator, flag *bool) animation.Animator {
				return a.AsLongAs(func(animation.Status) bool { return !*flag })
			},
			frames: 10, flip: 5, want: 6,
		},
		{
			name: "iterations bound forever",
			build: func(a animation.Animator, _ *bool) animation.Animator {
				return a.AsLongAs(animation.Forever()).ForIterations(1)
			},
			frames: 10, flip: -1, want: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := arbortest.NewSchedulerTesterWithT(t)
			flag := false
			runs := 0
			a := tester.Scheduler().Animate(lifeTime(100*time.Millisecond, frame))
			tt.build(a, &flag).GoFunc(func(animation.Status) { runs++ })

			for i := range tt.frames {
				if i == tt.flip {
					flag = true
				}
				tester.Pump(frame)
			}
			if runs != tt.want {
				t.Errorf("runs = %d, want %d", runs, tt.want)
			}
		})
	}
}

func TestAnimatorJumpToEnd(t *testing.T) {
	tester := arbortest.NewSchedulerTesterWithT(t)
	target := arbortest.NewFakeTarget("panel")

	var runs []animation.Status
	finished := 0
	anim := animation.Funcs{
		OnRun:    func(s animation.Status) { runs = append(runs, s) },
		OnFinish: func(animation.Status) { finished++ },
	}

	a := tester.Scheduler().AnimateFor(animation.DelayedLifeTime(time.Second, 300*time.Millisecond), animation.Strong(target))
	a.JumpToEnd(anim)
	a.WithStride(animation.Regressive).JumpToEnd(anim)

	if len(runs) != 2 || finished != 2 {
		t.Fatalf("runs=%d finished=%d, want 2 each", len(runs), finished)
	}
	if !runs[0].IsEnd() || runs[0].Progress() != 1 {
		t.Errorf("progressive jump = %v, want progress 1", runs[0])
	}
	if runs[1].Progress() != 0 {
		t.Errorf("regressive jump = %v, want progress 0", runs[1])
	}
	if target.Repaints() != 2 {
		t.Errorf("repaints = %d, want 2", target.Repaints())
	}
	if tester.Scheduler().Len() != 0 || tester.Timers().Active() {
		t.Error("JumpToEnd must not schedule anything")
	}
}

func TestAnimatorJumpToEndSkipsDisposedTarget(t *testing.T) {
	tester := arbortest.NewSchedulerTesterWithT(t)
	target := arbortest.NewFakeTarget("gone")
	target.Dispose()

	ran := false
	tester.Scheduler().
		AnimateFor(animation.NewLifeTime(time.Second), animation.Weak(target)).
		JumpToEnd(animation.Func(func(animation.Status) { ran = true }))

	if ran {
		t.Error("animation of a disposed target should not run")
	}
}

func TestAnimatorJumpToEndReportsNilAnimation(t *testing.T) {
	h := captureErrors(t)
	tester := arbortest.NewSchedulerTesterWithT(t)

	tester.Scheduler().Animate(animation.NewLifeTime(time.Second)).JumpToEnd(nil)

	if len(h.errors) != 1 {
		t.Fatalf("reported %d errors, want 1", len(h.errors))
	}
	err := h.errors[0]
	if err.Op != "animation.Animator.JumpToEnd" || err.Kind != arborerrors.KindSchedule || !errors.Is(err, arborerrors.ErrNilAnimation) {
		t.Errorf("reported error = %+v", err)
	}
}
