package testing

import (
	"testing"
	"time"

	"github.com/go-drift/arbor/pkg/animation"
)

func TestPumpAndSettle_RunsAnimationToCompletion(t *testing.T) {
	tester := NewSchedulerTesterWithT(t)
	target := NewFakeTarget("box")

	var last animation.Status
	finished := false
	tester.Scheduler().
		AnimateFor(animation.NewLifeTime(100*time.Millisecond), animation.Strong(target)).
		Go(animation.Funcs{
			OnRun:    func(s animation.Status) { last = s },
			OnFinish: func(animation.Status) { finished = true },
		})

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
	if !finished {
		t.Error("expected finish to run")
	}
	if last.Progress() != 1 {
		t.Errorf("final progress = %v, want 1", last.Progress())
	}
	if target.Repaints() == 0 || target.Revalidates() != target.Repaints() {
		t.Errorf("revalidates=%d repaints=%d", target.Revalidates(), target.Repaints())
	}
}

func TestPumpAndSettle_Timeout(t *testing.T) {
	tester := NewSchedulerTesterWithT(t)
	tester.Scheduler().
		Animate(animation.NewLifeTime(50 * time.Millisecond)).
		AsLongAs(animation.Forever()).
		GoFunc(func(animation.Status) {})

	if err := tester.PumpAndSettle(200 * time.Millisecond); err != ErrSettleTimeout {
		t.Errorf("PumpAndSettle error = %v, want ErrSettleTimeout", err)
	}
}

func TestPump_DrainsDispatches(t *testing.T) {
	tester := NewSchedulerTesterWithT(t)
	ran := 0
	tester.Dispatch(func() { ran++ })
	tester.Dispatch(func() { ran++ })

	tester.Pump(0)

	if ran != 2 {
		t.Errorf("dispatched %d callbacks, want 2", ran)
	}
}

func TestFakeTarget_Dispose(t *testing.T) {
	target := NewFakeTarget("gone")
	ref := animation.Strong(target)
	if _, ok := ref.Get(); !ok {
		t.Fatal("expected live target")
	}
	target.Dispose()
	if _, ok := ref.Get(); ok {
		t.Error("expected disposed target to be gone")
	}
}
