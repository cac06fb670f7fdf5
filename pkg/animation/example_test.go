package animation_test

import (
	"fmt"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/go-drift/arbor/pkg/animation"
	arbortest "github.com/go-drift/arbor/pkg/testing"
)

// This example shows how to fade a widget in on a scheduler driven by the
// host's frame loop.
func ExampleScheduler() {
	tester := arbortest.NewSchedulerTester()
	defer tester.Cleanup()

	button := arbortest.NewFakeTarget("button")
	lt := animation.NewLifeTime(100 * time.Millisecond).WithInterval(25 * time.Millisecond)

	tester.Scheduler().AnimateFor(lt, animation.Weak(button)).Go(animation.Funcs{
		OnRun: func(s animation.Status) {
			fmt.Printf("alpha %.2f\n", s.FadeIn())
		},
		OnFinish: func(animation.Status) {
			fmt.Println("done")
		},
	})

	tester.PumpFrames(4, 25*time.Millisecond)
	fmt.Println("repaints:", button.Repaints())

	// Output:
	// alpha 0.15
	// alpha 0.50
	// alpha 0.85
	// alpha 1.00
	// done
	// repaints: 4
}

// This example shows how to keep an animation running until a condition
// holds.
func ExampleAnimator_Until() {
	tester := arbortest.NewSchedulerTester()
	defer tester.Cleanup()

	hovered := true
	lt := animation.NewLifeTime(200 * time.Millisecond).WithInterval(50 * time.Millisecond)
	tester.Scheduler().Animate(lt).
		Until(func(animation.Status) bool { return !hovered }).
		GoFunc(func(s animation.Status) {
			fmt.Printf("repeat %d glow %.2f\n", s.Repeats(), s.Cycle())
		})

	tester.PumpFrames(5, 50*time.Millisecond)
	hovered = false
	tester.Pump(50 * time.Millisecond)

	// Output:
	// repeat 0 glow 0.50
	// repeat 0 glow 1.00
	// repeat 0 glow 0.50
	// repeat 1 glow 0.00
	// repeat 1 glow 0.50
	// repeat 1 glow 0.00
}

// This example shows how to shape progress with a gween easing function.
func ExampleStatus_Ease() {
	lt := animation.NewLifeTime(time.Second).WithInterval(100 * time.Millisecond)
	span := animation.StartingAt(lt, time.Unix(0, 0))

	for _, at := range []time.Duration{0, 500 * time.Millisecond} {
		s := animation.StatusOf(span, animation.Progressive, animation.Tick{}, span.Start().Add(at))
		fmt.Printf("linear %.2f cubic %.3f\n", s.Progress(), s.Ease(ease.OutCubic))
	}

	// Output:
	// linear 0.00 cubic 0.000
	// linear 0.50 cubic 0.875
}

// This example shows how to create a custom easing curve.
func ExampleCubicBezier() {
	// Create a custom curve matching CSS cubic-bezier(0.4, 0.0, 0.2, 1.0)
	customEase := animation.CubicBezier(0.4, 0.0, 0.2, 1.0)

	fmt.Printf("Progress 0.0 -> %.2f\n", customEase(0.0))
	fmt.Printf("Progress 0.5 -> %.2f\n", customEase(0.5))
	fmt.Printf("Progress 1.0 -> %.2f\n", customEase(1.0))

	// Output:
	// Progress 0.0 -> 0.00
	// Progress 0.5 -> 0.78
	// Progress 1.0 -> 1.00
}

// This example shows how to use tweens with a controller.
func ExampleController() {
	tester := arbortest.NewSchedulerTester()
	defer tester.Cleanup()

	controller := animation.NewController(tester.Scheduler(), 300*time.Millisecond)
	width := animation.TweenFloat64(100, 200)

	controller.AddPhaseListener(func(p animation.Phase) {
		fmt.Printf("%s at width %.0f\n", p, width.Transform(controller))
	})

	controller.Forward()
	_ = tester.PumpAndSettle(time.Second)
	controller.Dispose()

	// Output:
	// forward at width 100
	// completed at width 200
}
