// Package testing provides deterministic helpers for testing animations.
//
// # Quick Start
//
//	func TestFade(t *testing.T) {
//	    tester := arbortest.NewSchedulerTesterWithT(t)
//	    target := arbortest.NewFakeTarget("label")
//
//	    var opacity float64
//	    tester.Scheduler().
//	        AnimateFor(animation.NewLifeTime(100*time.Millisecond), animation.Strong(target)).
//	        GoFunc(func(s animation.Status) { opacity = s.FadeIn() })
//
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	    if opacity != 1 {
//	        t.Errorf("opacity = %v, want 1", opacity)
//	    }
//	}
//
// # Time
//
// Nothing moves until the test pumps. Pump advances the FakeClock and steps
// the frame-driven timers; PumpAndSettle repeats that until no timer runs.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import arbortest "github.com/go-drift/arbor/pkg/testing"
package testing
