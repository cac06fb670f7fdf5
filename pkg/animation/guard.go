package animation

import arborerrors "github.com/go-drift/arbor/pkg/errors"

// guard runs fn, recovering and reporting any panic under op. It reports
// whether fn returned normally.
func guard(op string, fn func()) (ok bool) {
	defer arborerrors.RecoverWithCallback(op, func(any) { ok = false })
	fn()
	return true
}

// shouldContinue evaluates cond; a panicking condition means stop.
func shouldContinue(cond RunCondition, s Status) (keep bool) {
	guard("animation.RunCondition", func() { keep = cond(s) })
	return keep
}

func refresh(t Target) {
	if t == nil {
		return
	}
	guard("animation.Target.Revalidate", t.Revalidate)
	guard("animation.Target.Repaint", t.Repaint)
}
