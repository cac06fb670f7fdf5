package animation

import "math"

// Easing curves transform linear progress into natural-feeling motion.
// Apply one with [Status.Curve] or set a [Controller]'s Curve field.
// [Status.Ease] accepts the gween easing functions as well.

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// Ease is a general-purpose curve, equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates, equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates, equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut accelerates then decelerates, equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier returns an easing function matching CSS cubic-bezier(). The
// curve runs from (0,0) to (1,1) with control points (x1,y1) and (x2,y2).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return bezier(y1, y2, solveBezierX(x1, x2, t))
	}
}

// solveBezierX finds the curve parameter whose x equals t: Newton steps
// first, bisection when the slope flattens.
func solveBezierX(x1, x2, t float64) float64 {
	const epsilon = 1e-7

	u := t
	for range 8 {
		x := bezier(x1, x2, u) - t
		if math.Abs(x) < epsilon {
			return clamp01(u)
		}
		dx := bezierSlope(x1, x2, u)
		if math.Abs(dx) < epsilon {
			break
		}
		u -= x / dx
	}

	lo, hi := 0.0, 1.0
	u = clamp01(u)
	for range 12 {
		x := bezier(x1, x2, u) - t
		if math.Abs(x) < epsilon {
			break
		}
		if x > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) * 0.5
	}
	return u
}

func bezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}
