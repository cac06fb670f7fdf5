package animation

import (
	"image"
	"image/color"
	"math"
)

// Tween interpolates between Begin and End values based on progress.
//
// Tween maps the [0, 1] progress of a Status or Controller to any value
// range or type. Use the helper constructors ([TweenFloat64], [TweenRGBA],
// [TweenPoint]) for common types, or supply a Lerp function.
type Tween[T any] struct {
	// Begin is the value at t = 0.
	Begin T
	// End is the value at t = 1.
	End T
	// Lerp interpolates between Begin and End for t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// At returns the interpolated value at the status's progress. For shaped
// progress pass the shaping result to Evaluate, e.g. tw.Evaluate(s.Pulse()).
func (tw *Tween[T]) At(s Status) T {
	return tw.Evaluate(s.Progress())
}

// Transform returns the interpolated value at the controller's value.
func (tw *Tween[T]) Transform(c *Controller) T {
	return tw.Evaluate(c.Value)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpRGBA interpolates each channel of two colors.
func LerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round(LerpFloat64(float64(a), float64(b), t))
	return uint8(min(max(v, 0), 255))
}

// LerpPoint interpolates two integer points, rounding to the nearest pixel.
func LerpPoint(a, b image.Point, t float64) image.Point {
	return image.Point{
		X: int(math.Round(LerpFloat64(float64(a.X), float64(b.X), t))),
		Y: int(math.Round(LerpFloat64(float64(a.Y), float64(b.Y), t))),
	}
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenRGBA creates a tween for colors.
func TweenRGBA(begin, end color.RGBA) *Tween[color.RGBA] {
	return &Tween[color.RGBA]{Begin: begin, End: end, Lerp: LerpRGBA}
}

// TweenPoint creates a tween for points.
func TweenPoint(begin, end image.Point) *Tween[image.Point] {
	return &Tween[image.Point]{Begin: begin, End: end, Lerp: LerpPoint}
}
