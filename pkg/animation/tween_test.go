package animation_test

import (
	"image"
	"image/color"
	"testing"
	"time"

	"golang.org/x/image/colornames"

	"github.com/go-drift/arbor/pkg/animation"
)

func TestTweenRGBA(t *testing.T) {
	tw := animation.TweenRGBA(colornames.Red, colornames.Blue)

	tests := []struct {
		t    float64
		want color.RGBA
	}{
		{0, colornames.Red},
		{0.5, color.RGBA{R: 128, B: 128, A: 255}},
		{1, colornames.Blue},
		{1.5, color.RGBA{B: 255, A: 255}},
	}
	for _, tt := range tests {
		if got := tw.Evaluate(tt.t); got != tt.want {
			t.Errorf("Evaluate(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestTweenPoint(t *testing.T) {
	tw := animation.TweenPoint(image.Pt(0, 0), image.Pt(10, -5))
	if got := tw.Evaluate(0.25); got != image.Pt(3, -1) {
		t.Errorf("Evaluate(0.25) = %v, want (3,-1)", got)
	}
}

func TestTweenAtStatus(t *testing.T) {
	tw := animation.TweenFloat64(100, 200)

	if got := tw.At(statusAt(0.25)); !approx(got, 125, 1e-6) {
		t.Errorf("At(0.25) = %v, want 125", got)
	}
	s := statusAt(0.5)
	if got := tw.Evaluate(s.Pulse()); !approx(got, 200, 1e-6) {
		t.Errorf("Evaluate(Pulse at 0.5) = %v, want 200", got)
	}
}

func TestTweenTransform(t *testing.T) {
	c, _ := newController(t, time.Second)
	c.Value = 0.5
	if got := animation.TweenFloat64(0, 10).Transform(c); got != 5 {
		t.Errorf("Transform = %v, want 5", got)
	}
}

func TestTweenWithoutLerp(t *testing.T) {
	tw := &animation.Tween[string]{Begin: "a", End: "b"}
	if got := tw.Evaluate(0.1); got != "b" {
		t.Errorf("Evaluate = %q, want End", got)
	}
}

func TestCubicBezier(t *testing.T) {
	tests := []struct {
		name  string
		curve func(float64) float64
		at    float64
		want  float64
	}{
		{"ease-in-out start", animation.EaseInOut, 0, 0},
		{"ease-in-out mid", animation.EaseInOut, 0.5, 0.7756},
		{"ease-in-out end", animation.EaseInOut, 1, 1},
		{"ease quarter", animation.Ease, 0.25, 0.4085},
		{"ease-out quarter", animation.EaseOut, 0.25, 0.5776},
		{"ease-in half", animation.EaseIn, 0.5, 0.3248},
		{"below range", animation.Ease, -1, 0},
		{"above range", animation.Ease, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.curve(tt.at); !approx(got, tt.want, 1e-3) {
				t.Errorf("curve(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}
