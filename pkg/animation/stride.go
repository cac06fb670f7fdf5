package animation

import "fmt"

// Stride selects whether progress counts up or down over an iteration.
type Stride int

const (
	// Progressive progress runs from 0 to 1.
	Progressive Stride = iota
	// Regressive progress runs from 1 to 0.
	Regressive
)

// ApplyTo maps linear progress through the stride.
func (s Stride) ApplyTo(progress float64) float64 {
	if s == Regressive {
		return 1 - progress
	}
	return progress
}

func (s Stride) String() string {
	switch s {
	case Progressive:
		return "progressive"
	case Regressive:
		return "regressive"
	default:
		return fmt.Sprintf("Stride(%d)", int(s))
	}
}
