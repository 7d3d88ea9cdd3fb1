package vecmath

import (
	"fmt"
	"strings"
)

// Easing is a weight curve mapping t in [0,1] onto [0,1]
type Easing int

const (
	// Cubic is the classic smoothstep curve 3t^2 - 2t^3
	Cubic Easing = iota
	// Quintic is the improved Perlin curve 6t^5 - 15t^4 + 10t^3
	Quintic
)

// ParseEasing converts a config name into an Easing
func ParseEasing(name string) (Easing, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "cubic", "smoothstep":
		return Cubic, nil
	case "quintic", "smootherstep":
		return Quintic, nil
	default:
		return Cubic, fmt.Errorf("unknown easing %q (available: cubic, quintic)", name)
	}
}

func (e Easing) String() string {
	switch e {
	case Quintic:
		return "quintic"
	default:
		return "cubic"
	}
}

// Weight applies the curve to t
func (e Easing) Weight(t float64) float64 {
	if e == Quintic {
		return Smootherstep(t)
	}
	return Smoothstep(t)
}

// Lerp blends a and b using the eased weight for t
func (e Easing) Lerp(a, b, t float64) float64 {
	return Lerp(a, b, e.Weight(t))
}

// Smoothstep applies the cubic smoothing function to t
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Smootherstep applies the quintic smoothing function to t
func Smootherstep(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Lerp performs linear interpolation between a and b with t in [0,1].
// Lerp(a, b, 0) is exactly a and Lerp(a, b, 1) is exactly b.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// SmoothLerp interpolates between a and b with a cubic ease on t.
// The result has zero slope at both ends, which hides lattice seams.
func SmoothLerp(a, b, t float64) float64 {
	return Lerp(a, b, Smoothstep(t))
}

// Clamp restricts a value to be between min and max
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
