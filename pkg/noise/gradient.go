package noise

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	vecmath "heightfield/internal/math"
)

// GradientMode selects how a lattice point is turned into a gradient angle
type GradientMode int

const (
	// HashGradients derives the angle from an integer hash of the lattice
	// point and the seed.
	HashGradients GradientMode = iota
	// ReseedGradients seeds a call-local generator from
	// atan2(cos(ix+seed), sin(iy+seed)) and draws one uniform value.
	ReseedGradients
)

// ParseGradientMode converts a config name into a GradientMode
func ParseGradientMode(name string) (GradientMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "hash":
		return HashGradients, nil
	case "reseed":
		return ReseedGradients, nil
	default:
		return HashGradients, fmt.Errorf("unknown gradient mode %q (available: hash, reseed)", name)
	}
}

func (m GradientMode) String() string {
	switch m {
	case ReseedGradients:
		return "reseed"
	default:
		return "hash"
	}
}

// GradientAt returns the unit gradient assigned to the lattice point (ix, iy).
// The same point always yields the same vector for a given field.
func (f *Field) GradientAt(ix, iy int64) vecmath.Vector2 {
	return vecmath.FromPolar(1.0, f.unitAt(ix, iy)*2*math.Pi)
}

// unitAt returns the lattice point's uniform draw in [0, 1)
func (f *Field) unitAt(ix, iy int64) float64 {
	if f.gradients == ReseedGradients {
		return reseedUnit(f.seed, ix, iy)
	}
	return hashToFloat(hash2(f.seed, ix, iy))
}

// reseedUnit builds a fresh generator for every lookup, so concurrent
// callers never share generator state.
func reseedUnit(seed, ix, iy int64) float64 {
	s := math.Atan2(math.Cos(float64(ix+seed)), math.Sin(float64(iy+seed)))
	rng := rand.New(rand.NewPCG(math.Float64bits(s), uint64(seed)))
	return rng.Float64()
}
