// Package noise implements a seeded 2D gradient noise field.
//
// A Field holds nothing but its seed and a couple of immutable settings, so
// Evaluate may be called from any number of goroutines without locking.
package noise

import (
	"math"

	vecmath "heightfield/internal/math"
)

// Field is a deterministic gradient noise field over the plane
type Field struct {
	seed      int64
	gradients GradientMode
	easing    vecmath.Easing
}

// Option configures a Field at construction
type Option func(*Field)

// WithGradients selects the gradient derivation
func WithGradients(mode GradientMode) Option {
	return func(f *Field) {
		f.gradients = mode
	}
}

// WithEasing selects the interpolation weight curve
func WithEasing(e vecmath.Easing) Option {
	return func(f *Field) {
		f.easing = e
	}
}

// New creates a noise field with the given seed
func New(seed int64, opts ...Option) *Field {
	f := &Field{
		seed:      seed,
		gradients: HashGradients,
		easing:    vecmath.Cubic,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Seed returns the field's seed
func (f *Field) Seed() int64 {
	return f.seed
}

// Gradients returns the gradient derivation in use
func (f *Field) Gradients() GradientMode {
	return f.gradients
}

// Easing returns the interpolation weight curve in use
func (f *Field) Easing() vecmath.Easing {
	return f.easing
}

// Evaluate samples the field at (x, y) and returns a value in [0, 1].
//
// Cells are addressed with floor, so negative coordinates get their own
// cells rather than mirroring the ones around zero. Very large coordinates
// lose precision in their fractional part and produce blockier noise. Beyond
// ±2^63 the lattice index saturates, so every such point shares one cell and
// the field stops varying along that axis. NaN in gives NaN out.
func (f *Field) Evaluate(x, y float64) float64 {
	p := vecmath.Vec2(x, y)

	fx := math.Floor(x)
	fy := math.Floor(y)
	ix := int64(fx)
	iy := int64(fy)

	// Lattice corners
	// tl----tr
	// |      |
	// bl----br
	bl := vecmath.Vec2(fx, fy)
	br := vecmath.Vec2(fx+1, fy)
	tr := vecmath.Vec2(fx+1, fy+1)
	tl := vecmath.Vec2(fx, fy+1)

	qbl := vecmath.Dot(vecmath.Sub(p, bl), f.GradientAt(ix, iy))
	qbr := vecmath.Dot(vecmath.Sub(p, br), f.GradientAt(ix+1, iy))
	qtr := vecmath.Dot(vecmath.Sub(p, tr), f.GradientAt(ix+1, iy+1))
	qtl := vecmath.Dot(vecmath.Sub(p, tl), f.GradientAt(ix, iy+1))

	sx := x - fx
	sy := y - fy

	bottom := f.easing.Lerp(qbl, qbr, sx)
	top := f.easing.Lerp(qtl, qtr, sx)
	n := f.easing.Lerp(bottom, top, sy)

	return vecmath.Clamp(n*0.5+0.5, 0, 1)
}
