package heightmap

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGrid is returned when a Grid cannot be sampled
var ErrInvalidGrid = errors.New("invalid grid")

// MaxPixels caps Width*Height of a sampled grid (2 GiB of float64 samples)
const MaxPixels = 1 << 28

// Grid describes which part of the plane is sampled and at what resolution.
// Pixel (px, py) samples the plane at ((px+OffsetX)/Zoom, (py+OffsetY)/Zoom).
type Grid struct {
	Width   int
	Height  int
	Zoom    float64
	OffsetX float64
	OffsetY float64
}

// Validate checks that the grid has a positive size of at most MaxPixels
// and a finite positive zoom and finite offsets
func (g Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidGrid, g.Width, g.Height)
	}
	// Divide rather than multiply so huge sizes cannot overflow
	if g.Width > MaxPixels/g.Height {
		return fmt.Errorf("%w: size %dx%d exceeds %d pixels", ErrInvalidGrid, g.Width, g.Height, MaxPixels)
	}
	if !(g.Zoom > 0) || math.IsInf(g.Zoom, 0) {
		return fmt.Errorf("%w: zoom %v must be positive and finite", ErrInvalidGrid, g.Zoom)
	}
	if !isFinite(g.OffsetX) || !isFinite(g.OffsetY) {
		return fmt.Errorf("%w: offset (%v, %v) must be finite", ErrInvalidGrid, g.OffsetX, g.OffsetY)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Point maps a pixel to plane coordinates
func (g Grid) Point(px, py int) (float64, float64) {
	return (float64(px) + g.OffsetX) / g.Zoom, (float64(py) + g.OffsetY) / g.Zoom
}
