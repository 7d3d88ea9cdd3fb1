// Package heightmap samples a scalar field on a regular grid and turns the
// samples into grayscale images.
package heightmap

import (
	"image"
	"image/color"
	"math"
)

// Heightmap stores one sample per pixel in row-major order
type Heightmap struct {
	Grid   Grid
	Values []float64
}

// Stats summarises the samples of a heightmap
type Stats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// New allocates a zeroed heightmap for grid
func New(grid Grid) *Heightmap {
	return &Heightmap{
		Grid:   grid,
		Values: make([]float64, grid.Width*grid.Height),
	}
}

// Width returns the number of columns
func (hm *Heightmap) Width() int {
	return hm.Grid.Width
}

// Height returns the number of rows
func (hm *Heightmap) Height() int {
	return hm.Grid.Height
}

// At returns the sample at pixel (x, y)
func (hm *Heightmap) At(x, y int) float64 {
	return hm.Values[y*hm.Grid.Width+x]
}

// Intensity returns the sample at (x, y) scaled to 0..255
func (hm *Heightmap) Intensity(x, y int) uint8 {
	return ToIntensity(hm.At(x, y))
}

// ToIntensity scales a value in [0,1] to a byte, rounding to nearest
func ToIntensity(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// Stats returns the min, max and mean of the samples
func (hm *Heightmap) Stats() Stats {
	if len(hm.Values) == 0 {
		return Stats{}
	}
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, v := range hm.Values {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
		sum += v
	}
	s.Mean = sum / float64(len(hm.Values))
	return s
}

// Gray renders the heightmap as an 8-bit grayscale image
func (hm *Heightmap) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, hm.Grid.Width, hm.Grid.Height))
	for y := 0; y < hm.Grid.Height; y++ {
		for x := 0; x < hm.Grid.Width; x++ {
			img.SetGray(x, y, color.Gray{Y: hm.Intensity(x, y)})
		}
	}
	return img
}
