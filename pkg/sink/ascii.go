package sink

import (
	"bufio"
	"context"
	"io"

	"heightfield/pkg/heightmap"
)

// DefaultCharset runs from darkest to lightest
const DefaultCharset = " .:-=+*#%@"

// ASCIISink previews a heightmap in a terminal. Each character covers a
// block of pixels twice as tall as it is wide, to make up for the shape of
// terminal cells.
type ASCIISink struct {
	W       io.Writer
	Charset string
	Columns int
}

// Name implements Sink.Name
func (s ASCIISink) Name() string {
	return "ascii"
}

// Write implements Sink.Write
func (s ASCIISink) Write(ctx context.Context, hm *heightmap.Heightmap) error {
	gradient := []rune(s.Charset)
	if len(gradient) == 0 {
		gradient = []rune(DefaultCharset)
	}

	columns := s.Columns
	if columns <= 0 || columns > hm.Width() {
		columns = hm.Width()
	}
	blockW := (hm.Width() + columns - 1) / columns
	blockH := blockW * 2

	w := bufio.NewWriter(s.W)
	for by := 0; by < hm.Height(); by += blockH {
		if err := ctx.Err(); err != nil {
			return err
		}
		for bx := 0; bx < hm.Width(); bx += blockW {
			v := blockMean(hm, bx, by, blockW, blockH)
			idx := int(v*float64(len(gradient)-1) + 0.5)
			if idx < 0 {
				idx = 0
			}
			if idx >= len(gradient) {
				idx = len(gradient) - 1
			}
			w.WriteRune(gradient[idx])
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// blockMean averages the samples of a block, clipped to the heightmap
func blockMean(hm *heightmap.Heightmap, x0, y0, bw, bh int) float64 {
	var sum float64
	var n int
	for y := y0; y < y0+bh && y < hm.Height(); y++ {
		for x := x0; x < x0+bw && x < hm.Width(); x++ {
			sum += hm.At(x, y)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
