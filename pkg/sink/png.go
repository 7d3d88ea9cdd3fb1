package sink

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"github.com/fogleman/gg"

	"heightfield/pkg/heightmap"
)

// PNGSink saves the heightmap as a grayscale PNG file
type PNGSink struct {
	Path string
}

// Name implements Sink.Name
func (s PNGSink) Name() string {
	return "png:" + s.Path
}

// Write implements Sink.Write
func (s PNGSink) Write(_ context.Context, hm *heightmap.Heightmap) error {
	if err := gg.SavePNG(s.Path, hm.Gray()); err != nil {
		return fmt.Errorf("failed to save png: %w", err)
	}
	return nil
}

// EncodePNG returns the heightmap encoded as a grayscale PNG
func EncodePNG(hm *heightmap.Heightmap) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, hm.Gray()); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
