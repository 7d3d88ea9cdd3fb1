package sink

import (
	"context"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"heightfield/pkg/heightmap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is the on-disk JSON form of a heightmap
type Document struct {
	Seed    int64           `json:"seed"`
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Zoom    float64         `json:"zoom"`
	OffsetX float64         `json:"offset_x"`
	OffsetY float64         `json:"offset_y"`
	Stats   heightmap.Stats `json:"stats"`
	Values  []float64       `json:"values"`
}

// NewDocument captures a heightmap and the seed it was sampled with
func NewDocument(seed int64, hm *heightmap.Heightmap) Document {
	return Document{
		Seed:    seed,
		Width:   hm.Grid.Width,
		Height:  hm.Grid.Height,
		Zoom:    hm.Grid.Zoom,
		OffsetX: hm.Grid.OffsetX,
		OffsetY: hm.Grid.OffsetY,
		Stats:   hm.Stats(),
		Values:  hm.Values,
	}
}

// Heightmap rebuilds the heightmap stored in the document
func (d Document) Heightmap() (*heightmap.Heightmap, error) {
	grid := heightmap.Grid{Width: d.Width, Height: d.Height, Zoom: d.Zoom, OffsetX: d.OffsetX, OffsetY: d.OffsetY}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if len(d.Values) != d.Width*d.Height {
		return nil, fmt.Errorf("document has %d values, want %d", len(d.Values), d.Width*d.Height)
	}
	return &heightmap.Heightmap{Grid: grid, Values: d.Values}, nil
}

// JSONSink writes the heightmap values and sampling parameters as JSON
type JSONSink struct {
	Path string
	Seed int64
}

// Name implements Sink.Name
func (s JSONSink) Name() string {
	return "json:" + s.Path
}

// Write implements Sink.Write
func (s JSONSink) Write(_ context.Context, hm *heightmap.Heightmap) error {
	data, err := json.Marshal(NewDocument(s.Seed, hm))
	if err != nil {
		return fmt.Errorf("error serializing heightmap: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("error writing heightmap: %w", err)
	}
	return nil
}

// ReadDocument loads a document written by JSONSink
func ReadDocument(path string) (Document, error) {
	var doc Document
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, err
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("error parsing heightmap: %w", err)
	}
	return doc, nil
}
