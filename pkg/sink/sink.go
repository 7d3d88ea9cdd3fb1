// Package sink writes sampled heightmaps to files, terminals and buckets.
package sink

import (
	"context"
	"errors"
	"fmt"

	"heightfield/pkg/heightmap"
)

// Sink consumes a finished heightmap
type Sink interface {
	Name() string
	Write(ctx context.Context, hm *heightmap.Heightmap) error
}

// Multi writes to every sink in order and joins their errors
type Multi []Sink

// Name implements Sink.Name
func (m Multi) Name() string {
	return fmt.Sprintf("multi(%d)", len(m))
}

// Write implements Sink.Write. A failing sink does not stop the others.
func (m Multi) Write(ctx context.Context, hm *heightmap.Heightmap) error {
	var errs []error
	for _, s := range m {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Write(ctx, hm); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		}
	}
	return errors.Join(errs...)
}
